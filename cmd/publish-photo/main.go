// publish-photo is a command-line tool for uploading a 360 equirectangular JPEG
// image to Google Street View with the Street View Publish API. For example:
//
//	$> bin/publish-photo image.jpg
//
// Or, with explicit coordinates, altitude and heading:
//
//	$> bin/publish-photo -latitude 37.7749 -longitude -122.4194 -altitude 10.5 -heading 45 image.jpg
//
// Or, associating the photo with a place:
//
//	$> bin/publish-photo -place-id ChIJIQBpAG2ahYAR_6128GcTUEo image.jpg
//
// Coordinates, altitude and capture time fall back to the image's EXIF data when
// not supplied. OAuth2 client secrets are read from credentials.json and token
// material is cached in token.json (see -credentials and -token).
package main

import (
	"context"
	"log"

	"github.com/sfomuseum/go-streetview/app/publish"
)

func main() {

	ctx := context.Background()

	err := publish.Run(ctx)

	if err != nil {
		log.Fatalf("Failed to publish photo, %v", err)
	}
}
