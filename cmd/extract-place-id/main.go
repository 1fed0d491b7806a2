// extract-place-id is a command-line tool for extracting a Google place ID, place
// name and coordinates from a Google Maps URL. For example:
//
//	$> bin/extract-place-id "https://www.google.com/maps/place/Golden+Gate+Bridge/@37.8199,-122.4783,17z"
//
// URLs carrying Google's internal hexadecimal place token are reported as detected
// but do not yield a usable place ID; the tool prints instructions for deriving the
// canonical identifier through the Maps embed UI instead.
package main

import (
	"context"
	"log"

	"github.com/sfomuseum/go-streetview/app/placeid"
)

func main() {

	ctx := context.Background()

	err := placeid.Run(ctx)

	if err != nil {
		log.Fatalf("Failed to extract place ID, %v", err)
	}
}
