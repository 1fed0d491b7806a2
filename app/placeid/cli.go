package placeid

import (
	"context"
	"fmt"

	"github.com/sfomuseum/go-streetview/placeid"
)

func runCommandLine(ctx context.Context, url string) error {

	fmt.Println("Analyzing URL...")
	fmt.Println()

	rsp := placeid.ExtractFromURL(url)

	if rsp.Name != "" {
		fmt.Printf("Place Name: %s\n", rsp.Name)
	}

	if rsp.HasCoordinates() {
		fmt.Printf("Coordinates: %0.6f, %0.6f\n", rsp.Latitude(), rsp.Longitude())
	}

	if rsp.HexId != "" {

		fmt.Printf("Found hex place token: %s\n", rsp.HexId)
		fmt.Println()
		fmt.Println("Google's internal hex format can not be used directly. To get the proper place ID:")
		fmt.Println("1. Open the URL in your browser")
		fmt.Println("2. Click on the place name/title")
		fmt.Println("3. Click the 'Share' button")
		fmt.Println("4. Click the 'Embed a map' tab")
		fmt.Println("5. The place ID will be in the iframe src URL")
		return nil
	}

	if rsp.PlaceId != "" {

		fmt.Println()
		fmt.Printf("Place ID: %s\n", rsp.PlaceId)
		fmt.Println()
		fmt.Println("Use with the uploader:")
		fmt.Printf("\tpublish-photo -place-id %s image.jpg\n", rsp.PlaceId)
		return nil
	}

	fmt.Println()
	fmt.Println("Could not extract a place ID from this URL format.")

	if rsp.HasCoordinates() {
		fmt.Println()
		fmt.Println("Alternative: use the coordinates instead:")
		fmt.Printf("\tpublish-photo -latitude %0.6f -longitude %0.6f image.jpg\n", rsp.Latitude(), rsp.Longitude())
	} else {
		fmt.Println("Try the find-place-id tool with the place name instead.")
	}

	return nil
}
