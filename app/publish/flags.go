package publish

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sfomuseum/go-flags/flagset"
	"github.com/sfomuseum/go-streetview"
)

var mode string

var credentials_path string
var token_path string

var latitude float64
var longitude float64
var altitude float64
var heading float64

var place_id string

var verbose bool

func DefaultFlagSet(ctx context.Context) *flag.FlagSet {

	fs := flagset.NewFlagSet("publish")

	fs.StringVar(&mode, "mode", "cli", "Valid options are: cli.")

	fs.StringVar(&credentials_path, "credentials", streetview.DEFAULT_CREDENTIALS_PATH, "The path to an OAuth2 client secrets (credentials.json) file.")
	fs.StringVar(&token_path, "token", streetview.DEFAULT_TOKEN_PATH, "The path where OAuth2 token material is cached between runs.")

	fs.Float64Var(&latitude, "latitude", 0.0, "Latitude in decimal degrees (for example 37.7749). Must be supplied together with -longitude.")
	fs.Float64Var(&longitude, "longitude", 0.0, "Longitude in decimal degrees (for example -122.4194). Must be supplied together with -latitude.")
	fs.Float64Var(&altitude, "altitude", 0.0, "Altitude in meters above sea level.")
	fs.Float64Var(&heading, "heading", 0.0, "Compass heading in degrees (0-360, 0 is north).")

	fs.StringVar(&place_id, "place-id", "", "A Google place ID to associate with the photo.")

	fs.BoolVar(&verbose, "verbose", false, "Enable verbose (debug) logging.")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "publish-photo is a command-line tool for uploading a 360 equirectangular JPEG image to Google Street View.\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t %s [options] image.jpg\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Valid options are:\n")
		fs.PrintDefaults()
	}

	return fs
}

// assignedFlags reports which flags were assigned explicitly, either on the command
// line or through the environment. Zero is a meaningful value for the coordinate,
// altitude and heading flags so their defaults can not be used as "unset" markers.
func assignedFlags(fs *flag.FlagSet) map[string]bool {

	assigned := make(map[string]bool)

	fs.Visit(func(f *flag.Flag) {
		assigned[f.Name] = true
	})

	return assigned
}
