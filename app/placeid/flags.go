package placeid

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sfomuseum/go-flags/flagset"
)

var mode string
var verbose bool

func DefaultFlagSet(ctx context.Context) *flag.FlagSet {

	fs := flagset.NewFlagSet("placeid")

	fs.StringVar(&mode, "mode", "cli", "Valid options are: cli, lambda.")

	fs.BoolVar(&verbose, "verbose", false, "Enable verbose (debug) logging.")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "extract-place-id is a command-line tool for extracting a place ID and place details from a Google Maps URL.\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t %s [options] url\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Valid options are:\n")
		fs.PrintDefaults()
	}

	return fs
}
