package findplace

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sfomuseum/go-flags/flagset"
)

var api_key string
var api_key_uri string
var verbose bool

func DefaultFlagSet(ctx context.Context) *flag.FlagSet {

	fs := flagset.NewFlagSet("findplace")

	fs.StringVar(&api_key, "api-key", "", "A Google Maps API key. Optional; without a key no search is performed and manual lookup instructions are printed.")
	fs.StringVar(&api_key_uri, "api-key-uri", "", "A valid gocloud.dev/runtimevar URI to dereference a Google Maps API key from. Ignored if -api-key is set.")

	fs.BoolVar(&verbose, "verbose", false, "Enable verbose (debug) logging.")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "find-place-id is a command-line tool for finding Google place IDs matching a free-text query.\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t %s [options] query\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Valid options are:\n")
		fs.PrintDefaults()
	}

	return fs
}
