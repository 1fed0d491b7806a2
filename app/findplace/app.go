package findplace

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/sfomuseum/go-flags/flagset"
	"github.com/sfomuseum/go-streetview/places"
	sfom_runtimevar "github.com/sfomuseum/runtimevar"
)

// Run executes the "find place ID" application with a default `flag.FlagSet` instance.
func Run(ctx context.Context) error {
	fs := DefaultFlagSet(ctx)
	return RunWithFlagSet(ctx, fs)
}

// RunWithFlagSet executes the "find place ID" application with a `flag.FlagSet` instance defined by 'fs'.
func RunWithFlagSet(ctx context.Context, fs *flag.FlagSet) error {

	flagset.Parse(fs)

	err := flagset.SetFlagsFromEnvVars(fs, "STREETVIEW")

	if err != nil {
		return fmt.Errorf("Failed to set flags from environment variables, %w", err)
	}

	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("Verbose logging enabled")
	}

	query := fs.Arg(0)

	if query == "" {
		fs.Usage()
		return fmt.Errorf("Missing query")
	}

	if api_key == "" && api_key_uri != "" {

		k, err := sfom_runtimevar.StringVar(ctx, api_key_uri)

		if err != nil {
			return fmt.Errorf("Failed to dereference API key URI, %w", err)
		}

		api_key = k
	}

	fmt.Printf("Searching for: %s\n\n", query)

	if api_key == "" {
		printManualInstructions(query)
		return nil
	}

	opts := &places.SearchOptions{
		APIKey: api_key,
	}

	candidates := places.Search(ctx, opts, query)

	if len(candidates) == 0 {
		fmt.Println("No places found.")
		return nil
	}

	fmt.Println("Found places:")
	fmt.Println()

	for i, c := range candidates {

		types := c.Types

		if len(types) > 3 {
			types = types[:3]
		}

		fmt.Printf("%d. %s\n", i+1, c.Name)
		fmt.Printf("   Address: %s\n", c.Address)
		fmt.Printf("   Place ID: %s\n", c.PlaceId)

		if len(types) > 0 {
			fmt.Printf("   Types: %s\n", strings.Join(types, ", "))
		}

		fmt.Println()
	}

	fmt.Println("To use a place ID with the uploader:")
	fmt.Println("\tpublish-photo -place-id PLACE_ID_HERE image.jpg")

	return nil
}

func printManualInstructions(query string) {

	search_url := "https://www.google.com/maps/search/" + url.PathEscape(query)

	fmt.Println("No API key provided. Open this URL in your browser to find the place:")
	fmt.Println(search_url)
	fmt.Println()
	fmt.Println("Once you find the place on Google Maps:")
	fmt.Println("1. Click on the place to select it")
	fmt.Println("2. Click the 'Share' button")
	fmt.Println("3. Click the 'Embed a map' tab")
	fmt.Println("4. Look in the iframe src URL for 'place_id=ChIJ...'")
	fmt.Println("5. That's your place ID")
}
