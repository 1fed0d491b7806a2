// find-place-id is a command-line tool for finding Google place IDs matching a
// free-text query. For example:
//
//	$> bin/find-place-id -api-key XXX "Golden Gate Bridge"
//
// Or, dereferencing the API key from a gocloud.dev/runtimevar URI:
//
//	$> bin/find-place-id -api-key-uri 'file:///usr/local/streetview/api-key' "Eiffel Tower Paris"
//
// Without an API key no search is performed and instructions for looking the place
// up manually in Google Maps are printed instead.
package main

import (
	_ "gocloud.dev/runtimevar/constantvar"
	_ "gocloud.dev/runtimevar/filevar"
)

import (
	"context"
	"log"

	"github.com/sfomuseum/go-streetview/app/findplace"
)

func main() {

	ctx := context.Background()

	err := findplace.Run(ctx)

	if err != nil {
		log.Fatalf("Failed to find place ID, %v", err)
	}
}
