// Package places queries the Google Places APIs for place identifiers matching a
// free-text query. Search results are advisory: every transport or API failure is
// reduced to an empty candidate list with a diagnostic rather than an error.
package places

import (
	"context"
	"log/slog"
	"net/http"
)

// Candidate defines a single place match. Candidates are display records and are
// returned in the relevance order assigned by the API, never re-sorted.
type Candidate struct {
	// Name is the display name of the place.
	Name string `json:"name"`
	// Address is the formatted address of the place.
	Address string `json:"address"`
	// PlaceId is the canonical place identifier for the place.
	PlaceId string `json:"place_id"`
	// Types are the category tags assigned to the place, in API order.
	Types []string `json:"types"`
}

// SearchOptions defines configuration details for performing place searches.
type SearchOptions struct {
	// APIKey is a Google Maps API key. If empty no network calls are performed
	// and searches yield an empty candidate list.
	APIKey string
	// Client is the HTTP client used to talk to the Places APIs. If nil
	// http.DefaultClient is used.
	Client *http.Client
	// TextSearchEndpoint overrides the Places API (New) searchText endpoint.
	TextSearchEndpoint string
	// FindPlaceEndpoint overrides the legacy find-place-from-text endpoint.
	FindPlaceEndpoint string
}

func (opts *SearchOptions) httpClient() *http.Client {

	if opts.Client == nil {
		return http.DefaultClient
	}

	return opts.Client
}

// searcher is implemented by each Places API flavour. Implementations return an
// error both for transport failures and for API-level error payloads; the caller
// advances to the next searcher in either case.
type searcher interface {
	Search(ctx context.Context, query string) ([]*Candidate, error)
}

// Search queries the Places APIs for 'query' and returns up to five candidates.
// The Places API (New) is tried first and the legacy find-place endpoint is tried
// exactly once if it fails. Failures at every level yield an empty list: callers
// can not distinguish "no results" from "search unavailable" and are not meant to.
func Search(ctx context.Context, opts *SearchOptions, query string) []*Candidate {

	logger := slog.Default()
	logger = logger.With("query", query)

	if opts.APIKey == "" {
		logger.Debug("No API key, skipping place search")
		return nil
	}

	searchers := []searcher{
		&textSearch{opts: opts},
		&findPlace{opts: opts},
	}

	for _, s := range searchers {

		candidates, err := s.Search(ctx, query)

		if err != nil {
			logger.Warn("Place search failed, trying next provider", "error", err)
			continue
		}

		return candidates
	}

	logger.Warn("All place search providers failed")
	return nil
}
