package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// DEFAULT_TEXTSEARCH_ENDPOINT is the Places API (New) searchText endpoint.
const DEFAULT_TEXTSEARCH_ENDPOINT string = "https://places.googleapis.com/v1/places:searchText"

// textsearch_fieldmask restricts responses to the fields the Candidate record needs.
const textsearch_fieldmask string = "places.id,places.displayName,places.formattedAddress,places.types"

const textsearch_max_candidates int = 5

type textSearchRequest struct {
	TextQuery string `json:"textQuery"`
}

// textSearch queries the Places API (New). Errors reported inside an otherwise
// well-formed response body are treated the same as transport errors so that the
// caller falls back to the legacy endpoint.
type textSearch struct {
	opts *SearchOptions
}

func (s *textSearch) Search(ctx context.Context, query string) ([]*Candidate, error) {

	endpoint := s.opts.TextSearchEndpoint

	if endpoint == "" {
		endpoint = DEFAULT_TEXTSEARCH_ENDPOINT
	}

	body, err := json.Marshal(&textSearchRequest{TextQuery: query})

	if err != nil {
		return nil, fmt.Errorf("Failed to marshal text search request, %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))

	if err != nil {
		return nil, fmt.Errorf("Failed to create text search request, %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", s.opts.APIKey)
	req.Header.Set("X-Goog-FieldMask", textsearch_fieldmask)

	rsp, err := s.opts.httpClient().Do(req)

	if err != nil {
		return nil, fmt.Errorf("Failed to execute text search request, %w", err)
	}

	defer rsp.Body.Close()

	rsp_body, err := io.ReadAll(rsp.Body)

	if err != nil {
		return nil, fmt.Errorf("Failed to read text search response, %w", err)
	}

	err_rsp := gjson.GetBytes(rsp_body, "error")

	if err_rsp.Exists() {
		return nil, fmt.Errorf("Places API (New) error, %s", err_rsp.Get("message").String())
	}

	candidates := make([]*Candidate, 0)

	for _, pl := range gjson.GetBytes(rsp_body, "places").Array() {

		if len(candidates) >= textsearch_max_candidates {
			break
		}

		// The new API returns resource names ("places/ChIJ...") rather than bare IDs.
		id := strings.TrimPrefix(pl.Get("id").String(), "places/")

		c := &Candidate{
			Name:    pl.Get("displayName.text").String(),
			Address: pl.Get("formattedAddress").String(),
			PlaceId: id,
		}

		for _, t := range pl.Get("types").Array() {
			c.Types = append(c.Types, t.String())
		}

		candidates = append(candidates, c)
	}

	return candidates, nil
}
