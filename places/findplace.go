package places

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"
)

// DEFAULT_FINDPLACE_ENDPOINT is the legacy Places API find-place-from-text endpoint.
const DEFAULT_FINDPLACE_ENDPOINT string = "https://maps.googleapis.com/maps/api/place/findplacefromtext/json"

const findplace_fields string = "place_id,name,formatted_address,types"

// findPlace queries the legacy Places API. It is only consulted after the Places
// API (New) has failed.
type findPlace struct {
	opts *SearchOptions
}

func (s *findPlace) Search(ctx context.Context, query string) ([]*Candidate, error) {

	endpoint := s.opts.FindPlaceEndpoint

	if endpoint == "" {
		endpoint = DEFAULT_FINDPLACE_ENDPOINT
	}

	q := url.Values{}
	q.Set("input", query)
	q.Set("inputtype", "textquery")
	q.Set("fields", findplace_fields)
	q.Set("key", s.opts.APIKey)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+q.Encode(), nil)

	if err != nil {
		return nil, fmt.Errorf("Failed to create find place request, %w", err)
	}

	rsp, err := s.opts.httpClient().Do(req)

	if err != nil {
		return nil, fmt.Errorf("Failed to execute find place request, %w", err)
	}

	defer rsp.Body.Close()

	rsp_body, err := io.ReadAll(rsp.Body)

	if err != nil {
		return nil, fmt.Errorf("Failed to read find place response, %w", err)
	}

	status := gjson.GetBytes(rsp_body, "status").String()

	if status != "OK" {

		msg := gjson.GetBytes(rsp_body, "error_message").String()

		if msg != "" {
			return nil, fmt.Errorf("Find place request failed with status '%s', %s", status, msg)
		}

		return nil, fmt.Errorf("Find place request failed with status '%s'", status)
	}

	candidates := make([]*Candidate, 0)

	for _, pl := range gjson.GetBytes(rsp_body, "candidates").Array() {

		c := &Candidate{
			Name:    pl.Get("name").String(),
			Address: pl.Get("formatted_address").String(),
			PlaceId: pl.Get("place_id").String(),
		}

		for _, t := range pl.Get("types").Array() {
			c.Types = append(c.Types, t.String())
		}

		candidates = append(candidates, c)
	}

	return candidates, nil
}
