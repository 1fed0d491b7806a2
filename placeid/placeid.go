// Package placeid extracts Google place identifiers and place details from Google Maps URLs.
package placeid

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// re_hex_id matches Google's internal hexadecimal place token as it appears in the
// "data" parameter of a Maps URL (for example "!1s0x89c25a31ed85c2f1:0x24fe2f0b4b6c9f6").
// Tokens in this format can not be used with the Places or Street View Publish APIs.
var re_hex_id = regexp.MustCompile(`!1s(0x[a-fA-F0-9]+:[a-fA-F0-9x]+)`)

// re_data_id matches a "place_id:" fragment in the data parameter of newer Maps URLs.
var re_data_id = regexp.MustCompile(`/place/[^/]+/[^/]+/data=[^/]*place_id:([^&]+)`)

// re_standard_id matches a canonical place identifier: the "ChIJ" prefix followed by
// exactly 22 URL-safe base64 characters.
var re_standard_id = regexp.MustCompile(`(ChIJ[a-zA-Z0-9_-]{22})`)

var re_name = regexp.MustCompile(`/place/([^/@]+)`)

var re_centroid = regexp.MustCompile(`@(-?\d+\.\d+),(-?\d+\.\d+)`)

// Result defines the place details derived from a single Google Maps URL. All of its
// fields are best-effort and any combination of them may be empty.
type Result struct {
	// Name is the human-readable place name from the "/place/" path segment, if any.
	Name string `json:"name,omitempty"`
	// Centroid is the coordinate ("@lat,lng") advertised by the URL, if any. Note that
	// orb.Point is XY (longitude, latitude) ordered.
	Centroid *orb.Point `json:"centroid,omitempty"`
	// PlaceId is a canonical place identifier suitable for passing to the Places or
	// Street View Publish APIs, if one could be derived.
	PlaceId string `json:"place_id,omitempty"`
	// HexId is Google's internal hexadecimal place token, if one was detected. Tokens
	// in this format are reported but are not usable as a PlaceId; the canonical
	// identifier has to be retrieved through the Maps embed ("Share > Embed a map") UI.
	HexId string `json:"hex_id,omitempty"`
}

// HasCoordinates returns true if a latitude and longitude pair was derived from the URL.
func (r *Result) HasCoordinates() bool {
	return r.Centroid != nil
}

// Latitude returns the latitude component of the result's centroid.
func (r *Result) Latitude() float64 {

	if r.Centroid == nil {
		return 0.0
	}

	return r.Centroid.Y()
}

// Longitude returns the longitude component of the result's centroid.
func (r *Result) Longitude() float64 {

	if r.Centroid == nil {
		return 0.0
	}

	return r.Centroid.X()
}

// ExtractFromURL derives place details from 'raw', a Google Maps URL in any of the
// formats the Maps frontend produces. Identifier matching is ordered and the first
// match wins: an internal hex token is reported (but yields no PlaceId), then a
// "place_id:" data fragment, then a canonical "ChIJ"-prefixed token. The place name
// and centroid are extracted independently of the identifier. The function is
// deterministic and performs no I/O.
func ExtractFromURL(raw string) *Result {

	decoded, err := url.PathUnescape(raw)

	if err != nil {
		decoded = raw
	}

	rsp := &Result{}

	if m := re_name.FindStringSubmatch(raw); m != nil {

		name := strings.ReplaceAll(m[1], "+", " ")

		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}

		rsp.Name = name
	}

	if m := re_centroid.FindStringSubmatch(raw); m != nil {

		lat := parseFloat(m[1])
		lon := parseFloat(m[2])

		pt := orb.Point{lon, lat}
		rsp.Centroid = &pt
	}

	if m := re_hex_id.FindStringSubmatch(decoded); m != nil {
		rsp.HexId = m[1]
		return rsp
	}

	if m := re_data_id.FindStringSubmatch(decoded); m != nil {
		rsp.PlaceId = m[1]
		return rsp
	}

	if m := re_standard_id.FindStringSubmatch(decoded); m != nil {
		rsp.PlaceId = m[1]
		return rsp
	}

	return rsp
}

// The regexp guarantees a well-formed signed decimal so the error can be discarded.
func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
