package placeid

import (
	"testing"
)

func TestExtractStandardPlaceId(t *testing.T) {

	// The canonical format is the "ChIJ" prefix followed by exactly 22 characters.
	id := "ChIJN1t_tDeuEmsRUsoyG83frY"

	urls := []string{
		"https://www.google.com/maps/place/?q=place_id=x&query=" + id,
		"https://www.google.com/maps/place/Golden+Gate+Bridge/@37.8199,-122.4783,17z/" + id + "?hl=en",
		id,
	}

	for _, u := range urls {

		rsp := ExtractFromURL(u)

		if rsp.PlaceId != id {
			t.Fatalf("Failed to extract standard place ID from %s, got '%s'", u, rsp.PlaceId)
		}
	}
}

func TestExtractHexIdIsUnusable(t *testing.T) {

	u := "https://www.google.com/maps/place/Ferry+Building/@37.7955,-122.3937,17z/data=!3m1!4b1!4m6!3m5!1s0x8085806285ddc389:0x1cc6a1c0b0c1b0b0"

	rsp := ExtractFromURL(u)

	if rsp.HexId != "0x8085806285ddc389:0x1cc6a1c0b0c1b0b0" {
		t.Fatalf("Failed to detect hex place token, got '%s'", rsp.HexId)
	}

	if rsp.PlaceId != "" {
		t.Fatalf("Expected no usable place ID for hex token URL, got '%s'", rsp.PlaceId)
	}
}

func TestExtractDataPlaceId(t *testing.T) {

	u := "https://www.google.com/maps/place/Some+Cafe/@37.77,-122.41,17z/data=!4m5!3m4!place_id:ChIJd8BlQ2BZwokRAFUEcm_qrcA&foo=bar"

	rsp := ExtractFromURL(u)

	if rsp.PlaceId != "ChIJd8BlQ2BZwokRAFUEcm_qrcA" {
		t.Fatalf("Failed to extract place_id fragment, got '%s'", rsp.PlaceId)
	}
}

func TestExtractNameAndCentroid(t *testing.T) {

	u := "https://www.google.com/maps/place/Golden+Gate+Bridge/@37.8199,-122.4783,17z"

	rsp := ExtractFromURL(u)

	if rsp.Name != "Golden Gate Bridge" {
		t.Fatalf("Failed to extract place name, got '%s'", rsp.Name)
	}

	if !rsp.HasCoordinates() {
		t.Fatalf("Failed to extract centroid from %s", u)
	}

	if rsp.Latitude() != 37.8199 {
		t.Fatalf("Unexpected latitude, got %f", rsp.Latitude())
	}

	if rsp.Longitude() != -122.4783 {
		t.Fatalf("Unexpected longitude, got %f", rsp.Longitude())
	}

	if rsp.PlaceId != "" {
		t.Fatalf("Expected no place ID, got '%s'", rsp.PlaceId)
	}
}

func TestExtractEscapedName(t *testing.T) {

	u := "https://www.google.com/maps/place/Caf%C3%A9+de+Flore/@48.8540,2.3325,17z"

	rsp := ExtractFromURL(u)

	if rsp.Name != "Café de Flore" {
		t.Fatalf("Failed to unescape place name, got '%s'", rsp.Name)
	}
}

func TestExtractNothing(t *testing.T) {

	rsp := ExtractFromURL("https://example.com/not-a-maps-url")

	if rsp.Name != "" || rsp.PlaceId != "" || rsp.HexId != "" || rsp.HasCoordinates() {
		t.Fatalf("Expected empty result, got %+v", rsp)
	}
}
