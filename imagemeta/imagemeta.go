// Package imagemeta reads geolocation and capture time details from the EXIF
// tags embedded in a JPEG image. Extraction is best-effort: images without EXIF
// data yield an empty record rather than an error.
package imagemeta

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// GeoMetadata defines the geolocation and capture time details embedded in an
// image. All of its fields are optional; absent values are nil.
type GeoMetadata struct {
	// CaptureTime is the EXIF DateTime of the image.
	CaptureTime *time.Time
	// Latitude is the GPS latitude in decimal degrees, south negative.
	Latitude *float64
	// Longitude is the GPS longitude in decimal degrees, west negative.
	Longitude *float64
	// Altitude is the GPS altitude in meters, below sea level negative.
	Altitude *float64
}

// HasPosition returns true if both a latitude and a longitude were extracted.
func (m *GeoMetadata) HasPosition() bool {
	return m.Latitude != nil && m.Longitude != nil
}

// ExtractFile derives geolocation metadata from the image at 'path'. Extraction
// failures are reported as a diagnostic and reduced to an empty record; they never
// abort the caller.
func ExtractFile(path string) *GeoMetadata {

	r, err := os.Open(path)

	if err != nil {
		slog.Warn("Could not open image for EXIF extraction", "path", path, "error", err)
		return &GeoMetadata{}
	}

	defer r.Close()

	md, err := Extract(r)

	if err != nil {
		slog.Warn("Could not extract EXIF data", "path", path, "error", err)
		return &GeoMetadata{}
	}

	return md
}

// Extract derives geolocation metadata from the image read from 'r'. A decoding
// failure is returned as an error; missing individual tags are not.
func Extract(r io.Reader) (*GeoMetadata, error) {

	x, err := exif.Decode(r)

	if err != nil {
		return nil, fmt.Errorf("Failed to decode EXIF data, %w", err)
	}

	md := &GeoMetadata{}

	if tm, err := x.DateTime(); err == nil {
		md.CaptureTime = &tm
	}

	// LatLong converts the degrees/minutes/seconds rationals to decimal degrees
	// and applies the N/S and E/W reference signs.

	if lat, lon, err := x.LatLong(); err == nil {
		md.Latitude = &lat
		md.Longitude = &lon
	}

	if alt, err := altitude(x); err == nil {
		md.Altitude = &alt
	}

	return md, nil
}

func altitude(x *exif.Exif) (float64, error) {

	tag, err := x.Get(exif.GPSAltitude)

	if err != nil {
		return 0, err
	}

	num, den, err := tag.Rat2(0)

	if err != nil {
		return 0, err
	}

	if den == 0 {
		return 0, fmt.Errorf("Invalid GPSAltitude rational, zero denominator")
	}

	alt := float64(num) / float64(den)

	// GPSAltitudeRef 1 means below sea level.

	if ref, err := x.Get(exif.GPSAltitudeRef); err == nil {

		if v, err := ref.Int(0); err == nil && v == 1 {
			alt = -alt
		}
	}

	return alt, nil
}
