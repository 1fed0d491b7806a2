package imagemeta

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// A JPEG with no EXIF segment: SOI followed by EOI.
var plainJPEG = []byte{0xff, 0xd8, 0xff, 0xd9}

func TestExtractWithoutEXIF(t *testing.T) {

	_, err := Extract(bytes.NewReader(plainJPEG))

	if err == nil {
		t.Fatalf("Expected a decode error for an image without EXIF data")
	}
}

func TestExtractEmbeddedTags(t *testing.T) {

	r, err := os.Open("../fixtures/imagemeta/gps.jpg")

	if err != nil {
		t.Fatalf("Failed to open test image, %v", err)
	}

	defer r.Close()

	md, err := Extract(r)

	if err != nil {
		t.Fatalf("Failed to extract metadata, %v", err)
	}

	if !md.HasPosition() {
		t.Fatalf("Expected a GPS position, got %+v", md)
	}

	if math.Abs(*md.Latitude-37.7749) > 0.000001 {
		t.Fatalf("Expected latitude 37.7749, got %f", *md.Latitude)
	}

	if math.Abs(*md.Longitude-(-122.4194)) > 0.000001 {
		t.Fatalf("Expected longitude -122.4194, got %f", *md.Longitude)
	}

	if md.Altitude == nil {
		t.Fatalf("Expected an altitude, got %+v", md)
	}

	// GPSAltitudeRef is 1 so the recorded value is below sea level.
	if *md.Altitude != -10.5 {
		t.Fatalf("Expected altitude -10.5, got %f", *md.Altitude)
	}

	if md.CaptureTime == nil {
		t.Fatalf("Expected a capture time, got %+v", md)
	}

	dt := md.CaptureTime.Format("2006:01:02 15:04:05")

	if dt != "2023:05:17 10:30:00" {
		t.Fatalf("Expected capture time 2023:05:17 10:30:00, got %s", dt)
	}
}

func TestExtractFileIsNonFatal(t *testing.T) {

	path := filepath.Join(t.TempDir(), "photo.jpg")

	err := os.WriteFile(path, plainJPEG, 0644)

	if err != nil {
		t.Fatalf("Failed to write test image, %v", err)
	}

	md := ExtractFile(path)

	if md == nil {
		t.Fatalf("Expected an empty record, got nil")
	}

	if md.CaptureTime != nil || md.HasPosition() || md.Altitude != nil {
		t.Fatalf("Expected an empty record, got %+v", md)
	}
}

func TestExtractFileMissing(t *testing.T) {

	md := ExtractFile(filepath.Join(t.TempDir(), "no-such-photo.jpg"))

	if md == nil {
		t.Fatalf("Expected an empty record, got nil")
	}

	if md.CaptureTime != nil || md.HasPosition() || md.Altitude != nil {
		t.Fatalf("Expected an empty record, got %+v", md)
	}
}
