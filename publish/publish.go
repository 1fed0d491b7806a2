// Package publish implements the Street View Publish API photo workflow: acquire
// an upload slot, upload the image bytes and create the photo record with its
// pose and optional place association.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/sfomuseum/go-streetview/imagemeta"
)

// DEFAULT_API_ENDPOINT is the base URI for the Street View Publish API.
const DEFAULT_API_ENDPOINT string = "https://streetviewpublish.googleapis.com/v1"

// PublishPhotoOptions defines configuration details for publishing a photo.
type PublishPhotoOptions struct {
	// Client is the (authorized) HTTP client used for every API call.
	Client *http.Client
	// APIEndpoint overrides the Street View Publish API base URI.
	APIEndpoint string
	// Latitude is an explicit latitude in decimal degrees taking precedence over
	// the image's EXIF data. Latitude and Longitude must be assigned together.
	Latitude *float64
	// Longitude is an explicit longitude in decimal degrees taking precedence
	// over the image's EXIF data.
	Longitude *float64
	// Altitude is an explicit altitude in meters taking precedence over the
	// image's EXIF data. A value of 0 is meaningful (sea level) and is transmitted.
	Altitude *float64
	// Heading is a compass heading in degrees, 0 is north. A value of 0 is
	// meaningful and is transmitted. The value is passed through unvalidated.
	Heading *float64
	// PlaceId is an opaque place identifier to associate with the photo.
	PlaceId string
}

// PublishedPhoto defines the API's acknowledgment of a created photo record.
type PublishedPhoto struct {
	// PhotoId is the identifier assigned to the published photo.
	PhotoId string `json:"photo_id"`
	// ShareLink is the canonical link for sharing the published photo.
	ShareLink string `json:"share_link"`
	// ViewCount is the number of views recorded for the photo.
	ViewCount int64 `json:"view_count"`
}

// PublishPhoto publishes the JPEG image at 'path'. The sequence is linear with no
// retry: validate the input, extract EXIF metadata (non-fatally), resolve the
// effective pose, request an upload slot, upload the bytes and create the photo
// record. A failure at any network step aborts the invocation; the caller has to
// restart the whole operation.
func PublishPhoto(ctx context.Context, opts *PublishPhotoOptions, path string) (*PublishedPhoto, error) {

	logger := slog.Default()
	logger = logger.With("action", "publish photo")
	logger = logger.With("path", path)

	info, err := os.Stat(path)

	if err != nil {
		return nil, fmt.Errorf("Image file not found, %w", err)
	}

	t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))

	if t != "image/jpeg" {
		return nil, fmt.Errorf("File must be a JPEG image, got '%s'", t)
	}

	body, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("Failed to read image, %w", err)
	}

	logger.Info("Uploading image", "bytes", len(body))

	md, err := imagemeta.Extract(bytes.NewReader(body))

	if err != nil {
		logger.Warn("Failed to extract image metadata", "error", err)
		md = &imagemeta.GeoMetadata{}
	}

	pose := resolvePose(opts, md)
	capture_time := resolveCaptureTime(md, info.ModTime())

	if pose != nil {
		logger.Debug("Resolved pose", "latitude", pose.LatLng.Y(), "longitude", pose.LatLng.X())
	}

	cl := &apiClient{
		client:   opts.Client,
		endpoint: opts.APIEndpoint,
	}

	logger.Debug("Requesting upload URL")

	upload_url, err := cl.StartUpload(ctx)

	if err != nil {
		return nil, fmt.Errorf("Failed to acquire upload URL, %w", err)
	}

	logger.Debug("Uploading image data", "url", upload_url)

	err = cl.UploadBytes(ctx, upload_url, body)

	if err != nil {
		return nil, fmt.Errorf("Failed to upload image data, %w", err)
	}

	logger.Debug("Creating photo entry")

	req := newCreatePhotoRequest(upload_url, capture_time, pose, opts.PlaceId)

	ph, err := cl.CreatePhoto(ctx, req)

	if err != nil {
		return nil, fmt.Errorf("Failed to create photo entry, %w", err)
	}

	logger.Info("Photo uploaded", "photo id", ph.PhotoId, "share link", ph.ShareLink)

	return ph, nil
}
