package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/whosonfirst/go-ioutil"
)

// Wire records for the Street View Publish API. These shapes are dictated by the
// provider and interoperate as-is; they are constructed and parsed here and
// nowhere else.

type uploadReference struct {
	UploadUrl string `json:"uploadUrl"`
}

type captureTime struct {
	Seconds int64 `json:"seconds"`
}

type latLngPair struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type posePayload struct {
	LatLngPair *latLngPair `json:"latLngPair,omitempty"`
	Altitude   *float64    `json:"altitude,omitempty"`
	Heading    *float64    `json:"heading,omitempty"`
}

type placePayload struct {
	PlaceId string `json:"placeId"`
}

type createPhotoRequest struct {
	UploadReference *uploadReference `json:"uploadReference"`
	CaptureTime     *captureTime     `json:"captureTime"`
	Pose            *posePayload     `json:"pose,omitempty"`
	Places          []*placePayload  `json:"places,omitempty"`
}

func newCreatePhotoRequest(upload_url string, capture_time int64, pose *Pose, place_id string) *createPhotoRequest {

	req := &createPhotoRequest{
		UploadReference: &uploadReference{UploadUrl: upload_url},
		CaptureTime:     &captureTime{Seconds: capture_time},
	}

	if pose != nil {

		req.Pose = &posePayload{
			LatLngPair: &latLngPair{
				Latitude:  pose.LatLng.Y(),
				Longitude: pose.LatLng.X(),
			},
			Altitude: pose.Altitude,
			Heading:  pose.Heading,
		}
	}

	if place_id != "" {

		req.Places = []*placePayload{
			&placePayload{PlaceId: place_id},
		}
	}

	return req
}

type apiClient struct {
	client   *http.Client
	endpoint string
}

func (cl *apiClient) httpClient() *http.Client {

	if cl.client == nil {
		return http.DefaultClient
	}

	return cl.client
}

func (cl *apiClient) baseURI() string {

	if cl.endpoint == "" {
		return DEFAULT_API_ENDPOINT
	}

	return cl.endpoint
}

// StartUpload requests a one-time upload slot and returns its upload URL. The
// slot is valid for exactly one upload and is never reused.
func (cl *apiClient) StartUpload(ctx context.Context) (string, error) {

	uri := cl.baseURI() + "/photo:startUpload"

	req, err := http.NewRequestWithContext(ctx, "POST", uri, bytes.NewReader([]byte("{}")))

	if err != nil {
		return "", fmt.Errorf("Failed to create start upload request, %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	rsp, err := cl.httpClient().Do(req)

	if err != nil {
		return "", fmt.Errorf("Failed to execute start upload request, %w", err)
	}

	defer rsp.Body.Close()

	rsp_body, err := io.ReadAll(rsp.Body)

	if err != nil {
		return "", fmt.Errorf("Failed to read start upload response, %w", err)
	}

	if rsp.StatusCode != http.StatusOK {
		return "", apiError("Start upload", rsp.StatusCode, rsp_body)
	}

	upload_url := gjson.GetBytes(rsp_body, "uploadUrl").String()

	if upload_url == "" {
		return "", fmt.Errorf("Start upload response is missing an upload URL")
	}

	return upload_url, nil
}

// UploadBytes streams the raw image bytes to a previously acquired upload URL.
// Authorization is supplied by the HTTP client's transport.
func (cl *apiClient) UploadBytes(ctx context.Context, upload_url string, body []byte) error {

	br := bytes.NewReader(body)
	fh, err := ioutil.NewReadSeekCloser(br)

	if err != nil {
		return fmt.Errorf("Failed to create new ReadSeekCloser, %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", upload_url, fh)

	if err != nil {
		return fmt.Errorf("Failed to create upload request, %w", err)
	}

	req.ContentLength = int64(len(body))
	req.Header.Set("Content-Type", "image/jpeg")
	req.Header.Set("X-Goog-Upload-Protocol", "raw")
	req.Header.Set("X-Goog-Upload-Content-Length", strconv.Itoa(len(body)))

	rsp, err := cl.httpClient().Do(req)

	if err != nil {
		return fmt.Errorf("Failed to execute upload request, %w", err)
	}

	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {

		rsp_body, _ := io.ReadAll(rsp.Body)
		return apiError("Upload", rsp.StatusCode, rsp_body)
	}

	return nil
}

// CreatePhoto submits the photo record that finalizes the publish.
func (cl *apiClient) CreatePhoto(ctx context.Context, create_req *createPhotoRequest) (*PublishedPhoto, error) {

	body, err := json.Marshal(create_req)

	if err != nil {
		return nil, fmt.Errorf("Failed to marshal create photo request, %w", err)
	}

	uri := cl.baseURI() + "/photo"

	req, err := http.NewRequestWithContext(ctx, "POST", uri, bytes.NewReader(body))

	if err != nil {
		return nil, fmt.Errorf("Failed to create photo request, %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	rsp, err := cl.httpClient().Do(req)

	if err != nil {
		return nil, fmt.Errorf("Failed to execute create photo request, %w", err)
	}

	defer rsp.Body.Close()

	rsp_body, err := io.ReadAll(rsp.Body)

	if err != nil {
		return nil, fmt.Errorf("Failed to read create photo response, %w", err)
	}

	if rsp.StatusCode != http.StatusOK {
		return nil, apiError("Create photo", rsp.StatusCode, rsp_body)
	}

	ph := &PublishedPhoto{
		PhotoId:   gjson.GetBytes(rsp_body, "photoId.id").String(),
		ShareLink: gjson.GetBytes(rsp_body, "shareLink").String(),
		// The provider encodes viewCount as a JSON string.
		ViewCount: gjson.GetBytes(rsp_body, "viewCount").Int(),
	}

	return ph, nil
}

// apiError surfaces a non-success response with enough context to diagnose the
// API-level cause: the HTTP status plus the provider's error payload when one is
// present.
func apiError(op string, code int, body []byte) error {

	msg := gjson.GetBytes(body, "error.message").String()
	status := gjson.GetBytes(body, "error.status").String()

	if msg != "" {
		return fmt.Errorf("%s request failed with status %d (%s), %s", op, code, status, msg)
	}

	return fmt.Errorf("%s request failed with status %d, %s", op, code, string(body))
}
