package publish

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/sfomuseum/go-streetview/imagemeta"
)

// Pose defines the resolved position details for a photo. Altitude and Heading
// are pointer-typed so that explicit zero values (sea level, due north) survive
// to the wire rather than being dropped.
type Pose struct {
	// LatLng is the photo's position. orb.Point is XY (longitude, latitude) ordered.
	LatLng *orb.Point
	// Altitude is the photo's altitude in meters, if known.
	Altitude *float64
	// Heading is the photo's compass heading in degrees, if known.
	Heading *float64
}

// resolvePose merges explicit caller-supplied values with extracted EXIF values.
// Explicit values win; the coordinate pair is resolved as a unit so an explicit
// pair is never mixed with an EXIF pair. A pose without a coordinate pair is no
// pose at all, matching the API's requirement that altitude and heading hang off
// a latLngPair.
func resolvePose(opts *PublishPhotoOptions, md *imagemeta.GeoMetadata) *Pose {

	var pt *orb.Point

	switch {
	case opts.Latitude != nil && opts.Longitude != nil:
		p := orb.Point{*opts.Longitude, *opts.Latitude}
		pt = &p
	case md.HasPosition():
		p := orb.Point{*md.Longitude, *md.Latitude}
		pt = &p
	}

	if pt == nil {
		return nil
	}

	pose := &Pose{
		LatLng:  pt,
		Heading: opts.Heading,
	}

	switch {
	case opts.Altitude != nil:
		pose.Altitude = opts.Altitude
	case md.Altitude != nil:
		pose.Altitude = md.Altitude
	}

	return pose
}

// resolveCaptureTime prefers the image's EXIF capture time and falls back to the
// file's last-modified time.
func resolveCaptureTime(md *imagemeta.GeoMetadata, mtime time.Time) int64 {

	if md.CaptureTime != nil {
		return md.CaptureTime.Unix()
	}

	return mtime.Unix()
}
