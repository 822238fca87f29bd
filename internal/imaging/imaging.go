// Package imaging prepares item photos for upload: it validates the picked
// file and rasterizes a user-selected crop rectangle into a normalized JPEG.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"net/http"

	"golang.org/x/image/draw"
)

// MaxUploadSize is the ceiling for picked image files.
const MaxUploadSize = 7 * 1024 * 1024

// JPEGQuality is the compression quality for cropped output.
const JPEGQuality = 95

// AllowedMIME lists the accepted input MIME types.
var AllowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// ValidateUpload checks a picked file's size and sniffs its MIME type from
// the data itself (not trusting file extensions).
func ValidateUpload(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty image file")
	}
	if len(data) > MaxUploadSize {
		return fmt.Errorf("image exceeds the %d MB limit", MaxUploadSize/(1024*1024))
	}
	detected := http.DetectContentType(data)
	if !AllowedMIME[detected] {
		return fmt.Errorf("unsupported image format: %s (only JPEG and PNG accepted)", detected)
	}
	return nil
}

// Rect is a crop selection in displayed-image coordinates.
type Rect struct {
	X, Y, W, H int
}

// Crop decodes the image, scales the selection rectangle from displayed to
// native resolution, extracts that region, and re-encodes it as JPEG. When
// displayW/displayH are zero the selection is taken to be in native
// coordinates already.
func Crop(data []byte, sel Rect, displayW, displayH int) ([]byte, error) {
	if err := ValidateUpload(data); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := img.Bounds()
	naturalW := bounds.Dx()
	naturalH := bounds.Dy()

	scaleX, scaleY := 1.0, 1.0
	if displayW > 0 && displayH > 0 {
		scaleX = float64(naturalW) / float64(displayW)
		scaleY = float64(naturalH) / float64(displayH)
	}

	region := image.Rect(
		int(float64(sel.X)*scaleX),
		int(float64(sel.Y)*scaleY),
		int(float64(sel.X+sel.W)*scaleX),
		int(float64(sel.Y+sel.H)*scaleY),
	).Add(bounds.Min).Intersect(bounds)
	if region.Empty() {
		return nil, fmt.Errorf("crop selection is outside the image")
	}

	dst := image.NewRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))
	draw.Copy(dst, image.Point{}, img, region, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURL renders image bytes as a base64 data URL for display caching.
func DataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
