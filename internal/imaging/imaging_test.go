package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func createTestPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func TestValidateUpload(t *testing.T) {
	if err := ValidateUpload(createTestJPEG(10, 10)); err != nil {
		t.Errorf("JPEG should validate: %v", err)
	}
	if err := ValidateUpload(createTestPNG(10, 10)); err != nil {
		t.Errorf("PNG should validate: %v", err)
	}
	if err := ValidateUpload([]byte("not an image")); err == nil {
		t.Error("expected error for non-image data")
	}
	if err := ValidateUpload(nil); err == nil {
		t.Error("expected error for empty data")
	}
	if err := ValidateUpload([]byte("GIF89a...")); err == nil {
		t.Error("expected error for GIF")
	}
}

func TestValidateUploadSizeCeiling(t *testing.T) {
	big := make([]byte, MaxUploadSize+1)
	// Valid JPEG magic so only the size check can fail.
	copy(big, []byte{0xff, 0xd8, 0xff, 0xe0})
	err := ValidateUpload(big)
	if err == nil {
		t.Fatal("expected error for oversized file")
	}
	if !strings.Contains(err.Error(), "7 MB") {
		t.Errorf("expected size message, got %v", err)
	}
}

func TestCropNativeCoordinates(t *testing.T) {
	data := createTestPNG(100, 80)

	out, err := Crop(data, Rect{X: 10, Y: 10, W: 40, H: 20}, 0, 0)
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}

	img, format, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("expected jpeg output, got %s", format)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 20 {
		t.Errorf("expected 40x20, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestCropScalesDisplayedSelection(t *testing.T) {
	// Natural 200x200 shown at 100x100: a 50x50 selection covers 100x100
	// native pixels.
	data := createTestPNG(200, 200)

	out, err := Crop(data, Rect{X: 25, Y: 25, W: 50, H: 50}, 100, 100)
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 100 {
		t.Errorf("expected 100x100 native crop, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestCropClampsToBounds(t *testing.T) {
	data := createTestPNG(50, 50)

	// Selection hangs off the right edge; the overlap survives.
	out, err := Crop(data, Rect{X: 40, Y: 0, W: 30, H: 30}, 0, 0)
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 30 {
		t.Errorf("expected 10x30 clamped crop, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestCropOutsideImage(t *testing.T) {
	data := createTestPNG(50, 50)
	if _, err := Crop(data, Rect{X: 100, Y: 100, W: 10, H: 10}, 0, 0); err == nil {
		t.Error("expected error for a selection outside the image")
	}
}

func TestDataURL(t *testing.T) {
	url := DataURL("image/jpeg", []byte{1, 2, 3})
	if !strings.HasPrefix(url, "data:image/jpeg;base64,") {
		t.Errorf("unexpected prefix: %q", url)
	}
}
