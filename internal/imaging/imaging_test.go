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

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestProcessConvertsToJPEG(t *testing.T) {
	data := encodePNG(t, 100, 80)

	out, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg output, got %q", out.MIME)
	}

	img, err := jpeg.Decode(bytes.NewReader(out.Data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	// Within bounds; no resize.
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 80 {
		t.Errorf("expected 100x80, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestProcessDownscalesLargeImages(t *testing.T) {
	data := encodePNG(t, 2048, 1024)

	out, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(out.Data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if img.Bounds().Dx() != MaxDimension {
		t.Errorf("expected width %d, got %d", MaxDimension, img.Bounds().Dx())
	}
	// Aspect ratio preserved: 2048x1024 scales to 1024x512.
	if img.Bounds().Dy() != 512 {
		t.Errorf("expected height 512, got %d", img.Bounds().Dy())
	}
}

func TestProcessRejectsNonImages(t *testing.T) {
	_, err := Process(strings.NewReader("<html><body>not an image</body></html>"))
	if err == nil {
		t.Fatal("expected error for non-image data")
	}
	if !strings.Contains(err.Error(), "unsupported image format") {
		t.Errorf("unexpected error: %v", err)
	}
}
