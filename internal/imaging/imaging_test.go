package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func createTestJPEG(w, h int) []byte {
	var buf bytes.Buffer
	jpeg.Encode(&buf, solid(w, h, color.RGBA{120, 40, 10, 255}), &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTestPNG(w, h int) []byte {
	var buf bytes.Buffer
	png.Encode(&buf, solid(w, h, color.RGBA{200, 160, 60, 255}))
	return buf.Bytes()
}

func TestProcessJPEG(t *testing.T) {
	result, err := Process(bytes.NewReader(createTestJPEG(100, 150)))
	if err != nil {
		t.Fatalf("Process JPEG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", result.MIME)
	}
	if len(result.Data) == 0 {
		t.Error("expected non-empty data")
	}
	if result.Width != 100 || result.Height != 150 {
		t.Errorf("expected 100x150, got %dx%d", result.Width, result.Height)
	}
}

func TestProcessPNGOutputsJPEG(t *testing.T) {
	result, err := Process(bytes.NewReader(createTestPNG(60, 60)))
	if err != nil {
		t.Fatalf("Process PNG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", result.MIME)
	}
}

func TestProcessFitsBoundingBox(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		// Tall image limited by height.
		{1000, 3000, 400, 1200},
		// Wide image limited by width.
		{3200, 1600, 800, 400},
		// Already inside the box.
		{50, 50, 50, 50},
	}

	for _, tt := range tests {
		result, err := Process(bytes.NewReader(createTestJPEG(tt.w, tt.h)))
		if err != nil {
			t.Fatalf("Process %dx%d: %v", tt.w, tt.h, err)
		}

		img, _, err := image.Decode(bytes.NewReader(result.Data))
		if err != nil {
			t.Fatalf("decoding result: %v", err)
		}
		b := img.Bounds()
		if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
			t.Errorf("%dx%d: expected %dx%d, got %dx%d", tt.w, tt.h, tt.wantW, tt.wantH, b.Dx(), b.Dy())
		}
		if b.Dx() > MaxWidth || b.Dy() > MaxHeight {
			t.Errorf("%dx%d: result exceeds bounding box", tt.w, tt.h)
		}
	}
}

func TestProcessRejectsUnsupported(t *testing.T) {
	inputs := map[string][]byte{
		"text": []byte("not an image"),
		"gif":  []byte("GIF89a..."),
	}
	for name, data := range inputs {
		if _, err := Process(bytes.NewReader(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
