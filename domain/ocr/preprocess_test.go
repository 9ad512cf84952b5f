package ocr

import (
	"image"
	"testing"
)

func TestPreprocess_Sizing(t *testing.T) {
	cases := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		// Already large enough: untouched dimensions.
		{"large region", 400, 120, 400, 120},
		// Tiny region: scale capped at 2.5x, then floored to the targets.
		{"tiny region", 40, 16, 180, 80},
		// Wide but short: only the height forces scaling.
		{"short region", 200, 30, 500, 80},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tc.w, tc.h))
			out := Preprocess(src)
			b := out.Bounds()
			if b.Dx() != tc.wantW || b.Dy() != tc.wantH {
				t.Fatalf("Preprocess(%dx%d) = %dx%d, want %dx%d",
					tc.w, tc.h, b.Dx(), b.Dy(), tc.wantW, tc.wantH)
			}
		})
	}
}

func TestPreprocess_Grayscale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = 200, 30, 90, 255
	}
	out := Preprocess(src)
	r, g, b, _ := out.At(10, 10).RGBA()
	if r != g || g != b {
		t.Fatalf("expected gray pixel, got r=%d g=%d b=%d", r, g, b)
	}
}
