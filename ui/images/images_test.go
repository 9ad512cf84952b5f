package images

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestScaleToFit_KeepsSmallImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 50, 30))
	if out := ScaleToFit(src, 100, 100); out != src {
		t.Fatal("image already within bounds should be returned unchanged")
	}
}

func TestScaleToFit_PreservesAspectRatio(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 100))
	out := ScaleToFit(src, 200, 200)
	b := out.Bounds()
	if b.Dx() != 200 || b.Dy() != 50 {
		t.Fatalf("got %dx%d, want 200x50", b.Dx(), b.Dy())
	}
}

func TestScaleToFit_Nil(t *testing.T) {
	if out := ScaleToFit(nil, 10, 10); out != nil {
		t.Fatal("nil source should return nil")
	}
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 4))
	data := EncodePNG(src)
	if len(data) == 0 {
		t.Fatal("empty PNG data")
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
		t.Fatalf("bounds %v", img.Bounds())
	}
}
