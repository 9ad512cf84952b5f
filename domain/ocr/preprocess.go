package ocr

import (
	"image"

	"github.com/disintegration/imaging"
)

// Tesseract reads digits best when text height is around 80px. Regions are
// upscaled only when smaller than the targets below, and never beyond
// maxScale since over-scaling blurs the glyphs.
const (
	targetMinWidth  = 180
	targetMinHeight = 80
	maxScale        = 2.5
)

// Preprocess converts img to grayscale and, when the region is small,
// upscales it just enough for short numeric labels to be readable.
func Preprocess(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	gray := imaging.Grayscale(img)
	if w >= targetMinWidth && h >= targetMinHeight {
		return gray
	}
	scale := float64(targetMinWidth) / float64(w)
	if s := float64(targetMinHeight) / float64(h); s > scale {
		scale = s
	}
	if scale < 1 {
		scale = 1
	}
	if scale > maxScale {
		scale = maxScale
	}
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < targetMinWidth {
		nw = targetMinWidth
	}
	if nh < targetMinHeight {
		nh = targetMinHeight
	}
	return imaging.Resize(gray, nw, nh, imaging.Lanczos)
}
