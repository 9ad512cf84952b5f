// Package ocr extracts a numeric value from a captured screen region via
// Tesseract. Extraction is best-effort: garbled or empty text yields a miss,
// never an error that escapes to the sampling loop.
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log/slog"

	"github.com/otiai10/gosseract/v2"
)

// psmPasses are tried in order. Page segmentation 6 (uniform block) reads
// short numeric labels best; 7 (single line) and 3 (auto) catch layouts
// that 6 misses.
var psmPasses = []gosseract.PageSegMode{
	gosseract.PSM_SINGLE_BLOCK,
	gosseract.PSM_SINGLE_LINE,
	gosseract.PSM_AUTO,
}

// numericWhitelist constrains recognition to characters that can appear in
// a signed decimal number.
const numericWhitelist = "0123456789.,-"

// Reader runs Tesseract over preprocessed region images. A fresh client is
// created per call so no OCR handle survives across ticks.
type Reader struct {
	logger *slog.Logger
}

// NewReader returns a Reader logging pass failures at Debug.
func NewReader(logger *slog.Logger) *Reader { return &Reader{logger: logger} }

// ExtractNumber preprocesses img, runs the PSM passes and returns the first
// numeric value found. ok is false when no pass yields a parseable number.
func (r *Reader) ExtractNumber(img image.Image) (value float64, ok bool) {
	data, err := encodePNG(Preprocess(img))
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("ocr encode failed", "error", err)
		}
		return 0, false
	}
	for _, psm := range psmPasses {
		text, err := recognize(data, psm, numericWhitelist)
		if err != nil {
			if r.logger != nil {
				r.logger.Debug("ocr pass failed", "psm", int(psm), "error", err)
			}
			continue
		}
		if v, err := ParseNumber(text); err == nil {
			return v, true
		}
	}
	return 0, false
}

// RawText runs a single unconstrained pass (PSM 6) over the preprocessed
// image. Used by the test-region diagnostic, not by the sampling loop.
func (r *Reader) RawText(img image.Image) (string, error) {
	data, err := encodePNG(Preprocess(img))
	if err != nil {
		return "", err
	}
	return recognize(data, gosseract.PSM_SINGLE_BLOCK, "")
}

func recognize(pngData []byte, psm gosseract.PageSegMode, whitelist string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage("eng")
	if whitelist != "" {
		_ = client.SetWhitelist(whitelist)
	}
	if err := client.SetPageSegMode(psm); err != nil {
		return "", fmt.Errorf("ocr: set psm: %w", err)
	}
	if err := client.SetImageFromBytes(pngData); err != nil {
		return "", fmt.Errorf("ocr: set image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr: recognize: %w", err)
	}
	return text, nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
