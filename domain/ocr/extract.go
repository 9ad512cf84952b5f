package ocr

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoNumber indicates the OCR text contained no parseable numeric token.
var ErrNoNumber = errors.New("ocr: no numeric token found")

var numberRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// ParseNumber extracts the first integer or decimal token from OCR text.
// Commas are normalized to decimal points before matching, so "1,5" and
// "1.5" both parse as 1.5.
func ParseNumber(text string) (float64, error) {
	m := numberRe.FindString(strings.ReplaceAll(text, ",", "."))
	if m == "" {
		return 0, ErrNoNumber
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, ErrNoNumber
	}
	return v, nil
}
