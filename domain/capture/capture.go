// Package capture grabs raster images of the screen. Calls are synchronous
// and side-effect free; the caller owns the returned image.
package capture

import (
	"fmt"
	"image"

	"github.com/vova616/screenshot"
)

// Grab captures the full screen.
func Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("capture: full screen: %w", err)
	}
	return img, nil
}

// GrabRegion captures the given screen rectangle.
func GrabRegion(r image.Rectangle) (*image.RGBA, error) {
	if r.Empty() {
		return nil, fmt.Errorf("capture: empty region %v", r)
	}
	img, err := screenshot.CaptureRect(r)
	if err != nil {
		return nil, fmt.Errorf("capture: rect %v: %w", r, err)
	}
	return img, nil
}
