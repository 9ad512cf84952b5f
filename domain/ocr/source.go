package ocr

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"deltamon/domain/capture"
	"deltamon/domain/monitor"
)

// Source adapts screen capture plus OCR into a monitor.ValueSource.
type Source struct {
	reader *Reader
	logger *slog.Logger
	grab   func(image.Rectangle) (*image.RGBA, error)
}

// NewSource returns a Source backed by the live screen.
func NewSource(logger *slog.Logger) *Source {
	return &Source{reader: NewReader(logger), logger: logger, grab: capture.GrabRegion}
}

// Read captures the region and extracts a number. Capture or OCR failures
// degrade to a miss so the sampling loop stays alive.
func (s *Source) Read(region monitor.Region) (float64, bool) {
	img, err := s.grab(region.Rect())
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("capture failed", "region", region.String(), "error", err)
		}
		return 0, false
	}
	return s.reader.ExtractNumber(img)
}

// RegionProbe is the result of a one-shot diagnostic read of a region.
type RegionProbe struct {
	RawText     string
	Value       float64
	HasValue    bool
	CapturePath string
	PreprocPath string
	Image       image.Image // raw capture, for an on-screen preview
}

// ProbeRegion captures region once, writes raw and preprocessed snapshots
// under dir and runs OCR, returning the raw text plus any extracted value.
// Snapshot write failures are non-fatal: the probe is a diagnostic aid, not
// part of the sampling loop.
func (s *Source) ProbeRegion(region monitor.Region, dir string) (RegionProbe, error) {
	img, err := s.grab(region.Rect())
	if err != nil {
		return RegionProbe{}, fmt.Errorf("ocr: probe capture: %w", err)
	}
	probe := RegionProbe{Image: img}

	capPath := filepath.Join(dir, "debug_capture.png")
	if err := imaging.Save(img, capPath); err == nil {
		probe.CapturePath = capPath
	} else if s.logger != nil {
		s.logger.Warn("probe snapshot save failed", "path", capPath, "error", err)
	}
	prePath := filepath.Join(dir, "debug_preprocessed.png")
	if err := imaging.Save(Preprocess(img), prePath); err == nil {
		probe.PreprocPath = prePath
	} else if s.logger != nil {
		s.logger.Warn("probe snapshot save failed", "path", prePath, "error", err)
	}

	raw, err := s.reader.RawText(img)
	if err != nil && s.logger != nil {
		s.logger.Warn("probe raw text failed", "error", err)
	}
	probe.RawText = strings.TrimSpace(raw)
	if probe.RawText == "" {
		probe.RawText = "(no text detected)"
	}
	if v, ok := s.reader.ExtractNumber(img); ok {
		probe.Value, probe.HasValue = v, true
	}
	return probe, nil
}

var _ monitor.ValueSource = (*Source)(nil)
