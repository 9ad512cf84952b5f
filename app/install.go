package app

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/disintegration/imaging"
)

const iconSize = 64

// EnsureDesktopEntry installs a launcher entry and icon under the XDG data
// home so the app shows up in desktop menus. Best-effort: any failure is
// logged and startup continues.
func EnsureDesktopEntry(logger *slog.Logger) {
	if runtime.GOOS != "linux" {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		logger.Warn("desktop entry skipped", "error", err)
		return
	}
	iconPath := filepath.Join(xdg.DataHome, "icons", "deltamon.png")
	if err := writeIcon(iconPath); err != nil {
		logger.Warn("icon write failed", "path", iconPath, "error", err)
		iconPath = ""
	}
	entry := "[Desktop Entry]\n" +
		"Type=Application\n" +
		"Name=DeltaMon\n" +
		"Comment=Watch a screen number and act on threshold changes\n" +
		fmt.Sprintf("Exec=%s\n", exe)
	if iconPath != "" {
		entry += fmt.Sprintf("Icon=%s\n", iconPath)
	}
	entry += "Terminal=false\nCategories=Utility;\n"

	desktopPath := filepath.Join(xdg.DataHome, "applications", "deltamon.desktop")
	if existing, err := os.ReadFile(desktopPath); err == nil && string(existing) == entry {
		return
	}
	if err := os.MkdirAll(filepath.Dir(desktopPath), 0o755); err != nil {
		logger.Warn("desktop entry dir failed", "error", err)
		return
	}
	if err := os.WriteFile(desktopPath, []byte(entry), 0o644); err != nil {
		logger.Warn("desktop entry write failed", "path", desktopPath, "error", err)
		return
	}
	logger.Info("desktop entry installed", "path", desktopPath)
}

// writeIcon renders the delta-triangle icon if it is not already present.
func writeIcon(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return imaging.Save(renderIcon(iconSize), path)
}

// renderIcon draws a filled triangle on a transparent square.
func renderIcon(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	fill := color.NRGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	margin := size / 8
	apexX, apexY := size/2, margin
	baseY := size - margin
	for y := apexY; y <= baseY; y++ {
		// Half-width grows linearly from apex to base.
		half := (y - apexY) * (size/2 - margin) / (baseY - apexY)
		for x := apexX - half; x <= apexX+half; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}
	return img
}
