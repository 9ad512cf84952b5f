package view

import (
	"fmt"

	"deltamon/domain/ocr"
	"deltamon/ui/images"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// probePreviewW and probePreviewH bound the capture preview inside the dialog.
const (
	probePreviewW = 360
	probePreviewH = 120
)

// ShowProbeDialog opens a modal-ish toplevel presenting the result of a
// test read: raw OCR text, the extracted value and the snapshot paths.
func ShowProbeDialog(probe ocr.RegionProbe) {
	win := App.Toplevel(Borderwidth(2))
	win.WmTitle("Region Test")
	WmAttributes(win.Window, "-topmost", 1)

	row := 0
	addLine := func(text string) {
		lbl := win.Label(Txt(text), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		row++
	}
	if probe.Image != nil {
		png := images.EncodePNG(images.ScaleToFit(probe.Image, probePreviewW, probePreviewH))
		if len(png) > 0 {
			preview := win.Label(Image(NewPhoto(Data(png))), Borderwidth(1), Relief("sunken"))
			Grid(preview, Row(row), Column(0), Padx("0.4m"), Pady("0.3m"))
			row++
		}
	}
	addLine("Raw text: " + probe.RawText)
	if probe.HasValue {
		addLine(fmt.Sprintf("Number: %g", probe.Value))
	} else {
		addLine("Number: <none>")
	}
	if probe.CapturePath != "" {
		addLine("Capture: " + probe.CapturePath)
	}
	if probe.PreprocPath != "" {
		addLine("Preprocessed: " + probe.PreprocPath)
	}
	closeBtn := win.Button(Txt("Close"), Command(func() { Destroy(win) }))
	Grid(closeBtn, Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	Bind(win, "<Escape>", Command(func() { Destroy(win) }))
}
