package view

import (
	"fmt"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// ShowTriggerAlert opens a topmost dialog announcing the win with previous,
// current and change values, plus the click outcome when one was requested.
func ShowTriggerAlert(previous, current float64, clickRequested, clicked bool) {
	win := App.Toplevel(Borderwidth(2))
	win.WmTitle("Threshold Reached")
	WmAttributes(win.Window, "-topmost", 1)

	row := 0
	addLine := func(text string) {
		lbl := win.Label(Txt(text), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		row++
	}
	addLine(fmt.Sprintf("Previous: %g", previous))
	addLine(fmt.Sprintf("Current: %g", current))
	addLine(fmt.Sprintf("Change: +%g", current-previous))
	if clickRequested {
		if clicked {
			addLine("Click executed")
		} else {
			addLine("Click requested but did not execute")
		}
	}
	closeBtn := win.Button(Txt("OK"), Command(func() { Destroy(win) }))
	Grid(closeBtn, Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	Bind(win, "<Return>", Command(func() { Destroy(win) }))
	Bind(win, "<Escape>", Command(func() { Destroy(win) }))
}
