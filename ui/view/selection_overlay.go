package view

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"deltamon/domain/monitor"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// RegionSelector manages the overlay window used to pick the monitored
// screen rectangle. The user positions and resizes a translucent toplevel
// over the number to watch and confirms with Enter.
type RegionSelector interface {
	OpenOrFocus()
}

type regionSelector struct {
	logger     *slog.Logger
	initial    monitor.Region
	onSelected func(monitor.Region)
	win        *ToplevelWidget
}

// NewRegionSelector creates the overlay manager. onSelected runs on the UI
// thread when the user confirms a valid rectangle.
func NewRegionSelector(initial monitor.Region, onSelected func(monitor.Region), logger *slog.Logger) RegionSelector {
	return &regionSelector{logger: logger, initial: initial, onSelected: onSelected}
}

func (v *regionSelector) OpenOrFocus() {
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	win := App.Toplevel(Borderwidth(2), Background("#008080"))
	win.WmTitle("Select Region")
	v.win = win
	initW, initH, x, y := 300, 120, 200, 200
	if v.initial.Valid() {
		initW, initH = v.initial.Width, v.initial.Height
		x, y = v.initial.Left, v.initial.Top
	}
	WmGeometry(win.Window, fmt.Sprintf("%dx%d+%d+%d", initW, initH, x, y))
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-alpha", 0.45)
	hint := win.Label(Txt("Move/resize over the number, then Enter"), Background("#008080"), Foreground("white"))
	Grid(hint, Row(0), Column(0), Sticky("we"))
	GridRowConfigure(win.Window, 1, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(1))
	controls := win.Frame()
	Grid(controls, Row(2), Column(0), Sticky("we"))
	confirm := win.Button(Txt("Confirm [Enter]"), Command(v.confirm))
	Grid(confirm, In(controls), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	cancel := win.Button(Txt("Cancel [Esc]"), Command(v.cancel))
	Grid(cancel, In(controls), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	Bind(win, "<Return>", Command(v.confirm))
	Bind(win, "<Escape>", Command(v.cancel))
}

func (v *regionSelector) confirm() {
	if v.win == nil {
		return
	}
	geom := WmGeometry(v.win.Window)
	rect, ok := parseGeometry(geom)
	v.destroy()
	if !ok {
		if v.logger != nil {
			v.logger.Warn("region geometry parse failed", "geometry", geom)
		}
		return
	}
	if v.onSelected != nil {
		v.onSelected(rect)
	}
}

func (v *regionSelector) cancel() { v.destroy() }

func (v *regionSelector) destroy() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
	}
}

// PointSelector manages the small crosshair window used to pick a click
// target. The window center is the selected coordinate.
type PointSelector interface {
	OpenOrFocus()
}

type pointSelector struct {
	logger     *slog.Logger
	title      string
	initial    monitor.Point
	hasInitial bool
	onSelected func(monitor.Point)
	win        *ToplevelWidget
}

// NewPointSelector creates a picker titled title. onSelected runs on the UI
// thread with the confirmed point.
func NewPointSelector(title string, initial monitor.Point, hasInitial bool, onSelected func(monitor.Point), logger *slog.Logger) PointSelector {
	return &pointSelector{logger: logger, title: title, initial: initial, hasInitial: hasInitial, onSelected: onSelected}
}

// pickerSize is the fixed edge length of the point picker window.
const pickerSize = 60

func (v *pointSelector) OpenOrFocus() {
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	win := App.Toplevel(Borderwidth(2), Background("#aa3333"))
	win.WmTitle(v.title)
	v.win = win
	x, y := 400, 400
	if v.hasInitial {
		x, y = v.initial.X-pickerSize/2, v.initial.Y-pickerSize/2
	}
	WmGeometry(win.Window, fmt.Sprintf("%dx%d+%d+%d", pickerSize, pickerSize, x, y))
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-alpha", 0.6)
	mark := win.Label(Txt("+"), Background("#aa3333"), Foreground("white"))
	Grid(mark, Row(0), Column(0))
	GridRowConfigure(win.Window, 0, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(1))
	Bind(win, "<Return>", Command(v.confirm))
	Bind(win, "<Escape>", Command(v.cancel))
}

func (v *pointSelector) confirm() {
	if v.win == nil {
		return
	}
	geom := WmGeometry(v.win.Window)
	rect, ok := parseGeometry(geom)
	v.destroy()
	if !ok {
		if v.logger != nil {
			v.logger.Warn("point geometry parse failed", "geometry", geom)
		}
		return
	}
	pt := monitor.Point{X: rect.Left + rect.Width/2, Y: rect.Top + rect.Height/2}
	if v.onSelected != nil {
		v.onSelected(pt)
	}
}

func (v *pointSelector) cancel() { v.destroy() }

func (v *pointSelector) destroy() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
	}
}

// geomRe matches window geometry strings in the format "WIDTHxHEIGHT+X+Y".
var geomRe = regexp.MustCompile(`^(\d+)x(\d+)\+(-?\d+)\+(-?\d+)$`)

// parseGeometry parses a Tk geometry string into a monitor.Region.
func parseGeometry(g string) (monitor.Region, bool) {
	g = strings.TrimSpace(g)
	m := geomRe.FindStringSubmatch(g)
	if len(m) != 5 {
		return monitor.Region{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, _ := strconv.Atoi(m[3])
	y, _ := strconv.Atoi(m[4])
	if w <= 0 || h <= 0 || x < 0 || y < 0 {
		return monitor.Region{}, false
	}
	return monitor.Region{Left: x, Top: y, Width: w, Height: h}, true
}
