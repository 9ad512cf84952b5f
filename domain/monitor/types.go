package monitor

import (
	"fmt"
	"image"
	"time"
)

// Region is the screen rectangle sampled each tick, in global screen pixels.
type Region struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Rect converts the region to an image.Rectangle for capture calls.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Left+r.Width, r.Top+r.Height)
}

// Valid reports whether the region has non-negative origin and positive size.
func (r Region) Valid() bool {
	return r.Left >= 0 && r.Top >= 0 && r.Width > 0 && r.Height > 0
}

func (r Region) String() string {
	return fmt.Sprintf("(%d,%d) %dx%d", r.Left, r.Top, r.Width, r.Height)
}

// Point is a global screen coordinate used for click targets.
type Point struct {
	X int
	Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// ThresholdPolicy decides when two consecutive readings fire the trigger.
// Win is the minimum required increase, MinBaseline gates on the previous
// value, and MaxDelta, when non-zero, rejects increases above it so a
// single garbled OCR spike cannot fire the action.
type ThresholdPolicy struct {
	Win         float64
	MinBaseline float64
	MaxDelta    float64
}

// Evaluate reports whether moving from previous to current satisfies the
// rule. Both window bounds are inclusive.
func (p ThresholdPolicy) Evaluate(previous, current float64) bool {
	if previous < p.MinBaseline {
		return false
	}
	delta := current - previous
	if delta < p.Win {
		return false
	}
	if p.MaxDelta != 0 && delta > p.MaxDelta {
		return false
	}
	return true
}

// Event is the tagged union published on the Feed for the presentation layer.
type Event interface{ isEvent() }

// ReadingEvent reports one extraction attempt. OK is false on a miss
// (capture or OCR produced no number); Value is meaningless then.
type ReadingEvent struct {
	At    time.Time
	Value float64
	OK    bool
}

// TriggerEvent is the terminal event of a run, published at most once.
// ClickedAt is nil when no click was requested or the click did not execute.
type TriggerEvent struct {
	At        time.Time
	Previous  float64
	Current   float64
	ClickedAt *Point
}

func (ReadingEvent) isEvent() {}
func (TriggerEvent) isEvent() {}

// ValueSource produces one best-effort numeric reading for a region.
// Implementations must return ok=false instead of failing when no numeric
// token can be extracted.
type ValueSource interface {
	Read(Region) (value float64, ok bool)
}

// Actuator performs fire-and-forget side effects. Click reports whether the
// click executed; Notify failures are swallowed by the implementation.
type Actuator interface {
	Click(Point) bool
	Notify(topic, message string)
}
