package view

import (
	"fmt"
	"strings"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// logMaxLines caps the readings log so a long run cannot grow the widget
// without bound.
const logMaxLines = 100

// ReadingsLog displays a scrolling log of readings and run events.
type ReadingsLog interface {
	AppendReading(value float64, ok bool)
	AppendLine(text string)
}

type readingsLog struct {
	text  *TextWidget
	lines int
}

// NewReadingsLog creates the log widget at the given grid row.
func NewReadingsLog(row int) ReadingsLog {
	w := Text(Height(8), Width(44), State("disabled"))
	Grid(w, Row(row), Column(0), Columnspan(2), Sticky("nsew"), Padx("0.4m"), Pady("0.3m"))
	return &readingsLog{text: w}
}

func (l *readingsLog) AppendReading(value float64, ok bool) {
	if ok {
		l.AppendLine(fmt.Sprintf("%s  %g", time.Now().Format("15:04:05"), value))
		return
	}
	l.AppendLine(time.Now().Format("15:04:05") + "  (no number)")
}

func (l *readingsLog) AppendLine(text string) {
	if l == nil || l.text == nil {
		return
	}
	func() {
		defer func() { _ = recover() }()
		l.text.Configure(State("normal"))
		l.text.Insert(END, text+"\n")
		l.lines++
		if l.lines > logMaxLines {
			drop := l.lines - logMaxLines
			l.text.Delete("1.0", fmt.Sprintf("%d.0", drop+1))
			l.lines = logMaxLines
		}
		l.text.See(END)
		l.text.Configure(State("disabled"))
	}()
}

// FormatTriggerLine is the log line format for a completed run.
func FormatTriggerLine(previous, current float64, clickRequested, clicked bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TRIGGER %g -> %g", previous, current)
	if clickRequested {
		if clicked {
			b.WriteString(" (clicked)")
		} else {
			b.WriteString(" (click requested but did not execute)")
		}
	}
	return b.String()
}
