package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats updates session durations and per-session reading counters.
type SessionStats interface {
	SetSession(session, total time.Duration)
	SetCounts(readings, misses int)
}

type sessionStats struct {
	sessionLbl *LabelWidget
	totalLbl   *LabelWidget
	countsLbl  *LabelWidget
}

// NewSessionStats creates the stats labels inside parent at the given row.
// If parent is nil, labels are positioned relative to the App root.
func NewSessionStats(parent *FrameWidget, row, startCol int) SessionStats {
	s := &sessionStats{
		sessionLbl: Label(Width(14)),
		totalLbl:   Label(Width(14)),
		countsLbl:  Label(Width(18)),
	}
	place := func(w *LabelWidget, col int) {
		if parent != nil {
			Grid(w, In(parent), Row(row), Column(col), Sticky("w"), Padx("0.2m"))
		} else {
			Grid(w, Row(row), Column(col), Sticky("w"), Padx("0.2m"))
		}
	}
	place(s.sessionLbl, startCol)
	place(s.totalLbl, startCol+1)
	place(s.countsLbl, startCol+2)
	s.sessionLbl.Configure(Txt("Session: 00:00"))
	s.totalLbl.Configure(Txt("Total: 00:00"))
	s.countsLbl.Configure(Txt("Readings: 0 (0 miss)"))
	return s
}

// SetSession updates both duration displays.
func (s *sessionStats) SetSession(session, total time.Duration) {
	if s == nil {
		return
	}
	if s.sessionLbl != nil {
		s.sessionLbl.Configure(Txt("Session: " + formatClock(session)))
	}
	if s.totalLbl != nil {
		s.totalLbl.Configure(Txt("Total: " + formatClock(total)))
	}
}

// SetCounts updates the reading counter display.
func (s *sessionStats) SetCounts(readings, misses int) {
	if s == nil || s.countsLbl == nil {
		return
	}
	s.countsLbl.Configure(Txt(fmt.Sprintf("Readings: %d (%d miss)", readings, misses)))
}

func formatClock(d time.Duration) string {
	seconds := int(d.Seconds())
	min, sec := seconds/60, seconds%60
	return fmt.Sprintf("%02d:%02d", min, sec)
}
