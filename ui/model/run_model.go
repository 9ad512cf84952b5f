package model

import (
	"sync/atomic"
)

// RunModel tracks whether monitoring is active. The zero value is stopped and usable.
// Concurrency-safe via atomic Bool because UI callbacks and presenter ticks may race.
type RunModel struct{ running atomic.Bool }

// Running reports whether monitoring is currently active.
func (m *RunModel) Running() bool {
	if m == nil {
		return false
	}
	return m.running.Load()
}

// SetRunning stores the running flag.
func (m *RunModel) SetRunning(b bool) {
	if m == nil {
		return
	}
	prev := m.running.Load()
	if prev == b { // no change
		return
	}
	m.running.Store(b)
}
