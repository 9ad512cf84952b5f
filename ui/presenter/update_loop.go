package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It drains monitor events and advances the session display, then invokes a
// scheduler callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Monitor  *MonitorPresenter
	Session  *SessionPresenter
	Schedule func()
}

func NewLoop(mon *MonitorPresenter, sess *SessionPresenter, schedule func()) *Loop {
	return &Loop{Monitor: mon, Session: sess, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	// Drain events first so counters are current when the session view updates.
	if l.Monitor != nil {
		l.Monitor.ProcessEvents()
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
