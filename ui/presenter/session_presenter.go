package presenter

import (
	"time"

	"deltamon/ui/model"
)

// RunningModel reports whether monitoring is active.
type RunningModel interface{ Running() bool }

// SessionView displays formatted session durations and reading counters.
type SessionView interface {
	SetSession(session, total time.Duration)
	SetCounts(readings, misses int)
}

// SessionPresenter pushes session durations and counters from the model to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	run  RunningModel
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, run RunningModel, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, run: run, view: view}
}

// Tick updates the presenter: advance the session model and push values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.run == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.run.Running(), now)
	s, t := p.sess.Values()
	p.view.SetSession(s, t)
	p.view.SetCounts(p.sess.Counts())
}
