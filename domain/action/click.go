// Package action performs the outbound side effects: simulated mouse clicks
// and push notifications. Every call is best-effort; failures are logged
// and swallowed, never propagated.
package action

import (
	"log/slog"

	"github.com/go-vgo/robotgo"

	"deltamon/domain/monitor"
)

// Mouse simulates clicks through the OS input facility.
type Mouse struct {
	logger *slog.Logger
}

// NewMouse returns a click actuator.
func NewMouse(logger *slog.Logger) *Mouse { return &Mouse{logger: logger} }

// Click moves the pointer to p and left-clicks there. It reports false when
// the input call failed; callers get no richer diagnostics than that.
func (m *Mouse) Click(p monitor.Point) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if m.logger != nil {
				m.logger.Warn("click failed", "x", p.X, "y", p.Y, "error", r)
			}
			ok = false
		}
	}()
	robotgo.Move(p.X, p.Y)
	robotgo.Click("left")
	return true
}
