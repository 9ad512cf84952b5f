package action

import (
	"log/slog"

	"deltamon/domain/monitor"
)

// Actuators bundles the mouse and notifier behind the monitor.Actuator
// contract consumed by the sampler and auto-clicker.
type Actuators struct {
	mouse    *Mouse
	notifier *Notifier
}

// New returns the live actuator set. server may be empty to use the default
// notification endpoint.
func New(server string, logger *slog.Logger) *Actuators {
	return &Actuators{mouse: NewMouse(logger), notifier: NewNotifier(server, logger)}
}

func (a *Actuators) Click(p monitor.Point) bool { return a.mouse.Click(p) }

func (a *Actuators) Notify(topic, message string) { a.notifier.Notify(topic, message) }

var _ monitor.Actuator = (*Actuators)(nil)
