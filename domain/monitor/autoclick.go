package monitor

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"
)

// AutoClicker clicks a fixed point at a fixed interval until its stop signal
// is set. The first click happens one full interval after Start; click
// failures are swallowed and do not stop the loop.
type AutoClicker struct {
	point    Point
	interval time.Duration
	act      Actuator
	stop     *Signal
	logger   *slog.Logger
}

// NewAutoClicker validates the interval and returns a ready-to-start clicker.
func NewAutoClicker(point Point, interval time.Duration, act Actuator, stop *Signal, logger *slog.Logger) (*AutoClicker, error) {
	if interval <= 0 || interval > MaxAutoClickInterval {
		return nil, fmt.Errorf("monitor: auto-click interval %v out of range (0, %v]", interval, MaxAutoClickInterval)
	}
	if act == nil || stop == nil {
		return nil, errors.New("monitor: auto-clicker needs actuator and stop signal")
	}
	return &AutoClicker{point: point, interval: interval, act: act, stop: stop, logger: logger}, nil
}

// Start launches the clicker goroutine.
func (c *AutoClicker) Start() {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if c.logger != nil {
					c.logger.Error("auto-clicker panic", "error", r, "stack", string(debug.Stack()))
				}
			}
		}()
		c.run()
	}()
}

func (c *AutoClicker) run() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop.Done():
			return
		case <-ticker.C:
			// Re-check: both cases may be ready and select picks at random.
			// A click already in flight when the signal is set may still
			// complete; that race is accepted.
			if c.stop.IsSet() {
				return
			}
			if !c.act.Click(c.point) && c.logger != nil {
				c.logger.Debug("auto-click did not execute", "x", c.point.X, "y", c.point.Y)
			}
		}
	}
}
