package monitor

import (
	"errors"
	"fmt"
	"time"
)

const (
	// MaxInterval caps the sampling cadence.
	MaxInterval = 60 * time.Second
	// MaxAutoClickInterval caps the auto-clicker cadence.
	MaxAutoClickInterval = 300 * time.Second

	// minSleep keeps a slow source from collapsing the tick wait to a busy loop.
	minSleep = 10 * time.Millisecond
)

// Options configures one Sampler run. Validate rejects bad configuration
// before the loop starts; the loop itself never sees an invalid Options.
type Options struct {
	Region   Region
	Interval time.Duration
	Policy   ThresholdPolicy

	// ClickOnWin requests a click at ClickTarget as part of the trigger
	// pipeline. When set, ClickTarget must be non-nil.
	ClickOnWin  bool
	ClickTarget *Point

	// NotifyTopic enables a push notification on trigger; empty disables it.
	NotifyTopic   string
	NotifyMessage string

	// AutoClickStop, when non-nil, is set on trigger before any actuator
	// call so the concurrent auto-clicker cannot schedule another click
	// once the win is being handled.
	AutoClickStop *Signal
}

// Validate checks the configuration surface. It returns the first problem
// found; a nil result means the sampler may run.
func (o Options) Validate() error {
	if !o.Region.Valid() {
		return fmt.Errorf("monitor: invalid region %s", o.Region)
	}
	if o.Interval <= 0 || o.Interval > MaxInterval {
		return fmt.Errorf("monitor: interval %v out of range (0, %v]", o.Interval, MaxInterval)
	}
	if o.Policy.Win < 0 {
		return fmt.Errorf("monitor: win %v must be >= 0", o.Policy.Win)
	}
	if o.Policy.MinBaseline < 0 {
		return fmt.Errorf("monitor: min baseline %v must be >= 0", o.Policy.MinBaseline)
	}
	if o.Policy.MaxDelta != 0 && o.Policy.MaxDelta < o.Policy.Win {
		return fmt.Errorf("monitor: max delta %v must be >= win %v", o.Policy.MaxDelta, o.Policy.Win)
	}
	if o.ClickOnWin && o.ClickTarget == nil {
		return errors.New("monitor: click on win enabled but no click target set")
	}
	return nil
}
