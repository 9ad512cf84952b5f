package monitor

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"
)

// Sampler is the polling/decision loop: it reads the region at a fixed
// cadence, compares consecutive readings against the threshold policy and
// fires the one-shot action pipeline (stop auto-clicker, click, notify,
// trigger event) when the rule holds.
//
// A Sampler runs at most once and owns its previous-value state exclusively.
// It terminates either because the rule triggered (terminal TriggerEvent on
// the feed) or because the stop signal was set (no further events). A stop
// signal observed before a tick's evaluation always wins over a would-be
// trigger.
type Sampler struct {
	opts   Options
	src    ValueSource
	act    Actuator
	feed   *Feed
	stop   *Signal
	logger *slog.Logger

	previous float64
	seeded   bool
}

// NewSampler validates opts and returns a ready-to-start sampler.
func NewSampler(opts Options, src ValueSource, act Actuator, feed *Feed, stop *Signal, logger *slog.Logger) (*Sampler, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if src == nil || act == nil || feed == nil || stop == nil {
		return nil, errors.New("monitor: sampler needs source, actuator, feed and stop signal")
	}
	return &Sampler{opts: opts, src: src, act: act, feed: feed, stop: stop, logger: logger}, nil
}

// Start launches the loop goroutine.
func (s *Sampler) Start() {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if s.logger != nil {
					s.logger.Error("sampler panic", "error", r, "stack", string(debug.Stack()))
				}
			}
		}()
		s.run()
	}()
}

func (s *Sampler) run() {
	for {
		if s.stop.IsSet() {
			return
		}
		start := time.Now()
		if done := s.tick(start); done {
			return
		}
		if !s.sleepRemaining(start) {
			return
		}
	}
}

// tick performs one sample/evaluate cycle and reports whether the loop is
// finished. The reading event is published before any trigger evaluation.
func (s *Sampler) tick(start time.Time) bool {
	value, ok := s.read()
	s.feed.Publish(ReadingEvent{At: start, Value: value, OK: ok})
	if !ok {
		// A miss never advances or resets the baseline.
		return false
	}
	if s.seeded && s.opts.Policy.Evaluate(s.previous, value) {
		s.fire(start, value)
		return true
	}
	// First successful reading only seeds state; later non-triggering
	// readings advance the baseline.
	s.previous = value
	s.seeded = true
	return false
}

// read guards the value source: any panic counts as an ordinary miss so the
// loop stays alive.
func (s *Sampler) read() (value float64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if s.logger != nil {
				s.logger.Warn("value source panic treated as miss", "error", r)
			}
			value, ok = 0, false
		}
	}()
	return s.src.Read(s.opts.Region)
}

// fire runs the trigger pipeline. Ordering matters: the auto-clicker signal
// is set before the click and notification so no further auto-click gets
// scheduled while the win is being handled. Actuator failures never prevent
// the trigger event.
func (s *Sampler) fire(at time.Time, value float64) {
	if s.opts.AutoClickStop != nil {
		s.opts.AutoClickStop.Set()
	}
	var clickedAt *Point
	if s.opts.ClickOnWin && s.opts.ClickTarget != nil {
		pt := *s.opts.ClickTarget
		if s.act.Click(pt) {
			clickedAt = &pt
		}
	}
	if s.opts.NotifyTopic != "" {
		s.act.Notify(s.opts.NotifyTopic, s.notifyText(value))
	}
	if s.logger != nil {
		s.logger.Info("threshold reached",
			"previous", s.previous,
			"current", value,
			"clicked", clickedAt != nil,
		)
	}
	s.feed.Publish(TriggerEvent{At: at, Previous: s.previous, Current: value, ClickedAt: clickedAt})
}

func (s *Sampler) notifyText(value float64) string {
	if s.opts.NotifyMessage != "" {
		return s.opts.NotifyMessage
	}
	return fmt.Sprintf("value changed %g -> %g", s.previous, value)
}

// sleepRemaining waits out the rest of the interval measured from the tick
// start, so the cadence stays interval-accurate even though capture and OCR
// take non-zero time. Returns false when the stop signal fired during the
// wait.
func (s *Sampler) sleepRemaining(start time.Time) bool {
	remaining := s.opts.Interval - time.Since(start)
	if remaining < minSleep {
		remaining = minSleep
	}
	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-s.stop.Done():
		return false
	}
}
