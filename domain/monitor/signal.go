package monitor

import "sync"

// Signal is a one-shot cancellation flag safe for concurrent use. Set is
// idempotent and Done returns a channel that closes on the first Set, so a
// waiter inside a timed select wakes immediately instead of polling.
type Signal struct {
	once sync.Once
	ch   chan struct{}
}

// NewSignal returns an unset signal.
func NewSignal() *Signal { return &Signal{ch: make(chan struct{})} }

// Set marks the signal. Safe to call from any goroutine, any number of times.
func (s *Signal) Set() { s.once.Do(func() { close(s.ch) }) }

// IsSet reports whether Set has been called.
func (s *Signal) IsSet() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

// Done returns a channel closed once the signal is set.
func (s *Signal) Done() <-chan struct{} { return s.ch }
