package monitor

// feedCapacity bounds the queue. The producer drops the oldest pending event
// instead of blocking when the consumer falls behind, so the sampler cadence
// is never coupled to UI redraw speed.
const feedCapacity = 256

// Feed is the ordered event queue between the sampler goroutine and the UI
// thread. The producer never blocks; the consumer polls with TryNext from
// the Tk after-loop.
type Feed struct {
	ch chan Event
}

// NewFeed returns an empty feed.
func NewFeed() *Feed { return &Feed{ch: make(chan Event, feedCapacity)} }

// Publish enqueues ev. When the queue is full the oldest pending event is
// discarded to make room, so a terminal trigger can always be enqueued.
func (f *Feed) Publish(ev Event) {
	for {
		select {
		case f.ch <- ev:
			return
		default:
		}
		select {
		case <-f.ch:
		default:
		}
	}
}

// TryNext returns the next pending event without blocking.
func (f *Feed) TryNext() (Event, bool) {
	select {
	case ev := <-f.ch:
		return ev, true
	default:
		return nil, false
	}
}
