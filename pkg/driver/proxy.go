// Package driver carries events between the platform driver and the
// engine thread.
package driver

import "sync"

// Waker is called from any goroutine to wake the engine's event loop
// so it drains the proxy. Implementations must be safe for concurrent
// use; a typical waker posts a user event to the windowing system.
type Waker func()

// Proxy queues events from arbitrary goroutines for the engine thread.
// Send may be called concurrently; Drain must only be called from the
// engine thread. The waker fires once per batch: the first Send after
// a Drain wakes the loop, later Sends pile onto the same batch.
type Proxy[E any] struct {
	mu     sync.Mutex
	queue  []E
	waker  Waker
	asleep bool
}

// NewProxy returns a proxy that calls wake when a new batch of events
// arrives. A nil waker is allowed; Drain then relies on being polled.
func NewProxy[E any](wake Waker) *Proxy[E] {
	return &Proxy[E]{waker: wake, asleep: true}
}

// Send queues an event for the engine thread and wakes it if this is
// the first event since the last drain.
func (p *Proxy[E]) Send(event E) {
	p.mu.Lock()
	p.queue = append(p.queue, event)
	wake := p.asleep
	p.asleep = false
	p.mu.Unlock()

	if wake && p.waker != nil {
		p.waker()
	}
}

// Drain returns all queued events in the order they were sent and
// re-arms the waker for the next batch.
func (p *Proxy[E]) Drain() []E {
	p.mu.Lock()
	events := p.queue
	p.queue = nil
	p.asleep = true
	p.mu.Unlock()
	return events
}

// Pending reports whether events are waiting to be drained.
func (p *Proxy[E]) Pending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue) > 0
}
