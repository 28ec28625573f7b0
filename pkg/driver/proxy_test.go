package driver

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestProxyOrdering(t *testing.T) {
	p := NewProxy[int](nil)
	for i := 0; i < 10; i++ {
		p.Send(i)
	}
	got := p.Drain()
	if len(got) != 10 {
		t.Fatalf("Drain returned %d events, want 10", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("event %d = %d, want %d", i, v, i)
		}
	}
}

func TestProxyWakesOncePerBatch(t *testing.T) {
	var wakes atomic.Int32
	p := NewProxy[string](func() { wakes.Add(1) })

	p.Send("a")
	p.Send("b")
	p.Send("c")
	if got := wakes.Load(); got != 1 {
		t.Fatalf("wakes = %d after one batch, want 1", got)
	}

	p.Drain()
	p.Send("d")
	if got := wakes.Load(); got != 2 {
		t.Fatalf("wakes = %d after second batch, want 2", got)
	}
}

func TestProxyDrainEmpty(t *testing.T) {
	p := NewProxy[int](nil)
	if got := p.Drain(); len(got) != 0 {
		t.Fatalf("Drain on empty proxy returned %d events", len(got))
	}
	if p.Pending() {
		t.Fatal("Pending should be false on empty proxy")
	}
}

func TestProxyConcurrentSend(t *testing.T) {
	p := NewProxy[int](func() {})
	var wg sync.WaitGroup
	const senders = 8
	const perSender = 100
	for s := 0; s < senders; s++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perSender; i++ {
				p.Send(i)
			}
		}()
	}
	wg.Wait()

	if got := len(p.Drain()); got != senders*perSender {
		t.Fatalf("drained %d events, want %d", got, senders*perSender)
	}
}
