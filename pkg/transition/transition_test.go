package transition

import (
	"testing"
	"time"

	"github.com/go-loom/loom/pkg/geometry"
)

func TestBeginTowardCurrentTargetIsNoOp(t *testing.T) {
	tr := Float(1, Linear(100*time.Millisecond))
	if tr.Begin(1) {
		t.Fatalf("Begin toward resting value should not start a transition")
	}
	tr.Begin(2)
	tr.Animate(50 * time.Millisecond)
	if tr.Begin(2) {
		t.Fatalf("Begin toward in-flight target should not restart")
	}
	if got := tr.Value(); got != 1.5 {
		t.Fatalf("Value = %v, want 1.5", got)
	}
}

func TestZeroDurationSnaps(t *testing.T) {
	tr := Float(0, Instant)
	if tr.Begin(5) {
		t.Fatalf("zero-duration Begin should not report a transition")
	}
	if tr.Value() != 5 || !tr.IsComplete() {
		t.Fatalf("Value = %v, IsComplete = %v; want 5, true", tr.Value(), tr.IsComplete())
	}
}

func TestAnimateCompletesAndClamps(t *testing.T) {
	tr := Float(0, Linear(100*time.Millisecond))
	tr.Begin(10)
	if !tr.Animate(60 * time.Millisecond) {
		t.Fatalf("transition should still be in flight at 60ms")
	}
	if got := tr.Value(); got != 6 {
		t.Fatalf("Value = %v, want 6", got)
	}
	if tr.Animate(60 * time.Millisecond) {
		t.Fatalf("transition should complete past its duration")
	}
	if tr.Value() != 10 || !tr.IsComplete() {
		t.Fatalf("Value = %v after completion, want 10", tr.Value())
	}
}

func TestSetCancelsInFlight(t *testing.T) {
	tr := Float(0, Linear(100*time.Millisecond))
	tr.Begin(10)
	tr.Animate(50 * time.Millisecond)
	tr.Set(3)
	if tr.Value() != 3 || tr.Target() != 3 || !tr.IsComplete() {
		t.Fatalf("Set should snap value and target: value=%v target=%v", tr.Value(), tr.Target())
	}
	if tr.Animate(10 * time.Millisecond) {
		t.Fatalf("Animate after Set should report complete")
	}
}

func TestRetargetStartsFromCurrent(t *testing.T) {
	tr := Float(0, Linear(100*time.Millisecond))
	tr.Begin(10)
	tr.Animate(50 * time.Millisecond)
	tr.Begin(0)
	tr.Animate(50 * time.Millisecond)
	if got := tr.Value(); got != 2.5 {
		t.Fatalf("Value = %v, want 2.5 (halfway from 5 back to 0)", got)
	}
}

func TestEaseCurveEndpoints(t *testing.T) {
	for _, c := range []Curve{CurveLinear, CurveEase, CurveElasticIn, CurveElasticOut, CurveBackIn, CurveBackOut, CurveBack} {
		if got := c.Apply(0); got != 0 {
			t.Errorf("%v.Apply(0) = %v, want 0", c, got)
		}
		if got := c.Apply(1); got < 0.999 || got > 1.001 {
			t.Errorf("%v.Apply(1) = %v, want 1", c, got)
		}
	}
	if got := CurveEase.Apply(0.5); got != 0.5 {
		t.Errorf("smoothstep midpoint = %v, want 0.5", got)
	}
}

func TestTransitionedSize(t *testing.T) {
	tr := SizeOf(geometry.Sz(0, 0), Linear(100*time.Millisecond))
	tr.Begin(geometry.Sz(10, 20))
	tr.Animate(50 * time.Millisecond)
	if got := tr.Value(); got != geometry.Sz(5, 10) {
		t.Fatalf("Value = %v, want 5x10", got)
	}
}
