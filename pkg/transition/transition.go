package transition

import "time"

// Transition describes how a value should move between two states: the
// curve that shapes the motion and how long it takes.
type Transition struct {
	Curve    Curve
	Duration time.Duration
}

// Instant is a zero-duration transition: values snap to their target.
var Instant = Transition{}

// Linear returns a constant-speed transition of the given duration.
func Linear(d time.Duration) Transition {
	return Transition{Curve: CurveLinear, Duration: d}
}

// Ease returns a smoothstep transition of the given duration.
func Ease(d time.Duration) Transition {
	return Transition{Curve: CurveEase, Duration: d}
}

// With returns a transition with the given curve and duration.
func With(c Curve, d time.Duration) Transition {
	return Transition{Curve: c, Duration: d}
}

// Lerp interpolates between start and end; x is the curve-shaped
// position, normally in [0, 1] but curves may overshoot it.
type Lerp[T any] func(start, end T, x float32) T

// Transitioned holds a value that moves smoothly toward a target.
// Begin starts a transition and Animate advances it; Value always
// returns the current, possibly in-flight, value.
type Transitioned[T comparable] struct {
	transition Transition
	lerp       Lerp[T]
	current    T
	start      T
	end        T
	elapsed    time.Duration
}

// New returns a Transitioned resting at value.
func New[T comparable](value T, tr Transition, lerp Lerp[T]) Transitioned[T] {
	return Transitioned[T]{
		transition: tr,
		lerp:       lerp,
		current:    value,
		start:      value,
		end:        value,
	}
}

// Value returns the current, possibly mid-transition, value.
func (t *Transitioned[T]) Value() T { return t.current }

// Target returns the value the transition is heading toward.
func (t *Transitioned[T]) Target() T { return t.end }

// IsComplete reports whether the value has reached its target.
func (t *Transitioned[T]) IsComplete() bool { return t.current == t.end }

// SetTransition replaces the curve and duration used by future Begin
// calls. The transition in flight, if any, is not affected.
func (t *Transitioned[T]) SetTransition(tr Transition) { t.transition = tr }

// Set snaps the value to v immediately, cancelling any transition in
// flight.
func (t *Transitioned[T]) Set(v T) {
	t.current = v
	t.start = v
	t.end = v
	t.elapsed = 0
}

// Begin starts a transition from the current value toward target. It
// reports whether a new transition was started: beginning a transition
// toward the current target is a no-op, and a zero duration snaps
// immediately without starting one.
func (t *Transitioned[T]) Begin(target T) bool {
	if target == t.end {
		return false
	}
	if t.transition.Duration <= 0 {
		t.Set(target)
		return false
	}
	t.start = t.current
	t.end = target
	t.elapsed = 0
	return true
}

// Animate advances the transition by dt and reports whether it is
// still in flight afterwards.
func (t *Transitioned[T]) Animate(dt time.Duration) bool {
	if t.current == t.end {
		return false
	}
	t.elapsed += dt
	if t.elapsed >= t.transition.Duration {
		t.current = t.end
		t.start = t.end
		t.elapsed = 0
		return false
	}
	x := float32(t.elapsed) / float32(t.transition.Duration)
	t.current = t.lerp(t.start, t.end, t.transition.Curve.Apply(x))
	return true
}
