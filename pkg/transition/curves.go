// Package transition provides time-and-curve-driven interpolation for
// animated widget properties.
package transition

import "github.com/tanema/gween/ease"

// Curve shapes how a transition progresses over time. It maps normalized
// elapsed time in [0, 1] to an interpolation position.
type Curve int

const (
	// CurveLinear is constant-speed progress: f(x) = x.
	CurveLinear Curve = iota

	// CurveEase is smoothstep: f(x) = 3x² - 2x³.
	CurveEase

	// CurveElasticIn overshoots backwards with a spring at the start.
	CurveElasticIn

	// CurveElasticOut springs past the target and settles.
	CurveElasticOut

	// CurveBackIn pulls back slightly before moving.
	CurveBackIn

	// CurveBackOut overshoots slightly and returns.
	CurveBackOut

	// CurveBack combines BackIn and BackOut.
	CurveBack
)

// Apply evaluates the curve at normalized time t.
func (c Curve) Apply(t float32) float32 {
	switch c {
	case CurveEase:
		return t * t * (3 - 2*t)
	case CurveElasticIn:
		return ease.InElastic(t, 0, 1, 1)
	case CurveElasticOut:
		return ease.OutElastic(t, 0, 1, 1)
	case CurveBackIn:
		return ease.InBack(t, 0, 1, 1)
	case CurveBackOut:
		return ease.OutBack(t, 0, 1, 1)
	case CurveBack:
		return ease.InOutBack(t, 0, 1, 1)
	default:
		return t
	}
}

func (c Curve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveEase:
		return "ease"
	case CurveElasticIn:
		return "elastic-in"
	case CurveElasticOut:
		return "elastic-out"
	case CurveBackIn:
		return "back-in"
	case CurveBackOut:
		return "back-out"
	case CurveBack:
		return "back"
	default:
		return "unknown"
	}
}
