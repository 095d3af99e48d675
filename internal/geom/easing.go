package geom

// CubicBezier is a CSS-style timing curve anchored at (0,0) and (1,1) with
// two control points. X is normalized time, Y is eased progress.
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// Material timing curves used across the indicators.
var (
	// EaseLinear is the identity curve.
	EaseLinear = CubicBezier{0, 0, 1, 1}
	// EaseStandard is the general-purpose Material motion curve.
	EaseStandard = CubicBezier{0.4, 0, 0.2, 1}
	// EaseSettle is the gentler decelerate curve used when a value
	// animation arrives at the maximum.
	EaseSettle = CubicBezier{0.05, 0.7, 0.1, 1}
)

// Ease evaluates the curve at time x in [0, 1], solving the bezier parameter
// with Newton-Raphson and falling back to bisection when the slope is too
// flat for Newton to converge.
func (b CubicBezier) Ease(x float64) float64 {
	x = Clamp(x, 0, 1)
	if x == 0 || x == 1 {
		return x
	}

	t := x
	for i := 0; i < 8; i++ {
		dx := b.sampleX(t) - x
		if dx < 1e-7 && dx > -1e-7 {
			return b.sampleY(t)
		}
		d := b.slopeX(t)
		if d < 1e-6 && d > -1e-6 {
			break
		}
		t -= dx / d
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 32; i++ {
		cx := b.sampleX(t)
		if cx < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return b.sampleY(t)
}

func (b CubicBezier) sampleX(t float64) float64 {
	return bezier1D(b.X1, b.X2, t)
}

func (b CubicBezier) sampleY(t float64) float64 {
	return bezier1D(b.Y1, b.Y2, t)
}

func (b CubicBezier) slopeX(t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*b.X1 + 6*inv*t*(b.X2-b.X1) + 3*t*t*(1-b.X2)
}

func bezier1D(c1, c2, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*c1 + 3*inv*t*t*c2 + t*t*t
}
