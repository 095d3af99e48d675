package geom

import "math"

// Wave shaping parameters shared by the linear and circular indicators.
const (
	// WavePower is the exponent applied to the sine term. Values below 1
	// widen the crests so the ripple reads as soft bumps rather than a
	// sharp sinusoid.
	WavePower = 0.7

	// AmplitudeRampIn is the path fraction by which the wave reaches full
	// height starting from a flat line at 0.
	AmplitudeRampIn = 0.03

	// AmplitudeRampOut is the path fraction at which the wave starts
	// flattening back out toward the end.
	AmplitudeRampOut = 0.97
)

// Point is a position in logical pixels.
type Point struct {
	X, Y float32
}

// WaveOffset returns the signed displacement of a wavy indicator at the
// given position along its path. The phase advances with both position and
// time, so a fixed position drifts as the clock runs:
//
//	phase = position*frequency + time*speed
//	offset = sign(sin(phase)) * |sin(phase)|^power * amplitude
func WaveOffset(position, frequency, time, speed, amplitude, power float64) float64 {
	phase := position*frequency + time*speed
	s := math.Sin(phase)
	if s == 0 || amplitude == 0 {
		return 0
	}
	return math.Copysign(math.Pow(math.Abs(s), power), s) * amplitude
}

// AmplitudeEnvelope scales wave amplitude by how far along the path a point
// sits. It is 0 at both ends and 1 through the mid-range, with smoothstep
// ramps across the first and last few percent so wave crests never collide
// with the rounded end caps.
func AmplitudeEnvelope(fraction float64) float64 {
	switch {
	case fraction <= 0 || fraction >= 1:
		return 0
	case fraction < AmplitudeRampIn:
		return Smoothstep(fraction / AmplitudeRampIn)
	case fraction > AmplitudeRampOut:
		return Smoothstep((1 - fraction) / (1 - AmplitudeRampOut))
	default:
		return 1
	}
}

// Smoothstep is the standard cubic ease 3t²-2t³, clamped to [0, 1].
func Smoothstep(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}

// Clamp bounds v to [lo, hi]. NaN collapses to lo so malformed input can
// never leak into drawing code.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
