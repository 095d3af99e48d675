package paint

import (
	"math"
	"time"

	"github.com/crestui/crest/internal/geom"
)

// Shared painter tuning, logical pixels unless noted.
const (
	// completeFraction is where progress reads as visually done: segment
	// composition stops and the indicator draws as one unbroken path.
	completeFraction = 0.995

	// segmentGap is the clearance between indicator and track before
	// stroke compensation for the round caps.
	segmentGap = 4

	// stubLength keeps a zero-value indicator visible as a cap-rounded
	// nub instead of vanishing.
	stubLength = 0.5

	// waveStep is the sampling interval along a wavy linear path.
	waveStep = 2

	// defaultWavelength is the crest-to-crest distance when the caller
	// does not configure one.
	defaultWavelength = 40

	// waveSpeed advances wave phase over time, radians per second. One
	// wavelength per second, drifting toward the leading edge.
	waveSpeed = -2 * math.Pi
)

// Frame is the full snapshot a painter needs for one redraw. Painters never
// read widget state directly.
type Frame struct {
	Value         float64 // drawn value, already animated
	Max           float64
	Buffer        float64
	Indeterminate bool
	Wavy          bool
	Stroke        float32
	Amplitude     float32
	Wavelength    float32
	ShowStop      bool
	Time          time.Duration
}

// Fraction returns Value/Max clamped to [0, 1].
func (f Frame) Fraction() float64 {
	if f.Max <= 0 {
		return 0
	}
	return geom.Clamp(f.Value/f.Max, 0, 1)
}

// BufferFraction returns Buffer/Max clamped to [0, 1].
func (f Frame) BufferFraction() float64 {
	if f.Max <= 0 {
		return 0
	}
	return geom.Clamp(f.Buffer/f.Max, 0, 1)
}

func (f Frame) wavelength() float64 {
	if f.Wavelength > 0 {
		return float64(f.Wavelength)
	}
	return defaultWavelength
}

// cycleFraction maps an animation clock onto [0, 1) of the given cycle.
func cycleFraction(t, cycle time.Duration) float64 {
	if cycle <= 0 {
		return 0
	}
	t %= cycle
	if t < 0 {
		t += cycle
	}
	return float64(t) / float64(cycle)
}
