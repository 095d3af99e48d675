package progress

import (
	"image/color"
	"time"
)

// Animation and geometry defaults.
const (
	defaultTransition = 500 * time.Millisecond
	defaultDiameter   = 48
	defaultAmplitude  = 3
	minBarLength      = 48

	// circularAmpRatio scales the wave amplitude of a dial with its
	// radius, so small and large dials ripple in proportion.
	circularAmpRatio = 0.08
)

// Config sets the initial state of a Linear or Circular indicator. The zero
// value is a flat, thin, determinate indicator at value 0 of max 1. Fields
// are consumed by the constructors; later changes go through the widget
// setters.
type Config struct {
	Value  float64
	Max    float64 // defaults to 1 when zero or invalid
	Buffer float64 // linear only

	Indeterminate bool
	Shape         Shape
	Thickness     Thickness
	Diameter      float32 // circular only, clamped to [24, 240], default 48

	// HideStopIndicator suppresses the stop dot a determinate linear bar
	// draws at its terminal end.
	HideStopIndicator bool

	// WaveAmplitude overrides the wavy crest height in logical pixels.
	// Zero keeps the default: 3px for bars, 8% of the radius for dials.
	WaveAmplitude float32
	// Wavelength overrides the crest-to-crest distance, default 40px.
	Wavelength float32

	// TransitionDuration is the value animation length. Zero keeps the
	// 500ms default; a negative duration disables the animation so
	// SetValue repaints at the target immediately.
	TransitionDuration time.Duration

	// Explicit colors. Nil fields derive from the theme: the indicator
	// uses the primary color, track and buffer are Lab blends of primary
	// over background.
	IndicatorColor color.Color
	TrackColor     color.Color
	BufferColor    color.Color
}
