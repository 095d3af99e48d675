package paint

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Blend weights toward the primary color, in Lab space.
const (
	trackBlend  = 0.24
	bufferBlend = 0.45
)

// Palette carries the resolved colors for one redraw.
type Palette struct {
	Indicator color.Color
	Track     color.Color
	Buffer    color.Color
	Stop      color.Color
}

// Derive builds the default palette from the theme's primary and background
// colors. Track and buffer tones are opaque Lab blends of the two; opaque
// tones let the buffer segment paint over the track without the compounding
// a translucent overlay would cause.
func Derive(primary, background color.Color) Palette {
	p, okP := colorful.MakeColor(primary)
	b, okB := colorful.MakeColor(background)
	if !okP || !okB {
		return Palette{Indicator: primary, Track: primary, Buffer: primary, Stop: primary}
	}
	return Palette{
		Indicator: primary,
		Track:     b.BlendLab(p, trackBlend).Clamped(),
		Buffer:    b.BlendLab(p, bufferBlend).Clamped(),
		Stop:      primary,
	}
}
