package progress

// Stroke widths in logical pixels.
const (
	strokeThin  = 4
	strokeThick = 8
	minStroke   = 1
	maxStroke   = 64
)

const (
	presetThin   = "thin"
	presetThick  = "thick"
	presetPixels = "pixels"
)

// Thickness is either a named preset or an explicit stroke width. The zero
// value is Thin.
type Thickness struct {
	preset string
	px     float32
}

// Thin is the default 4px stroke.
func Thin() Thickness { return Thickness{preset: presetThin} }

// Thick is the emphasized 8px stroke.
func Thick() Thickness { return Thickness{preset: presetThick} }

// Pixels requests an explicit stroke width. Widths outside [1, 64] and
// non-finite values clamp to the nearest bound.
func Pixels(px float32) Thickness { return Thickness{preset: presetPixels, px: px} }

// stroke resolves the tag to a usable width.
func (t Thickness) stroke() float32 {
	switch t.preset {
	case presetThick:
		return strokeThick
	case presetPixels:
		px := t.px
		if px != px || px < minStroke { // NaN and -Inf land here
			return minStroke
		}
		if px > maxStroke {
			return maxStroke
		}
		return px
	}
	return strokeThin
}
