package surface

// Logical sizing bounds shared by the widgets and painters.
const (
	// MinDiameter and MaxDiameter bound a circular indicator's dial.
	MinDiameter = 24
	MaxDiameter = 240

	// FallbackWidth stands in for a linear indicator whose host width
	// measures zero, typically before the first layout pass.
	FallbackWidth = 200
)

// LinearSize returns the logical canvas size for a linear indicator. The
// height reserves headroom above and below the stroke for wave crests.
func LinearSize(measuredW, stroke, amplitude float32) (w, h float32) {
	if measuredW <= 0 {
		measuredW = FallbackWidth
	}
	return measuredW, stroke + 2*amplitude
}

// CircularSize returns the logical canvas side for a dial of the requested
// diameter plus wave-crest margin, together with the clamped diameter.
func CircularSize(diameter, amplitude float32) (side, clamped float32) {
	clamped = ClampDiameter(diameter)
	return clamped + 2*amplitude, clamped
}

// ClampDiameter bounds a requested dial diameter to the supported range.
// NaN resolves to the minimum.
func ClampDiameter(d float32) float32 {
	if d != d || d < MinDiameter {
		return MinDiameter
	}
	if d > MaxDiameter {
		return MaxDiameter
	}
	return d
}
