package progress

// Shape selects the indicator's stroke treatment.
type Shape string

const (
	// ShapeFlat draws the indicator as a straight or circular stroke.
	ShapeFlat Shape = "flat"
	// ShapeWavy modulates the indicator stroke with a travelling wave.
	// The track is never wavy.
	ShapeWavy Shape = "wavy"
)

// normalizeShape folds unknown values to ShapeFlat so a zero or garbage
// Config field cannot wedge the state machine.
func normalizeShape(s Shape) Shape {
	if s == ShapeWavy {
		return s
	}
	return ShapeFlat
}
