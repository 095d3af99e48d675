package geom

import "math"

// arcChord is the target polyline chord length in logical pixels when
// flattening an arc. Shorter chords track the circle more closely at the
// cost of more stroke segments.
const arcChord = 1.5

// PointOnCircle returns the point at the given angle (radians, 0 at
// 3 o'clock, increasing clockwise in screen space) on the circle around
// (cx, cy).
func PointOnCircle(cx, cy, r, angle float64) Point {
	return Point{
		X: float32(cx + r*math.Cos(angle)),
		Y: float32(cy + r*math.Sin(angle)),
	}
}

// ArcSteps returns how many segments are needed to flatten an arc of the
// given radius and sweep (radians) into a smooth polyline.
func ArcSteps(r, sweep float64) int {
	if r <= 0 || sweep == 0 {
		return 1
	}
	n := int(math.Ceil(math.Abs(sweep) * r / arcChord))
	if n < 2 {
		n = 2
	}
	return n
}
