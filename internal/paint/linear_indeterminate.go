package paint

import (
	"math"
	"sort"
	"time"

	"github.com/crestui/crest/internal/geom"
	"github.com/crestui/crest/internal/surface"
)

// cycleLinear is the period of the indeterminate sweep.
const cycleLinear = 2000 * time.Millisecond

// The indeterminate choreography sweeps two lines per cycle. Each line is
// bounded by an eased head and tail position track timed in cycle fractions;
// the head leads its tail, so a line grows in from the left edge, stretches
// across, and drains out the right edge. The second line's head starts after
// the first line has pinned to the right edge, which keeps the two from ever
// overlapping.
type lineTrack struct {
	head, tail timing
}

type timing struct {
	from, to float64
	curve    geom.CubicBezier
}

var indeterminateLines = [2]lineTrack{
	{
		head: timing{0, 0.4167, geom.CubicBezier{X1: 0.2, Y1: 0, X2: 0.8, Y2: 1}},
		tail: timing{0.185, 0.6572, geom.CubicBezier{X1: 0.4, Y1: 0, X2: 1, Y2: 1}},
	},
	{
		head: timing{0.5556, 0.8706, geom.CubicBezier{X1: 0, Y1: 0, X2: 0.65, Y2: 1}},
		tail: timing{0.7039, 1, geom.CubicBezier{X1: 0.1, Y1: 0, X2: 0.45, Y2: 1}},
	},
}

func (tm timing) at(frac float64) float64 {
	return tm.curve.Ease(geom.Clamp((frac-tm.from)/(tm.to-tm.from), 0, 1))
}

// lineSpans returns the active line extents at the given cycle fraction, as
// fractions of the usable width, ordered left to right.
func lineSpans(frac float64) [][2]float64 {
	spans := make([][2]float64, 0, 2)
	for _, lt := range indeterminateLines {
		head := lt.head.at(frac)
		tail := lt.tail.at(frac)
		if head-tail > 1e-4 {
			spans = append(spans, [2]float64{tail, head})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i][0] < spans[j][0] })
	return spans
}

func drawLinearIndeterminate(ctx *surface.Context, f Frame, pal Palette) {
	w, h := ctx.Size()
	cy := h / 2
	edge := f.Stroke / 2
	usable := w - 2*edge
	gap := segmentGap + f.Stroke
	spans := lineSpans(cycleFraction(f.Time, cycleLinear))

	// flat track filling the space around the sweeping lines
	cursor := edge
	for _, s := range spans {
		x0 := edge + float32(s[0])*usable
		if x0-gap-cursor > stubLength {
			ctx.StrokePolyline([]geom.Point{{X: cursor, Y: cy}, {X: x0 - gap, Y: cy}},
				f.Stroke, pal.Track)
		}
		if x1 := edge + float32(s[1])*usable; x1+gap > cursor {
			cursor = x1 + gap
		}
	}
	if w-edge-cursor > stubLength {
		ctx.StrokePolyline([]geom.Point{{X: cursor, Y: cy}, {X: w - edge, Y: cy}},
			f.Stroke, pal.Track)
	}

	for _, s := range spans {
		x0 := edge + float32(s[0])*usable
		x1 := edge + float32(s[1])*usable
		if x1-x0 < stubLength {
			continue
		}
		ctx.StrokePolyline(waveBar(f, x0, x1, cy), f.Stroke, pal.Indicator)
	}
}

// waveBar samples one sweeping line. Unlike the determinate span, the
// envelope tapers along the bar's own extent so both free ends land flat.
func waveBar(f Frame, x0, x1, cy float32) []geom.Point {
	if !f.Wavy || f.Amplitude <= 0 || x1-x0 <= waveStep {
		return []geom.Point{{X: x0, Y: cy}, {X: x1, Y: cy}}
	}
	freq := 2 * math.Pi / f.wavelength()
	tsec := f.Time.Seconds()
	span := float64(x1 - x0)
	pts := make([]geom.Point, 0, int((x1-x0)/waveStep)+2)
	for x := x0; x < x1; x += waveStep {
		amp := float64(f.Amplitude) * geom.AmplitudeEnvelope(float64(x-x0)/span)
		pts = append(pts, wavePoint(x, cy, freq, tsec, amp))
	}
	pts = append(pts, geom.Point{X: x1, Y: cy})
	return pts
}
