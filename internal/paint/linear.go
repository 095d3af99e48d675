package paint

import (
	"math"

	"github.com/crestui/crest/internal/geom"
	"github.com/crestui/crest/internal/surface"
)

// DrawLinear fully repaints a horizontal indicator into ctx. Layering order
// is track, indicator, buffer, stop dot.
func DrawLinear(ctx *surface.Context, f Frame, pal Palette) {
	ctx.Clear()
	if f.Indeterminate {
		drawLinearIndeterminate(ctx, f, pal)
		return
	}
	drawLinearDeterminate(ctx, f, pal)
}

func drawLinearDeterminate(ctx *surface.Context, f Frame, pal Palette) {
	w, h := ctx.Size()
	cy := h / 2
	edge := f.Stroke / 2
	frac := f.Fraction()

	if frac >= completeFraction {
		// one unbroken line; composing segments here would leave a
		// rounding seam, and the stop dot has nothing left to mark
		ctx.StrokePolyline([]geom.Point{{X: edge, Y: cy}, {X: w - edge, Y: cy}},
			f.Stroke, pal.Indicator)
		return
	}

	usable := w - 2*edge
	end := edge + float32(frac)*usable
	if end < edge+stubLength {
		end = edge + stubLength
	}
	gap := segmentGap + f.Stroke

	if start := end + gap; start < w-edge {
		ctx.StrokePolyline([]geom.Point{{X: start, Y: cy}, {X: w - edge, Y: cy}},
			f.Stroke, pal.Track)
	}

	ctx.StrokePolyline(waveSpan(f, edge, end, cy, frac), f.Stroke, pal.Indicator)

	if bf := f.BufferFraction(); bf > frac {
		bufEnd := edge + float32(bf)*usable
		if start := end + gap; start < bufEnd {
			ctx.StrokePolyline([]geom.Point{{X: start, Y: cy}, {X: bufEnd, Y: cy}},
				f.Stroke, pal.Buffer)
		}
	}

	if f.ShowStop {
		ctx.FillDot(w-edge, cy, f.Stroke/2, pal.Stop)
	}
}

// waveSpan samples the indicator path from x0 to x1. The whole span shares
// one envelope value driven by the progress fraction, so the ripple fades in
// near 0% and settles flat approaching 100%. Flat shapes and spans too short
// to ripple collapse to a two-point line.
func waveSpan(f Frame, x0, x1, cy float32, envelopeFrac float64) []geom.Point {
	amp := float64(f.Amplitude) * geom.AmplitudeEnvelope(envelopeFrac)
	if !f.Wavy || amp <= 0 || x1-x0 <= waveStep {
		return []geom.Point{{X: x0, Y: cy}, {X: x1, Y: cy}}
	}
	freq := 2 * math.Pi / f.wavelength()
	tsec := f.Time.Seconds()
	pts := make([]geom.Point, 0, int((x1-x0)/waveStep)+2)
	for x := x0; x < x1; x += waveStep {
		pts = append(pts, wavePoint(x, cy, freq, tsec, amp))
	}
	pts = append(pts, wavePoint(x1, cy, freq, tsec, amp))
	return pts
}

func wavePoint(x, cy float32, freq, tsec, amp float64) geom.Point {
	dy := geom.WaveOffset(float64(x), freq, tsec, waveSpeed, amp, geom.WavePower)
	return geom.Point{X: x, Y: cy + float32(dy)}
}
