package paint

import (
	"math"

	"github.com/crestui/crest/internal/geom"
	"github.com/crestui/crest/internal/surface"
)

const (
	// startAngle puts 0% at 12 o'clock; sweeps run clockwise.
	startAngle = -math.Pi / 2

	// minSweep keeps a zero-value arc visible, 0.1% of the circle.
	minSweep = 0.001 * 2 * math.Pi

	// closeStart is the fraction where the 12 o'clock notch begins easing
	// shut so a full dial reads as an unbroken ring.
	closeStart = 0.99

	// minWaveCount is the fewest crests a wavy dial carries.
	minWaveCount = 3
)

// DrawCircular fully repaints a dial indicator into ctx.
func DrawCircular(ctx *surface.Context, f Frame, pal Palette) {
	ctx.Clear()
	if f.Indeterminate {
		drawCircularIndeterminate(ctx, f, pal)
		return
	}
	drawCircularDeterminate(ctx, f, pal)
}

// dialGeometry derives the arc center and radius from the canvas, leaving
// room for the stroke and any wave crests.
func dialGeometry(ctx *surface.Context, f Frame) (cx, cy, r float64) {
	w, h := ctx.Size()
	cx, cy = float64(w)/2, float64(h)/2
	side := float64(w)
	if h < w {
		side = float64(h)
	}
	r = (side - 2*float64(f.Amplitude) - float64(f.Stroke)) / 2
	if r < 1 {
		r = 1
	}
	return cx, cy, r
}

func drawCircularDeterminate(ctx *surface.Context, f Frame, pal Palette) {
	cx, cy, r := dialGeometry(ctx, f)
	frac := f.Fraction()
	full := 2 * math.Pi

	gapA := gapAngle(float64(f.Stroke), r)
	if frac > closeStart {
		gapA *= 1 - geom.EaseStandard.Ease((frac-closeStart)/(1-closeStart))
	}

	sweep := frac * (full - 2*gapA)
	if sweep < minSweep {
		sweep = minSweep
	}

	if frac >= completeFraction && gapA <= 1e-4 {
		ctx.StrokePolyline(indicatorArc(f, cx, cy, r, startAngle, full, frac),
			f.Stroke, pal.Indicator)
		return
	}

	if trackSweep := full - sweep - 2*gapA; trackSweep > 0 {
		ctx.StrokePolyline(arcPath(cx, cy, r, startAngle+sweep+gapA, trackSweep),
			f.Stroke, pal.Track)
	}
	ctx.StrokePolyline(indicatorArc(f, cx, cy, r, startAngle, sweep, frac),
		f.Stroke, pal.Indicator)
}

// gapAngle converts the pixel clearance between arc endpoints into an angle,
// compensating for the round caps that extend half a stroke past each end.
func gapAngle(stroke, r float64) float64 {
	return (segmentGap + stroke) / r
}

// arcPath flattens a flat arc into a polyline.
func arcPath(cx, cy, r, start, sweep float64) []geom.Point {
	steps := geom.ArcSteps(r, sweep)
	pts := make([]geom.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		pts = append(pts, geom.PointOnCircle(cx, cy, r, start+sweep*float64(i)/float64(steps)))
	}
	return pts
}

// indicatorArc flattens the indicator arc, modulating the radius when the
// shape is wavy. The envelope fraction controls overall ripple height; the
// crest count is snapped to a whole number per revolution so a closed ring
// meets itself without a seam.
func indicatorArc(f Frame, cx, cy, r, start, sweep float64, envelopeFrac float64) []geom.Point {
	amp := float64(f.Amplitude) * geom.AmplitudeEnvelope(envelopeFrac)
	if !f.Wavy || amp <= 0 {
		return arcPath(cx, cy, r, start, sweep)
	}
	waves := waveCount(r, f.wavelength())
	tsec := f.Time.Seconds()
	steps := geom.ArcSteps(r, sweep)
	pts := make([]geom.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := start + sweep*float64(i)/float64(steps)
		dr := geom.WaveOffset(a, waves, tsec, waveSpeed, amp, geom.WavePower)
		pts = append(pts, geom.PointOnCircle(cx, cy, r+dr, a))
	}
	return pts
}

func waveCount(r, wavelength float64) float64 {
	n := math.Round(2 * math.Pi * r / wavelength)
	if n < minWaveCount {
		n = minWaveCount
	}
	return n
}
