package paint

import (
	"math"
	"time"

	"github.com/crestui/crest/internal/geom"
	"github.com/crestui/crest/internal/surface"
)

// The indeterminate dial follows the Material expand/contract choreography:
// the arc head sweeps out during the first half cycle, the tail chases it
// home during the second, while the whole figure rotates continuously. The
// per-cycle offset makes the wrap seamless: the end-of-cycle start angle
// equals the next cycle's start angle modulo a full turn.
const (
	cycleCircular = 1332 * time.Millisecond
	jumpDegrees   = 290.0
	baseDegrees   = 286.0
	offsetDegrees = 216.0 // (base + jump) mod 360
)

// circularPose returns the indicator arc start angle and sweep, in radians,
// for the given animation clock.
func circularPose(t time.Duration) (start, sweep float64) {
	cycles := float64(t / cycleCircular)
	frac := cycleFraction(t, cycleCircular)

	var head, tail float64
	if frac < 0.5 {
		head = geom.EaseStandard.Ease(frac*2) * jumpDegrees
	} else {
		head = jumpDegrees
		tail = geom.EaseStandard.Ease((frac-0.5)*2) * jumpDegrees
	}

	rotation := cycles*offsetDegrees + frac*baseDegrees
	start = startAngle + (rotation+tail)*math.Pi/180
	sweep = (head - tail) * math.Pi / 180
	if sweep < minSweep {
		sweep = minSweep
	}
	return start, sweep
}

func drawCircularIndeterminate(ctx *surface.Context, f Frame, pal Palette) {
	cx, cy, r := dialGeometry(ctx, f)
	start, sweep := circularPose(f.Time)
	// the arc walks an empty circle; indeterminate dials draw no track
	ctx.StrokePolyline(indeterminateArc(f, cx, cy, r, start, sweep), f.Stroke, pal.Indicator)
}

// indeterminateArc samples the walking arc. The wavy envelope tapers along
// the arc's own extent so both free ends land flat.
func indeterminateArc(f Frame, cx, cy, r, start, sweep float64) []geom.Point {
	if !f.Wavy || f.Amplitude <= 0 {
		return arcPath(cx, cy, r, start, sweep)
	}
	waves := waveCount(r, f.wavelength())
	tsec := f.Time.Seconds()
	steps := geom.ArcSteps(r, sweep)
	pts := make([]geom.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		u := float64(i) / float64(steps)
		a := start + sweep*u
		amp := float64(f.Amplitude) * geom.AmplitudeEnvelope(u)
		dr := geom.WaveOffset(a, waves, tsec, waveSpeed, amp, geom.WavePower)
		pts = append(pts, geom.PointOnCircle(cx, cy, r+dr, a))
	}
	return pts
}
