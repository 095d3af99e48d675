package paint

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/crestui/crest/internal/surface"
)

func dialFrame(value float64) Frame {
	return Frame{Value: value, Max: 1, Stroke: 4}
}

// Probes sit on the ring one pixel inside the stroke centerline so they
// stay well clear of both stroke edges.
func TestCircularDeterminateHalf(t *testing.T) {
	ctx := surface.NewContext(100, 100, 100, 100)
	DrawCircular(ctx, dialFrame(0.5), testPalette)
	img := ctx.Image()

	require.Equal(t, "indicator", classify(img, 50, 3), "12 o'clock")
	require.Equal(t, "indicator", classify(img, 97, 50), "3 o'clock")
	require.Equal(t, "track", classify(img, 3, 50), "9 o'clock")
}

func TestCircularZeroKeepsArcVisible(t *testing.T) {
	ctx := surface.NewContext(100, 100, 100, 100)
	DrawCircular(ctx, dialFrame(0), testPalette)
	img := ctx.Image()

	require.Equal(t, "indicator", classify(img, 50, 3), "zero keeps a nub at 12 o'clock")
	require.Equal(t, "track", classify(img, 97, 50))
	require.Equal(t, "track", classify(img, 50, 97))
}

func TestCircularCompleteClosesRing(t *testing.T) {
	ctx := surface.NewContext(100, 100, 100, 100)
	DrawCircular(ctx, dialFrame(1), testPalette)
	img := ctx.Image()

	for _, p := range [][2]int{{50, 3}, {97, 50}, {50, 97}, {3, 50}} {
		require.Equal(t, "indicator", classify(img, p[0], p[1]),
			"ring must be unbroken at (%d,%d)", p[0], p[1])
	}
}

func TestCircularIndeterminateStart(t *testing.T) {
	ctx := surface.NewContext(100, 100, 100, 100)
	f := Frame{Indeterminate: true, Max: 1, Stroke: 4}
	DrawCircular(ctx, f, testPalette)
	img := ctx.Image()

	// cycle origin: a minimal arc at 12 o'clock, no track anywhere
	require.Equal(t, "indicator", classify(img, 50, 3))
	require.Equal(t, "none", classify(img, 97, 50))
	require.Equal(t, "none", classify(img, 3, 50))
}

func TestCircularIndeterminateQuarterCycle(t *testing.T) {
	ctx := surface.NewContext(100, 100, 100, 100)
	f := Frame{Indeterminate: true, Max: 1, Stroke: 4, Time: 333 * time.Millisecond}
	DrawCircular(ctx, f, testPalette)
	img := ctx.Image()

	// the head has swept past 3 and 6 o'clock; 12 o'clock is bare again
	require.Equal(t, "indicator", classify(img, 97, 50))
	require.Equal(t, "indicator", classify(img, 50, 97))
	require.Equal(t, "none", classify(img, 50, 3))
}

func TestCircularWavyRipplesPastFlatRadius(t *testing.T) {
	outsideInk := func(wavy bool) bool {
		ctx := surface.NewContext(108, 108, 108, 108)
		DrawCircular(ctx, Frame{Value: 0.5, Max: 1, Stroke: 4, Wavy: wavy, Amplitude: 4}, testPalette)
		img := ctx.Image()
		for y := 0; y < 108; y++ {
			for x := 0; x < 108; x++ {
				dx, dy := float64(x)-54, float64(y)-54
				if math.Hypot(dx, dy) > 51.5 && img.RGBAAt(x, y).A > 16 {
					return true
				}
			}
		}
		return false
	}

	require.False(t, outsideInk(false), "flat dial must stay inside the stroke band")
	require.True(t, outsideInk(true), "wave crests must push past the flat radius")
}

func TestCircularPoseAdvancesMonotonically(t *testing.T) {
	prev, _ := circularPose(0)
	for ms := 16; ms <= 4000; ms += 16 {
		start, sweep := circularPose(time.Duration(ms) * time.Millisecond)
		step := math.Mod(start-prev, 2*math.Pi)
		if step < 0 {
			step += 2 * math.Pi
		}
		if step > math.Pi {
			step -= 2 * math.Pi
		}
		require.GreaterOrEqual(t, step, -1e-9, "on-screen start angle regressed at t=%dms", ms)
		require.Less(t, step, math.Pi/2, "start angle leapt at t=%dms", ms)
		require.GreaterOrEqual(t, sweep, minSweep-1e-9, "sweep collapsed at t=%dms", ms)
		require.LessOrEqual(t, sweep, 2*math.Pi, "sweep overran a full turn at t=%dms", ms)
		prev = start
	}
}

func TestCircularPoseSeamlessWrap(t *testing.T) {
	before, sweepBefore := circularPose(cycleCircular - time.Millisecond)
	after, sweepAfter := circularPose(cycleCircular + time.Millisecond)

	diff := math.Mod(after-before, 2*math.Pi)
	if diff < 0 {
		diff += 2 * math.Pi
	}
	if diff > math.Pi {
		diff -= 2 * math.Pi
	}
	require.InDelta(t, 0, diff, 0.05, "start angle must carry across the wrap")
	require.Less(t, sweepBefore, 0.05, "arc must have contracted at cycle end")
	require.Less(t, sweepAfter, 0.05, "arc must still be short after the wrap")
}

func TestCircularDialGeometryFloorsRadius(t *testing.T) {
	ctx := surface.NewContext(4, 4, 4, 4)
	_, _, r := dialGeometry(ctx, Frame{Stroke: 8, Amplitude: 10})
	require.Equal(t, 1.0, r)

	// drawing into the degenerate dial must not panic
	DrawCircular(ctx, Frame{Value: 0.5, Max: 1, Stroke: 8, Amplitude: 10}, testPalette)
}
