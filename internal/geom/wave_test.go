package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWaveOffsetPeaksAtAmplitude(t *testing.T) {
	// phase = pi/2 puts the sample on a crest; the power exponent must not
	// change the crest height, only the shoulder shape.
	got := WaveOffset(math.Pi/2, 1, 0, 0, 3, WavePower)
	require.InDelta(t, 3, got, 1e-9)

	got = WaveOffset(3*math.Pi/2, 1, 0, 0, 3, WavePower)
	require.InDelta(t, -3, got, 1e-9)
}

func TestWaveOffsetZeroCrossings(t *testing.T) {
	require.Zero(t, WaveOffset(0, 1, 0, 0, 3, WavePower))
	require.InDelta(t, 0, WaveOffset(math.Pi, 1, 0, 0, 3, WavePower), 1e-9)
	require.Zero(t, WaveOffset(0.5, 2, 0, 0, 0, WavePower))
}

func TestWaveOffsetPowerWidensCrests(t *testing.T) {
	// Between crossings, a sub-1 exponent lifts the curve above the plain
	// sine of the same amplitude.
	plain := math.Sin(math.Pi/4) * 2
	smoothed := WaveOffset(math.Pi/4, 1, 0, 0, 2, 0.5)
	require.Greater(t, smoothed, plain)
}

func TestWaveOffsetTimeDrift(t *testing.T) {
	before := WaveOffset(1, 2, 0, 1.5, 2, WavePower)
	after := WaveOffset(1, 2, 1, 1.5, 2, WavePower)
	require.NotEqual(t, before, after)

	// speed 0 freezes the pattern
	require.Equal(t,
		WaveOffset(1, 2, 0, 0, 2, WavePower),
		WaveOffset(1, 2, 99, 0, 2, WavePower))
}

func TestAmplitudeEnvelope(t *testing.T) {
	tests := []struct {
		name string
		frac float64
		want func(v float64) bool
	}{
		{"start", 0, func(v float64) bool { return v == 0 }},
		{"end", 1, func(v float64) bool { return v == 0 }},
		{"below start", -0.5, func(v float64) bool { return v == 0 }},
		{"ramping in", 0.015, func(v float64) bool { return v > 0 && v < 1 }},
		{"mid range", 0.5, func(v float64) bool { return v == 1 }},
		{"ramping out", 0.985, func(v float64) bool { return v > 0 && v < 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.want(AmplitudeEnvelope(tt.frac)),
				"envelope(%v) = %v", tt.frac, AmplitudeEnvelope(tt.frac))
		})
	}
}

func TestAmplitudeEnvelopeRampMonotonic(t *testing.T) {
	prev := -1.0
	for f := 0.0; f <= AmplitudeRampIn; f += AmplitudeRampIn / 16 {
		v := AmplitudeEnvelope(f)
		require.GreaterOrEqual(t, v, prev, "ramp must not dip at %v", f)
		prev = v
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"inside", 0.5, 0.5},
		{"below", -2, 0},
		{"above", 7, 1},
		{"nan", math.NaN(), 0},
		{"positive inf", math.Inf(1), 1},
		{"negative inf", math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Clamp(tt.v, 0, 1))
		})
	}
}

func TestSmoothstep(t *testing.T) {
	require.Zero(t, Smoothstep(-1))
	require.Zero(t, Smoothstep(0))
	require.Equal(t, 1.0, Smoothstep(1))
	require.Equal(t, 1.0, Smoothstep(2))
	require.InDelta(t, 0.5, Smoothstep(0.5), 1e-9)
}
