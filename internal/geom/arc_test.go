package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointOnCircle(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  Point
	}{
		{"twelve o'clock", -math.Pi / 2, Point{X: 50, Y: 30}},
		{"three o'clock", 0, Point{X: 70, Y: 50}},
		{"six o'clock", math.Pi / 2, Point{X: 50, Y: 70}},
		{"nine o'clock", math.Pi, Point{X: 30, Y: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PointOnCircle(50, 50, 20, tt.angle)
			require.InDelta(t, tt.want.X, p.X, 1e-4)
			require.InDelta(t, tt.want.Y, p.Y, 1e-4)
		})
	}
}

func TestArcSteps(t *testing.T) {
	require.Equal(t, 1, ArcSteps(20, 0))
	require.Equal(t, 1, ArcSteps(0, math.Pi))
	require.GreaterOrEqual(t, ArcSteps(10, math.Pi/4), 2)
	require.Greater(t, ArcSteps(100, math.Pi), ArcSteps(10, math.Pi))
}
