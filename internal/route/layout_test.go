package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busview/internal/config"
)

func TestDefaultLayoutOnEllipse(t *testing.T) {
	l := DefaultLayout()
	require.Equal(t, config.NumStations, l.Len())
	for _, p := range l.Stations {
		x := float64(p.X) / config.RouteSemiAxisA
		y := float64(p.Y) / config.RouteSemiAxisB
		assert.InDelta(t, 1.0, x*x+y*y, 1e-5)
	}
	assert.InDelta(t, config.RouteSemiAxisA, l.Stations[0].X, 1e-6)
	assert.InDelta(t, 0, l.Stations[0].Y, 1e-6)
}

func TestStationAtWraps(t *testing.T) {
	l := NewLayout(4, 1, 1)
	assert.Equal(t, l.Stations[3], l.StationAt(-1))
	assert.Equal(t, l.Stations[0], l.StationAt(4))
	assert.Equal(t, l.Stations[1], l.StationAt(9))
	assert.Equal(t, l.Stations[2], l.StationAt(-6))
}

func TestPathShape(t *testing.T) {
	l := DefaultLayout()
	path := l.Path(config.CurvePointsPerSegment, config.WiggleRange, NewRand(1))
	require.Len(t, path, 2*config.NumStations*config.CurvePointsPerSegment)

	for i := 0; i < l.Len(); i++ {
		base := 2 * i * config.CurvePointsPerSegment
		assert.Equal(t, l.Stations[i].X, path[base], "segment %d starts at its station", i)
		assert.Equal(t, l.Stations[i].Y, path[base+1])

		a, b := l.StationAt(i), l.StationAt(i+1)
		for j := 1; j < config.CurvePointsPerSegment; j++ {
			tt := float32(j) / config.CurvePointsPerSegment
			mid := lerp(a, b, tt)
			k := base + 2*j
			assert.InDelta(t, mid.X, path[k], config.WiggleRange+1e-6)
			assert.InDelta(t, mid.Y, path[k+1], config.WiggleRange+1e-6)
		}
	}
}

func TestPathDeterministicPerSeed(t *testing.T) {
	l := DefaultLayout()
	a := l.Path(5, 0.08, NewRand(12))
	b := l.Path(5, 0.08, NewRand(12))
	c := l.Path(5, 0.08, NewRand(13))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestRandIntnBounds(t *testing.T) {
	r := NewRand(0)
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-4))
	for i := 0; i < 1000; i++ {
		v := r.Intn(7)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 7)
	}
	for i := 0; i < 1000; i++ {
		o := r.Offset(0.5)
		require.GreaterOrEqual(t, o, -0.5)
		require.LessOrEqual(t, o, 0.5)
	}
}

func TestStationAtEmptyLayout(t *testing.T) {
	var l Layout
	assert.Equal(t, Point{}, l.StationAt(3))
	assert.Empty(t, l.Path(config.CurvePointsPerSegment, config.WiggleRange, NewRand(1)))
}
