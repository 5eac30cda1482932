package cabin

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busview/internal/config"
	"busview/internal/route"
)

func TestPathStripTooShort(t *testing.T) {
	assert.Nil(t, PathStrip(nil, 10, 800, 600))
	assert.Nil(t, PathStrip([]float32{0, 0}, 10, 800, 600))
	assert.Nil(t, PathStrip([]float32{0, 0, 1, 1}, 10, 0, 600))
}

func TestPathStripStraddlesRoute(t *testing.T) {
	path := route.DefaultLayout().Path(config.CurvePointsPerSegment, 0, route.NewRand(1))
	n := len(path) / 2
	w, h := config.OffscreenWidth, config.OffscreenHeight
	strip := PathStrip(path, config.PathLineWidth, w, h)
	require.Len(t, strip, (n+1)*4)

	sx, sy := float32(w)/2, float32(h)/2
	for i := 0; i < n; i++ {
		lx, ly := strip[4*i], strip[4*i+1]
		rx, ry := strip[4*i+2], strip[4*i+3]

		assert.InDelta(t, path[2*i], (lx+rx)/2, 1e-5, "vertex %d", i)
		assert.InDelta(t, path[2*i+1], (ly+ry)/2, 1e-5, "vertex %d", i)

		width := math32.Hypot((lx-rx)*sx, (ly-ry)*sy)
		assert.GreaterOrEqual(t, width, float32(config.PathLineWidth)-1e-3, "vertex %d", i)
		assert.LessOrEqual(t, width, float32(2*config.PathLineWidth)+1e-3, "vertex %d", i)
	}
	assert.Equal(t, strip[:4], strip[len(strip)-4:], "loop closes on the first pair")
}

func TestPathStripStraightRunIsExactWidth(t *testing.T) {
	// A long thin rectangle in pixel space; the midpoints of the long edges
	// see collinear neighbours.
	path := []float32{-0.5, 0, 0, 0, 0.5, 0, 0.5, 0.1, -0.5, 0.1}
	strip := PathStrip(path, 10, 800, 600)
	require.NotNil(t, strip)

	lx, ly := strip[4], strip[5]
	rx, ry := strip[6], strip[7]
	assert.InDelta(t, 0, (lx-rx)*400, 1e-3)
	assert.InDelta(t, 10, math32.Abs((ly-ry)*300), 1e-3)
}
