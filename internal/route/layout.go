package route

import (
	"github.com/chewxy/math32"

	"busview/internal/config"
)

// Point is a position in normalized scene space (NDC of the route display).
type Point struct {
	X, Y float32
}

func lerp(a, b Point, t float32) Point {
	return Point{
		X: a.X*(1-t) + b.X*t,
		Y: a.Y*(1-t) + b.Y*t,
	}
}

// Layout is the fixed, ordered ring of stations.
type Layout struct {
	Stations []Point
}

// NewLayout places n stations evenly by angle on an ellipse with semi-axes a, b.
func NewLayout(n int, a, b float32) Layout {
	if n < 1 {
		n = 1
	}
	st := make([]Point, n)
	for i := range st {
		angle := float32(i) * 2 * math32.Pi / float32(n)
		st[i] = Point{X: math32.Cos(angle) * a, Y: math32.Sin(angle) * b}
	}
	return Layout{Stations: st}
}

// DefaultLayout is the ten-station ellipse used by the cabin display.
func DefaultLayout() Layout {
	return NewLayout(config.NumStations, config.RouteSemiAxisA, config.RouteSemiAxisB)
}

func (l Layout) Len() int { return len(l.Stations) }

// StationAt wraps i modulo the station count; negative indices are allowed.
// An empty layout answers the origin.
func (l Layout) StationAt(i int) Point {
	n := len(l.Stations)
	if n == 0 {
		return Point{}
	}
	return l.Stations[((i%n)+n)%n]
}

// Path builds the cosmetic road drawn under the stations: a closed loop through
// every station with jittered interior points. Jitter peaks mid-segment and
// vanishes at the stations. The result is a flat x,y vertex slice.
func (l Layout) Path(pointsPerSegment int, wiggle float64, r *Rand) []float32 {
	if pointsPerSegment < 1 {
		pointsPerSegment = 1
	}
	n := l.Len()
	out := make([]float32, 0, n*pointsPerSegment*2)
	for i := 0; i < n; i++ {
		a := l.StationAt(i)
		b := l.StationAt(i + 1)
		out = append(out, a.X, a.Y)
		for j := 1; j < pointsPerSegment; j++ {
			t := float32(j) / float32(pointsPerSegment)
			p := lerp(a, b, t)
			w := wiggle * float64(math32.Sin(t*math32.Pi))
			out = append(out, p.X+float32(r.Offset(w)), p.Y+float32(r.Offset(w)))
		}
	}
	return out
}
