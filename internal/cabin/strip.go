package cabin

import "github.com/chewxy/math32"

// PathStrip thickens a closed x,y polyline in NDC into a triangle strip
// widthPx pixels wide on a targetW x targetH target. Each vertex yields a
// left/right pair mitred against its neighbours; the first pair is repeated
// at the end to close the loop. Fewer than two points yields nil.
func PathStrip(path []float32, widthPx float32, targetW, targetH int) []float32 {
	n := len(path) / 2
	if n < 2 || targetW <= 0 || targetH <= 0 {
		return nil
	}
	sx, sy := float32(targetW)/2, float32(targetH)/2
	half := widthPx / 2

	px := func(i int) (float32, float32) {
		i = ((i % n) + n) % n
		return path[2*i] * sx, path[2*i+1] * sy
	}

	out := make([]float32, 0, (n+1)*4)
	for i := 0; i < n; i++ {
		x, y := px(i)
		ax, ay := px(i - 1)
		bx, by := px(i + 1)
		d1x, d1y := unit(x-ax, y-ay)
		d2x, d2y := unit(bx-x, by-y)

		tx, ty := unit(d1x+d2x, d1y+d2y)
		if tx == 0 && ty == 0 {
			tx, ty = d2x, d2y
		}
		nx, ny := -ty, tx

		// Miter length, capped so hairpins do not spike.
		m := 2 * half
		if dot := nx*-d1y + ny*d1x; dot > 0.5 {
			m = half / dot
		}

		ox, oy := nx*m, ny*m
		out = append(out,
			(x+ox)/sx, (y+oy)/sy,
			(x-ox)/sx, (y-oy)/sy,
		)
	}
	return append(out, out[0], out[1], out[2], out[3])
}

func unit(x, y float32) (float32, float32) {
	l := math32.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}
