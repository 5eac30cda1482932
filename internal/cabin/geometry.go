package cabin

// RGB is a linear color in [0,1].
type RGB struct {
	R, G, B float32
}

// Surface is a run of CabinIndices drawn with one flat color.
type Surface struct {
	Name  string
	First int32 // index offset
	Count int32
	Color RGB
	Alpha float32
}

// CabinVertices: the cab is a box 4 wide, 3 tall and 7 deep; the driver sits
// at the origin facing -Z. Positions only (x, y, z).
var CabinVertices = []float32{
	// floor
	-2, 0, 2, 2, 0, 2, 2, 0, -5, -2, 0, -5,
	// ceiling
	-2, 3, 2, 2, 3, 2, 2, 3, -5, -2, 3, -5,
	// left wall
	-2, 0, 2, -2, 0, -5, -2, 3, -5, -2, 3, 2,
	// right wall
	2, 0, 2, 2, 0, -5, 2, 3, -5, 2, 3, 2,
	// windshield
	-2, 0, -5, 2, 0, -5, 2, 3, -5, -2, 3, -5,
}

var CabinIndices = []uint32{
	0, 1, 2, 2, 3, 0,
	4, 5, 6, 6, 7, 4,
	8, 9, 10, 10, 11, 8,
	12, 13, 14, 14, 15, 12,
	16, 17, 18, 18, 19, 16,
}

// CabinSurfaces lists the cab in draw order: opaque first, then the
// translucent groups from least to most transparent.
var CabinSurfaces = []Surface{
	{Name: "floor", First: 0, Count: 6, Color: RGB{0, 0, 0}, Alpha: 1.0},
	{Name: "ceiling", First: 6, Count: 6, Color: RGB{0, 0, 0}, Alpha: 1.0},
	{Name: "walls", First: 12, Count: 12, Color: RGB{0.2, 0.2, 0.2}, Alpha: 0.8},
	{Name: "windshield", First: 24, Count: 6, Color: RGB{0, 0.3, 0.5}, Alpha: 0.3},
}

// PanelVertices is the dashboard screen: x, y, z, u, v.
var PanelVertices = []float32{
	-0.8, 0.8, -2, 0, 1,
	0.8, 0.8, -2, 1, 1,
	0.8, 0.0, -2, 1, 0,
	-0.8, 0.0, -2, 0, 0,
}

var PanelIndices = []uint32{0, 1, 2, 2, 3, 0}

// SpriteQuad is a unit square centered on the origin, drawn as a triangle
// fan: x, y, u, v.
var SpriteQuad = []float32{
	-0.5, 0.5, 0, 1,
	-0.5, -0.5, 0, 0,
	0.5, -0.5, 1, 0,
	0.5, 0.5, 1, 1,
}
