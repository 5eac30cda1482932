package cabin

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"busview/internal/config"
)

// Camera is the driver's head: fixed position, mouse-look only.
type Camera struct {
	Pos   mgl32.Vec3
	Front mgl32.Vec3
	Up    mgl32.Vec3

	Yaw   float32 // degrees, [MinYaw, MaxYaw]
	Pitch float32 // degrees, [MinPitch, MaxPitch]

	lastX, lastY float64
	primed       bool
}

func NewCamera() *Camera {
	c := &Camera{
		Pos: mgl32.Vec3{0, config.EyeHeight, 0},
		Up:  mgl32.Vec3{0, 1, 0},
		Yaw: config.InitialYaw,
	}
	c.updateFront()
	return c
}

// OnCursor feeds an absolute cursor position. The first call only records
// the position so the view does not jump when the cursor is captured.
func (c *Camera) OnCursor(x, y float64) {
	if !c.primed {
		c.lastX, c.lastY = x, y
		c.primed = true
		return
	}
	dx := float32(x - c.lastX)
	dy := float32(c.lastY - y) // screen y grows downward
	c.lastX, c.lastY = x, y
	c.Look(dx, dy)
}

// Look applies a pointer delta; positive dy tilts the view up.
func (c *Camera) Look(dx, dy float32) {
	c.Yaw = clamp32(c.Yaw+dx*config.MouseSensitivity, config.MinYaw, config.MaxYaw)
	c.Pitch = clamp32(c.Pitch+dy*config.MouseSensitivity, config.MinPitch, config.MaxPitch)
	c.updateFront()
}

func (c *Camera) updateFront() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	c.Front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Pos, c.Pos.Add(c.Front), c.Up)
}

// Projection returns the perspective matrix for a viewport of w x h pixels.
func Projection(w, h int) mgl32.Mat4 {
	aspect := float32(1)
	if w > 0 && h > 0 {
		aspect = float32(w) / float32(h)
	}
	return mgl32.Perspective(mgl32.DegToRad(config.FieldOfView), aspect, config.NearPlane, config.FarPlane)
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
