package game

import "github.com/go-gl/glfw/v3.3/glfw"

// Key and button bindings.
const (
	KeyInspect          = glfw.KeyK
	KeyQuit             = glfw.KeyEscape
	ButtonAddPassenger  = glfw.MouseButtonLeft
	ButtonDropPassenger = glfw.MouseButtonRight
)

// Input turns polled key/button levels into press edges.
type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}
