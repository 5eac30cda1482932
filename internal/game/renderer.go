package game

import (
	"log/slog"
	"path/filepath"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"busview/internal/cabin"
	"busview/internal/config"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Image files for each sprite slot, relative to the resource directory.
var textureFiles = map[cabin.Texture]string{
	cabin.TexBus:         "bus.png",
	cabin.TexStation:     "station.jpeg",
	cabin.TexDoorsOpen:   "doors_open.png",
	cabin.TexDoorsClosed: "doors_closed.png",
	cabin.TexInspection:  "inspection.png",
}

type Renderer struct {
	// Flat-color 3D program (cabin surfaces).
	flatProg   uint32
	flatUProj  int32
	flatUView  int32
	flatUModel int32
	flatUColor int32
	flatUAlpha int32
	cabinVAO   uint32
	cabinVBO   uint32
	cabinEBO   uint32

	// Textured 3D program (dashboard screen).
	texProg    uint32
	texUProj   int32
	texUView   int32
	texUModel  int32
	texUSample int32
	panelVAO   uint32
	panelVBO   uint32
	panelEBO   uint32

	// Flat-color 2D program (route line).
	colorProg    uint32
	colorUColor  int32
	colorUOffset int32
	pathVAO      uint32
	pathVBO      uint32
	pathCount    int32

	// Textured 2D program (sprites).
	rectProg  uint32
	rectUX    int32
	rectUY    int32
	rectUS    int32
	rectUTex  int32
	spriteVAO uint32
	spriteVBO uint32

	textures [cabin.NumTextures]uint32
	target   *RenderTarget

	log *slog.Logger
}

// NewRenderer compiles the programs, uploads static geometry, loads sprite
// textures and allocates the route display target. Missing shaders or
// images are logged and leave a zero handle; nothing here is fatal.
func NewRenderer(cfg config.Config, path []float32, log *slog.Logger) *Renderer {
	r := &Renderer{log: log}

	r.flatProg = r.program(cfg.ShaderDir, shaderFlat3D)
	r.texProg = r.program(cfg.ShaderDir, shaderTextured3D)
	r.colorProg = r.program(cfg.ShaderDir, shaderFlat2D)
	r.rectProg = r.program(cfg.ShaderDir, shaderTextured2D)

	r.initUniforms()
	r.initCabin()
	r.initPanel()
	r.initSprite()
	r.initPath(path)

	for slot, name := range textureFiles {
		p := filepath.Join(cfg.ResourceDir, name)
		tex, err := loadTexture(p)
		if err != nil {
			log.Warn("texture unavailable", "file", p, "err", err)
			continue
		}
		r.textures[slot] = tex
	}

	target, err := NewRenderTarget(config.OffscreenWidth, config.OffscreenHeight)
	if err != nil {
		log.Error("route display target", "err", err)
	}
	r.target = target
	r.textures[cabin.TexRouteDisplay] = target.Texture()

	gl.BindVertexArray(0)
	return r
}

func (r *Renderer) program(dir, name string) uint32 {
	prog, err := loadProgram(dir, name)
	if err != nil {
		r.log.Warn("shader unavailable", "program", name, "err", err)
		return 0
	}
	return prog
}

func (r *Renderer) initUniforms() {
	if r.flatProg != 0 {
		gl.UseProgram(r.flatProg)
		r.flatUProj = gl.GetUniformLocation(r.flatProg, gl.Str("projection\x00"))
		r.flatUView = gl.GetUniformLocation(r.flatProg, gl.Str("view\x00"))
		r.flatUModel = gl.GetUniformLocation(r.flatProg, gl.Str("model\x00"))
		r.flatUColor = gl.GetUniformLocation(r.flatProg, gl.Str("color\x00"))
		r.flatUAlpha = gl.GetUniformLocation(r.flatProg, gl.Str("alpha\x00"))
	}
	if r.texProg != 0 {
		gl.UseProgram(r.texProg)
		r.texUProj = gl.GetUniformLocation(r.texProg, gl.Str("projection\x00"))
		r.texUView = gl.GetUniformLocation(r.texProg, gl.Str("view\x00"))
		r.texUModel = gl.GetUniformLocation(r.texProg, gl.Str("model\x00"))
		r.texUSample = gl.GetUniformLocation(r.texProg, gl.Str("screenTexture\x00"))
		gl.Uniform1i(r.texUSample, 0)
	}
	if r.colorProg != 0 {
		gl.UseProgram(r.colorProg)
		r.colorUColor = gl.GetUniformLocation(r.colorProg, gl.Str("uColor\x00"))
		r.colorUOffset = gl.GetUniformLocation(r.colorProg, gl.Str("uPosOffset\x00"))
	}
	if r.rectProg != 0 {
		gl.UseProgram(r.rectProg)
		r.rectUX = gl.GetUniformLocation(r.rectProg, gl.Str("uX\x00"))
		r.rectUY = gl.GetUniformLocation(r.rectProg, gl.Str("uY\x00"))
		r.rectUS = gl.GetUniformLocation(r.rectProg, gl.Str("uS\x00"))
		r.rectUTex = gl.GetUniformLocation(r.rectProg, gl.Str("uTex0\x00"))
		gl.Uniform1i(r.rectUTex, 0)
	}
	gl.UseProgram(0)
}

// Cabin box: positions only, indexed.
func (r *Renderer) initCabin() {
	gl.GenVertexArrays(1, &r.cabinVAO)
	gl.GenBuffers(1, &r.cabinVBO)
	gl.GenBuffers(1, &r.cabinEBO)
	gl.BindVertexArray(r.cabinVAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.cabinVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cabin.CabinVertices)*4, gl.Ptr(cabin.CabinVertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.cabinEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(cabin.CabinIndices)*4, gl.Ptr(cabin.CabinIndices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, glOffset(0))
}

// Dashboard screen: pos(3) + uv(2), indexed.
func (r *Renderer) initPanel() {
	gl.GenVertexArrays(1, &r.panelVAO)
	gl.GenBuffers(1, &r.panelVBO)
	gl.GenBuffers(1, &r.panelEBO)
	gl.BindVertexArray(r.panelVAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.panelVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cabin.PanelVertices)*4, gl.Ptr(cabin.PanelVertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.panelEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(cabin.PanelIndices)*4, gl.Ptr(cabin.PanelIndices), gl.STATIC_DRAW)

	stride := int32(5 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(3*4))
}

// Sprite quad: pos(2) + uv(2), triangle fan.
func (r *Renderer) initSprite() {
	gl.GenVertexArrays(1, &r.spriteVAO)
	gl.GenBuffers(1, &r.spriteVBO)
	gl.BindVertexArray(r.spriteVAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cabin.SpriteQuad)*4, gl.Ptr(cabin.SpriteQuad), gl.STATIC_DRAW)

	stride := int32(4 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
}

// Route line: the closed polyline thickened into a triangle strip. Core
// contexts reject wide lines, so width comes from geometry.
func (r *Renderer) initPath(path []float32) {
	strip := cabin.PathStrip(path, config.PathLineWidth, config.OffscreenWidth, config.OffscreenHeight)

	gl.GenVertexArrays(1, &r.pathVAO)
	gl.GenBuffers(1, &r.pathVBO)
	gl.BindVertexArray(r.pathVAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.pathVBO)
	if len(strip) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(strip)*4, gl.Ptr(strip), gl.STATIC_DRAW)
	}
	r.pathCount = int32(len(strip) / 2)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
}

func (r *Renderer) Destroy() {
	if r.target != nil {
		r.target.Destroy()
	}
	for _, id := range []uint32{r.cabinVBO, r.cabinEBO, r.panelVBO, r.panelEBO, r.spriteVBO, r.pathVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.cabinVAO, r.panelVAO, r.spriteVAO, r.pathVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.flatProg, r.texProg, r.colorProg, r.rectProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for slot, id := range r.textures {
		// The route display texture belongs to the target.
		if id != 0 && cabin.Texture(slot) != cabin.TexRouteDisplay {
			gl.DeleteTextures(1, &id)
		}
	}
}

// Execute renders one pass: bind its target, clear, set depth testing, then
// draw the commands in order. fbW/fbH size the window viewport.
func (r *Renderer) Execute(p cabin.Pass, cam *cabin.Camera, fbW, fbH int) {
	switch p.Target {
	case cabin.TargetRouteDisplay:
		r.target.Bind()
	default:
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.Viewport(0, 0, int32(fbW), int32(fbH))
	}

	gl.ClearColor(p.Clear.R, p.Clear.G, p.Clear.B, 1.0)
	if p.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	} else {
		gl.Disable(gl.DEPTH_TEST)
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}

	var proj, view mgl32.Mat4
	if p.Target == cabin.TargetScreen {
		proj = cabin.Projection(fbW, fbH)
		view = cam.View()
	}

	for i := range p.Cmds {
		c := &p.Cmds[i]
		switch c.Kind {
		case cabin.DrawPath:
			r.drawPath(c)
		case cabin.DrawSprite:
			r.drawSprite(c)
		case cabin.DrawSurface:
			r.drawSurface(c, &proj, &view)
		case cabin.DrawPanel:
			r.drawPanel(c, &proj, &view)
		}
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) drawPath(c *cabin.DrawCmd) {
	gl.UseProgram(r.colorProg)
	gl.Uniform4f(r.colorUColor, c.Color.R, c.Color.G, c.Color.B, c.Alpha)
	gl.Uniform2f(r.colorUOffset, 0, 0)
	gl.BindVertexArray(r.pathVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, r.pathCount)
}

func (r *Renderer) drawSprite(c *cabin.DrawCmd) {
	gl.UseProgram(r.rectProg)
	gl.Uniform1f(r.rectUX, c.X)
	gl.Uniform1f(r.rectUY, c.Y)
	gl.Uniform1f(r.rectUS, c.Scale)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.textures[c.Tex])
	gl.BindVertexArray(r.spriteVAO)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
}

func (r *Renderer) drawSurface(c *cabin.DrawCmd, proj, view *mgl32.Mat4) {
	model := mgl32.Ident4()
	gl.UseProgram(r.flatProg)
	gl.UniformMatrix4fv(r.flatUProj, 1, false, &proj[0])
	gl.UniformMatrix4fv(r.flatUView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.flatUModel, 1, false, &model[0])
	gl.Uniform3f(r.flatUColor, c.Color.R, c.Color.G, c.Color.B)
	gl.Uniform1f(r.flatUAlpha, c.Alpha)
	gl.BindVertexArray(r.cabinVAO)
	gl.DrawElements(gl.TRIANGLES, c.Surface.Count, gl.UNSIGNED_INT, glOffset(int(c.Surface.First)*4))
}

func (r *Renderer) drawPanel(c *cabin.DrawCmd, proj, view *mgl32.Mat4) {
	model := mgl32.Ident4()
	gl.UseProgram(r.texProg)
	gl.UniformMatrix4fv(r.texUProj, 1, false, &proj[0])
	gl.UniformMatrix4fv(r.texUView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.texUModel, 1, false, &model[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.textures[c.Tex])
	gl.BindVertexArray(r.panelVAO)
	gl.DrawElements(gl.TRIANGLES, int32(len(cabin.PanelIndices)), gl.UNSIGNED_INT, glOffset(0))
}
