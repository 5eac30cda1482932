package game

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// RenderTarget is an off-screen framebuffer with a single RGB color
// texture. Its size is fixed at creation.
type RenderTarget struct {
	fbo  uint32
	tex  uint32
	W, H int32
}

// NewRenderTarget allocates the framebuffer. The target is returned even when
// the driver reports it incomplete; the error says so and drawing into it is
// then up to the driver.
func NewRenderTarget(w, h int32) (*RenderTarget, error) {
	rt := &RenderTarget{W: w, H: h}

	gl.GenFramebuffers(1, &rt.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.fbo)

	gl.GenTextures(1, &rt.tex)
	gl.BindTexture(gl.TEXTURE_2D, rt.tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, w, h, 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, rt.tex, 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return rt, fmt.Errorf("framebuffer incomplete: status 0x%x", status)
	}
	return rt, nil
}

// Texture is the color attachment, for sampling in a later pass.
func (rt *RenderTarget) Texture() uint32 { return rt.tex }

func (rt *RenderTarget) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.fbo)
	gl.Viewport(0, 0, rt.W, rt.H)
}

func (rt *RenderTarget) Destroy() {
	if rt.tex != 0 {
		gl.DeleteTextures(1, &rt.tex)
	}
	if rt.fbo != 0 {
		gl.DeleteFramebuffers(1, &rt.fbo)
	}
}
