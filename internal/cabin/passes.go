package cabin

import (
	"busview/internal/config"
	"busview/internal/route"
)

// Target selects the framebuffer a pass renders into.
type Target int

const (
	TargetRouteDisplay Target = iota // off-screen, fixed size
	TargetScreen                     // the window
)

// Texture names a texture slot resolved by the renderer.
type Texture int

const (
	TexNone Texture = iota
	TexBus
	TexStation
	TexDoorsOpen
	TexDoorsClosed
	TexInspection
	TexRouteDisplay // color attachment of the off-screen target
	numTextures
)

const NumTextures = int(numTextures)

type DrawKind int

const (
	DrawPath    DrawKind = iota // route polyline, as a PathStrip
	DrawSprite                  // SpriteQuad at (X, Y) scaled by Scale
	DrawSurface                 // a CabinSurfaces entry
	DrawPanel                   // PanelVertices textured with Tex
)

type DrawCmd struct {
	Kind    DrawKind
	Tex     Texture
	X, Y    float32
	Scale   float32
	Color   RGB
	Alpha   float32
	Surface Surface
}

// Pass is one render target plus its ordered draw list. Commands later in
// Cmds are drawn over earlier ones.
type Pass struct {
	Target    Target
	Clear     RGB
	DepthTest bool
	Cmds      []DrawCmd
}

var (
	routeClear = RGB{1, 1, 1}
	skyClear   = RGB{0.5, 0.8, 0.9}
	pathColor  = RGB{1, 0, 0}
)

// RouteDisplayPass builds the 2D pass for the current simulation state:
// path, stations, bus, door status and, while an inspection is pending, the
// inspector icon on top. cmds is reused to avoid per-frame allocation.
func RouteDisplayPass(s *route.State, cmds []DrawCmd) Pass {
	cmds = cmds[:0]
	cmds = append(cmds, DrawCmd{Kind: DrawPath, Color: pathColor, Alpha: 1})
	for _, st := range s.Layout.Stations {
		cmds = append(cmds, DrawCmd{Kind: DrawSprite, Tex: TexStation, X: st.X, Y: st.Y, Scale: config.StationScale})
	}
	cmds = append(cmds, DrawCmd{Kind: DrawSprite, Tex: TexBus, X: s.BusPos.X, Y: s.BusPos.Y, Scale: config.BusScale})

	status := TexDoorsClosed
	if s.Waiting() {
		status = TexDoorsOpen
	}
	cmds = append(cmds, DrawCmd{Kind: DrawSprite, Tex: status, X: config.StatusIconX, Y: config.StatusIconY, Scale: config.StatusIconScale})

	if s.Inspecting {
		cmds = append(cmds, DrawCmd{Kind: DrawSprite, Tex: TexInspection, X: config.InspectIconX, Y: config.InspectIconY, Scale: config.InspectIconScale})
	}
	return Pass{
		Target:    TargetRouteDisplay,
		Clear:     routeClear,
		DepthTest: false,
		Cmds:      cmds,
	}
}

// ScreenPass is the cabin seen from the driver's seat. It never changes.
func ScreenPass() Pass {
	cmds := make([]DrawCmd, 0, len(CabinSurfaces)+1)
	for _, sf := range CabinSurfaces {
		cmds = append(cmds, DrawCmd{Kind: DrawSurface, Surface: sf, Color: sf.Color, Alpha: sf.Alpha})
	}
	cmds = append(cmds, DrawCmd{Kind: DrawPanel, Tex: TexRouteDisplay, Alpha: 1})
	return Pass{
		Target:    TargetScreen,
		Clear:     skyClear,
		DepthTest: true,
		Cmds:      cmds,
	}
}
