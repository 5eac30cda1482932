package game

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"busview/internal/cabin"
	"busview/internal/config"
	"busview/internal/route"
)

// RunDesktop opens the window and runs the input → simulate → render loop
// until the window is asked to close. Only setup failures are returned.
func RunDesktop(cfg config.Config, log *slog.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// GL state. Depth testing is toggled per pass.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := route.NewRand(seed)
	log.Debug("seeded", "seed", seed)

	events := route.NewEventBus()
	route.LogEvents(events, log)

	if cfg.Audio.Enabled {
		audio, err := NewAudio(cfg.Audio.Volume)
		if err != nil {
			log.Warn("audio init failed, continuing without sound", "err", err)
		} else {
			audio.Subscribe(events)
		}
	}

	layout := route.DefaultLayout()
	path := layout.Path(config.CurvePointsPerSegment, config.WiggleRange, rng)

	rend := NewRenderer(cfg, path, log)
	defer rend.Destroy()

	state := route.NewState(layout, events)
	cam := cabin.NewCamera()
	input := NewInput()

	screen := cabin.ScreenPass()
	var routeCmds []cabin.DrawCmd

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := frameDelta(now, last)
		last = now

		glfw.PollEvents()
		if window.GetKey(KeyQuit) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		cam.OnCursor(window.GetCursorPos())

		// Edges are sampled every frame so a press made while traveling is
		// not replayed on arrival. The commands ignore themselves off-phase.
		if input.JustPressed(window, KeyInspect) {
			state.BeginInspection(rng)
		}
		if input.JustClicked(window, ButtonAddPassenger) {
			state.AddPassenger()
		}
		if input.JustClicked(window, ButtonDropPassenger) {
			state.RemovePassenger()
		}

		state.Advance(dt)

		fbW, fbH := window.GetFramebufferSize()
		if !drawable(fbW, fbH) {
			// Minimized: no swap means no vsync, so block instead of spinning.
			glfw.WaitEventsTimeout(idleWait)
			continue
		}

		routePass := cabin.RouteDisplayPass(state, routeCmds)
		routeCmds = routePass.Cmds
		rend.Execute(routePass, cam, fbW, fbH)
		rend.Execute(screen, cam, fbW, fbH)

		window.SwapBuffers()
	}
	return nil
}

// idleWait bounds how long a minimized window sleeps between frames, in
// seconds. The simulation keeps running at this rate.
const idleWait = 0.05

// frameDelta is the simulation step for one frame, clamped to
// [0, MaxFrameDelta].
func frameDelta(now, last float64) float64 {
	dt := now - last
	if dt < 0 {
		return 0
	}
	if dt > config.MaxFrameDelta {
		return config.MaxFrameDelta
	}
	return dt
}

func drawable(fbW, fbH int) bool { return fbW > 0 && fbH > 0 }
