package game

import (
	"fmt"
	"log"
	"time"

	"ddcore/internal/config"
	renderer "ddcore/internal/graphics/renderer"
	standardInput "ddcore/internal/input"
	"ddcore/internal/preview"
	"ddcore/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const helpLine = "arrows: presets  w: wrap  i: invert  g: gray  r: raw  m: markers  s: save  f5: reload  v: timings"

// App runs the preview window: input, state updates, rendering and pacing
type App struct {
	window       *glfw.Window
	inputManager *standardInput.InputManager
	renderer     *renderer.Renderer
	preview      *preview.Preview

	showProfiling bool
	message       string

	fpsLimiter *FPSLimiter
	lastTime   time.Time
	lastReport time.Time
	frames     int
	fps        int
}

func NewApp(window *glfw.Window, im *standardInput.InputManager, r *renderer.Renderer, p *preview.Preview) *App {
	a := &App{
		window:       window,
		inputManager: im,
		renderer:     r,
		preview:      p,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
		lastReport:   time.Now(),
	}

	im.Attach(window)
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.UpdateViewport(width, height)
		a.RefreshRender()
	})

	width, height := window.GetFramebufferSize()
	r.UpdateViewport(width, height)

	return a
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	a.update()
	a.renderer.Render(a.frame(), dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	a.frames++
	if time.Since(a.lastReport) >= time.Second {
		a.fps = a.frames
		a.frames = 0
		a.lastReport = time.Now()
		if a.showProfiling {
			fmt.Printf("FPS: %d  %s\n", a.fps, profiling.TopN(5))
		}
	}

	// Check if frame took too long
	if limit := config.GetFPSLimit(); limit > 0 {
		if d := time.Since(startTick); d > 2*time.Second/time.Duration(limit) {
			log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
		}
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags

	idle := a.window.GetAttrib(glfw.Focused) == glfw.False || a.window.GetAttrib(glfw.Iconified) == glfw.True
	a.fpsLimiter.Wait(idle)
}

func (a *App) update() {
	defer profiling.Track("app.update")()

	im := a.inputManager
	p := a.preview

	step := 1
	if im.IsActive(standardInput.ActionModShift) {
		step = 5
	}

	switch {
	case im.JustPressed(standardInput.ActionQuit):
		a.window.SetShouldClose(true)
	case im.JustPressed(standardInput.ActionNextGradient):
		a.report(p.CycleGradient(step))
	case im.JustPressed(standardInput.ActionPrevGradient):
		a.report(p.CycleGradient(-step))
	case im.JustPressed(standardInput.ActionNextCurve):
		a.report(p.CycleCurve(step))
	case im.JustPressed(standardInput.ActionPrevCurve):
		a.report(p.CycleCurve(-step))
	case im.JustPressed(standardInput.ActionToggleWrap):
		p.ToggleWrap()
	case im.JustPressed(standardInput.ActionInvert):
		p.ToggleInvert()
	case im.JustPressed(standardInput.ActionGrayscale):
		p.ToggleGray()
	case im.JustPressed(standardInput.ActionToggleRaw):
		p.ToggleRaw()
	case im.JustPressed(standardInput.ActionToggleMarkers):
		p.Markers = !p.Markers
	case im.JustPressed(standardInput.ActionToggleProfiling):
		a.showProfiling = !a.showProfiling
	case im.JustPressed(standardInput.ActionReload):
		a.report(p.Reload())
	case im.JustPressed(standardInput.ActionSave):
		name, err := p.Save()
		a.report(err)
		if err == nil {
			a.message = "saved " + name
			fmt.Println("Saved gradient", name)
		}
	}

	if im.JustPressed(standardInput.ActionMouseLeft) {
		if t := a.cursor(); t >= 0 {
			c := p.Sample(t)
			a.message = fmt.Sprintf("%.3f -> %s", t, c.Hex())
			fmt.Printf("%s @ %.4f -> %s %v\n", p.GradientName(), t, c.Hex(), c)
		}
	}
}

func (a *App) report(err error) {
	if err != nil {
		a.message = err.Error()
		log.Println(err)
	}
}

// cursor returns the normalized strip position under the mouse, or -1
func (a *App) cursor() float32 {
	// Layout is in framebuffer pixels, cursor events in window coordinates
	x, y := a.inputManager.Cursor()
	ww, wh := a.window.GetSize()
	fw, fh := a.window.GetFramebufferSize()
	if ww > 0 && wh > 0 {
		x *= float64(fw) / float64(ww)
		y *= float64(fh) / float64(wh)
	}

	strip := a.renderer.Layout().Strip
	if !strip.Contains(float32(x), float32(y)) {
		return -1
	}
	return strip.Normalize(float32(x))
}

func (a *App) frame() renderer.Frame {
	p := a.preview
	line := fmt.Sprintf("%d fps", a.fps)
	if a.message != "" {
		line += "  " + a.message
	}
	status := []string{p.Summary(), helpLine, line}

	return renderer.Frame{
		Gradient: p.Gradient(),
		RampKey:  p.RampKey(),
		Curve:    p.Curve(),
		Cursor:   a.cursor(),
		Markers:  p.Markers,
		Status:   status,
	}
}

// RefreshRender handles window resize repaints
func (a *App) RefreshRender() {
	a.renderer.Render(a.frame(), 0)
	a.window.SwapBuffers()
}
