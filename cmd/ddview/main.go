// Command ddview opens an OpenGL window previewing gradient and curve
// presets. Clicking the strip logs the sampled color.
package main

import (
	"flag"
	"fmt"
	"runtime"

	"ddcore/internal/config"
	"ddcore/internal/game"
	"ddcore/internal/graphics/renderables/overlay"
	"ddcore/internal/graphics/renderables/plot"
	"ddcore/internal/graphics/renderables/strip"
	renderer "ddcore/internal/graphics/renderer"
	standardInput "ddcore/internal/input"
	"ddcore/internal/preview"
	"ddcore/internal/profiling"
	"ddcore/pkg/preset"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

var (
	assetsFlag   = flag.String("assets", "assets", "preset directory")
	gradientFlag = flag.String("gradient", "", "gradient to select at startup")
	curveFlag    = flag.String("curve", "", "curve to select at startup")
	fpsFlag      = flag.Int("fps", config.GetFPSLimit(), "frame cap, 0 for unlimited")
	stripFlag    = flag.Int("strip", config.GetStripHeight(), "strip height in pixels")
	wrapFlag     = flag.Bool("wrap", config.GetWrapping(), "preview every gradient wrapped")
	widthFlag    = flag.Int("width", 900, "window width")
	heightFlag   = flag.Int("height", 600, "window height")
)

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	config.SetFPSLimit(*fpsFlag)
	config.SetStripHeight(*stripFlag)
	config.SetWrapping(*wrapFlag)

	closer.Bind(func() {
		if top := profiling.TopN(5); top != "" {
			fmt.Println("Last frame:", top)
		}
	})
	closer.Checked(run, true)
	closer.Close()
}

func run() error {
	p, err := preview.New(preset.NewLoader(*assetsFlag))
	if err != nil {
		return err
	}
	if *gradientFlag != "" {
		if err := p.Select(*gradientFlag); err != nil {
			return err
		}
	}
	if *curveFlag != "" {
		if err := p.SelectCurve(*curveFlag); err != nil {
			return err
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(*widthFlag, *heightFlag, "ddview")
	if err != nil {
		return fmt.Errorf("could not create window: %w", err)
	}
	defer window.Destroy()

	width, height := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(width, height,
		strip.NewStrip(),
		plot.NewPlot(),
		overlay.NewOverlay(),
	)
	if err != nil {
		return err
	}
	defer r.Dispose()

	app := game.NewApp(window, standardInput.NewInputManager(), r, p)
	app.Run()
	return nil
}
