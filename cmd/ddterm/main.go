// Command ddterm previews gradient and curve presets in a truecolor
// terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"ddcore/internal/config"
	"ddcore/internal/preview"
	"ddcore/internal/termview"
	"ddcore/pkg/preset"

	"github.com/gdamore/tcell/v2"
)

var (
	assets   = flag.String("assets", "assets", "Preset directory")
	gradient = flag.String("gradient", "", "Gradient to select at startup")
	wrap     = flag.Bool("wrap", false, "Preview every gradient wrapped")
)

func main() {
	flag.Parse()
	config.SetWrapping(*wrap)

	p, err := preview.New(preset.NewLoader(*assets))
	if err == nil && *gradient != "" {
		err = p.Select(*gradient)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ddterm: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			fmt.Fprintf(os.Stderr, "\x1b[31mddterm crashed: %v\x1b[0m\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	view := termview.New(screen, p)
	for {
		view.Draw()
		if !view.HandleEvent(screen.PollEvent()) {
			return
		}
	}
}
