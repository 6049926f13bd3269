// Command ddbake renders a gradient preset to an image file, optionally
// with a plot of a curve preset, and previews the ramp in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"ddcore/internal/bake"
	"ddcore/internal/config"
	"ddcore/internal/export"
	"ddcore/internal/profiling"
	"ddcore/pkg/gradient"
	"ddcore/pkg/preset"
)

var (
	assets      = flag.String("assets", "assets", "Preset directory")
	name        = flag.String("gradient", "rainbow", "Gradient preset")
	curveName   = flag.String("curve", "", "Curve preset to plot below the strip")
	destination = flag.String("out", "", "Output image, format chosen by extension")
	width       = flag.Int("width", 512, "Image width")
	height      = flag.Int("height", config.GetStripHeight(), "Strip height")
	resolution  = flag.Int("res", config.GetBakeResolution(), "Bake resolution before resizing")
	markers     = flag.Bool("markers", config.GetMarkers(), "Draw key markers and labels")
	wrap        = flag.Bool("wrap", false, "Force wrapping on")
	invert      = flag.Bool("invert", false, "Mirror the gradient")
	gray        = flag.Bool("gray", false, "Convert key colors to grayscale")
	install     = flag.Bool("init", false, "Write the builtin presets into the preset directory")
	list        = flag.Bool("list", false, "List available presets")
	timings     = flag.Bool("timings", false, "Print timing buckets")
	all         = flag.Bool("all", false, "Bake every gradient into the -out directory")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of gradients to bake concurrently")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	config.SetBakeResolution(*resolution)
	config.SetMarkers(*markers)

	colored := export.IsTerminal(os.Stdout)
	if err := run(colored); err != nil {
		log.Fatal(export.Error(err.Error(), export.IsTerminal(os.Stderr)))
	}
	if *timings {
		fmt.Println(export.Status(profiling.TopN(8), colored))
	}
}

func run(colored bool) error {
	loader := preset.NewLoader(*assets)

	if *install {
		if err := preset.InstallBuiltins(loader); err != nil {
			return err
		}
		fmt.Println(export.Status("installed builtin presets into "+loader.AssetsPath(), colored))
	}
	if *list {
		return printPresets(loader)
	}
	if *all {
		return bakeAll(loader, colored)
	}

	g, err := loader.Gradient(*name)
	if err != nil {
		return err
	}
	g = modify(g)

	if colored {
		cols := export.TerminalWidth(os.Stdout, 64)
		if err := export.WriteGradient(os.Stdout, g, cols, 2); err != nil {
			return err
		}
	}

	if *destination == "" {
		return nil
	}

	img := export.RenderStrip(g, export.StripOptions{Width: *width, Height: *height, Markers: *markers})
	if *curveName != "" {
		c, err := loader.Curve(*curveName)
		if err != nil {
			return err
		}
		img = export.Stack(img, export.RenderCurve(c, *width, *width/3))
	}
	if err := export.Save(img, *destination); err != nil {
		return err
	}
	fmt.Println(export.Status(fmt.Sprintf("wrote %s (%dx%d, %d keys)", *destination, img.Bounds().Dx(), img.Bounds().Dy(), g.Len()), colored))
	return nil
}

func modify(g *gradient.Gradient) *gradient.Gradient {
	if *invert {
		g = g.Inverse()
	}
	if *gray {
		g = g.Grayscale()
	}
	if *wrap {
		g.Wrapping = true
	}
	return g
}

func bakeAll(loader *preset.Loader, colored bool) error {
	dir := *destination
	if dir == "" {
		dir = "baked"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create %s: %w", dir, err)
	}

	names, err := loader.AllGradientNames()
	if err != nil {
		return err
	}
	jobs := make([]bake.Job, 0, len(names))
	for _, name := range names {
		g, err := loader.Gradient(name)
		if err != nil {
			fmt.Println(export.Error(err.Error(), colored))
			continue
		}
		jobs = append(jobs, bake.Job{
			Name:     name,
			Gradient: modify(g),
			Path:     filepath.Join(dir, name+".png"),
			Options:  export.StripOptions{Width: *width, Height: *height, Markers: *markers},
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed := 0
	for _, r := range bake.All(ctx, *workers, jobs) {
		if r.Error != nil {
			failed++
			fmt.Println(export.Error(fmt.Sprintf("%s: %v", r.Name, r.Error), colored))
			continue
		}
		fmt.Println(export.Status(fmt.Sprintf("%-12s %s (%v)", r.Name, r.Path, r.Elapsed.Round(time.Microsecond)), colored))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d bakes failed", failed, len(jobs))
	}
	return nil
}

func printPresets(l *preset.Loader) error {
	gradients, err := l.Gradients()
	if err != nil {
		return err
	}
	curves, err := l.Curves()
	if err != nil {
		return err
	}
	fmt.Printf("gradients on disk: %s\n", strings.Join(gradients, ", "))
	fmt.Printf("curves on disk:    %s\n", strings.Join(curves, ", "))
	fmt.Printf("builtin gradients: %s\n", strings.Join(preset.BuiltinGradientNames(), ", "))
	fmt.Printf("builtin curves:    %s\n", strings.Join(preset.BuiltinCurveNames(), ", "))
	return nil
}
