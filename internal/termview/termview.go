// Package termview draws a preview onto a terminal screen: a truecolor
// gradient strip with key markers, a character plot of the curve and a
// status line.
package termview

import (
	"fmt"
	"math"

	"ddcore/internal/preview"
	"ddcore/pkg/color"
	"ddcore/pkg/ddmath"
	"ddcore/pkg/gradient"

	"github.com/gdamore/tcell/v2"
)

const (
	StripRows  = 4
	statusRows = 2

	markerInterp = '▲'
	markerFixed  = '■'
	cursorMark   = '↑'
	plotDot      = '•'
	plotKey      = '◆'
	axisMark     = '─'
)

var (
	lineStyle   = tcell.StyleDefault.Foreground(rgb(color.Gold))
	keyStyle    = tcell.StyleDefault.Foreground(rgb(color.Crimson))
	axisStyle   = tcell.StyleDefault.Foreground(rgb(color.DimGray))
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	helpStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const help = "arrows presets  h/l cursor  enter sample  w wrap  i invert  g gray  r raw  m markers  s save  q quit"

func rgb(c color.Color32) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// View renders p and applies key and mouse input to it
type View struct {
	screen  tcell.Screen
	preview *preview.Preview

	// Cursor is the selected strip column, or -1
	Cursor  int
	Message string
}

func New(screen tcell.Screen, p *preview.Preview) *View {
	return &View{screen: screen, preview: p, Cursor: -1}
}

// ColumnT maps a strip column to a normalized gradient position
func ColumnT(x, width int) float32 {
	if width <= 1 {
		return 0
	}
	return float32(x) / float32(width-1)
}

// KeyColumn is the strip column a key marker is drawn at
func KeyColumn(k gradient.Key, width int) int {
	return int(math.Round(float64(k.NormalizedPosition() * float32(width-1))))
}

// PlotRow maps v within [lo, hi] to a row of a plot spanning rows lines
// starting at top, higher values toward the top.
func PlotRow(v, lo, hi float32, top, rows int) int {
	f := ddmath.Remap(v, lo, hi, 0, float32(rows-1))
	return top + rows - 1 - int(math.Round(float64(f)))
}

func (v *View) Draw() {
	s := v.screen
	s.Clear()
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}

	p := v.preview
	g := p.Gradient()
	for x := range w {
		bg := tcell.StyleDefault.Background(rgb(p.Sample(ColumnT(x, w))))
		for y := range min(StripRows, h) {
			s.SetContent(x, y, ' ', nil, bg)
		}
	}

	markerRow := StripRows
	if p.Markers {
		for _, k := range g.All() {
			r := markerInterp
			if k.Mode == gradient.Fixed {
				r = markerFixed
			}
			s.SetContent(KeyColumn(k, w), markerRow, r, nil, tcell.StyleDefault.Foreground(rgb(k.Color)))
		}
	}
	if v.Cursor >= 0 && v.Cursor < w {
		s.SetContent(v.Cursor, markerRow, cursorMark, nil, statusStyle)
	}

	plotTop := markerRow + 2
	plotRows := h - plotTop - statusRows - 1
	if plotRows >= 2 {
		v.drawPlot(w, plotTop, plotRows)
	}

	status := p.Summary()
	if v.Message != "" {
		status += "  " + v.Message
	}
	drawText(s, 0, h-2, status, statusStyle)
	drawText(s, 0, h-1, help, helpStyle)
	s.Show()
}

func (v *View) drawPlot(w, top, rows int) {
	s := v.screen
	c := v.preview.Curve()
	start, end, ok := c.Range()
	if !ok {
		return
	}
	lo, hi := c.Bounds(w)

	if lo < 0 && hi > 0 {
		y := PlotRow(0, lo, hi, top, rows)
		for x := range w {
			s.SetContent(x, y, axisMark, nil, axisStyle)
		}
	}
	for x := range w {
		t := ddmath.Lerp(start, end, ColumnT(x, w))
		s.SetContent(x, PlotRow(c.Sample(t), lo, hi, top, rows), plotDot, nil, lineStyle)
	}
	if start == end {
		return
	}
	for _, k := range c.All() {
		x := int(math.Round(float64(ddmath.Remap(k.Position, start, end, 0, float32(w-1)))))
		s.SetContent(x, PlotRow(k.Value, lo, hi, top, rows), plotKey, nil, keyStyle)
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// HandleEvent applies ev and reports whether the view should keep running
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			v.HandleClick(x, y)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// HandleKey applies a key press, returning false on quit
func (v *View) HandleKey(key tcell.Key, r rune) bool {
	p := v.preview
	var err error

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRight:
		err = p.CycleGradient(1)
	case tcell.KeyLeft:
		err = p.CycleGradient(-1)
	case tcell.KeyDown:
		err = p.CycleCurve(1)
	case tcell.KeyUp:
		err = p.CycleCurve(-1)
	case tcell.KeyEnter:
		v.sample()
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'w':
			p.ToggleWrap()
		case 'i':
			p.ToggleInvert()
		case 'g':
			p.ToggleGray()
		case 'r':
			p.ToggleRaw()
		case 'm':
			p.Markers = !p.Markers
		case 'h':
			v.moveCursor(-1)
		case 'l':
			v.moveCursor(1)
		case 's':
			var name string
			if name, err = p.Save(); err == nil {
				v.Message = "saved " + name
			}
		}
	}

	if err != nil {
		v.Message = err.Error()
	}
	return true
}

// HandleClick moves the cursor to column x and samples when y is on the strip
func (v *View) HandleClick(x, y int) {
	v.Cursor = x
	if y < StripRows {
		v.sample()
	}
}

func (v *View) moveCursor(step int) {
	w, _ := v.screen.Size()
	if v.Cursor < 0 {
		v.Cursor = w / 2
	}
	v.Cursor = min(max(v.Cursor+step, 0), max(w-1, 0))
}

func (v *View) sample() {
	if v.Cursor < 0 {
		return
	}
	w, _ := v.screen.Size()
	t := ColumnT(v.Cursor, w)
	v.Message = fmt.Sprintf("%.3f -> %s", t, v.preview.Sample(t).Hex())
}
