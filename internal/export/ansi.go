package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"ddcore/pkg/color"
	"ddcore/pkg/gradient"

	"golang.org/x/term"
)

const (
	ansiReset   = "\x1b[0m"
	ansiStatus  = "\x1b[36m"
	ansiError   = "\x1b[31m"
	defaultCols = 64
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column count of f, or fallback when f is not a
// terminal or its size cannot be read.
func TerminalWidth(f *os.File, fallback int) int {
	if !IsTerminal(f) {
		return fallback
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// WriteSwatch prints colors as a row of truecolor background cells
func WriteSwatch(w io.Writer, colors []color.Color32) error {
	var sb strings.Builder
	for _, c := range colors {
		fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm ", c.R, c.G, c.B)
	}
	sb.WriteString(ansiReset)
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteGradient bakes g to cols cells and prints it rows times
func WriteGradient(w io.Writer, g *gradient.Gradient, cols, rows int) error {
	if cols <= 0 {
		cols = defaultCols
	}
	row := g.Bake(cols)
	for range max(rows, 1) {
		if err := WriteSwatch(w, row); err != nil {
			return err
		}
	}
	return nil
}

// Status colors a status line when colored output is wanted
func Status(s string, colored bool) string {
	if !colored {
		return s
	}
	return ansiStatus + s + ansiReset
}

// Error colors an error line when colored output is wanted
func Error(s string, colored bool) string {
	if !colored {
		return s
	}
	return ansiError + s + ansiReset
}
