// Package preset loads and saves gradient and curve presets stored as JSON
// under an assets directory:
//
//	<assets>/gradients/<name>.json
//	<assets>/curves/<name>.json
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"ddcore/pkg/curve"
	"ddcore/pkg/gradient"
)

const (
	gradientDir = "gradients"
	curveDir    = "curves"
	ext         = ".json"
)

var (
	ErrNotFound    = errors.New("preset not found")
	ErrInvalidName = errors.New("invalid preset name")
)

// Loader reads presets from disk and caches the decoded values. Returned
// presets are clones, so callers may edit them freely.
type Loader struct {
	assetsPath    string
	gradientCache map[string]*gradient.Gradient
	curveCache    map[string]*curve.Curve
}

func NewLoader(assetsPath string) *Loader {
	return &Loader{
		assetsPath:    assetsPath,
		gradientCache: make(map[string]*gradient.Gradient),
		curveCache:    make(map[string]*curve.Curve),
	}
}

// AssetsPath returns the root directory
func (l *Loader) AssetsPath() string {
	return l.assetsPath
}

func (l *Loader) LoadGradient(name string) (*gradient.Gradient, error) {
	if g, ok := l.gradientCache[name]; ok {
		return g.Clone(), nil
	}

	var g gradient.Gradient
	if err := l.readJSON(gradientDir, name, &g); err != nil {
		return nil, fmt.Errorf("could not load gradient '%s': %w", name, err)
	}

	l.gradientCache[name] = &g
	return g.Clone(), nil
}

func (l *Loader) LoadCurve(name string) (*curve.Curve, error) {
	if c, ok := l.curveCache[name]; ok {
		return c.Clone(), nil
	}

	var c curve.Curve
	if err := l.readJSON(curveDir, name, &c); err != nil {
		return nil, fmt.Errorf("could not load curve '%s': %w", name, err)
	}

	l.curveCache[name] = &c
	return c.Clone(), nil
}

// SaveGradient writes g and refreshes the cached copy
func (l *Loader) SaveGradient(name string, g *gradient.Gradient) error {
	if err := l.writeJSON(gradientDir, name, g); err != nil {
		return fmt.Errorf("could not save gradient '%s': %w", name, err)
	}
	l.gradientCache[name] = g.Clone()
	return nil
}

// SaveCurve writes c and refreshes the cached copy
func (l *Loader) SaveCurve(name string, c *curve.Curve) error {
	if err := l.writeJSON(curveDir, name, c); err != nil {
		return fmt.Errorf("could not save curve '%s': %w", name, err)
	}
	l.curveCache[name] = c.Clone()
	return nil
}

// Gradients lists the gradient preset names found on disk, sorted
func (l *Loader) Gradients() ([]string, error) {
	return l.list(gradientDir)
}

// Curves lists the curve preset names found on disk, sorted
func (l *Loader) Curves() ([]string, error) {
	return l.list(curveDir)
}

// Forget drops every cached preset
func (l *Loader) Forget() {
	clear(l.gradientCache)
	clear(l.curveCache)
}

func (l *Loader) path(kind, name string) (string, error) {
	if name == "" || !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(l.assetsPath, kind, name+ext), nil
}

func (l *Loader) readJSON(kind, name string, v any) error {
	path, err := l.path(kind, name)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("could not read preset file: %w", err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("could not unmarshal preset json: %w", err)
	}
	return nil
}

func (l *Loader) writeJSON(kind, name string, v any) error {
	path, err := l.path(kind, name)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal preset json: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create preset directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write preset file: %w", err)
	}
	return nil
}

func (l *Loader) list(kind string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(l.assetsPath, kind))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not list %s: %w", kind, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	slices.Sort(names)
	return names, nil
}
