// Package envelope shapes audio with curves: a curve evaluated over the
// normalized lifetime of a sound scales its amplitude sample by sample.
package envelope

import (
	"math"
	"time"

	"ddcore/pkg/curve"
	"ddcore/pkg/ddmath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Envelope multiplies a source streamer by curve.Sample(elapsed/duration).
// The gain is saturated to [0, 1] so overshooting tangents never clip.
type Envelope struct {
	streamer beep.Streamer
	curve    *curve.Curve
	position int
	total    int
}

// New wraps s. The envelope ends after duration even if s has more to give.
func New(s beep.Streamer, c *curve.Curve, duration time.Duration, rate beep.SampleRate) *Envelope {
	return &Envelope{
		streamer: s,
		curve:    c,
		total:    max(rate.N(duration), 1),
	}
}

// Gain returns the envelope gain at sample i
func (e *Envelope) Gain(i int) float64 {
	t := float32(i) / float32(e.total)
	return float64(ddmath.Saturate32(e.curve.Sample(t)))
}

// Progress returns the elapsed fraction in [0, 1]
func (e *Envelope) Progress() float64 {
	return math.Min(float64(e.position)/float64(e.total), 1)
}

func (e *Envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.Gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *Envelope) Err() error { return e.streamer.Err() }

// Volume scales s linearly; 0 or less is silent
func Volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Voice is a tone shaped by a curve at a given volume
func Voice(c *curve.Curve, freq float64, duration time.Duration, wave Wave, vol float64, rate beep.SampleRate) beep.Streamer {
	tone := NewTone(freq, duration, wave, rate)
	return Volume(New(tone, c, duration, rate), vol)
}
