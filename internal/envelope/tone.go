package envelope

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

var waveNames = []string{"sine", "square", "saw", "triangle"}

func (w Wave) String() string {
	if w >= 0 && int(w) < len(waveNames) {
		return waveNames[w]
	}
	return fmt.Sprintf("Wave(%d)", int(w))
}

// ParseWave accepts the names printed by String, case-insensitively
func ParseWave(name string) (Wave, error) {
	for i, n := range waveNames {
		if strings.EqualFold(n, name) {
			return Wave(i), nil
		}
	}
	return WaveSine, fmt.Errorf("unknown wave %q", name)
}

type tone struct {
	freq     float64
	phase    float64
	position int
	duration int
	wave     Wave
	rate     beep.SampleRate
}

// NewTone returns a mono oscillator duplicated on both channels
func NewTone(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }
