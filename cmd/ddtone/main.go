// Command ddtone plays a tone whose loudness follows a curve preset.
package main

import (
	"flag"
	"fmt"
	"time"

	"ddcore/internal/envelope"
	"ddcore/pkg/preset"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/xlab/closer"
)

var (
	assets    = flag.String("assets", "assets", "Preset directory")
	curveName = flag.String("curve", "pluck", "Curve preset used as the envelope")
	freq      = flag.Float64("freq", 440, "Tone frequency in Hz")
	duration  = flag.Duration("dur", 800*time.Millisecond, "Length of one note")
	waveName  = flag.String("wave", "sine", "Oscillator: sine, square, saw, triangle")
	volume    = flag.Float64("vol", 0.6, "Volume, 0 to 1")
	repeat    = flag.Int("repeat", 1, "Number of notes")
	rate      = flag.Int("rate", 44100, "Sample rate")
)

func main() {
	flag.Parse()
	closer.Checked(run, true)
	closer.Close()
}

func run() error {
	c, err := preset.NewLoader(*assets).Curve(*curveName)
	if err != nil {
		return err
	}
	wave, err := envelope.ParseWave(*waveName)
	if err != nil {
		return err
	}

	sampleRate := beep.SampleRate(*rate)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("could not init speaker: %w", err)
	}
	closer.Bind(speaker.Close)

	notes := max(*repeat, 1)
	done := make(chan struct{})
	seq := make([]beep.Streamer, 0, notes+1)
	for range notes {
		seq = append(seq, envelope.Voice(c, *freq, *duration, wave, *volume, sampleRate))
	}
	seq = append(seq, beep.Callback(func() { close(done) }))

	fmt.Printf("Playing %d x %v %s at %.0f Hz shaped by %s (%d keys)\n", notes, *duration, wave, *freq, *curveName, c.Len())
	speaker.Play(beep.Seq(seq...))
	<-done
	return nil
}
