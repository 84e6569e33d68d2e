package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// amplitude keeps the beeps well below clipping.
const amplitude = 0.25

// squareTone is an endless square wave with a short attack so notes
// start without a click.
type squareTone struct {
	rate     beep.SampleRate
	freq     float64
	phase    float64
	position int
	attack   int
}

// NewSquareTone returns an endless square wave at freq Hz.
func NewSquareTone(rate beep.SampleRate, freq float64) beep.Streamer {
	return &squareTone{
		rate:   rate,
		freq:   freq,
		attack: rate.N(5 * time.Millisecond),
	}
}

func (t *squareTone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := amplitude
		if t.phase >= 0.5 {
			val = -amplitude
		}
		if t.position < t.attack {
			val *= float64(t.position) / float64(t.attack)
		}

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *squareTone) Err() error { return nil }
