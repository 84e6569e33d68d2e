package dino

import (
	"testing"

	"github.com/allanrg4/runner/internal/config"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now float64
}

func (c *fakeClock) Now() float64 { return c.now }

func (c *fakeClock) advance(ms float64) { c.now += ms }

// scriptedRandom returns its values in order, cycling.
type scriptedRandom struct {
	values []float64
	i      int
}

func (r *scriptedRandom) Float64() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

type soundLog struct {
	sounds []Sound
}

func (s *soundLog) PlaySound(snd Sound) { s.sounds = append(s.sounds, snd) }

func (s *soundLog) count(snd Sound) int {
	n := 0
	for _, v := range s.sounds {
		if v == snd {
			n++
		}
	}
	return n
}

type renderCall struct {
	frame Frame
	x, y  int
}

type renderLog struct {
	calls []renderCall
}

func (r *renderLog) Render(f Frame, x, y int) {
	r.calls = append(r.calls, renderCall{frame: f, x: x, y: y})
}

func (r *renderLog) count(s Sprite) int {
	n := 0
	for _, c := range r.calls {
		if c.frame.Sprite == s {
			n++
		}
	}
	return n
}

const frameMs = 1000.0 / 60

type testRunner struct {
	*Runner
	clock *fakeClock
	sound *soundLog
}

func newTestRunner(t *testing.T, cfg config.Config, seed int64) testRunner {
	t.Helper()
	clock := &fakeClock{}
	sound := &soundLog{}
	r, err := New(cfg, Deps{Clock: clock, Random: NewRandom(seed), Sound: sound})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return testRunner{Runner: r, clock: clock, sound: sound}
}

// runUntilCrash steps without input until the run ends.
func runUntilCrash(t *testing.T, r *Runner, maxFrames int) *GameOver {
	t.Helper()
	for i := 0; i < maxFrames; i++ {
		if res := r.Step(frameMs); res.GameOver != nil {
			return res.GameOver
		}
	}
	t.Fatalf("no crash within %d frames", maxFrames)
	return nil
}
