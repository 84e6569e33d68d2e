// Package audio plays the runner's sound effects through the system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/allanrg4/runner/internal/games/dino"
)

const sampleRate = beep.SampleRate(48000)

// effect describes the tone sequence of one sound.
type effect struct {
	notes []note
}

type note struct {
	freq     float64
	duration time.Duration
	sine     bool // Square wave otherwise
}

var effects = map[dino.Sound]effect{
	dino.SoundJump: {notes: []note{
		{freq: 660, duration: 40 * time.Millisecond},
		{freq: 880, duration: 40 * time.Millisecond},
	}},
	dino.SoundScore: {notes: []note{
		{freq: 1046, duration: 60 * time.Millisecond},
		{freq: 1318, duration: 90 * time.Millisecond},
	}},
	dino.SoundHit: {notes: []note{
		{freq: 110, duration: 150 * time.Millisecond, sine: true},
	}},
}

// Player implements dino.SoundPlayer on a beep mixer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player. Nothing is heard until Initialize succeeds.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlaySound queues s on the mixer and returns immediately.
func (p *Player) PlaySound(s dino.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	e, ok := effects[s]
	if !ok {
		return
	}

	speaker.Lock()
	p.mixer.Add(e.streamer(sampleRate))
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

func (e effect) streamer(rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(e.notes))
	for _, n := range e.notes {
		parts = append(parts, beep.Take(rate.N(n.duration), n.tone(rate)))
	}
	return beep.Seq(parts...)
}

func (n note) tone(rate beep.SampleRate) beep.Streamer {
	if n.sine {
		if sine, err := generators.SineTone(rate, n.freq); err == nil {
			return sine
		}
	}
	return NewSquareTone(rate, n.freq)
}

// New returns a started speaker player, or a silent one when mute is set
// or the audio device is unavailable.
func New(mute bool, logger *log.Logger) dino.SoundPlayer {
	if mute {
		return Silent{}
	}
	p := NewPlayer(logger)
	if err := p.Initialize(); err != nil {
		p.logger.Warn("audio unavailable, continuing without sound", "error", err)
		return Silent{}
	}
	return p
}

// Silent discards every sound.
type Silent struct{}

// PlaySound does nothing.
func (Silent) PlaySound(dino.Sound) {}
