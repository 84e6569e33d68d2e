package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/allanrg4/runner/internal/games/dino"
)

func TestSquareToneRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone := NewSquareTone(rate, 440)

	samples := make([][2]float64, 2048)
	n, ok := tone.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, len(samples))
	}
	for i := range n {
		if samples[i][0] < -amplitude || samples[i][0] > amplitude {
			t.Fatalf("sample %d = %f, outside ±%f", i, samples[i][0], amplitude)
		}
		if samples[i][0] != samples[i][1] {
			t.Fatalf("sample %d: channels differ", i)
		}
	}
	if tone.Err() != nil {
		t.Errorf("Err() = %v", tone.Err())
	}
}

func TestSquareToneAttack(t *testing.T) {
	rate := beep.SampleRate(48000)
	tone := NewSquareTone(rate, 100)

	samples := make([][2]float64, 1)
	tone.Stream(samples)
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", samples[0][0])
	}
}

func TestEffectLength(t *testing.T) {
	tests := []struct {
		sound dino.Sound
		want  time.Duration
	}{
		{dino.SoundJump, 80 * time.Millisecond},
		{dino.SoundScore, 150 * time.Millisecond},
		{dino.SoundHit, 150 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			s := effects[tt.sound].streamer(sampleRate)
			total := 0
			buf := make([][2]float64, 512)
			for {
				n, ok := s.Stream(buf)
				total += n
				if !ok {
					break
				}
			}
			if want := sampleRate.N(tt.want); total != want {
				t.Errorf("streamed %d samples, want %d", total, want)
			}
		})
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(nil)
	p.PlaySound(dino.SoundHit)
	p.Close()
}

func TestNewMuted(t *testing.T) {
	if _, ok := New(true, nil).(Silent); !ok {
		t.Error("New(true) should return a silent player")
	}
}
