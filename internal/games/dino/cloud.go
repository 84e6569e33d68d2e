package dino

import (
	"math"

	"github.com/allanrg4/runner/internal/config"
)

// Cloud is a background decoration with no collision semantics.
type Cloud struct {
	X, Y   int
	Gap    int // Space required before the next cloud
	width  int
	remove bool
}

func newCloud(cfg *config.Config, rng RandomSource) *Cloud {
	c := cfg.Cloud
	return &Cloud{
		X:     cfg.Runner.Width,
		Y:     randomNum(rng, c.MaxSkyLevel, c.MinSkyLevel),
		Gap:   randomNum(rng, c.MinGap, c.MaxGap),
		width: c.Width,
	}
}

// Visible reports whether any part of the cloud is on screen.
func (c *Cloud) Visible() bool {
	return c.X+c.width > 0
}

func (c *Cloud) update(speed float64) {
	if c.remove {
		return
	}
	c.X -= int(math.Ceil(speed))
	if !c.Visible() {
		c.remove = true
	}
}
