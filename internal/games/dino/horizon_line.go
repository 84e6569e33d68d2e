package dino

import (
	"math"

	"github.com/allanrg4/runner/internal/config"
)

// HorizonLine is the ground, drawn as two tiling segments that scroll
// left together. A segment that wraps picks a flat or bumpy variant.
type HorizonLine struct {
	cfg *config.Config
	rng RandomSource

	xPos    [2]int
	sourceX [2]int
}

// NewHorizonLine creates a ground line with both segments flat.
func NewHorizonLine(cfg *config.Config, rng RandomSource) *HorizonLine {
	l := &HorizonLine{cfg: cfg, rng: rng}
	l.sourceX = [2]int{0, cfg.Horizon.LineWidth}
	l.Reset()
	return l
}

// Reset puts the segments back at their initial positions.
func (l *HorizonLine) Reset() {
	w := l.cfg.Horizon.LineWidth
	l.xPos = [2]int{0, w}
}

// Segments returns the x position and sheet offset of both segments.
func (l *HorizonLine) Segments() (xPos, sourceX [2]int) {
	return l.xPos, l.sourceX
}

// Update scrolls the ground by the distance covered in deltaTime.
func (l *HorizonLine) Update(deltaTime, speed float64) {
	increment := int(math.Floor(speed * (l.cfg.Runner.FPS / 1000) * deltaTime))
	if l.xPos[0] <= 0 {
		l.updateXPos(0, increment)
	} else {
		l.updateXPos(1, increment)
	}
}

func (l *HorizonLine) updateXPos(lead, increment int) {
	w := l.cfg.Horizon.LineWidth
	trail := 1 - lead

	l.xPos[lead] -= increment
	l.xPos[trail] = l.xPos[lead] + w

	if l.xPos[lead] <= -w {
		l.xPos[lead] += w * 2
		l.xPos[trail] = l.xPos[lead] - w
		l.sourceX[lead] = l.randomType()
	}
}

// randomType picks the sheet offset of a flat or bumpy segment.
func (l *HorizonLine) randomType() int {
	if l.rng.Float64() > l.cfg.Horizon.BumpThreshold {
		return l.cfg.Horizon.LineWidth
	}
	return 0
}
