package dino

import (
	"math"

	"github.com/allanrg4/runner/internal/config"
	"github.com/allanrg4/runner/internal/core"
)

// Obstacle is one spawned obstacle, possibly a group of identical sprites
// sharing a single collision footprint.
type Obstacle struct {
	Type *config.ObstacleType // Catalog entry, read-only
	Size int                  // Number of grouped sprites
	X    int                  // Left edge in world pixels
	Gap  int                  // Required space before the next obstacle

	// CollisionBoxes are this instance's sprite-relative sub-boxes,
	// cloned from the catalog and resized for grouping.
	CollisionBoxes []core.CollisionBox

	remove           bool
	followingCreated bool
}

// Width returns the total width of the group.
func (o *Obstacle) Width() int {
	return o.Type.Width * o.Size
}

// Y returns the obstacle's top edge.
func (o *Obstacle) Y() int {
	return o.Type.YPos
}

// Visible reports whether any part of the obstacle is on screen.
func (o *Obstacle) Visible() bool {
	return o.X+o.Width() > 0
}

// Expired reports whether the obstacle has scrolled past the left edge.
func (o *Obstacle) Expired() bool {
	return o.remove
}

// Box returns the obstacle's full sprite extent in world space.
func (o *Obstacle) Box() core.CollisionBox {
	return core.NewCollisionBox(o.X, o.Type.YPos, o.Width(), o.Type.Height)
}

// update scrolls the obstacle left and flags it once it leaves the screen.
func (o *Obstacle) update(deltaTime, speed, fps float64) {
	if o.remove {
		return
	}
	o.X -= int(math.Floor(speed * fps / 1000 * deltaTime))
	if !o.Visible() {
		o.remove = true
	}
}

// Spawner creates obstacles from the catalog.
type Spawner struct {
	cfg *config.Config
	rng RandomSource
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg *config.Config, rng RandomSource) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Spawn creates a new obstacle at the right edge of the world.
func (s *Spawner) Spawn(speed float64) *Obstacle {
	types := s.cfg.Obstacles.Types
	t := &types[randomNum(s.rng, 0, len(types)-1)]

	size := randomNum(s.rng, 1, s.cfg.Obstacles.MaxLength)
	if speed < t.MultipleSpeed {
		size = 1
	}

	o := &Obstacle{
		Type:           t,
		Size:           size,
		CollisionBoxes: core.CloneBoxes(t.CollisionBoxes),
	}
	width := o.Width()

	// Stretch the middle box over the extra sprites and pin the last box
	// to the trailing edge.
	if size > 1 && len(o.CollisionBoxes) >= 3 {
		boxes := o.CollisionBoxes
		boxes[1].W = width - boxes[0].W - boxes[2].W
		boxes[2].X = width - boxes[2].W
	}

	o.Gap = s.Gap(o, s.cfg.Runner.GapCoefficient, speed)
	o.X = s.cfg.Runner.Width - width
	return o
}

// GapBounds returns the inclusive range a gap is drawn from for an
// obstacle of the given width.
func (s *Spawner) GapBounds(t *config.ObstacleType, width int, gapCoefficient, speed float64) (min, max int) {
	min = int(math.Round(float64(width)*speed + float64(t.MinGap)*gapCoefficient))
	max = int(math.Round(float64(min) * s.cfg.Obstacles.MaxGapCoefficient))
	return min, max
}

// Gap draws the space required after o at the current speed.
func (s *Spawner) Gap(o *Obstacle, gapCoefficient, speed float64) int {
	min, max := s.GapBounds(o.Type, o.Width(), gapCoefficient, speed)
	return randomNum(s.rng, min, max)
}
