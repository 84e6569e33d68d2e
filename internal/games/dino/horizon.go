package dino

import (
	"github.com/allanrg4/runner/internal/config"
	"github.com/allanrg4/runner/internal/core"
)

// Horizon composes the background: clouds, the ground line and the
// obstacle list. It advances all of them each frame and schedules spawns.
type Horizon struct {
	cfg     *config.Config
	rng     RandomSource
	spawner *Spawner

	line      *HorizonLine
	clouds    entityList[*Cloud]
	obstacles entityList[*Obstacle]
}

// NewHorizon creates a horizon with one cloud, unless clouds are disabled,
// and no obstacles.
func NewHorizon(cfg *config.Config, rng RandomSource) *Horizon {
	h := &Horizon{
		cfg:     cfg,
		rng:     rng,
		spawner: NewSpawner(cfg, rng),
		line:    NewHorizonLine(cfg, rng),
	}
	h.addCloud()
	return h
}

// Update advances every background entity by deltaTime at the given speed.
// Obstacles only move and spawn when updateObstacles is set.
func (h *Horizon) Update(deltaTime, speed float64, updateObstacles bool) {
	h.line.Update(deltaTime, speed)
	h.updateClouds(deltaTime, speed)
	if updateObstacles {
		h.updateObstacles(deltaTime, speed)
	}
}

func (h *Horizon) updateClouds(deltaTime, speed float64) {
	cloudSpeed := h.cfg.Horizon.CloudSpeed / 1000 * deltaTime * speed

	h.clouds.each(func(c *Cloud) { c.update(cloudSpeed) })

	last, ok := h.clouds.back()
	if !ok {
		h.addCloud()
	} else if h.clouds.len() < h.cfg.Horizon.MaxClouds &&
		h.cfg.Runner.Width-last.X > last.Gap &&
		h.cfg.Horizon.CloudFrequency > h.rng.Float64() {
		h.addCloud()
	}

	h.clouds.removeExpired(func(c *Cloud) bool { return c.remove })
}

func (h *Horizon) addCloud() {
	if h.clouds.len() >= h.cfg.Horizon.MaxClouds {
		return
	}
	h.clouds.pushBack(newCloud(h.cfg, h.rng))
}

func (h *Horizon) updateObstacles(deltaTime, speed float64) {
	fps := h.cfg.Runner.FPS
	h.obstacles.each(func(o *Obstacle) { o.update(deltaTime, speed, fps) })
	h.obstacles.removeExpired((*Obstacle).Expired)

	last, ok := h.obstacles.back()
	if !ok {
		h.addObstacle(speed)
		return
	}
	if !last.followingCreated && last.Visible() &&
		last.X+last.Width()+last.Gap < h.cfg.Runner.Width {
		h.addObstacle(speed)
		last.followingCreated = true
	}
}

func (h *Horizon) addObstacle(speed float64) {
	h.obstacles.pushBack(h.spawner.Spawn(speed))
}

// NearestObstacle returns the oldest obstacle still on screen.
func (h *Horizon) NearestObstacle() (*Obstacle, bool) {
	return h.obstacles.front()
}

// Obstacles returns a snapshot of the active obstacles, nearest first.
func (h *Horizon) Obstacles() []Obstacle {
	out := make([]Obstacle, 0, h.obstacles.len())
	h.obstacles.each(func(o *Obstacle) {
		cp := *o
		cp.CollisionBoxes = core.CloneBoxes(o.CollisionBoxes)
		out = append(out, cp)
	})
	return out
}

// Clouds returns a snapshot of the active clouds.
func (h *Horizon) Clouds() []Cloud {
	out := make([]Cloud, 0, h.clouds.len())
	h.clouds.each(func(c *Cloud) { out = append(out, *c) })
	return out
}

// Line returns the ground line.
func (h *Horizon) Line() *HorizonLine {
	return h.line
}

// Reset clears all obstacles and rewinds the ground. Clouds are kept.
func (h *Horizon) Reset() {
	h.obstacles.clear()
	h.line.Reset()
}
