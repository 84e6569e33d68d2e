package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks the static configuration the simulation relies on.
// A malformed catalog is a startup error, never a runtime condition.
func Validate(cfg *Config) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format+": %w", append(args, ErrInvalid)...))
		}
	}

	r := cfg.Runner
	check(r.Width > 0 && r.Height > 0, "runner dimensions must be positive, got %dx%d", r.Width, r.Height)
	check(r.FPS > 0, "runner.fps must be positive, got %v", r.FPS)
	check(r.Speed > 0, "runner.speed must be positive, got %v", r.Speed)
	check(r.MaxSpeed >= r.Speed, "runner.max_speed %v is below runner.speed %v", r.MaxSpeed, r.Speed)
	check(r.Acceleration >= 0, "runner.acceleration must not be negative")
	check(r.GapCoefficient > 0, "runner.gap_coefficient must be positive")

	a := cfg.Actor
	check(a.Width > 0 && a.Height > 0, "actor dimensions must be positive, got %dx%d", a.Width, a.Height)
	check(a.InitialJumpVelocity < 0, "actor.initial_jump_velocity must be negative (upward), got %v", a.InitialJumpVelocity)
	check(a.Gravity > 0, "actor.gravity must be positive")
	check(a.MinJumpHeight >= 0 && a.MaxJumpHeight >= a.MinJumpHeight,
		"actor jump heights must satisfy 0 <= min (%d) <= max (%d)", a.MinJumpHeight, a.MaxJumpHeight)
	check(len(a.CollisionBoxes) > 0, "actor.collision_boxes must not be empty")
	check(a.IntroDuration > 0, "actor.intro_duration must be positive")
	for name, frames := range map[string]AnimationFrames{
		"waiting": a.Animation.Waiting,
		"running": a.Animation.Running,
		"jumping": a.Animation.Jumping,
		"crashed": a.Animation.Crashed,
	} {
		check(len(frames.Frames) > 0, "actor.animation.%s.frames must not be empty", name)
		check(frames.MsPerFrame > 0, "actor.animation.%s.ms_per_frame must be positive", name)
	}

	h := cfg.Horizon
	check(h.LineWidth > 0, "horizon.line_width must be positive")
	check(h.MaxClouds >= 0, "horizon.max_clouds must not be negative")

	c := cfg.Cloud
	check(c.MinGap <= c.MaxGap, "cloud.min_gap %d exceeds cloud.max_gap %d", c.MinGap, c.MaxGap)
	check(c.MaxSkyLevel <= c.MinSkyLevel, "cloud.max_sky_level %d exceeds cloud.min_sky_level %d", c.MaxSkyLevel, c.MinSkyLevel)

	o := cfg.Obstacles
	check(o.MaxLength >= 1, "obstacles.max_length must be at least 1, got %d", o.MaxLength)
	check(o.MaxGapCoefficient >= 1, "obstacles.max_gap_coefficient must be at least 1")
	check(len(o.Types) > 0, "obstacles.types must not be empty")
	for i, t := range o.Types {
		check(t.Width > 0 && t.Height > 0, "obstacle %d (%s) dimensions must be positive", i, t.Name)
		check(len(t.CollisionBoxes) > 0, "obstacle %d (%s) has no collision boxes", i, t.Name)
		if o.MaxLength > 1 {
			check(len(t.CollisionBoxes) >= 3,
				"obstacle %d (%s) needs at least 3 collision boxes to be grouped, has %d", i, t.Name, len(t.CollisionBoxes))
		}
	}

	s := cfg.Score
	check(s.MaxDistanceUnits >= 1 && s.MaxDistanceUnits <= 9,
		"score.max_distance_units must be in [1, 9], got %d", s.MaxDistanceUnits)
	check(s.AchievementDistance > 0, "score.achievement_distance must be positive")
	check(s.Coefficient > 0, "score.coefficient must be positive")
	check(s.FlashDuration > 0, "score.flash_duration must be positive")
	check(s.FlashIterations >= 0, "score.flash_iterations must not be negative")

	return errors.Join(errs...)
}
