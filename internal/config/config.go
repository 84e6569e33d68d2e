// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the runner simulation.
//
// Every tunable of the simulation lives in one Config value. Each component
// owns exactly one section, so a constant such as gravity is defined once
// (Actor.Gravity) rather than duplicated between the orchestrator and the
// actor.
package config

import "github.com/allanrg4/runner/internal/core"

// Config contains all configuration for the runner simulation.
type Config struct {
	Runner    RunnerConfig   `yaml:"runner"`
	Actor     ActorConfig    `yaml:"actor"`
	Horizon   HorizonConfig  `yaml:"horizon"`
	Cloud     CloudConfig    `yaml:"cloud"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Score     ScoreConfig    `yaml:"score"`
}

// RunnerConfig holds the orchestrator's speed curve, timing and world size.
type RunnerConfig struct {
	Width             int     `yaml:"width"`               // World width in pixels
	Height            int     `yaml:"height"`              // World height in pixels
	BottomPad         int     `yaml:"bottom_pad"`          // Space below the ground line
	FPS               float64 `yaml:"fps"`                 // Reference frame rate for speed units
	Speed             float64 `yaml:"speed"`               // Initial speed in pixels per reference frame
	MaxSpeed          float64 `yaml:"max_speed"`           // Speed cap
	Acceleration      float64 `yaml:"acceleration"`        // Added to speed every collision-free frame
	ClearTime         float64 `yaml:"clear_time"`          // ms of running before obstacles appear
	GameOverClearTime float64 `yaml:"game_over_clear_time"` // ms after a crash before jump restarts
	GapCoefficient    float64 `yaml:"gap_coefficient"`     // Scales obstacle min gaps
}

// MsPerFrame returns the duration of one reference frame in milliseconds.
func (r RunnerConfig) MsPerFrame() float64 {
	return 1000 / r.FPS
}

// ActorConfig defines the runner character's physics, size and animation.
type ActorConfig struct {
	Width                int     `yaml:"width"`
	Height               int     `yaml:"height"`
	StartX               int     `yaml:"start_x"`
	Gravity              float64 `yaml:"gravity"`
	InitialJumpVelocity  float64 `yaml:"initial_jump_velocity"` // Negative is upward
	DropVelocity         float64 `yaml:"drop_velocity"`
	MinJumpHeight        int     `yaml:"min_jump_height"` // Above ground, before a release may end the ascent
	MaxJumpHeight        int     `yaml:"max_jump_height"` // Above ground, where the ascent is force-ended
	SpeedDropCoefficient float64 `yaml:"speed_drop_coefficient"`
	IntroDuration        float64 `yaml:"intro_duration"` // ms for the walk-in from x=0 to StartX
	BlinkTiming          float64 `yaml:"blink_timing"`   // Upper bound of the random blink delay in ms

	CollisionBoxes []core.CollisionBox `yaml:"collision_boxes"`
	Animation      AnimationConfig     `yaml:"animation"`
}

// AnimationConfig maps each actor state to its frame list.
type AnimationConfig struct {
	Waiting AnimationFrames `yaml:"waiting"`
	Running AnimationFrames `yaml:"running"`
	Jumping AnimationFrames `yaml:"jumping"`
	Crashed AnimationFrames `yaml:"crashed"`
}

// AnimationFrames is an ordered list of sprite-sheet x offsets and the
// duration each one is shown.
type AnimationFrames struct {
	Frames     []int   `yaml:"frames"`
	MsPerFrame float64 `yaml:"ms_per_frame"`
}

// HorizonConfig defines cloud scheduling and the scrolling ground line.
type HorizonConfig struct {
	CloudSpeed     float64 `yaml:"cloud_speed"`     // Cloud speed relative to the ground, per 1000 ms
	CloudFrequency float64 `yaml:"cloud_frequency"` // Chance per eligible frame of adding a cloud
	MaxClouds      int     `yaml:"max_clouds"`
	LineWidth      int     `yaml:"line_width"`     // Width of one ground segment
	LineHeight     int     `yaml:"line_height"`    // Height of the ground sprite
	LineY          int     `yaml:"line_y"`         // Ground sprite y position
	BumpThreshold  float64 `yaml:"bump_threshold"` // Chance threshold for a flat segment
}

// CloudConfig defines cloud size, spacing and sky level.
type CloudConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	MinGap      int `yaml:"min_gap"`
	MaxGap      int `yaml:"max_gap"`
	MaxSkyLevel int `yaml:"max_sky_level"` // Highest cloud (smallest y)
	MinSkyLevel int `yaml:"min_sky_level"` // Lowest cloud (largest y)
}

// ObstacleConfig holds the obstacle catalog and grouping limits.
type ObstacleConfig struct {
	MaxLength         int            `yaml:"max_length"`          // Largest group size
	MaxGapCoefficient float64        `yaml:"max_gap_coefficient"` // Upper gap bound as a multiple of the lower
	Types             []ObstacleType `yaml:"types"`
}

// ObstacleType is one read-only catalog entry.
type ObstacleType struct {
	Name           string              `yaml:"name"`
	Width          int                 `yaml:"width"`
	Height         int                 `yaml:"height"`
	YPos           int                 `yaml:"y_pos"`
	MultipleSpeed  float64             `yaml:"multiple_speed"` // Grouping only at or above this speed
	MinGap         int                 `yaml:"min_gap"`
	CollisionBoxes []core.CollisionBox `yaml:"collision_boxes"`
}

// ScoreConfig defines the distance meter and achievement flash.
type ScoreConfig struct {
	MaxDistanceUnits    int     `yaml:"max_distance_units"`
	AchievementDistance int     `yaml:"achievement_distance"`
	Coefficient         float64 `yaml:"coefficient"` // Score units per pixel
	FlashDuration       float64 `yaml:"flash_duration"`
	FlashIterations     int     `yaml:"flash_iterations"`
	DigitWidth          int     `yaml:"digit_width"`      // Source width of one digit sprite
	DigitHeight         int     `yaml:"digit_height"`     // Source height of one digit sprite
	DigitDestWidth      int     `yaml:"digit_dest_width"` // Horizontal advance per digit
}

// GroundY returns the actor's resting y position.
func (c *Config) GroundY() int {
	return c.Runner.Height - c.Actor.Height - c.Runner.BottomPad
}
