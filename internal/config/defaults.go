package config

import (
	_ "embed"

	"github.com/allanrg4/runner/internal/core"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Runner: RunnerConfig{
			Width:             600,
			Height:            150,
			BottomPad:         10,
			FPS:               60,
			Speed:             6,
			MaxSpeed:          12,
			Acceleration:      0.001,
			ClearTime:         3000,
			GameOverClearTime: 750,
			GapCoefficient:    0.6,
		},
		Actor: ActorConfig{
			Width:                44,
			Height:               47,
			StartX:               50,
			Gravity:              0.6,
			InitialJumpVelocity:  -10,
			DropVelocity:         -5,
			MinJumpHeight:        30,
			MaxJumpHeight:        63,
			SpeedDropCoefficient: 3,
			IntroDuration:        1500,
			BlinkTiming:          7000,
			CollisionBoxes: []core.CollisionBox{
				{X: 1, Y: -1, W: 30, H: 26},
				{X: 32, Y: 0, W: 8, H: 16},
				{X: 10, Y: 35, W: 14, H: 8},
				{X: 1, Y: 24, W: 29, H: 5},
				{X: 5, Y: 30, W: 21, H: 4},
				{X: 9, Y: 34, W: 15, H: 4},
			},
			Animation: AnimationConfig{
				Waiting: AnimationFrames{Frames: []int{44, 0}, MsPerFrame: 1000.0 / 3},
				Running: AnimationFrames{Frames: []int{88, 132}, MsPerFrame: 1000.0 / 12},
				Jumping: AnimationFrames{Frames: []int{0}, MsPerFrame: 1000.0 / 60},
				Crashed: AnimationFrames{Frames: []int{220}, MsPerFrame: 1000.0 / 60},
			},
		},
		Horizon: HorizonConfig{
			CloudSpeed:     0.2,
			CloudFrequency: 0.5,
			MaxClouds:      6,
			LineWidth:      600,
			LineHeight:     12,
			LineY:          127,
			BumpThreshold:  0.5,
		},
		Cloud: CloudConfig{
			Width:       46,
			Height:      14,
			MinGap:      100,
			MaxGap:      400,
			MaxSkyLevel: 30,
			MinSkyLevel: 71,
		},
		Obstacles: ObstacleConfig{
			MaxLength:         3,
			MaxGapCoefficient: 1.5,
			Types: []ObstacleType{
				{
					Name:          "cactus_small",
					Width:         17,
					Height:        35,
					YPos:          105,
					MultipleSpeed: 3,
					MinGap:        120,
					CollisionBoxes: []core.CollisionBox{
						{X: 0, Y: 7, W: 5, H: 27},
						{X: 4, Y: 0, W: 6, H: 34},
						{X: 10, Y: 4, W: 7, H: 14},
					},
				},
				{
					Name:          "cactus_large",
					Width:         25,
					Height:        50,
					YPos:          90,
					MultipleSpeed: 6,
					MinGap:        120,
					CollisionBoxes: []core.CollisionBox{
						{X: 0, Y: 12, W: 7, H: 38},
						{X: 8, Y: 0, W: 7, H: 49},
						{X: 13, Y: 10, W: 10, H: 38},
					},
				},
			},
		},
		Score: ScoreConfig{
			MaxDistanceUnits:    5,
			AchievementDistance: 100,
			Coefficient:         0.025,
			FlashDuration:       250,
			FlashIterations:     3,
			DigitWidth:          10,
			DigitHeight:         13,
			DigitDestWidth:      11,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
