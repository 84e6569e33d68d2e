package dino

// Sprite identifies a family of images on the sprite sheet.
type Sprite int

const (
	SpriteActor Sprite = iota
	SpriteObstacle
	SpriteCloud
	SpriteHorizon
	SpriteDigit
	SpriteGameOver
)

// String returns a human-readable name for the sprite.
func (s Sprite) String() string {
	switch s {
	case SpriteActor:
		return "actor"
	case SpriteObstacle:
		return "obstacle"
	case SpriteCloud:
		return "cloud"
	case SpriteHorizon:
		return "horizon"
	case SpriteDigit:
		return "digit"
	case SpriteGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Frame selects one sub-rectangle of the sprite sheet. SourceX is the
// sheet x offset within the sprite family; Variant names the obstacle type
// for SpriteObstacle. Scale is the horizontal repeat count for grouped
// obstacles and 1 otherwise.
type Frame struct {
	Sprite  Sprite
	Variant string
	SourceX int
	Width   int
	Height  int
	Scale   int
}

// Renderer receives one call per visible entity per frame.
// It owns the pixel layout of the sprite sheet and any output scaling.
type Renderer interface {
	Render(f Frame, x, y int)
}

// Sound identifies a sound effect.
type Sound int

const (
	SoundNone Sound = iota
	SoundJump
	SoundScore
	SoundHit
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundNone:
		return "none"
	case SoundJump:
		return "jump"
	case SoundScore:
		return "score"
	case SoundHit:
		return "hit"
	default:
		return "unknown"
	}
}

// SoundPlayer plays sound effects. Implementations must not block.
type SoundPlayer interface {
	PlaySound(s Sound)
}

// Clock is a monotonic time source in milliseconds.
type Clock interface {
	Now() float64
}

type silentPlayer struct{}

func (silentPlayer) PlaySound(Sound) {}
