package dino

import (
	"math"

	"github.com/allanrg4/runner/internal/config"
	"github.com/allanrg4/runner/internal/core"
)

// ActorState is a state of the runner character.
type ActorState int

const (
	ActorWaiting ActorState = iota
	ActorRunning
	ActorJumping
	ActorCrashed
)

// String returns a human-readable name for the state.
func (s ActorState) String() string {
	switch s {
	case ActorWaiting:
		return "Waiting"
	case ActorRunning:
		return "Running"
	case ActorJumping:
		return "Jumping"
	case ActorCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// Actor is the player-controlled runner: jump physics plus an animation
// state machine. Physics and animation advance independently.
type Actor struct {
	cfg *config.ActorConfig
	rng RandomSource

	X, Y     int     // Top-left position in world pixels
	velocity float64 // Vertical velocity, negative is upward

	groundY    int // Resting Y
	minJumpY   int // Y above which the minimum height is reached
	maxJumpY   int // Y above which the ascent is force-ended
	state      ActorState
	jumpCount  int
	reachedMin bool
	speedDrop  bool

	// Animation
	frames     []int
	msPerFrame float64
	frameIndex int
	timer      float64
	drawFrame  int // Sheet x offset last selected for drawing

	// Blinking while waiting
	blinkDelay float64
	blinkTimer float64

	playingIntro bool
}

// NewActor creates an actor standing on the ground in the Waiting state.
func NewActor(cfg *config.Config, rng RandomSource) *Actor {
	groundY := cfg.GroundY()
	a := &Actor{
		cfg:      &cfg.Actor,
		rng:      rng,
		groundY:  groundY,
		minJumpY: groundY - cfg.Actor.MinJumpHeight,
		maxJumpY: groundY - cfg.Actor.MaxJumpHeight,
	}
	a.Y = groundY
	a.SetState(ActorWaiting)
	return a
}

// State returns the current state.
func (a *Actor) State() ActorState {
	return a.state
}

// Jumping reports whether a jump is in progress.
func (a *Actor) Jumping() bool {
	return a.state == ActorJumping
}

// JumpCount returns the number of completed jumps since the last reset.
func (a *Actor) JumpCount() int {
	return a.jumpCount
}

// Velocity returns the vertical velocity.
func (a *Actor) Velocity() float64 {
	return a.velocity
}

// GroundY returns the resting Y position.
func (a *Actor) GroundY() int {
	return a.groundY
}

// ReachedMinHeight reports whether the current jump passed the minimum height.
func (a *Actor) ReachedMinHeight() bool {
	return a.reachedMin
}

// SpeedDrop reports whether the fast-fall override is active.
func (a *Actor) SpeedDrop() bool {
	return a.speedDrop
}

// Box returns the actor's full sprite extent in world space.
func (a *Actor) Box() core.CollisionBox {
	return core.NewCollisionBox(a.X, a.Y, a.cfg.Width, a.cfg.Height)
}

// CollisionBoxes returns the actor's sprite-relative sub-boxes.
func (a *Actor) CollisionBoxes() []core.CollisionBox {
	return a.cfg.CollisionBoxes
}

// SetState switches the animation to a state's frame list.
func (a *Actor) SetState(s ActorState) {
	a.state = s
	anim := a.animation(s)
	a.frames = anim.Frames
	a.msPerFrame = anim.MsPerFrame
	a.frameIndex = 0
	a.timer = 0
	if s == ActorWaiting {
		a.blinkTimer = 0
		a.setBlinkDelay()
	}
}

func (a *Actor) animation(s ActorState) config.AnimationFrames {
	switch s {
	case ActorRunning:
		return a.cfg.Animation.Running
	case ActorJumping:
		return a.cfg.Animation.Jumping
	case ActorCrashed:
		return a.cfg.Animation.Crashed
	default:
		return a.cfg.Animation.Waiting
	}
}

// Update advances the animation (and the intro walk) by deltaTime ms.
func (a *Actor) Update(deltaTime float64) {
	a.timer += deltaTime

	if a.playingIntro && a.X < a.cfg.StartX {
		a.X += int(math.Round(float64(a.cfg.StartX) / a.cfg.IntroDuration * deltaTime))
		if a.X > a.cfg.StartX {
			a.X = a.cfg.StartX
		}
	}

	if a.state == ActorWaiting {
		a.blink(deltaTime)
	} else {
		a.drawFrame = a.frames[a.frameIndex]
	}

	if a.timer >= a.msPerFrame {
		a.frameIndex++
		if a.frameIndex >= len(a.frames) {
			a.frameIndex = 0
		}
		a.timer = 0
	}
}

// blink holds the open-eye frame until the blink delay elapses, then plays
// the waiting frames once and rolls a new delay.
func (a *Actor) blink(deltaTime float64) {
	a.blinkTimer += deltaTime
	if a.blinkTimer < a.blinkDelay {
		return
	}
	a.drawFrame = a.frames[a.frameIndex]
	if a.frameIndex == len(a.frames)-1 {
		a.setBlinkDelay()
		a.blinkTimer = 0
	}
}

func (a *Actor) setBlinkDelay() {
	a.blinkDelay = math.Ceil(a.rng.Float64() * a.cfg.BlinkTiming)
}

// BlinkDelay returns the current random blink interval in ms.
func (a *Actor) BlinkDelay() float64 {
	return a.blinkDelay
}

// DrawFrame returns the sheet x offset to draw this frame.
func (a *Actor) DrawFrame() int {
	return a.drawFrame
}

// StartJump begins a jump. It has no effect while already jumping.
func (a *Actor) StartJump() bool {
	if a.Jumping() || a.state == ActorCrashed {
		return false
	}
	a.SetState(ActorJumping)
	a.velocity = a.cfg.InitialJumpVelocity
	a.reachedMin = false
	a.speedDrop = false
	return true
}

// EndJump ends the ascent early once the minimum height has been reached,
// which allows short hops.
func (a *Actor) EndJump() {
	if a.reachedMin && a.velocity < a.cfg.DropVelocity {
		a.velocity = a.cfg.DropVelocity
	}
}

// SetSpeedDrop starts a fast fall. Only valid mid-jump; it cannot be
// cancelled and clears when the jump completes.
func (a *Actor) SetSpeedDrop() {
	if !a.Jumping() {
		return
	}
	a.speedDrop = true
	a.velocity = 1
}

// UpdateJump integrates one frame of jump physics. Time is measured in
// units of the jumping animation's frame duration.
func (a *Actor) UpdateJump(deltaTime float64) {
	if !a.Jumping() {
		return
	}
	framesElapsed := deltaTime / a.msPerFrame

	coefficient := 1.0
	if a.speedDrop {
		coefficient = a.cfg.SpeedDropCoefficient
	}
	a.Y += int(math.Round(a.velocity * coefficient * framesElapsed))
	a.velocity += a.cfg.Gravity * framesElapsed

	if a.Y < a.minJumpY || a.speedDrop {
		a.reachedMin = true
	}
	if a.Y < a.maxJumpY || a.speedDrop {
		a.EndJump()
	}

	// Landed. Velocity must be downward so a zero-length first frame
	// does not end the jump before it leaves the ground.
	if a.Y >= a.groundY && a.velocity > 0 {
		a.land()
	}
}

func (a *Actor) land() {
	a.Y = a.groundY
	a.velocity = 0
	a.speedDrop = false
	a.reachedMin = false
	a.jumpCount++
	a.SetState(ActorRunning)
}

// Crash moves the actor into the terminal Crashed state.
func (a *Actor) Crash() {
	a.SetState(ActorCrashed)
	a.drawFrame = a.frames[0]
}

// StartIntro positions the actor off the left edge for the walk-in.
func (a *Actor) StartIntro() {
	a.playingIntro = true
	a.X = 0
}

// EndIntro finishes the walk-in at the start position.
func (a *Actor) EndIntro() {
	a.playingIntro = false
	a.X = a.cfg.StartX
}

// Reset returns the actor to a running stance on the ground.
func (a *Actor) Reset() {
	a.Y = a.groundY
	a.X = a.cfg.StartX
	a.velocity = 0
	a.speedDrop = false
	a.reachedMin = false
	a.jumpCount = 0
	a.playingIntro = false
	a.SetState(ActorRunning)
}
