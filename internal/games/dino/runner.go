// Package dino implements the deterministic simulation of an endless
// runner: a character runs at increasing speed, jumps over procedurally
// spawned obstacles and scores by distance until a collision ends the run.
//
// The package has no rendering, audio or input code. A platform layer
// schedules frames by calling Runner.Update, feeds input through
// Runner.Dispatch and draws with Runner.Draw.
package dino

import (
	"fmt"
	"math"
	"time"

	"github.com/allanrg4/runner/internal/config"
)

// State is the orchestrator's per-run state.
type State struct {
	DeltaTime    float64 // ms since the previous frame
	RunningTime  float64 // ms since the run started
	DistanceRan  float64 // Pixels, reset on wraparound
	CurrentSpeed float64 // Pixels per reference frame
	Activated    bool    // A run is in progress
	Started      bool    // The intro has begun or the run started directly
	PlayingIntro bool
	Crashed      bool
	Paused       bool
}

// GameOver is reported on the frame a run ends.
type GameOver struct {
	Distance     float64 // Final pixel distance
	Score        int     // Final distance in score units
	NewHighScore bool
}

// FrameResult is what happened during one frame.
type FrameResult struct {
	DeltaTime   float64
	Crashed     bool
	Sound       Sound // At most one per frame: hit, then score, then a queued jump
	Achievement bool  // An achievement was reached this frame
	GameOver    *GameOver
}

// Deps are the collaborators the simulation needs. Nil fields get
// defaults: the system clock, a time-seeded generator and no sound.
type Deps struct {
	Clock  Clock
	Random RandomSource
	Sound  SoundPlayer
}

// Runner orchestrates one game. It is not safe for concurrent use.
type Runner struct {
	cfg   *config.Config
	clock Clock
	rng   RandomSource
	sound SoundPlayer

	actor   *Actor
	horizon *Horizon
	score   *ScoreTracker

	state State

	time           float64 // Last clock sample
	hasTime        bool
	introTimer     float64
	crashTime      float64
	highestScore   float64
	resumeActivate bool
	pendingSound   Sound // Queued by a command, played by the next frame
}

// New validates cfg and creates a runner in the waiting state.
func New(cfg config.Config, deps Deps) (*Runner, error) {
	if err := config.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("dino: %w", err)
	}
	if deps.Clock == nil {
		deps.Clock = NewSystemClock()
	}
	if deps.Random == nil {
		deps.Random = NewRandom(0)
	}
	if deps.Sound == nil {
		deps.Sound = silentPlayer{}
	}

	r := &Runner{
		cfg:   &cfg,
		clock: deps.Clock,
		rng:   deps.Random,
		sound: deps.Sound,
	}
	r.actor = NewActor(r.cfg, r.rng)
	r.horizon = NewHorizon(r.cfg, r.rng)
	r.score = NewScoreTracker(&r.cfg.Score)
	r.state.CurrentSpeed = cfg.Runner.Speed
	return r, nil
}

// Config returns the configuration the runner was built with.
func (r *Runner) Config() *config.Config {
	return r.cfg
}

// State returns a copy of the orchestrator state.
func (r *Runner) State() State {
	return r.state
}

// Actor returns the runner character.
func (r *Runner) Actor() *Actor {
	return r.actor
}

// Horizon returns the background and obstacle composer.
func (r *Runner) Horizon() *Horizon {
	return r.horizon
}

// Score returns the score tracker.
func (r *Runner) Score() *ScoreTracker {
	return r.score
}

// HighScore returns the best distance of this process, in pixels.
func (r *Runner) HighScore() float64 {
	return r.highestScore
}

// Update samples the clock and runs one frame with the elapsed time.
func (r *Runner) Update() FrameResult {
	now := r.clock.Now()
	deltaTime := 0.0
	if r.hasTime {
		deltaTime = now - r.time
	}
	r.time = now
	r.hasTime = true
	return r.Step(deltaTime)
}

// Step runs one frame of deltaTime milliseconds. Components are updated
// in a fixed order: jump physics, horizon, collision, distance, score and
// finally the actor's animation.
func (r *Runner) Step(deltaTime float64) FrameResult {
	st := &r.state
	res := FrameResult{DeltaTime: deltaTime}
	if st.Paused || st.Crashed {
		res.Crashed = st.Crashed
		return res
	}
	st.DeltaTime = deltaTime
	res.Sound, r.pendingSound = r.pendingSound, SoundNone

	if st.Activated {
		if r.actor.Jumping() {
			r.actor.UpdateJump(deltaTime)
		}

		st.RunningTime += deltaTime
		hasObstacles := st.RunningTime > r.cfg.Runner.ClearTime

		// The first landing starts the intro.
		if r.actor.JumpCount() == 1 && !st.PlayingIntro && !st.Started {
			r.playIntro()
		}

		if st.PlayingIntro {
			r.horizon.Update(0, st.CurrentSpeed, hasObstacles)
		} else {
			if !st.Started {
				deltaTime = 0
			}
			r.horizon.Update(deltaTime, st.CurrentSpeed, hasObstacles)
		}

		collided := false
		if hasObstacles {
			if o, ok := r.horizon.NearestObstacle(); ok {
				_, collided = CheckForCollision(o, r.actor)
			}
		}

		if !collided {
			st.DistanceRan += st.CurrentSpeed * deltaTime / r.cfg.Runner.MsPerFrame()
			if st.CurrentSpeed < r.cfg.Runner.MaxSpeed {
				st.CurrentSpeed = math.Min(st.CurrentSpeed+r.cfg.Runner.Acceleration, r.cfg.Runner.MaxSpeed)
			}
		} else {
			res.GameOver = r.gameOver()
			res.Sound = SoundHit
		}

		// The meter shows the ceiled distance, so wrap on that value.
		if r.score.ToScoreUnits(math.Ceil(st.DistanceRan)) > r.score.MaxScore() {
			st.DistanceRan = 0
		}

		if r.score.Update(deltaTime, math.Ceil(st.DistanceRan)) {
			res.Achievement = true
			if res.Sound != SoundHit {
				res.Sound = SoundScore
			}
		}

		if st.PlayingIntro {
			r.introTimer += deltaTime
			if r.introTimer >= r.cfg.Actor.IntroDuration {
				r.startGame()
			}
		}
	}

	if !st.Crashed {
		r.actor.Update(deltaTime)
	}

	if res.Sound != SoundNone {
		r.sound.PlaySound(res.Sound)
	}
	res.Crashed = st.Crashed
	return res
}

// playIntro begins the walk-in that precedes the first scrolling frame.
func (r *Runner) playIntro() {
	st := &r.state
	if st.Started || st.Crashed {
		return
	}
	st.PlayingIntro = true
	st.Started = true
	st.Activated = true
	r.introTimer = 0
	r.actor.StartIntro()
	if r.actor.State() == ActorWaiting {
		r.actor.SetState(ActorRunning)
	}
}

// startGame ends the intro. Running time restarts so the obstacle-free
// window is measured from here.
func (r *Runner) startGame() {
	r.state.PlayingIntro = false
	r.state.RunningTime = 0
	r.introTimer = 0
	r.actor.EndIntro()
}

func (r *Runner) gameOver() *GameOver {
	st := &r.state
	r.Stop()
	st.Crashed = true
	r.crashTime = r.clock.Now()
	r.score.ClearAchievement()
	r.actor.Crash()

	over := &GameOver{
		Distance: st.DistanceRan,
		Score:    r.score.ToScoreUnits(st.DistanceRan),
	}
	if st.DistanceRan > r.highestScore {
		r.highestScore = math.Ceil(st.DistanceRan)
		r.score.SetHighScore(r.highestScore)
		over.NewHighScore = true
	}
	return over
}

// Start activates a run immediately, skipping the intro.
func (r *Runner) Start() {
	st := &r.state
	if st.Activated || st.Crashed {
		return
	}
	st.Activated = true
	st.Started = true
	st.Paused = false
	r.actor.Reset()
	r.resample()
}

// Stop pauses the simulation. Frames are ignored until Play.
func (r *Runner) Stop() {
	if r.state.Paused {
		return
	}
	r.resumeActivate = r.state.Activated
	r.state.Activated = false
	r.state.Paused = true
}

// Play resumes after Stop. The clock is re-sampled so the pause does not
// appear as one long frame.
func (r *Runner) Play() {
	st := &r.state
	if st.Crashed || !st.Paused {
		return
	}
	st.Activated = r.resumeActivate
	st.Paused = false
	r.resample()
}

// Restart begins a new run, keeping the high score.
func (r *Runner) Restart() {
	st := &r.state
	st.RunningTime = 0
	st.DistanceRan = 0
	st.CurrentSpeed = r.cfg.Runner.Speed
	st.Activated = true
	st.Started = true
	st.PlayingIntro = false
	st.Crashed = false
	st.Paused = false
	r.introTimer = 0

	r.score.Reset()
	r.horizon.Reset()
	r.actor.Reset()
	r.resample()
	r.pendingSound = SoundJump
}

func (r *Runner) resample() {
	r.time = r.clock.Now()
	r.hasTime = true
}

// CrashElapsed returns the milliseconds since the last crash.
func (r *Runner) CrashElapsed() float64 {
	return r.clock.Now() - r.crashTime
}

type systemClock struct {
	start time.Time
}

// NewSystemClock returns a monotonic Clock measuring from its creation.
func NewSystemClock() Clock {
	return systemClock{start: time.Now()}
}

func (c systemClock) Now() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}
