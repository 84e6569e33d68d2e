package dino

import (
	"errors"
	"reflect"
	"testing"

	"github.com/allanrg4/runner/internal/config"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Obstacles.Types = nil

	_, err := New(cfg, Deps{})
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("New() error = %v, expected ErrInvalid", err)
	}
}

func TestNewDefaultsDeps(t *testing.T) {
	r, err := New(config.DefaultConfig(), Deps{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	r.Start()
	r.Update()
	r.Update()
	if !r.State().Activated {
		t.Error("runner with default deps should run")
	}
}

func TestRunnerStartsWaiting(t *testing.T) {
	r := newTestRunner(t, config.DefaultConfig(), 1)
	st := r.State()

	if st.Activated || st.Crashed || st.Paused {
		t.Errorf("initial state = %+v, expected idle", st)
	}
	if st.CurrentSpeed != 6 {
		t.Errorf("CurrentSpeed = %v, expected 6", st.CurrentSpeed)
	}

	for range 100 {
		r.Step(frameMs)
	}
	if r.State().DistanceRan != 0 {
		t.Error("distance should not grow before activation")
	}
	if r.Actor().State() != ActorWaiting {
		t.Errorf("actor state = %v, expected Waiting", r.Actor().State())
	}
}

// No obstacles appear during the clear time while distance grows every frame.
func TestRunnerClearTime(t *testing.T) {
	r := newTestRunner(t, config.DefaultConfig(), 1)
	r.Start()

	prev := 0.0
	for elapsed := 0.0; elapsed+16.6 < 3000; elapsed += 16.6 {
		res := r.Step(16.6)
		if res.GameOver != nil || res.Crashed {
			t.Fatalf("game over at %v ms", elapsed)
		}
		d := r.State().DistanceRan
		if d <= prev {
			t.Fatalf("distance did not increase at %v ms: %v -> %v", elapsed, prev, d)
		}
		prev = d
	}
	if n := len(r.Horizon().Obstacles()); n != 0 {
		t.Errorf("%d obstacles during the clear time, expected 0", n)
	}
	if s := r.State().CurrentSpeed; s <= 6 {
		t.Errorf("speed should ramp up, got %v", s)
	}
}

func TestRunnerSpeedCapped(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Runner.ClearTime = 1e9
	cfg.Runner.Acceleration = 0.5
	r := newTestRunner(t, cfg, 1)
	r.Start()

	for range 100 {
		r.Step(frameMs)
		if s := r.State().CurrentSpeed; s > cfg.Runner.MaxSpeed {
			t.Fatalf("speed %v exceeds max %v", s, cfg.Runner.MaxSpeed)
		}
	}
	if s := r.State().CurrentSpeed; s != cfg.Runner.MaxSpeed {
		t.Errorf("speed = %v, expected the cap %v", s, cfg.Runner.MaxSpeed)
	}
}

func TestRunnerAchievementSound(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Runner.ClearTime = 1e9
	r := newTestRunner(t, cfg, 1)
	r.Start()

	achievements := 0
	for range 1200 {
		res := r.Step(frameMs)
		if res.Achievement {
			achievements++
			if res.Sound != SoundScore {
				t.Errorf("achievement frame sound = %v, expected score", res.Sound)
			}
			if r.Score().ToScoreUnits(r.State().DistanceRan) < 99 {
				t.Errorf("achievement at distance %v", r.State().DistanceRan)
			}
		}
	}
	if achievements != 1 {
		t.Errorf("achievements = %d, expected 1", achievements)
	}
	if n := r.sound.count(SoundScore); n != 1 {
		t.Errorf("score sound played %d times, expected 1", n)
	}
}

func TestRunnerDistanceWraps(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Runner.ClearTime = 1e9
	cfg.Score.MaxDistanceUnits = 1
	r := newTestRunner(t, cfg, 1)
	r.Start()

	wrapped := false
	prev := 0.0
	for range 600 {
		r.Step(frameMs)
		d := r.State().DistanceRan
		if u := r.Score().ToScoreUnits(d); u > 9 {
			t.Fatalf("units %d exceed the single digit capacity", u)
		}
		if d < prev {
			wrapped = true
		}
		prev = d
	}
	if !wrapped {
		t.Error("distance never wrapped")
	}
}

// A crash reports the result, then Restart begins a fresh run.
func TestRunnerRestartAfterCrash(t *testing.T) {
	cfg := config.DefaultConfig()
	r := newTestRunner(t, cfg, 3)
	r.Start()

	over := runUntilCrash(t, r.Runner, 2000)
	if !r.State().Crashed || r.Actor().State() != ActorCrashed {
		t.Fatal("runner should be crashed")
	}
	if r.sound.count(SoundHit) != 1 {
		t.Errorf("hit sound played %d times, expected 1", r.sound.count(SoundHit))
	}
	if !over.NewHighScore || over.Distance <= 0 {
		t.Errorf("game over = %+v, expected a first high score", over)
	}
	if over.Score != r.Score().ToScoreUnits(over.Distance) {
		t.Errorf("game over score %d does not match distance %v", over.Score, over.Distance)
	}
	if r.HighScore() < over.Distance {
		t.Errorf("HighScore() = %v, expected at least %v", r.HighScore(), over.Distance)
	}

	// Crashed runners ignore frames
	before := r.State()
	if res := r.Step(frameMs); !res.Crashed {
		t.Error("frame after a crash should report Crashed")
	}
	if r.State() != before {
		t.Error("state changed while crashed")
	}

	r.Restart()
	st := r.State()
	if st.DistanceRan != 0 || st.Crashed || !st.Activated || st.Paused {
		t.Errorf("state after Restart = %+v", st)
	}
	if st.CurrentSpeed != cfg.Runner.Speed || st.RunningTime != 0 {
		t.Errorf("speed/time after Restart = %v/%v", st.CurrentSpeed, st.RunningTime)
	}
	if n := len(r.Horizon().Obstacles()); n != 0 {
		t.Errorf("obstacles after Restart = %d, expected 0", n)
	}
	if r.Actor().State() != ActorRunning {
		t.Errorf("actor after Restart = %v, expected Running", r.Actor().State())
	}
	if r.Score().HighScoreDigits() == nil {
		t.Error("Restart should keep the high score")
	}
	if res := r.Step(frameMs); res.Sound != SoundJump {
		t.Errorf("first frame after Restart sound = %v, expected jump", res.Sound)
	}
	if r.sound.count(SoundJump) != 1 {
		t.Errorf("restart sound played %d times, expected 1", r.sound.count(SoundJump))
	}
}

func TestJumpReleaseRestartsAfterClearTime(t *testing.T) {
	r := newTestRunner(t, config.DefaultConfig(), 3)
	r.Start()
	runUntilCrash(t, r.Runner, 2000)

	r.clock.advance(100)
	if err := r.Dispatch(CommandJumpReleased); err != nil {
		t.Fatal(err)
	}
	if !r.State().Crashed {
		t.Fatal("jump release right after a crash should not restart")
	}

	r.clock.advance(700)
	r.Dispatch(CommandJumpReleased)
	if r.State().Crashed {
		t.Error("jump release after the game over clear time should restart")
	}
}

func TestRunnerIntroOnFirstJump(t *testing.T) {
	cfg := config.DefaultConfig()
	r := newTestRunner(t, cfg, 1)

	r.Dispatch(CommandJumpPressed)
	if !r.State().Activated || !r.Actor().Jumping() {
		t.Fatal("first jump should activate the run")
	}
	if n := len(r.sound.sounds); n != 0 {
		t.Errorf("%d sounds played before the next frame", n)
	}
	if res := r.Step(frameMs); res.Sound != SoundJump {
		t.Errorf("frame after the jump sound = %v, expected jump", res.Sound)
	}
	if r.sound.count(SoundJump) != 1 {
		t.Errorf("jump sound played %d times, expected 1", r.sound.count(SoundJump))
	}

	sawIntro := false
	for range 400 {
		r.Step(frameMs)
		st := r.State()
		if !st.Started && st.DistanceRan != 0 {
			t.Fatal("distance grew before the run started")
		}
		if st.PlayingIntro {
			sawIntro = true
			if n := len(r.Horizon().Obstacles()); n != 0 {
				t.Fatal("obstacles spawned during the intro")
			}
		}
	}

	st := r.State()
	if !sawIntro {
		t.Error("landing the first jump should play the intro")
	}
	if st.PlayingIntro || !st.Started {
		t.Errorf("intro should have finished, state = %+v", st)
	}
	if r.Actor().X != cfg.Actor.StartX {
		t.Errorf("actor X = %d after the intro, expected %d", r.Actor().X, cfg.Actor.StartX)
	}
}

func TestRunnerActivateCommand(t *testing.T) {
	r := newTestRunner(t, config.DefaultConfig(), 1)
	r.Dispatch(CommandActivate)

	st := r.State()
	if !st.Activated || !st.PlayingIntro {
		t.Errorf("Activate should start the intro, state = %+v", st)
	}
	if r.Actor().State() != ActorRunning {
		t.Errorf("actor = %v, expected Running", r.Actor().State())
	}
}

func TestRunnerPauseAndResume(t *testing.T) {
	r := newTestRunner(t, config.DefaultConfig(), 1)
	r.Start()
	for range 10 {
		r.clock.advance(frameMs)
		r.Update()
	}

	r.Stop()
	d := r.State().DistanceRan
	for range 10 {
		r.clock.advance(frameMs)
		r.Update()
	}
	if r.State().DistanceRan != d {
		t.Error("distance changed while paused")
	}

	r.clock.advance(5000)
	r.Play()
	res := r.Update()
	if res.DeltaTime != 0 {
		t.Errorf("first frame after Play has delta %v, expected 0", res.DeltaTime)
	}
	if !r.State().Activated || r.State().Paused {
		t.Errorf("state after Play = %+v", r.State())
	}
}

func TestJumpReleaseResumesPause(t *testing.T) {
	r := newTestRunner(t, config.DefaultConfig(), 1)
	r.Start()
	r.Stop()

	r.Dispatch(CommandJumpReleased)
	if r.State().Paused {
		t.Error("jump release while paused should resume")
	}
}

func TestPlayBeforeActivationStaysIdle(t *testing.T) {
	r := newTestRunner(t, config.DefaultConfig(), 1)
	r.Stop()
	r.Play()

	if r.State().Activated {
		t.Error("resuming an idle runner should not start a run")
	}
}

func TestDuckCommands(t *testing.T) {
	r := newTestRunner(t, config.DefaultConfig(), 1)
	r.Start()

	r.Dispatch(CommandDuckPressed)
	if r.Actor().SpeedDrop() {
		t.Error("duck on the ground should not speed drop")
	}

	r.Dispatch(CommandJumpPressed)
	r.Step(frameMs)
	r.Dispatch(CommandDuckPressed)
	if !r.Actor().SpeedDrop() {
		t.Fatal("duck mid-jump should speed drop")
	}
	r.Dispatch(CommandDuckReleased)
	if !r.Actor().SpeedDrop() {
		t.Error("releasing duck should not cancel the speed drop")
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	r := newTestRunner(t, config.DefaultConfig(), 1)
	if err := r.Dispatch(Command(99)); err == nil {
		t.Error("Dispatch() of an unknown command should fail")
	}
}

func TestDispatchTableCoversCommands(t *testing.T) {
	cmds := []Command{
		CommandActivate, CommandJumpPressed, CommandJumpReleased,
		CommandDuckPressed, CommandDuckReleased, CommandRestart,
	}
	for _, c := range cmds {
		if _, ok := commandHandlers[c]; !ok {
			t.Errorf("no handler for %s", c)
		}
	}
}

// autoJump jumps when the nearest obstacle is close ahead.
func autoJump(r *Runner) {
	o, ok := r.Horizon().NearestObstacle()
	a := r.Actor()
	if ok && o.X > a.X && o.X-a.X < 100 {
		r.Dispatch(CommandJumpPressed)
	}
}

func TestRunnerDeterminism(t *testing.T) {
	run := func() (State, []Obstacle, []Cloud) {
		r := newTestRunner(t, config.DefaultConfig(), 2024)
		r.Start()
		for range 3000 {
			autoJump(r.Runner)
			if res := r.Step(frameMs); res.GameOver != nil {
				break
			}
		}
		return r.State(), r.Horizon().Obstacles(), r.Horizon().Clouds()
	}

	s1, o1, c1 := run()
	s2, o2, c2 := run()

	if s1 != s2 {
		t.Errorf("states differ:\n%+v\n%+v", s1, s2)
	}
	if len(o1) != len(o2) || len(c1) != len(c2) {
		t.Fatalf("entity counts differ: %d/%d obstacles, %d/%d clouds", len(o1), len(o2), len(c1), len(c2))
	}
	for i := range o1 {
		if o1[i].X != o2[i].X || o1[i].Size != o2[i].Size || o1[i].Gap != o2[i].Gap {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, o1[i], o2[i])
		}
	}
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Errorf("cloud %d differs: %+v vs %+v", i, c1[i], c2[i])
		}
	}
}

func TestCommandString(t *testing.T) {
	if got := CommandJumpPressed.String(); got != "jump_pressed" {
		t.Errorf("String() = %q", got)
	}
	if got := Command(99).String(); got != "command(99)" {
		t.Errorf("String() = %q", got)
	}
}

func TestRunnerWrapsOnDisplayedDistance(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Score.MaxDistanceUnits = 3
	r := newTestRunner(t, cfg, 1)
	r.Start()

	// Raw distance rounds to 999 units, but the meter shows ceil(d) = 1000.
	r.state.DistanceRan = 39979.7
	res := r.Step(0)

	if d := r.State().DistanceRan; d != 0 {
		t.Errorf("DistanceRan = %v, expected a reset to 0", d)
	}
	if res.Achievement || res.Sound != SoundNone {
		t.Errorf("wrap frame = %+v, expected no achievement and no sound", res)
	}
	if got := r.Score().Digits(); !reflect.DeepEqual(got, []int{0, 0, 0}) {
		t.Errorf("digits = %v, expected [0 0 0]", got)
	}
}

func TestOneSoundPerFrame(t *testing.T) {
	r := newTestRunner(t, config.DefaultConfig(), 1)
	r.Start()

	// The next frame reaches 100 units while a jump is queued.
	r.state.DistanceRan = 3999.5
	r.Dispatch(CommandJumpPressed)
	res := r.Step(0)

	if !res.Achievement || res.Sound != SoundScore {
		t.Fatalf("frame = %+v, expected an achievement with the score sound", res)
	}
	if len(r.sound.sounds) != 1 {
		t.Errorf("sounds played = %v, expected only score", r.sound.sounds)
	}
	if res := r.Step(frameMs); res.Sound != SoundNone {
		t.Errorf("dropped jump sound replayed on the next frame: %v", res.Sound)
	}
}
