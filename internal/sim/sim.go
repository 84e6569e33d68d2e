// Package sim runs the simulation without a terminal, on a virtual clock.
// It backs the headless "runner sim" command and replays runs for a seed.
package sim

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/allanrg4/runner/internal/config"
	"github.com/allanrg4/runner/internal/games/dino"
)

// Options controls a headless session.
type Options struct {
	Frames    int     // Frames to simulate
	FPS       int     // Virtual frame rate
	Seed      int64   // Obstacle sequence seed
	AutoJump  bool    // Jump over obstacles automatically
	Restart   bool    // Start a new run after each crash
	Lookahead float64 // Jump trigger distance in reference frames of travel
}

// DefaultOptions returns one minute at 60fps with auto-jumping.
func DefaultOptions() Options {
	return Options{
		Frames:    60 * 60,
		FPS:       60,
		Seed:      1,
		AutoJump:  true,
		Restart:   true,
		Lookahead: 12,
	}
}

// Report summarizes a headless session.
type Report struct {
	Frames    int
	Runs      []dino.GameOver
	Jumps     int
	HighScore int // Best distance in score units
	Distance  int // Score units of the run still in progress
}

// clock is advanced by exactly one frame per step.
type clock struct {
	ms float64
}

func (c *clock) Now() float64 { return c.ms }

// Run simulates opts.Frames frames. Identical options yield identical reports.
func Run(cfg config.Config, opts Options, logger *log.Logger) (Report, error) {
	if opts.Frames < 0 {
		return Report{}, fmt.Errorf("sim: negative frame count %d", opts.Frames)
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if logger == nil {
		logger = log.Default()
	}

	clk := &clock{}
	runner, err := dino.New(cfg, dino.Deps{Clock: clk, Random: dino.NewRandom(opts.Seed)})
	if err != nil {
		return Report{}, fmt.Errorf("sim: %w", err)
	}
	step := 1000 / float64(opts.FPS)

	var rep Report
	runner.Start()
	for range opts.Frames {
		if opts.AutoJump && shouldJump(runner, opts.Lookahead) {
			if runner.Dispatch(dino.CommandJumpPressed) == nil {
				rep.Jumps++
			}
		}

		clk.ms += step
		res := runner.Update()
		rep.Frames++

		if res.GameOver != nil {
			rep.Runs = append(rep.Runs, *res.GameOver)
			logger.Info("run ended",
				"run", len(rep.Runs),
				"frame", rep.Frames,
				"score", res.GameOver.Score,
				"high_score", res.GameOver.NewHighScore,
			)
			if !opts.Restart {
				break
			}
			//nolint:errcheck // Known command
			runner.Dispatch(dino.CommandRestart)
		}
	}

	rep.HighScore = runner.Score().ToScoreUnits(runner.HighScore())
	if !runner.State().Crashed {
		rep.Distance = runner.Score().ToScoreUnits(runner.State().DistanceRan)
	}
	return rep, nil
}

// shouldJump reports whether the nearest obstacle is close enough ahead
// that a jump started now clears it.
func shouldJump(r *dino.Runner, lookahead float64) bool {
	a := r.Actor()
	if a.Jumping() {
		return false
	}
	o, ok := r.Horizon().NearestObstacle()
	if !ok {
		return false
	}
	ahead := o.X - (a.X + r.Config().Actor.Width)
	return ahead >= 0 && float64(ahead) <= r.State().CurrentSpeed*lookahead
}
