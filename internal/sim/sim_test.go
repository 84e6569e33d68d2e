package sim

import (
	"io"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/allanrg4/runner/internal/config"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestRunIsDeterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42

	first, err := Run(config.DefaultConfig(), opts, quietLogger())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	second, err := Run(config.DefaultConfig(), opts, quietLogger())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("reports differ for the same seed:\n%+v\n%+v", first, second)
	}
	if first.Frames != opts.Frames {
		t.Errorf("Frames = %d, want %d", first.Frames, opts.Frames)
	}
}

func TestRunWithoutJumpingStopsAtFirstCrash(t *testing.T) {
	opts := DefaultOptions()
	opts.AutoJump = false
	opts.Restart = false

	rep, err := Run(config.DefaultConfig(), opts, quietLogger())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if len(rep.Runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(rep.Runs))
	}
	if rep.Frames >= opts.Frames {
		t.Errorf("ran all %d frames after the crash", rep.Frames)
	}
	if rep.Jumps != 0 {
		t.Errorf("Jumps = %d without auto-jump", rep.Jumps)
	}
	if !rep.Runs[0].NewHighScore || rep.HighScore < rep.Runs[0].Score {
		t.Errorf("high score %d does not match the only run %+v", rep.HighScore, rep.Runs[0])
	}
}

func TestAutoJumpJumps(t *testing.T) {
	rep, err := Run(config.DefaultConfig(), DefaultOptions(), quietLogger())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if rep.Jumps == 0 {
		t.Error("auto-jump never jumped")
	}
}

func TestRunRejectsNegativeFrames(t *testing.T) {
	opts := DefaultOptions()
	opts.Frames = -1
	if _, err := Run(config.DefaultConfig(), opts, quietLogger()); err == nil {
		t.Error("expected error for negative frame count")
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Runner.FPS = 0
	if _, err := Run(cfg, DefaultOptions(), quietLogger()); err == nil {
		t.Error("expected error for invalid config")
	}
}
