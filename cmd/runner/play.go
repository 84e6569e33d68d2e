package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/allanrg4/runner/internal/core"
	"github.com/allanrg4/runner/internal/games/dino"
	"github.com/allanrg4/runner/internal/platform/audio"
	"github.com/allanrg4/runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up   - Start, jump (hold for a higher jump)
  Down/S     - Drop fast while airborne
  P/Esc      - Pause
  Enter/R    - Restart
  Q/Ctrl+C   - Quit

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = seed()

	player := audio.New(flagMute, logger)
	if p, ok := player.(*audio.Player); ok {
		defer p.Close()
	}

	runner, err := dino.New(gameCfg, dino.Deps{
		Random: dino.NewRandom(cfg.Seed),
		Sound:  player,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	var best *dino.GameOver
	runErr := tui.Run(runner, cfg, tui.WithGameOverHook(func(over dino.GameOver) {
		if over.NewHighScore {
			best = &over
		}
	}))
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if best != nil {
		fmt.Printf("High score: %d\n", best.Score)
	}
}
