package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/allanrg4/runner/internal/sim"
)

var (
	flagFrames    int
	flagAutoJump  bool
	flagNoRestart bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Simulate runs without a terminal",
	Long: `Run the game headlessly on a virtual clock and report every crash.
The same --seed, --fps and config always produce the same report.

Examples:
  runner sim --seed 42
  runner sim --frames 36000 --autojump=false
  runner sim --difficulty hard --no-restart`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	defaults := sim.DefaultOptions()
	simCmd.Flags().IntVar(&flagFrames, "frames", defaults.Frames, "Number of frames to simulate")
	simCmd.Flags().BoolVar(&flagAutoJump, "autojump", defaults.AutoJump, "Jump over obstacles automatically")
	simCmd.Flags().BoolVar(&flagNoRestart, "no-restart", false, "Stop at the first crash")
}

func runSim(_ *cobra.Command, _ []string) {
	gameCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := sim.DefaultOptions()
	opts.Frames = flagFrames
	opts.FPS = flagFPS
	opts.Seed = seed()
	opts.AutoJump = flagAutoJump
	opts.Restart = !flagNoRestart

	rep, err := sim.Run(gameCfg, opts, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seed:       %d\n", opts.Seed)
	fmt.Printf("Frames:     %d\n", rep.Frames)
	fmt.Printf("Runs ended: %d\n", len(rep.Runs))
	fmt.Printf("Jumps:      %d\n", rep.Jumps)
	fmt.Printf("High score: %d\n", rep.HighScore)
	if rep.Distance > 0 {
		fmt.Printf("In play:    %d\n", rep.Distance)
	}
}
