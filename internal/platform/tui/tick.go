// Package tui runs the simulation in a terminal with Bubble Tea.
// It schedules frames, maps keys to simulation commands and renders the
// world onto a character grid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the model to advance the simulation by one frame.
type FrameMsg time.Time

// frameCmd schedules the next frame at the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
