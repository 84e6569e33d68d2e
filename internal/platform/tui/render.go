package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/allanrg4/runner/internal/core"
	"github.com/allanrg4/runner/internal/games/dino"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Bold(true)
	crashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// renderStatus formats the one-line status bar under the world.
func renderStatus(st dino.State, over *dino.GameOver, units int) string {
	parts := []string{
		fmt.Sprintf("speed %.1f", st.CurrentSpeed),
		fmt.Sprintf("distance %d", units),
	}
	status := statusStyle.Render(strings.Join(parts, "  "))

	switch {
	case st.Crashed && over != nil:
		msg := fmt.Sprintf(" crashed at %d ", over.Score)
		if over.NewHighScore {
			msg = fmt.Sprintf(" new high score %d ", over.Score)
		}
		status += "  " + crashStyle.Render(msg)
	case st.Paused:
		status += "  " + pausedStyle.Render(" PAUSED ")
	case !st.Activated:
		status += "  " + statusStyle.Render("press space to start")
	}
	return status
}
