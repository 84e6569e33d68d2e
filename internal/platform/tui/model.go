package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/allanrg4/runner/internal/core"
	"github.com/allanrg4/runner/internal/games/dino"
)

// footerRows is the number of rows below the world: status and help.
const footerRows = 2

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals report presses and auto-repeats but never releases.
const DefaultHoldWindow = 180 * time.Millisecond

// Option configures a Model.
type Option func(*Model)

// WithHoldWindow sets how long after the last press a release is assumed.
func WithHoldWindow(d time.Duration) Option {
	return func(m *Model) { m.holdWindow = d }
}

// WithGameOverHook registers a callback run once per finished run.
func WithGameOverHook(fn func(dino.GameOver)) Option {
	return func(m *Model) { m.onGameOver = fn }
}

// WithNow replaces the wall clock used for key hold timing.
func WithNow(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// heldKey tracks a key whose release has not been synthesized yet.
type heldKey struct {
	held      bool
	releaseAt time.Time
}

// Model is the Bubble Tea model driving one run.
type Model struct {
	runner *dino.Runner
	screen *core.Screen
	canvas *Canvas
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model

	jump heldKey
	duck heldKey

	holdWindow time.Duration
	now        func() time.Time
	onGameOver func(dino.GameOver)

	lastOver *dino.GameOver
	quitting bool
}

// NewModel creates a model for runner sized by cfg.
func NewModel(runner *dino.Runner, cfg core.RuntimeConfig, opts ...Option) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	screen := core.NewScreen(cfg.ScreenW, worldRows(cfg.ScreenH))
	world := runner.Config().Runner

	m := Model{
		runner:     runner,
		screen:     screen,
		canvas:     NewCanvas(screen, world.Width, world.Height, screen.Height()),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		holdWindow: DefaultHoldWindow,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func worldRows(screenH int) int {
	return core.Max(1, screenH-footerRows)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		if m.runner.State().Paused && !m.runner.State().Crashed {
			m.runner.Play()
		} else if !m.runner.State().Crashed {
			m.runner.Stop()
			// A pending release would resume the run
			m.jump = heldKey{}
			m.duck = heldKey{}
		}
		return m, nil
	}

	cmd, ok := m.keys.Command(msg)
	if !ok {
		return m, nil
	}

	releaseAt := m.now().Add(m.holdWindow)
	switch cmd {
	case dino.CommandJumpPressed:
		// Auto-repeat only extends the hold
		if m.jump.held {
			m.jump.releaseAt = releaseAt
			return m, nil
		}
		m.jump = heldKey{held: true, releaseAt: releaseAt}
	case dino.CommandDuckPressed:
		if m.duck.held {
			m.duck.releaseAt = releaseAt
			return m, nil
		}
		m.duck = heldKey{held: true, releaseAt: releaseAt}
	case dino.CommandRestart:
		m.lastOver = nil
	}

	//nolint:errcheck // Commands from the key map are always known
	m.runner.Dispatch(cmd)
	return m, nil
}

// handleResize adapts the screen to the terminal. The run is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, worldRows(msg.Height))
	m.canvas.SetRows(m.screen.Height())
	m.help.Width = msg.Width
	return m, nil
}

// handleFrame synthesizes key releases and advances the simulation.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	now := m.now()
	if m.jump.held && !now.Before(m.jump.releaseAt) {
		m.jump.held = false
		//nolint:errcheck // Known command
		m.runner.Dispatch(dino.CommandJumpReleased)
		if !m.runner.State().Crashed {
			// A release that restarted the run clears the old result
			m.lastOver = nil
		}
	}
	if m.duck.held && !now.Before(m.duck.releaseAt) {
		m.duck.held = false
		//nolint:errcheck // Known command
		m.runner.Dispatch(dino.CommandDuckReleased)
	}

	res := m.runner.Update()
	if res.GameOver != nil {
		over := *res.GameOver
		m.lastOver = &over
		if m.onGameOver != nil {
			m.onGameOver(over)
		}
	}

	return m, frameCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Begin()
	m.runner.Draw(m.canvas)

	st := m.runner.State()
	units := m.runner.Score().ToScoreUnits(st.DistanceRan)
	return RenderScreen(m.screen) + "\n" +
		renderStatus(st, m.lastOver, units) + "\n" +
		m.help.View(m.keys)
}

// Screen returns the character buffer the world is drawn on.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Runner returns the simulation driven by the model.
func (m Model) Runner() *dino.Runner {
	return m.runner
}

// Run starts a full-screen Bubble Tea program for runner.
func Run(runner *dino.Runner, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(runner, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
