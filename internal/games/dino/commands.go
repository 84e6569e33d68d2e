package dino

import "fmt"

// Command is an input event, independent of the device it came from.
type Command int

const (
	CommandActivate Command = iota
	CommandJumpPressed
	CommandJumpReleased
	CommandDuckPressed
	CommandDuckReleased
	CommandRestart
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandActivate:
		return "activate"
	case CommandJumpPressed:
		return "jump_pressed"
	case CommandJumpReleased:
		return "jump_released"
	case CommandDuckPressed:
		return "duck_pressed"
	case CommandDuckReleased:
		return "duck_released"
	case CommandRestart:
		return "restart"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

// commandHandlers maps each command to its transition.
var commandHandlers = map[Command]func(*Runner){
	CommandActivate:     (*Runner).activate,
	CommandJumpPressed:  (*Runner).jumpPressed,
	CommandJumpReleased: (*Runner).jumpReleased,
	CommandDuckPressed:  (*Runner).duckPressed,
	CommandDuckReleased: (*Runner).duckReleased,
	CommandRestart:      (*Runner).Restart,
}

// Dispatch applies an input command.
func (r *Runner) Dispatch(cmd Command) error {
	handler, ok := commandHandlers[cmd]
	if !ok {
		return fmt.Errorf("dino: unknown command %s", cmd)
	}
	handler(r)
	return nil
}

// activate starts a run through the intro without jumping.
func (r *Runner) activate() {
	if r.state.Activated || r.state.Crashed || r.state.Paused {
		return
	}
	r.state.Activated = true
	r.playIntro()
}

func (r *Runner) jumpPressed() {
	st := &r.state
	if st.Crashed || st.Paused {
		return
	}
	if !st.Activated {
		st.Activated = true
	}
	if r.actor.StartJump() {
		r.pendingSound = SoundJump
	}
}

// jumpReleased ends the ascent early. After a crash it restarts once the
// game over screen has been shown long enough; while paused it resumes.
func (r *Runner) jumpReleased() {
	st := &r.state
	switch {
	case st.Crashed:
		if r.CrashElapsed() >= r.cfg.Runner.GameOverClearTime {
			r.Restart()
		}
	case st.Paused:
		r.Play()
	case st.Activated && r.actor.Jumping():
		r.actor.EndJump()
	}
}

func (r *Runner) duckPressed() {
	if r.state.Activated && r.actor.Jumping() {
		r.actor.SetSpeedDrop()
	}
}

// duckReleased is a no-op: a speed drop cannot be cancelled mid-fall.
func (r *Runner) duckReleased() {}
