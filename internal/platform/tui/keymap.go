package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bogger/internal/core"
)

// HoldWindow is how long a direction stays held after its last key event.
// Terminals report presses and repeats but never releases.
const HoldWindow = 300 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "h", "left":
		return core.ActionLeft, false
	case "d", "l", "right":
		return core.ActionRight, false
	case "w", "k", "up":
		return core.ActionUp, false
	case "s", "j", "down":
		return core.ActionDown, false
	case " ":
		return core.ActionSpool, false
	case "x":
		return core.ActionRetract, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "c":
		return core.ActionContinue, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionHistory
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionHistory
	}

	return MenuActionNone
}

// opposite pairs directions that cancel each other on a new press.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

// InputState turns discrete key events into per-tick input frames.
// Directions are held for HoldWindow after each event; spool and retract
// are latched toggles; everything else fires on the next frame only.
type InputState struct {
	held    map[core.Action]time.Time
	spool   bool
	retract bool
	pending core.InputFrame
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{
		held:    make(map[core.Action]time.Time),
		pending: core.NewInputFrame(),
	}
}

// Press records a key event for action a at now.
func (s *InputState) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		s.held[a] = now
		delete(s.held, opposite[a])
	case core.ActionSpool:
		s.spool = !s.spool
		if s.spool {
			s.retract = false
		}
	case core.ActionRetract:
		s.retract = !s.retract
		if s.retract {
			s.spool = false
		}
	default:
		s.pending.Set(a)
	}
}

// Frame returns the input for the tick at now and clears one-shot actions.
func (s *InputState) Frame(now time.Time) core.InputFrame {
	frame := s.pending.Clone()
	s.pending.Clear()

	for a, at := range s.held {
		if now.Sub(at) > HoldWindow {
			delete(s.held, a)
			continue
		}
		frame.Set(a)
	}
	if s.spool {
		frame.Set(core.ActionSpool)
	}
	if s.retract {
		frame.Set(core.ActionRetract)
	}
	return frame
}

// Release drops every held direction and latch.
func (s *InputState) Release() {
	clear(s.held)
	s.spool = false
	s.retract = false
}

// Spooling reports whether the spool latch is on.
func (s *InputState) Spooling() bool {
	return s.spool
}

// Retracting reports whether the retract latch is on.
func (s *InputState) Retracting() bool {
	return s.retract
}
