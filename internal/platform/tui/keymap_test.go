package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bogger/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{runeKey('d'), core.ActionRight, false},
		{runeKey('w'), core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionSpool, false},
		{runeKey('x'), core.ActionRetract, false},
		{runeKey('p'), core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{runeKey('c'), core.ActionContinue, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(tt.msg)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionHistory},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestInputStateHoldWindow(t *testing.T) {
	s := NewInputState()
	t0 := time.Unix(0, 0)

	s.Press(core.ActionRight, t0)

	tests := []struct {
		at   time.Duration
		held bool
	}{
		{0, true},
		{HoldWindow / 2, true},
		{HoldWindow, true},
		{HoldWindow + time.Millisecond, false},
		{0, false}, // Expired holds are forgotten
	}

	for _, tt := range tests {
		frame := s.Frame(t0.Add(tt.at))
		if frame.Has(core.ActionRight) != tt.held {
			t.Errorf("Frame(+%v).Has(Right) = %v, expected %v", tt.at, frame.Has(core.ActionRight), tt.held)
		}
	}
}

func TestInputStateRepeatExtendsHold(t *testing.T) {
	s := NewInputState()
	t0 := time.Unix(0, 0)

	for i := 0; i < 5; i++ {
		s.Press(core.ActionUp, t0.Add(time.Duration(i)*200*time.Millisecond))
	}
	if !s.Frame(t0.Add(time.Second)).Has(core.ActionUp) {
		t.Error("repeated presses did not keep the direction held")
	}
}

func TestInputStateOppositeCancels(t *testing.T) {
	s := NewInputState()
	t0 := time.Unix(0, 0)

	s.Press(core.ActionLeft, t0)
	s.Press(core.ActionUp, t0)
	s.Press(core.ActionRight, t0)

	frame := s.Frame(t0)
	if frame.Has(core.ActionLeft) || !frame.Has(core.ActionRight) || !frame.Has(core.ActionUp) {
		t.Errorf("Frame() = %v, expected right and up only", frame.Actions)
	}
}

func TestInputStateLatches(t *testing.T) {
	s := NewInputState()
	t0 := time.Unix(0, 0)

	tests := []struct {
		press   core.Action
		spool   bool
		retract bool
	}{
		{core.ActionSpool, true, false},
		{core.ActionRetract, false, true},
		{core.ActionSpool, true, false},
		{core.ActionSpool, false, false},
		{core.ActionRetract, false, true},
		{core.ActionRetract, false, false},
	}

	for i, tt := range tests {
		s.Press(tt.press, t0)
		frame := s.Frame(t0.Add(time.Hour))
		if frame.Has(core.ActionSpool) != tt.spool || frame.Has(core.ActionRetract) != tt.retract {
			t.Errorf("step %d: spool/retract = %v/%v, expected %v/%v",
				i, frame.Has(core.ActionSpool), frame.Has(core.ActionRetract), tt.spool, tt.retract)
		}
	}

	s.Press(core.ActionSpool, t0)
	s.Press(core.ActionLeft, t0)
	s.Release()
	if frame := s.Frame(t0); len(frame.Actions) != 0 {
		t.Errorf("Frame() after Release() = %v, expected empty", frame.Actions)
	}
}

func TestInputStateOneShot(t *testing.T) {
	s := NewInputState()
	t0 := time.Unix(0, 0)

	s.Press(core.ActionPause, t0)
	s.Press(core.ActionNone, t0)

	if !s.Frame(t0).Has(core.ActionPause) {
		t.Error("first Frame() missing pause")
	}
	if s.Frame(t0).Has(core.ActionPause) {
		t.Error("pause repeated on the next frame")
	}
}

func TestScoreTickerConverges(t *testing.T) {
	tk := newScoreTicker(60)
	for i := 0; i < 300; i++ {
		tk.Update(40)
	}
	if tk.Value() != 40 {
		t.Errorf("Value() = %d, expected 40", tk.Value())
	}

	tk.Snap(3)
	if tk.Value() != 3 {
		t.Errorf("Value() after Snap = %d, expected 3", tk.Value())
	}
}
