package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bogger/internal/core"
	"github.com/vovakirdan/bogger/internal/registry"
)

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{overAfter: 1} })
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestSessionModelMenuGameMenu(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60, Seed: 1})

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("selecting a mode did not start a game")
	}
	if m.quitting {
		t.Fatal("selecting a mode ended the session")
	}

	m = sessionUpdate(t, m, TickMsg{})
	m = sessionUpdate(t, m, runeKey('b'))
	if m.gameModel != nil {
		t.Fatal("back after game over did not return to the menu")
	}
	if m.menu.Selected() != nil {
		t.Error("menu kept the previous selection")
	}
}

func TestSessionModelHistory(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60})

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.history == nil || m.quitting {
		t.Fatal("tab did not open the history")
	}
	if m.View() == "" {
		t.Error("history view is empty")
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.history != nil || m.quitting {
		t.Error("esc did not return to the menu")
	}

	m = sessionUpdate(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("q did not end the session")
	}
}
