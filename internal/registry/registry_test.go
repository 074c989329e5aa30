package registry

import (
	"testing"

	"github.com/vovakirdan/bogger/internal/core"
)

type fakeGame struct {
	id, title, desc string
}

func (g *fakeGame) ID() string                           { return g.id }
func (g *fakeGame) Title() string                        { return g.title }
func (g *fakeGame) Reset(core.RuntimeConfig)             {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen)                  {}
func (g *fakeGame) State() core.GameState                { return core.GameState{} }

type describedGame struct {
	fakeGame
}

func (g *describedGame) Description() string { return g.desc }

func TestRegisterAndList(t *testing.T) {
	Register("test_b", func() Game { return &fakeGame{id: "test_b", title: "B"} })
	Register("test_a", func() Game {
		return &describedGame{fakeGame{id: "test_a", title: "A", desc: "first"}}
	})

	var got []GameInfo
	for _, info := range List() {
		if info.ID == "test_a" || info.ID == "test_b" {
			got = append(got, info)
		}
	}

	expected := []GameInfo{
		{ID: "test_a", Title: "A", Description: "first"},
		{ID: "test_b", Title: "B"},
	}
	if len(got) != len(expected) {
		t.Fatalf("List() = %+v, expected %+v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("List()[%d] = %+v, expected %+v", i, got[i], expected[i])
		}
	}

	if !Exists("test_a") || Exists("test_missing") {
		t.Error("Exists() mismatch")
	}
	g, err := Create("test_b")
	if err != nil || g.ID() != "test_b" {
		t.Errorf("Create() = %v, %v", g, err)
	}
	if _, err := Create("test_missing"); err == nil {
		t.Error("Create() of unknown id succeeded")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return &fakeGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() did not panic")
		}
	}()
	Register("test_dup", func() Game { return &fakeGame{id: "test_dup"} })
}
