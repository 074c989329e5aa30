package bogger

import (
	"testing"

	"github.com/vovakirdan/bogger/internal/config"
	"github.com/vovakirdan/bogger/internal/core"
	"github.com/vovakirdan/bogger/internal/physics"
	"github.com/vovakirdan/bogger/internal/physics/physicstest"
)

func TestLocomotionForce(t *testing.T) {
	cfg := config.PlayerConfig{Force: 1000, SpoolScale: 0.65, RetractScale: 1.0, Mass: 1}
	l := NewLocomotion(physicstest.New(), 0, cfg)

	tests := []struct {
		name string
		in   Input
		want core.Vec
	}{
		{"idle", Input{}, core.V(0, 0)},
		{"left", Input{Left: true}, core.V(-1000, 0)},
		{"right", Input{Right: true}, core.V(1000, 0)},
		{"left beats right", Input{Left: true, Right: true}, core.V(-1000, 0)},
		{"up", Input{Up: true}, core.V(0, -1000)},
		{"down beats up", Input{Up: true, Down: true}, core.V(0, 1000)},
		{"diagonal composes", Input{Left: true, Down: true}, core.V(-1000, 1000)},
		{"spooling scales down", Input{Right: true, Spool: true}, core.V(650, 0)},
		{"retracting unchanged", Input{Up: true, Retract: true}, core.V(0, -1000)},
		{"modifiers alone", Input{Spool: true, Retract: true}, core.V(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Force(tt.in); !near(got, tt.want) {
				t.Errorf("Force() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestLocomotionApply(t *testing.T) {
	w := physicstest.New()
	player := w.CreateBody(physics.BodyDef{Kind: physics.KindPlayer, Mass: 2})
	l := NewLocomotion(w, player, config.PlayerConfig{Force: 100, SpoolScale: 0.5, RetractScale: 1})

	l.Apply(Input{Right: true, Up: true})
	if got := w.Force(player); got != core.V(100, -100) {
		t.Errorf("Force() = %v, expected (100,-100)", got)
	}

	w.Step(10)
	l.Apply(Input{})
	if got := w.Force(player); got != (core.Vec{}) {
		t.Errorf("Force() = %v after idle tick, expected zero", got)
	}
}

func TestInputFromFrame(t *testing.T) {
	frame := core.NewInputFrame()
	frame.Set(core.ActionLeft)
	frame.Set(core.ActionSpool)
	frame.Set(core.ActionRetract)

	got := InputFromFrame(frame)
	want := Input{Left: true, Spool: true, Retract: true}
	if got != want {
		t.Errorf("InputFromFrame() = %+v, expected %+v", got, want)
	}
}
