package bogger

import (
	"github.com/vovakirdan/bogger/internal/config"
	"github.com/vovakirdan/bogger/internal/core"
	"github.com/vovakirdan/bogger/internal/physics"
)

// Input is the held-key state of one tick.
type Input struct {
	Left, Right, Up, Down bool
	Spool, Retract        bool
}

// InputFromFrame maps platform actions onto held keys.
func InputFromFrame(in core.InputFrame) Input {
	return Input{
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Up:      in.Has(core.ActionUp),
		Down:    in.Has(core.ActionDown),
		Spool:   in.Has(core.ActionSpool),
		Retract: in.Has(core.ActionRetract),
	}
}

// Locomotion turns directional input into a force on the craft.
type Locomotion struct {
	world  physics.World
	player physics.Body
	cfg    config.PlayerConfig
}

// NewLocomotion creates locomotion for player.
func NewLocomotion(world physics.World, player physics.Body, cfg config.PlayerConfig) *Locomotion {
	return &Locomotion{world: world, player: player, cfg: cfg}
}

// Magnitude returns the force magnitude for the modifier state.
func (l *Locomotion) Magnitude(in Input) float64 {
	m := l.cfg.Force
	if in.Spool {
		m *= l.cfg.SpoolScale
	}
	if in.Retract {
		m *= l.cfg.RetractScale
	}
	return m
}

// Force returns the force for in. Left wins over right and down over up.
func (l *Locomotion) Force(in Input) core.Vec {
	m := l.Magnitude(in)
	var f core.Vec
	switch {
	case in.Left:
		f.X = -m
	case in.Right:
		f.X = m
	}
	switch {
	case in.Down:
		f.Y = m
	case in.Up:
		f.Y = -m
	}
	return f
}

// Apply pushes the craft and returns the applied force.
func (l *Locomotion) Apply(in Input) core.Vec {
	f := l.Force(in)
	if f != (core.Vec{}) {
		l.world.ApplyForce(l.player, f)
	}
	return f
}
