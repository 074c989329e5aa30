package bogger

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bogger/internal/config"
	"github.com/vovakirdan/bogger/internal/core"
	"github.com/vovakirdan/bogger/internal/physics"
)

// TetherState is either Engaged or Disengaged.
type TetherState interface {
	isTetherState()
}

// Engaged holds the live tether between the chain's free end and the craft.
type Engaged struct {
	Constraint physics.Constraint
	Tail       physics.Body
}

// Disengaged means no tether exists.
type Disengaged struct{}

func (Engaged) isTetherState()    {}
func (Disengaged) isTetherState() {}

// Tether coordinates the single grab constraint.
type Tether struct {
	world  physics.World
	chain  *Chain
	player physics.Body
	cfg    config.TetherConfig
	log    *log.Logger
	state  TetherState
}

// NewTether creates a disengaged tether for player.
func NewTether(world physics.World, chain *Chain, player physics.Body, cfg config.TetherConfig, logger *log.Logger) *Tether {
	if logger == nil {
		logger = discardLogger()
	}
	return &Tether{
		world:  world,
		chain:  chain,
		player: player,
		cfg:    cfg,
		log:    logger,
		state:  Disengaged{},
	}
}

// State returns the current tagged state.
func (t *Tether) State() TetherState {
	return t.state
}

// Engaged reports whether a tether exists.
func (t *Tether) Engaged() bool {
	_, ok := t.state.(Engaged)
	return ok
}

// Engage ties the current tail to the player. No-op when already engaged.
func (t *Tether) Engage() bool {
	if t.Engaged() {
		return false
	}
	tail := t.chain.Tail()
	if tail == nil || !t.world.Exists(tail.Body) || !t.world.Exists(t.player) {
		return false
	}
	tip := core.V(tail.Length/2, 0).Rotate(t.world.Angle(tail.Body))
	c := t.world.AddJoint(physics.JointDef{
		A:          tail.Body,
		B:          t.player,
		AnchorA:    tip,
		RestLength: t.cfg.RestLength,
		Stiffness:  t.cfg.Stiffness,
		Damping:    t.cfg.Damping,
	})
	if c == 0 {
		return false
	}
	t.state = Engaged{Constraint: c, Tail: tail.Body}
	t.log.Debug("tether engaged", "tail", tail.Body)
	return true
}

// Release removes the tether. No-op when disengaged.
func (t *Tether) Release() bool {
	e, ok := t.state.(Engaged)
	if !ok {
		return false
	}
	t.world.RemoveJoint(e.Constraint)
	t.state = Disengaged{}
	t.log.Debug("tether released")
	return true
}

// Sync toggles the tether once if its existence differs from desired, and
// moves an engaged tether onto a new tail. It reports whether it toggled.
func (t *Tether) Sync(desired bool) bool {
	e, engaged := t.state.(Engaged)
	switch {
	case desired && !engaged:
		return t.Engage()
	case !desired && engaged:
		return t.Release()
	case engaged:
		if tail := t.chain.Tail(); tail != nil && tail.Body != e.Tail {
			t.Release()
			t.Engage()
		}
	}
	return false
}
