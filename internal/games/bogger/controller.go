package bogger

import (
	"math"

	"github.com/vovakirdan/bogger/internal/config"
	"github.com/vovakirdan/bogger/internal/physics"
)

// Controller grows the chain toward the craft while spooling and ratchets
// it back in while retracting.
type Controller struct {
	world  physics.World
	chain  *Chain
	tether *Tether
	player physics.Body
	cfg    config.ChainConfig

	lastShrinkMs float64
}

// NewController creates a controller for chain, tether and player.
func NewController(world physics.World, chain *Chain, tether *Tether, player physics.Body, cfg config.ChainConfig) *Controller {
	return &Controller{
		world:        world,
		chain:        chain,
		tether:       tether,
		player:       player,
		cfg:          cfg,
		lastShrinkMs: math.Inf(-1),
	}
}

// Update runs shrink then growth for one tick.
func (c *Controller) Update(extend, retract bool, nowMs float64) (grew, shrank bool) {
	shrank = c.Shrink(retract, nowMs)
	grew = c.Grow(extend)
	return grew, shrank
}

// Shrink removes the tail once per cooldown while retract is held and the
// chain is above its floor. The tether is released before the tail is
// destroyed and re-engaged on the new tail.
func (c *Controller) Shrink(retract bool, nowMs float64) bool {
	if !retract || c.chain.Len() <= c.chain.Floor() {
		return false
	}
	if nowMs-c.lastShrinkMs < c.cfg.RetractCooldownMs {
		return false
	}
	c.lastShrinkMs = nowMs

	c.tether.Release()
	removed := c.chain.RemoveTail()
	c.tether.Engage()
	return removed
}

// Threshold is the craft-to-tail distance beyond which spooling appends.
func (c *Controller) Threshold() float64 {
	return 2*c.cfg.SegmentLength + c.cfg.GrowSlack
}

// Grow appends at most one segment, one segment length from the tail
// toward the craft, when the craft is beyond the threshold.
func (c *Controller) Grow(extend bool) bool {
	tail := c.chain.Tail()
	if !extend || tail == nil || !c.world.Exists(c.player) {
		return false
	}
	tailPos := c.world.Position(tail.Body)
	delta := c.world.Position(c.player).Sub(tailPos)
	if delta.Len() <= c.Threshold() {
		return false
	}
	angle := math.Atan2(delta.Y, delta.X)
	c.chain.Append(tailPos.Add(delta.Normalize().Scale(c.cfg.SegmentLength)), &angle)
	return true
}
