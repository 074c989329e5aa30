package bogger

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bogger/internal/config"
	"github.com/vovakirdan/bogger/internal/core"
	"github.com/vovakirdan/bogger/internal/physics"
)

// Segment is one link of the pontoon.
type Segment struct {
	Body   physics.Body
	Length float64
	Joint  physics.Constraint // Link to the previous segment; zero for the anchor
}

// Chain is the ordered pontoon, anchor first and free end last.
type Chain struct {
	world    physics.World
	cfg      config.ChainConfig
	log      *log.Logger
	category uint
	group    int
	segments []*Segment
}

// NewChain creates an empty chain. Segments after the anchor share one
// isolated collision group.
func NewChain(world physics.World, cfg config.ChainConfig, logger *log.Logger) *Chain {
	if logger == nil {
		logger = discardLogger()
	}
	return &Chain{
		world:    world,
		cfg:      cfg,
		log:      logger,
		category: world.NextCategory(),
		group:    world.NextGroup(true),
	}
}

// Group returns the collision group of the movable segments.
func (c *Chain) Group() int {
	return c.group
}

// Floor returns the minimum length RemoveTail keeps.
func (c *Chain) Floor() int {
	if c.cfg.Floor < 1 {
		return 1
	}
	return c.cfg.Floor
}

// Append adds a segment at pos. The first segment is the static anchor;
// every later one is jointed to the current tail, continuing its heading.
// A non-nil angle sets the new segment's orientation.
func (c *Chain) Append(pos core.Vec, angle *float64) *Segment {
	first := len(c.segments) == 0

	def := physics.BodyDef{
		Kind:        physics.KindSegment,
		Position:    pos,
		Shape:       physics.Box(c.cfg.SegmentLength, c.cfg.SegmentWidth),
		Mass:        c.cfg.SegmentMass,
		FrictionAir: c.cfg.SegmentAirFriction,
		Static:      first,
		Category:    c.category,
	}
	if !first {
		def.Group = c.group
	}

	seg := &Segment{Body: c.world.CreateBody(def), Length: c.cfg.SegmentLength}
	if angle != nil {
		c.world.SetAngle(seg.Body, *angle)
	}

	if !first {
		tail := c.Tail()
		heading := c.world.Angle(tail.Body)
		half := c.cfg.SegmentLength / 2
		seg.Joint = c.world.AddJoint(physics.JointDef{
			A:          tail.Body,
			B:          seg.Body,
			AnchorA:    core.V(half, 0).Rotate(heading),
			AnchorB:    core.V(-half, 0).Rotate(heading),
			RestLength: c.cfg.JointRestLength,
			Stiffness:  c.cfg.JointStiffness,
			Damping:    c.cfg.JointDamping,
		})
	}

	c.segments = append(c.segments, seg)
	c.log.Debug("segment appended", "len", len(c.segments), "x", pos.X, "y", pos.Y)
	return seg
}

// RemoveTail drops the free end, joint first. It is a no-op at the floor.
func (c *Chain) RemoveTail() bool {
	if len(c.segments) <= c.Floor() {
		return false
	}
	last := len(c.segments) - 1
	tail := c.segments[last]
	if tail.Joint != 0 {
		c.world.RemoveJoint(tail.Joint)
	}
	c.world.DestroyBody(tail.Body)
	c.segments[last] = nil
	c.segments = c.segments[:last]
	c.log.Debug("segment removed", "len", len(c.segments))
	return true
}

// Tail returns the free end, or nil for an empty chain.
func (c *Chain) Tail() *Segment {
	if len(c.segments) == 0 {
		return nil
	}
	return c.segments[len(c.segments)-1]
}

// Len returns the number of segments, anchor included.
func (c *Chain) Len() int {
	return len(c.segments)
}

// Segments returns a copy of the segment list.
func (c *Chain) Segments() []*Segment {
	return append([]*Segment(nil), c.segments...)
}

// Positions returns segment centers from anchor to free end.
func (c *Chain) Positions() []core.Vec {
	out := make([]core.Vec, len(c.segments))
	for i, seg := range c.segments {
		out[i] = c.world.Position(seg.Body)
	}
	return out
}

// Teardown removes every joint and then every body, free end first.
func (c *Chain) Teardown() {
	for i := len(c.segments) - 1; i >= 0; i-- {
		if j := c.segments[i].Joint; j != 0 {
			c.world.RemoveJoint(j)
		}
	}
	for i := len(c.segments) - 1; i >= 0; i-- {
		c.world.DestroyBody(c.segments[i].Body)
	}
	c.segments = nil
}
