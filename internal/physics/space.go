package physics

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/vovakirdan/bogger/internal/core"
)

const (
	allCategories   = ^uint(0)
	defaultCategory = uint(1)
)

// SpaceOptions configures a Space.
type SpaceOptions struct {
	Iterations     int
	StiffnessScale float64 // Spring constant for stiffness 1.0
	DampingScale   float64 // Spring damping for damping 1.0
	Gravity        core.Vec
}

// Space is the World implementation backed by a cp space.
type Space struct {
	space *cp.Space
	opts  SpaceOptions

	bodies map[Body]*bodyEntry
	joints map[Constraint]*jointEntry

	nextBody     Body
	nextJoint    Constraint
	nextCategory uint
	nextGroup    int

	pending   []Contact
	listeners []ContactFunc
}

type bodyEntry struct {
	body        *cp.Body
	shapes      []*cp.Shape
	kind        Kind
	frictionAir float64
	static      bool
	force       cp.Vector
}

type jointEntry struct {
	c    *cp.Constraint
	a, b Body
}

// NewSpace creates an empty world.
func NewSpace(opts SpaceOptions) *Space {
	if opts.Iterations <= 0 {
		opts.Iterations = 10
	}
	if opts.StiffnessScale <= 0 {
		opts.StiffnessScale = 500
	}
	if opts.DampingScale <= 0 {
		opts.DampingScale = 50
	}

	s := &Space{
		space:        cp.NewSpace(),
		opts:         opts,
		bodies:       make(map[Body]*bodyEntry),
		joints:       make(map[Constraint]*jointEntry),
		nextCategory: defaultCategory,
	}
	s.space.Iterations = uint(opts.Iterations)
	s.space.SetGravity(cp.Vector{X: opts.Gravity.X, Y: opts.Gravity.Y})

	// One handler per kind pair; begin only records the contact.
	for a := KindPlayer; a < kindCount; a++ {
		for b := a; b < kindCount; b++ {
			h := s.space.NewCollisionHandler(cp.CollisionType(a), cp.CollisionType(b))
			h.BeginFunc = s.begin
		}
	}
	return s
}

func (s *Space) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	ba, bb := arb.Bodies()
	ha, okA := ba.UserData.(Body)
	hb, okB := bb.UserData.(Body)
	if !okA || !okB {
		return true
	}
	s.pending = append(s.pending, Contact{A: ha, B: hb, KindA: s.Kind(ha), KindB: s.Kind(hb)})
	return true
}

// CreateBody adds a body with a single shape.
func (s *Space) CreateBody(def BodyDef) Body {
	var body *cp.Body
	if def.Static {
		body = cp.NewStaticBody()
	} else {
		mass := def.Mass
		if mass <= 0 {
			mass = 1
		}
		body = cp.NewBody(mass, moment(def.Shape, mass))
	}
	body.SetPosition(cp.Vector{X: def.Position.X, Y: def.Position.Y})
	s.space.AddBody(body)

	var shape *cp.Shape
	switch def.Shape.Type {
	case ShapeBox:
		shape = cp.NewBox(body, def.Shape.Width, def.Shape.Height, 0)
	default:
		shape = cp.NewCircle(body, def.Shape.Radius, cp.Vector{})
	}
	shape.SetFriction(0.3)
	shape.SetElasticity(0.2)
	shape.SetSensor(def.Sensor)
	shape.SetCollisionType(cp.CollisionType(def.Kind))
	shape.SetFilter(s.filter(def))
	s.space.AddShape(shape)

	s.nextBody++
	handle := s.nextBody
	body.UserData = handle
	s.bodies[handle] = &bodyEntry{
		body:        body,
		shapes:      []*cp.Shape{shape},
		kind:        def.Kind,
		frictionAir: def.FrictionAir,
		static:      def.Static,
	}
	return handle
}

func (s *Space) filter(def BodyDef) cp.ShapeFilter {
	category := def.Category
	if category == 0 {
		category = defaultCategory
	}
	var group uint
	if def.Group < 0 {
		group = uint(-def.Group)
	}
	return cp.ShapeFilter{Group: group, Categories: category, Mask: allCategories}
}

func moment(shape Shape, mass float64) float64 {
	switch shape.Type {
	case ShapeBox:
		return cp.MomentForBox(mass, shape.Width, shape.Height)
	default:
		return cp.MomentForCircle(mass, 0, shape.Radius, cp.Vector{})
	}
}

// DestroyBody removes a body, its shape and any joint still attached to it.
func (s *Space) DestroyBody(b Body) {
	e, ok := s.bodies[b]
	if !ok {
		return
	}
	for id, j := range s.joints {
		if j.a == b || j.b == b {
			s.RemoveJoint(id)
		}
	}
	for _, shape := range e.shapes {
		s.space.RemoveShape(shape)
	}
	s.space.RemoveBody(e.body)
	delete(s.bodies, b)
}

// Exists reports whether b is alive.
func (s *Space) Exists(b Body) bool {
	_, ok := s.bodies[b]
	return ok
}

// Kind returns the kind of b, or KindNone.
func (s *Space) Kind(b Body) Kind {
	if e, ok := s.bodies[b]; ok {
		return e.kind
	}
	return KindNone
}

// Count returns the number of live bodies.
func (s *Space) Count() int {
	return len(s.bodies)
}

func (s *Space) dynamic(b Body) *cp.Body {
	e, ok := s.bodies[b]
	if !ok || e.static {
		return nil
	}
	return e.body
}

// SetFixedRotation stops b from rotating.
func (s *Space) SetFixedRotation(b Body) {
	if body := s.dynamic(b); body != nil {
		body.SetAngularVelocity(0)
		body.SetMoment(math.Inf(1))
	}
}

// SetMass changes the mass of a dynamic body.
func (s *Space) SetMass(b Body, mass float64) {
	if body := s.dynamic(b); body != nil && mass > 0 && !math.IsInf(mass, 0) {
		body.SetMass(mass)
	}
}

// SetAngle sets the orientation of b in radians.
func (s *Space) SetAngle(b Body, radians float64) {
	e, ok := s.bodies[b]
	if !ok {
		return
	}
	if !e.static {
		e.body.SetAngle(radians)
		return
	}
	// Static shapes are indexed once; re-adding them refreshes their bounds.
	for _, shape := range e.shapes {
		s.space.RemoveShape(shape)
	}
	e.body.SetAngle(radians)
	for _, shape := range e.shapes {
		s.space.AddShape(shape)
	}
}

// Position returns the center of b.
func (s *Space) Position(b Body) core.Vec {
	if e, ok := s.bodies[b]; ok {
		p := e.body.Position()
		return core.V(p.X, p.Y)
	}
	return core.Vec{}
}

// Angle returns the orientation of b in radians.
func (s *Space) Angle(b Body) float64 {
	if e, ok := s.bodies[b]; ok {
		return e.body.Angle()
	}
	return 0
}

// Velocity returns the linear velocity of b in units per second.
func (s *Space) Velocity(b Body) core.Vec {
	if e, ok := s.bodies[b]; ok {
		v := e.body.Velocity()
		return core.V(v.X, v.Y)
	}
	return core.Vec{}
}

// SetVelocity sets the linear velocity of a dynamic body.
func (s *Space) SetVelocity(b Body, v core.Vec) {
	if body := s.dynamic(b); body != nil {
		body.SetVelocity(v.X, v.Y)
	}
}

// ApplyForce applies f at the center of b for every substep of the next step.
func (s *Space) ApplyForce(b Body, f core.Vec) {
	if s.dynamic(b) != nil {
		e := s.bodies[b]
		e.force = e.force.Add(cp.Vector{X: f.X, Y: f.Y})
	}
}

// AddJoint links two bodies. Rigid joints become fixed-length slide joints,
// elastic ones damped springs.
func (s *Space) AddJoint(def JointDef) Constraint {
	ea, okA := s.bodies[def.A]
	eb, okB := s.bodies[def.B]
	if !okA || !okB || def.A == def.B {
		return 0
	}

	localA := toLocal(def.AnchorA, ea.body.Angle())
	localB := toLocal(def.AnchorB, eb.body.Angle())

	var c *cp.Constraint
	if def.Stiffness >= 1 {
		c = cp.NewSlideJoint(ea.body, eb.body, localA, localB, def.RestLength, def.RestLength)
	} else {
		c = cp.NewDampedSpring(ea.body, eb.body, localA, localB,
			def.RestLength,
			def.Stiffness*s.opts.StiffnessScale,
			def.Damping*s.opts.DampingScale)
	}
	c.SetCollideBodies(false)
	s.space.AddConstraint(c)

	s.nextJoint++
	s.joints[s.nextJoint] = &jointEntry{c: c, a: def.A, b: def.B}
	return s.nextJoint
}

func toLocal(offset core.Vec, angle float64) cp.Vector {
	l := offset.Rotate(-angle)
	return cp.Vector{X: l.X, Y: l.Y}
}

// RemoveJoint removes c from the world.
func (s *Space) RemoveJoint(c Constraint) {
	j, ok := s.joints[c]
	if !ok {
		return
	}
	s.space.RemoveConstraint(j.c)
	delete(s.joints, c)
}

// JointCount returns the number of live joints.
func (s *Space) JointCount() int {
	return len(s.joints)
}

// NextCategory returns a fresh collision category bit.
func (s *Space) NextCategory() uint {
	s.nextCategory <<= 1
	return s.nextCategory
}

// NextGroup returns a fresh group id; isolated groups are negative.
func (s *Space) NextGroup(isolated bool) int {
	s.nextGroup++
	if isolated {
		return -s.nextGroup
	}
	return s.nextGroup
}

// OnContact registers a listener for contacts.
func (s *Space) OnContact(fn ContactFunc) {
	s.listeners = append(s.listeners, fn)
}

// Step advances the world by deltaMs, in frame-sized substeps, then
// delivers the contacts recorded during the step.
func (s *Space) Step(deltaMs float64) {
	if deltaMs <= 0 {
		return
	}
	steps := int(math.Ceil(deltaMs / FrameMs))
	subMs := deltaMs / float64(steps)
	for i := 0; i < steps; i++ {
		s.applyForces()
		s.applyAirFriction(subMs)
		s.space.Step(subMs / 1000)
	}
	for _, e := range s.bodies {
		e.force = cp.Vector{}
	}
	s.flush()
}

// cp clears body forces after each integration, so held forces are
// reapplied per substep.
func (s *Space) applyForces() {
	for _, e := range s.bodies {
		if e.static || (e.force.X == 0 && e.force.Y == 0) {
			continue
		}
		e.body.ApplyForceAtWorldPoint(e.force, e.body.Position())
	}
}

func (s *Space) applyAirFriction(ms float64) {
	for _, e := range s.bodies {
		if e.static || e.frictionAir <= 0 {
			continue
		}
		k := math.Pow(1-e.frictionAir, ms/FrameMs)
		v := e.body.Velocity()
		e.body.SetVelocity(v.X*k, v.Y*k)
	}
}

// flush delivers queued contacts in body order. Contacts whose bodies were
// destroyed by an earlier listener are dropped.
func (s *Space) flush() {
	pending := s.pending
	s.pending = nil
	sort.SliceStable(pending, func(i, j int) bool {
		ai, bi := orderedPair(pending[i])
		aj, bj := orderedPair(pending[j])
		if ai != aj {
			return ai < aj
		}
		return bi < bj
	})
	for _, c := range pending {
		if !s.Exists(c.A) || !s.Exists(c.B) {
			continue
		}
		for _, fn := range s.listeners {
			fn(c)
		}
	}
}

func orderedPair(c Contact) (Body, Body) {
	if c.A < c.B {
		return c.A, c.B
	}
	return c.B, c.A
}

var _ World = (*Space)(nil)
