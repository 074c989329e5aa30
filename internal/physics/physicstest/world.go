// Package physicstest provides a deterministic in-memory physics.World that
// records every structural operation, for ordering assertions in tests.
package physicstest

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/bogger/internal/core"
	"github.com/vovakirdan/bogger/internal/physics"
)

// Body is the recorded state of a fake body.
type Body struct {
	Def       physics.BodyDef
	Position  core.Vec
	Velocity  core.Vec
	Angle     float64
	Mass      float64
	Fixed     bool
	Force     core.Vec // Accumulated since the last step
	LastForce core.Vec // Force integrated by the last step
}

// Joint is the recorded state of a fake joint.
type Joint struct {
	Def physics.JointDef
}

// World is a physics.World with trivial integration and no collision
// detection. Contacts are injected with Inject and delivered on Step.
type World struct {
	bodies map[physics.Body]*Body
	joints map[physics.Constraint]*Joint

	nextBody     physics.Body
	nextJoint    physics.Constraint
	nextCategory uint
	nextGroup    int

	pending   []physics.Contact
	listeners []physics.ContactFunc

	ops     []string
	steps   int
	elapsed float64
}

// New creates an empty fake world.
func New() *World {
	return &World{
		bodies:       make(map[physics.Body]*Body),
		joints:       make(map[physics.Constraint]*Joint),
		nextCategory: 1,
	}
}

func (w *World) record(format string, args ...interface{}) {
	w.ops = append(w.ops, fmt.Sprintf(format, args...))
}

// Ops returns the operation log.
func (w *World) Ops() []string {
	return append([]string(nil), w.ops...)
}

// ResetOps clears the operation log.
func (w *World) ResetOps() {
	w.ops = nil
}

// CreateBody records "create <kind> <id>".
func (w *World) CreateBody(def physics.BodyDef) physics.Body {
	w.nextBody++
	id := w.nextBody
	w.bodies[id] = &Body{Def: def, Position: def.Position, Mass: def.Mass}
	w.record("create %s %d", def.Kind, id)
	return id
}

// DestroyBody records "destroy <kind> <id>". Joints still attached are left
// in place so tests can detect dangling references.
func (w *World) DestroyBody(b physics.Body) {
	body, ok := w.bodies[b]
	if !ok {
		return
	}
	w.record("destroy %s %d", body.Def.Kind, b)
	delete(w.bodies, b)
}

// Exists reports whether b is alive.
func (w *World) Exists(b physics.Body) bool {
	_, ok := w.bodies[b]
	return ok
}

// Kind returns the kind of b.
func (w *World) Kind(b physics.Body) physics.Kind {
	if body, ok := w.bodies[b]; ok {
		return body.Def.Kind
	}
	return physics.KindNone
}

// SetFixedRotation marks b as non-rotating.
func (w *World) SetFixedRotation(b physics.Body) {
	if body, ok := w.bodies[b]; ok {
		body.Fixed = true
	}
}

// SetMass sets the mass of b.
func (w *World) SetMass(b physics.Body, mass float64) {
	if body, ok := w.bodies[b]; ok {
		body.Mass = mass
	}
}

// SetAngle records "angle <id>".
func (w *World) SetAngle(b physics.Body, radians float64) {
	if body, ok := w.bodies[b]; ok {
		body.Angle = radians
		w.record("angle %d", b)
	}
}

// Position returns the position of b.
func (w *World) Position(b physics.Body) core.Vec {
	if body, ok := w.bodies[b]; ok {
		return body.Position
	}
	return core.Vec{}
}

// SetPosition moves b; test arrangement only.
func (w *World) SetPosition(b physics.Body, p core.Vec) {
	if body, ok := w.bodies[b]; ok {
		body.Position = p
	}
}

// Angle returns the orientation of b.
func (w *World) Angle(b physics.Body) float64 {
	if body, ok := w.bodies[b]; ok {
		return body.Angle
	}
	return 0
}

// Velocity returns the velocity of b.
func (w *World) Velocity(b physics.Body) core.Vec {
	if body, ok := w.bodies[b]; ok {
		return body.Velocity
	}
	return core.Vec{}
}

// SetVelocity sets the velocity of b.
func (w *World) SetVelocity(b physics.Body, v core.Vec) {
	if body, ok := w.bodies[b]; ok && !body.Def.Static {
		body.Velocity = v
	}
}

// ApplyForce accumulates f on b until the next step.
func (w *World) ApplyForce(b physics.Body, f core.Vec) {
	if body, ok := w.bodies[b]; ok && !body.Def.Static {
		body.Force = body.Force.Add(f)
	}
}

// Force returns the force accumulated on b since the last step.
func (w *World) Force(b physics.Body) core.Vec {
	if body, ok := w.bodies[b]; ok {
		return body.Force
	}
	return core.Vec{}
}

// AddJoint records "joint+ <id> <a>-<b>".
func (w *World) AddJoint(def physics.JointDef) physics.Constraint {
	if !w.Exists(def.A) || !w.Exists(def.B) || def.A == def.B {
		return 0
	}
	w.nextJoint++
	id := w.nextJoint
	w.joints[id] = &Joint{Def: def}
	w.record("joint+ %d %d-%d", id, def.A, def.B)
	return id
}

// RemoveJoint records "joint- <id>".
func (w *World) RemoveJoint(c physics.Constraint) {
	if _, ok := w.joints[c]; !ok {
		return
	}
	delete(w.joints, c)
	w.record("joint- %d", c)
}

// Joint returns the definition of a live joint.
func (w *World) Joint(c physics.Constraint) (physics.JointDef, bool) {
	j, ok := w.joints[c]
	if !ok {
		return physics.JointDef{}, false
	}
	return j.Def, true
}

// JointCount returns the number of live joints.
func (w *World) JointCount() int {
	return len(w.joints)
}

// DanglingJoints returns live joints that reference a destroyed body.
func (w *World) DanglingJoints() []physics.Constraint {
	var out []physics.Constraint
	for id, j := range w.joints {
		if !w.Exists(j.Def.A) || !w.Exists(j.Def.B) {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i] < out[k] })
	return out
}

// Bodies returns live bodies of kind k in creation order.
func (w *World) Bodies(k physics.Kind) []physics.Body {
	var out []physics.Body
	for id, body := range w.bodies {
		if body.Def.Kind == k {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Body returns the recorded state of b.
func (w *World) Body(b physics.Body) (Body, bool) {
	body, ok := w.bodies[b]
	if !ok {
		return Body{}, false
	}
	return *body, true
}

// Count returns the number of live bodies.
func (w *World) Count() int {
	return len(w.bodies)
}

// NextCategory returns a fresh category bit.
func (w *World) NextCategory() uint {
	w.nextCategory <<= 1
	return w.nextCategory
}

// NextGroup returns a fresh group id; isolated groups are negative.
func (w *World) NextGroup(isolated bool) int {
	w.nextGroup++
	if isolated {
		return -w.nextGroup
	}
	return w.nextGroup
}

// OnContact registers a contact listener.
func (w *World) OnContact(fn physics.ContactFunc) {
	w.listeners = append(w.listeners, fn)
}

// Inject queues a contact between a and b for the next Step.
func (w *World) Inject(a, b physics.Body) {
	w.pending = append(w.pending, physics.Contact{A: a, B: b, KindA: w.Kind(a), KindB: w.Kind(b)})
}

// Step integrates forces with explicit Euler, clears them, and delivers
// injected contacts.
func (w *World) Step(deltaMs float64) {
	w.steps++
	w.elapsed += deltaMs
	dt := deltaMs / 1000
	for _, body := range w.bodies {
		if body.Def.Static {
			continue
		}
		if body.Mass > 0 {
			body.Velocity = body.Velocity.Add(body.Force.Scale(dt / body.Mass))
		}
		body.Position = body.Position.Add(body.Velocity.Scale(dt))
		body.LastForce = body.Force
		body.Force = core.Vec{}
	}

	pending := w.pending
	w.pending = nil
	for _, c := range pending {
		if !w.Exists(c.A) || !w.Exists(c.B) {
			continue
		}
		for _, fn := range w.listeners {
			fn(c)
		}
	}
}

// Elapsed returns the total simulated milliseconds.
func (w *World) Elapsed() float64 {
	return w.elapsed
}

// Steps returns how many times Step was called.
func (w *World) Steps() int {
	return w.steps
}

var _ physics.World = (*World)(nil)
