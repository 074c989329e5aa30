// Package physics hides the rigid-body engine behind a small World contract.
//
// Bodies and constraints are opaque handles. Contacts reported by the engine
// are queued during Step and delivered to OnContact listeners after the step
// has finished, so listeners may create and destroy bodies freely.
package physics

import "github.com/vovakirdan/bogger/internal/core"

// Kind tags every body with its gameplay role.
type Kind int

const (
	KindNone Kind = iota
	KindPlayer
	KindSegment
	KindBerry
	KindSpider
	KindRock
	KindCollector
	KindWall
	kindCount
)

// Kinds lists every real body kind.
var Kinds = []Kind{KindPlayer, KindSegment, KindBerry, KindSpider, KindRock, KindCollector, KindWall}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindSegment:
		return "segment"
	case KindBerry:
		return "berry"
	case KindSpider:
		return "spider"
	case KindRock:
		return "rock"
	case KindCollector:
		return "collector"
	case KindWall:
		return "wall"
	default:
		return "none"
	}
}

// Body is a handle to a body in a World. The zero value is no body.
type Body uint32

// Constraint is a handle to a joint in a World. The zero value is no joint.
type Constraint uint32

// ShapeType selects the collision geometry of a body.
type ShapeType int

const (
	ShapeCircle ShapeType = iota
	ShapeBox
)

// Shape describes collision geometry centered on the body.
type Shape struct {
	Type   ShapeType
	Radius float64 // ShapeCircle
	Width  float64 // ShapeBox
	Height float64 // ShapeBox
}

// Circle returns a circle shape.
func Circle(radius float64) Shape {
	return Shape{Type: ShapeCircle, Radius: radius}
}

// Box returns a box shape.
func Box(width, height float64) Shape {
	return Shape{Type: ShapeBox, Width: width, Height: height}
}

// BodyDef holds the creation parameters of a body.
type BodyDef struct {
	Kind        Kind
	Position    core.Vec
	Shape       Shape
	Mass        float64
	FrictionAir float64 // Fraction of velocity lost per 60Hz frame
	Static      bool
	Sensor      bool
	Category    uint // Collision category bit; 0 means the default category
	Group       int  // See World.NextGroup; 0 means no group
}

// JointDef holds the creation parameters of a distance constraint.
// Anchors are offsets from each body's center in world orientation at the
// time of creation; they rotate with the bodies afterwards.
type JointDef struct {
	A, B       Body
	AnchorA    core.Vec
	AnchorB    core.Vec
	RestLength float64
	Stiffness  float64 // 0..1, values >= 1 give a rigid joint
	Damping    float64 // 0..1
}

// Contact is a collision-begin event between two bodies.
type Contact struct {
	A, B         Body
	KindA, KindB Kind
}

// Other returns the body and kind of the side that is not k, and whether
// the contact involves k at all.
func (c Contact) Other(k Kind) (Body, Kind, bool) {
	switch k {
	case c.KindA:
		return c.B, c.KindB, true
	case c.KindB:
		return c.A, c.KindA, true
	default:
		return 0, KindNone, false
	}
}

// Involves returns the bodies of kinds a and b if the contact is between them.
func (c Contact) Involves(a, b Kind) (Body, Body, bool) {
	if c.KindA == a && c.KindB == b {
		return c.A, c.B, true
	}
	if c.KindA == b && c.KindB == a {
		return c.B, c.A, true
	}
	return 0, 0, false
}

// ContactFunc receives contacts after each step.
type ContactFunc func(Contact)

// World is the engine contract consumed by the game.
// Operations on missing bodies or joints are no-ops.
type World interface {
	CreateBody(def BodyDef) Body
	DestroyBody(b Body)
	Exists(b Body) bool
	Kind(b Body) Kind

	SetFixedRotation(b Body)
	SetMass(b Body, mass float64)
	SetAngle(b Body, radians float64)
	Position(b Body) core.Vec
	Angle(b Body) float64
	Velocity(b Body) core.Vec
	SetVelocity(b Body, v core.Vec)
	ApplyForce(b Body, f core.Vec)

	AddJoint(def JointDef) Constraint
	RemoveJoint(c Constraint)

	// NextCategory returns a fresh collision category bit.
	NextCategory() uint
	// NextGroup returns a fresh group id. Bodies sharing an isolated group
	// never collide with each other; other groups collide as usual.
	NextGroup(isolated bool) int

	OnContact(fn ContactFunc)
	Step(deltaMs float64)
}

// FrameMs is the frame length that FrictionAir is expressed against.
const FrameMs = 1000.0 / 60.0
