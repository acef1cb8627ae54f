package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// RigidBody is the controllable physics handle. Linvel is authoritative: the
// physics system pushes its horizontal part into the Chipmunk body before a
// step and reads it back afterwards, and integrates the vertical axis itself.
type RigidBody struct {
	Linvel      mgl64.Vec3
	Radius      float64
	Mass        float64
	Friction    float64
	Restitution float64
	// LockRotation pins all rotational degrees of freedom.
	LockRotation bool
	Grounded     bool

	Body  *cp.Body
	Shape *cp.Shape
}

var RigidBodyComponent = NewComponent[RigidBody]()
