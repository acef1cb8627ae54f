package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fps/common"
	"github.com/milk9111/fps/config"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/ecs/component"
	"github.com/milk9111/fps/logger"
	"go.uber.org/zap"
)

const (
	collisionTypeActor cp.CollisionType = iota + 1
	collisionTypeSolid
)

// collisionSlop is the overlap Chipmunk tolerates before pushing shapes apart,
// in world units. The default of 0.1 is sized for pixel scenes.
const collisionSlop = 0.01

// PhysicsSystem hosts the rigid bodies. Chipmunk resolves the horizontal
// plane (walls, props, friction); the vertical axis is integrated here
// against a flat ground at the configured height.
type PhysicsSystem struct {
	cfg    config.PhysicsConfig
	space  *cp.Space
	log    *zap.Logger
	ground float64

	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body     *cp.Body
	shapes   []*cp.Shape
	static   bool
	grounded bool
}

func NewPhysicsSystem(cfg config.PhysicsConfig, log *zap.Logger) *PhysicsSystem {
	if log == nil {
		log = logger.Nop()
	}
	ps := &PhysicsSystem{
		cfg:      cfg,
		ground:   cfg.GroundHeight,
		log:      log.Named("physics"),
		entities: make(map[ecs.Entity]*bodyInfo),
	}
	ps.space = ps.newSpace()
	return ps
}

func (ps *PhysicsSystem) newSpace() *cp.Space {
	space := cp.NewSpace()
	iterations := ps.cfg.Iterations
	if iterations <= 0 {
		iterations = 10
	}
	space.Iterations = uint(iterations)
	// Gravity only acts on the vertical axis, which the space does not model.
	space.SetGravity(cp.Vector{})
	space.SetCollisionSlop(collisionSlop)
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = ps.newSpace()
	}

	ps.cleanupEntities(w)
	ps.syncGround(w)
	ps.syncStatics(w)
	ps.syncBodies(w)

	dt := w.Time().Delta()
	if dt <= 0 {
		return
	}

	ps.integrateVertical(w, dt)
	ps.pushVelocities(w)
	ps.space.Step(dt)
	ps.syncTransforms(w)
}

// Ground is the height of the floor plane bodies rest on.
func (ps *PhysicsSystem) Ground() float64 {
	return ps.ground
}

// syncGround puts the floor at the spawned scene's root, which is where its
// props stand. Without a scene the configured height is used.
func (ps *PhysicsSystem) syncGround(w *ecs.World) {
	ps.ground = ps.cfg.GroundHeight
	root, ok := w.First(component.SceneInstanceComponent.Kind())
	if !ok || !ecs.Has(w, root, component.TransformComponent.Kind()) {
		return
	}
	ps.ground = WorldTranslation(w, root)[common.UpAxis]
}

func (ps *PhysicsSystem) syncStatics(w *ecs.World) {
	ecs.ForEach(w, component.SceneWallComponent.Kind(), func(e ecs.Entity, wall *component.SceneWall) {
		if _, ok := ps.entities[e]; ok {
			return
		}
		radius := wall.Thickness / 2
		shape := cp.NewSegment(ps.space.StaticBody,
			cp.Vector{X: wall.From.X(), Y: wall.From.Y()},
			cp.Vector{X: wall.To.X(), Y: wall.To.Y()},
			radius)
		ps.addStatic(e, shape)
	})

	ecs.ForEach2(w, component.SceneObjectComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, obj *component.SceneObject, _ *component.Transform) {
		if _, ok := ps.entities[e]; ok {
			return
		}
		if obj.Radius <= 0 {
			return
		}
		pos := WorldTranslation(w, e)
		shape := cp.NewCircle(ps.space.StaticBody, obj.Radius, cp.Vector{X: pos.X(), Y: pos.Y()})
		ps.addStatic(e, shape)
	})
}

func (ps *PhysicsSystem) addStatic(e ecs.Entity, shape *cp.Shape) {
	shape.SetFriction(1)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeSolid)
	ps.space.AddShape(shape)
	ps.entities[e] = &bodyInfo{
		body:   ps.space.StaticBody,
		shapes: []*cp.Shape{shape},
		static: true,
	}
}

func (ps *PhysicsSystem) syncBodies(w *ecs.World) {
	ecs.ForEach2(w, component.RigidBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, rb *component.RigidBody, transform *component.Transform) {
		if info, ok := ps.entities[e]; ok {
			if rb.Body == nil {
				rb.Body = info.body
				rb.Shape = info.shapes[0]
			}
			return
		}
		info := ps.createBodyInfo(rb, transform)
		ps.entities[e] = info
		rb.Body = info.body
		rb.Shape = info.shapes[0]
		ps.log.Debug("body created",
			zap.Stringer("entity", e),
			zap.Float64("radius", rb.Radius),
			zap.Bool("lock_rotation", rb.LockRotation))
	})
}

func (ps *PhysicsSystem) createBodyInfo(rb *component.RigidBody, transform *component.Transform) *bodyInfo {
	mass := rb.Mass
	if mass <= 0 {
		mass = 1
	}
	radius := rb.Radius
	if radius <= 0 {
		radius = 1
	}

	moment := cp.MomentForCircle(mass, 0, radius, cp.Vector{})
	if rb.LockRotation {
		moment = math.Inf(1)
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.Translation.X(), Y: transform.Translation.Y()})
	body.SetVelocityVector(cp.Vector{X: rb.Linvel.X(), Y: rb.Linvel.Y()})

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(rb.Friction)
	shape.SetElasticity(rb.Restitution)
	shape.SetCollisionType(collisionTypeActor)

	info := &bodyInfo{body: body, shapes: []*cp.Shape{shape}}

	groundDamping := ps.cfg.GroundDamping
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		if info.grounded {
			damping = math.Pow(groundDamping, dt)
		}
		cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
	})

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return info
}

// integrateVertical applies gravity along the up axis and keeps bodies on or
// above the ground.
func (ps *PhysicsSystem) integrateVertical(w *ecs.World, dt float64) {
	ecs.ForEach2(w, component.RigidBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, rb *component.RigidBody, transform *component.Transform) {
		info, ok := ps.entities[e]
		if !ok || info.static {
			return
		}
		rb.Linvel[common.UpAxis] += ps.cfg.Gravity * dt
		z := transform.Translation[common.UpAxis] + rb.Linvel[common.UpAxis]*dt

		floor := ps.ground + rb.Radius
		grounded := z <= floor
		if grounded {
			z = floor
			if rb.Linvel[common.UpAxis] < 0 {
				rb.Linvel[common.UpAxis] = 0
			}
		}
		transform.Translation[common.UpAxis] = z
		rb.Grounded = grounded
		info.grounded = grounded
	})
}

func (ps *PhysicsSystem) pushVelocities(w *ecs.World) {
	ecs.ForEach(w, component.RigidBodyComponent.Kind(), func(e ecs.Entity, rb *component.RigidBody) {
		info, ok := ps.entities[e]
		if !ok || info.static {
			return
		}
		vel := cp.Vector{X: rb.Linvel.X(), Y: rb.Linvel.Y()}
		// Drop the part of the velocity that drives into a current contact.
		// The solver only cancels it after positions are integrated, so
		// pushing it every frame sinks the body into walls.
		info.body.EachArbiter(func(arb *cp.Arbiter) {
			n := arb.Normal()
			if into := vel.Dot(n); into > 0 {
				vel = vel.Sub(n.Mult(into))
			}
		})
		info.body.SetVelocityVector(vel)
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.RigidBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, rb *component.RigidBody, transform *component.Transform) {
		info, ok := ps.entities[e]
		if !ok || info.static {
			return
		}
		pos := info.body.Position()
		vel := info.body.Velocity()
		transform.Translation[0] = pos.X
		transform.Translation[1] = pos.Y
		rb.Linvel[0] = vel.X
		rb.Linvel[1] = vel.Y
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) {
			if info.static || ecs.Has(w, e, component.RigidBodyComponent.Kind()) {
				continue
			}
		}
		for _, shape := range info.shapes {
			ps.space.RemoveShape(shape)
		}
		if !info.static && info.body != nil {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

// WorldTranslation resolves the translation of e through its parents.
func WorldTranslation(w *ecs.World, e ecs.Entity) mgl64.Vec3 {
	var pos mgl64.Vec3
	for cur, ok := e, true; ok; cur, ok = w.Parent(cur) {
		transform, has := ecs.Get(w, cur, component.TransformComponent.Kind())
		if !has {
			continue
		}
		pos = transform.Rotation.Rotate(pos).Add(transform.Translation)
	}
	return pos
}
