package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/fps/config"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/ecs/component"
)

func newBody(t *testing.T, w *ecs.World, pos mgl64.Vec3) (*component.Transform, *component.RigidBody) {
	t.Helper()
	e := ecs.CreateEntity(w)
	transform := component.NewTransform(pos)
	body := &component.RigidBody{Radius: 1, Mass: 1, Friction: 3, LockRotation: true}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), transform); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.RigidBodyComponent.Kind(), body); err != nil {
		t.Fatal(err)
	}
	return transform, body
}

func TestPhysicsSettlesOnGround(t *testing.T) {
	cfg := config.Default().Physics
	w := ecs.NewWorld()
	transform, body := newBody(t, w, mgl64.Vec3{0, 0, 2})

	runSystems(w, 1.0/60, NewPhysicsSystem(cfg, nil))
	if body.Body == nil || body.Shape == nil {
		t.Fatalf("expected physics handles attached to the rigid body")
	}
	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60)
	}

	if !body.Grounded {
		t.Fatalf("expected body grounded after falling")
	}
	if want := cfg.GroundHeight + body.Radius; math.Abs(transform.Translation.Z()-want) > 1e-9 {
		t.Fatalf("expected resting height %v, got %v", want, transform.Translation.Z())
	}
	if body.Linvel.Z() != 0 {
		t.Fatalf("expected no vertical velocity at rest, got %v", body.Linvel.Z())
	}
}

func TestPhysicsMovesAlongVelocity(t *testing.T) {
	cfg := config.Default().Physics
	cfg.GroundDamping = 1
	w := ecs.NewWorld()
	transform, body := newBody(t, w, mgl64.Vec3{0, 0, 1})
	body.Linvel = mgl64.Vec3{0, 3, 0}

	runSystems(w, 0.5, NewPhysicsSystem(cfg, nil))

	if math.Abs(transform.Translation.Y()-1.5) > 1e-6 {
		t.Fatalf("expected y 1.5 after half a second at 3/s, got %v", transform.Translation.Y())
	}
	if math.Abs(body.Linvel.Y()-3) > 1e-6 {
		t.Fatalf("expected planar velocity read back, got %v", body.Linvel)
	}
}

func TestPhysicsWallBlocks(t *testing.T) {
	cfg := config.Default().Physics
	cfg.GroundDamping = 1
	w := ecs.NewWorld()
	transform, body := newBody(t, w, mgl64.Vec3{0, 0, 1})

	wall := ecs.CreateEntity(w)
	if err := ecs.Add(w, wall, component.SceneWallComponent.Kind(), &component.SceneWall{
		From:      mgl64.Vec2{3, -5},
		To:        mgl64.Vec2{3, 5},
		Thickness: 0.5,
	}); err != nil {
		t.Fatal(err)
	}

	runSystems(w, 1.0/60, NewPhysicsSystem(cfg, nil))
	// Keep driving into the wall long after contact; the body must not creep.
	for i := 0; i < 240; i++ {
		body.Linvel[0] = 5
		w.Step(1.0 / 60)
		if x := transform.Translation.X(); x > 1.85 {
			t.Fatalf("frame %d: body sank into the wall, x=%v", i, x)
		}
	}

	// Wall face at 2.75 and body radius 1.
	if x := transform.Translation.X(); x < 1.7 {
		t.Fatalf("expected body resting against the wall near x=1.75, got %v", x)
	}
	if body.Linvel.X() > 1e-6 {
		t.Fatalf("expected no velocity into the wall, got %v", body.Linvel)
	}
}

func TestPhysicsSlidesAlongWall(t *testing.T) {
	cfg := config.Default().Physics
	cfg.GroundDamping = 1
	w := ecs.NewWorld()
	transform, body := newBody(t, w, mgl64.Vec3{1.75, 0, 1})

	wall := ecs.CreateEntity(w)
	if err := ecs.Add(w, wall, component.SceneWallComponent.Kind(), &component.SceneWall{
		From:      mgl64.Vec2{3, -50},
		To:        mgl64.Vec2{3, 50},
		Thickness: 0.5,
	}); err != nil {
		t.Fatal(err)
	}

	runSystems(w, 1.0/60, NewPhysicsSystem(cfg, nil))
	for i := 0; i < 60; i++ {
		body.Linvel = mgl64.Vec3{5, 2, 0}
		w.Step(1.0 / 60)
	}

	if x := transform.Translation.X(); x > 1.85 {
		t.Fatalf("expected body held at the wall, got x=%v", x)
	}
	if y := transform.Translation.Y(); y < 0.5 {
		t.Fatalf("expected body to keep moving along the wall, got y=%v", y)
	}
}

func TestPhysicsGroundFollowsScene(t *testing.T) {
	cfg := config.Default().Physics
	w := ecs.NewWorld()
	root := ecs.CreateEntity(w)
	if err := ecs.Add(w, root, component.SceneInstanceComponent.Kind(), &component.SceneInstance{Name: "raised"}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, root, component.TransformComponent.Kind(), component.NewTransform(mgl64.Vec3{0, 0, 3})); err != nil {
		t.Fatal(err)
	}
	transform, body := newBody(t, w, mgl64.Vec3{0, 0, 1})

	ps := NewPhysicsSystem(cfg, nil)
	runSystems(w, 1.0/60, ps)
	if ps.Ground() != 3 {
		t.Fatalf("expected ground at the scene root height 3, got %v", ps.Ground())
	}
	if !body.Grounded || transform.Translation.Z() != 4 {
		t.Fatalf("expected body lifted onto the scene floor at 4, got z=%v grounded=%v", transform.Translation.Z(), body.Grounded)
	}

	ecs.DestroyEntity(w, root)
	w.Step(1.0 / 60)
	if ps.Ground() != cfg.GroundHeight {
		t.Fatalf("expected configured ground %v without a scene, got %v", cfg.GroundHeight, ps.Ground())
	}
}

func TestPhysicsRemovesDestroyedBodies(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(config.Default().Physics, nil)
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(mgl64.Vec3{})); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.RigidBodyComponent.Kind(), &component.RigidBody{Radius: 1}); err != nil {
		t.Fatal(err)
	}

	runSystems(w, 1.0/60, ps)
	if len(ps.entities) != 1 {
		t.Fatalf("expected one tracked body, got %d", len(ps.entities))
	}
	ecs.DestroyEntity(w, e)
	w.Step(1.0 / 60)
	if len(ps.entities) != 0 {
		t.Fatalf("expected destroyed body untracked, got %d", len(ps.entities))
	}
}

func TestWorldTranslation(t *testing.T) {
	w := ecs.NewWorld()
	root := ecs.CreateEntity(w)
	child := ecs.CreateEntity(w)
	if err := ecs.Add(w, root, component.TransformComponent.Kind(), component.NewTransform(mgl64.Vec3{1, 2, 3})); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, child, component.TransformComponent.Kind(), component.NewTransform(mgl64.Vec3{1, 0, 0})); err != nil {
		t.Fatal(err)
	}
	if err := w.SetParent(child, root); err != nil {
		t.Fatal(err)
	}
	if got := WorldTranslation(w, child); !got.ApproxFuncEqual(mgl64.Vec3{2, 2, 3}, near) {
		t.Fatalf("expected {2 2 3}, got %v", got)
	}
}
