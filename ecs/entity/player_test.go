package entity

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/ecs/component"
	"github.com/milk9111/fps/prefabs"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNewPlayerFacingMatchesAngles(t *testing.T) {
	w := ecs.NewWorld()
	spec := &prefabs.PlayerSpec{
		Name:     "player",
		Movement: prefabs.MovementSpec{Pitch: 90, Yaw: 30},
		Body:     prefabs.BodySpec{Radius: 1, Mass: 1},
	}
	player, err := NewPlayerFromSpec(w, spec, mgl64.Vec3{0, 0, 2})
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}

	m, ok := ecs.Get(w, player, component.MovementComponent.Kind())
	if !ok {
		t.Fatalf("expected movement on the player")
	}
	if m.Pitch != 90 || m.Yaw != 30 {
		t.Fatalf("expected spawn angles kept until the first look update, got pitch %v yaw %v", m.Pitch, m.Yaw)
	}
	wantYaw := mgl64.QuatRotate(-mgl64.DegToRad(30), mgl64.Vec3{0, 0, 1})
	wantPitch := mgl64.QuatRotate(mgl64.DegToRad(90), mgl64.Vec3{-1, 0, 0})
	if !m.FacingYaw.ApproxEqualFunc(wantYaw, near) {
		t.Fatalf("facing yaw out of sync at spawn: %v vs %v", m.FacingYaw, wantYaw)
	}
	if !m.FacingPitch.ApproxEqualFunc(wantPitch, near) {
		t.Fatalf("facing pitch out of sync at spawn: %v vs %v", m.FacingPitch, wantPitch)
	}
}

func TestNewPlayerTuningDefaults(t *testing.T) {
	w := ecs.NewWorld()
	spec := &prefabs.PlayerSpec{
		Movement: prefabs.MovementSpec{Speed: 12, Acceleration: -1},
		Body:     prefabs.BodySpec{Radius: 1},
	}
	player, err := NewPlayerFromSpec(w, spec, mgl64.Vec3{})
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	m, _ := ecs.Get(w, player, component.MovementComponent.Kind())
	if m.Speed != 12 {
		t.Fatalf("expected speed from spec, got %v", m.Speed)
	}
	if m.Acceleration != component.DefaultAcceleration || m.Sensitivity != component.DefaultSensitivity {
		t.Fatalf("expected defaults for unset tuning, got accel %v sens %v", m.Acceleration, m.Sensitivity)
	}
}
