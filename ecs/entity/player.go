package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/ecs/component"
	"github.com/milk9111/fps/prefabs"
)

// NewPlayerFromSpec spawns the controllable actor described by spec at pos.
func NewPlayerFromSpec(w *ecs.World, spec *prefabs.PlayerSpec, pos mgl64.Vec3) (ecs.Entity, error) {
	player := ecs.CreateEntity(w)
	if err := buildPlayer(w, player, spec, pos); err != nil {
		ecs.DestroyEntity(w, player)
		return 0, err
	}
	return player, nil
}

func buildPlayer(w *ecs.World, player ecs.Entity, spec *prefabs.PlayerSpec, pos mgl64.Vec3) error {
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return fmt.Errorf("player: add player tag: %w", err)
	}

	if spec.Name != "" {
		if err := ecs.Add(w, player, component.NameComponent.Kind(), &component.Name{Value: spec.Name}); err != nil {
			return fmt.Errorf("player: add name: %w", err)
		}
	}

	if err := ecs.Add(w, player, component.TransformComponent.Kind(), component.NewTransform(pos)); err != nil {
		return fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return fmt.Errorf("player: add input: %w", err)
	}

	movement := component.NewMovement()
	if spec.Movement.Speed > 0 {
		movement.Speed = spec.Movement.Speed
	}
	if spec.Movement.Acceleration > 0 {
		movement.Acceleration = spec.Movement.Acceleration
	}
	if spec.Movement.Sensitivity > 0 {
		movement.Sensitivity = spec.Movement.Sensitivity
	}
	movement.Pitch = spec.Movement.Pitch
	movement.Yaw = spec.Movement.Yaw
	movement.Refresh()
	if err := ecs.Add(w, player, component.MovementComponent.Kind(), movement); err != nil {
		return fmt.Errorf("player: add movement: %w", err)
	}

	if err := ecs.Add(w, player, component.RigidBodyComponent.Kind(), &component.RigidBody{
		Radius:       spec.Body.Radius,
		Mass:         spec.Body.Mass,
		Friction:     spec.Body.Friction,
		Restitution:  spec.Body.Restitution,
		LockRotation: spec.Body.LockRotation,
	}); err != nil {
		return fmt.Errorf("player: add rigid body: %w", err)
	}

	return nil
}
