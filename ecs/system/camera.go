package system

import (
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/ecs/component"
)

// ApplyLookSystem copies each player's look rotation onto its camera children.
type ApplyLookSystem struct{}

func NewApplyLookSystem() *ApplyLookSystem {
	return &ApplyLookSystem{}
}

func (s *ApplyLookSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w,
		component.PlayerTagComponent.Kind(),
		component.MovementComponent.Kind(),
		func(e ecs.Entity, _ *component.PlayerTag, movement *component.Movement) {
			look := movement.Look()
			for _, child := range w.Children(e) {
				if !ecs.Has(w, child, component.CameraTagComponent.Kind()) {
					continue
				}
				if transform, ok := ecs.Get(w, child, component.TransformComponent.Kind()); ok {
					transform.Rotation = look
				}
			}
		})
}
