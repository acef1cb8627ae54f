package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/ecs/component"
	"github.com/milk9111/fps/prefabs"
)

var tiltAxis = mgl64.Vec3{-1, 0, 0}

// NewCameraFromSpec attaches the camera described by spec under parent.
func NewCameraFromSpec(w *ecs.World, parent ecs.Entity, spec *prefabs.CameraSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := buildCamera(w, camera, parent, spec); err != nil {
		ecs.DestroyEntity(w, camera)
		return 0, err
	}
	return camera, nil
}

func buildCamera(w *ecs.World, camera, parent ecs.Entity, spec *prefabs.CameraSpec) error {
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return fmt.Errorf("camera: add camera tag: %w", err)
	}

	if spec.Name != "" {
		if err := ecs.Add(w, camera, component.NameComponent.Kind(), &component.Name{Value: spec.Name}); err != nil {
			return fmt.Errorf("camera: add name: %w", err)
		}
	}

	transform := component.NewTransform(spec.Offset.Vec3())
	transform.Rotation = mgl64.QuatRotate(mgl64.DegToRad(spec.Tilt), tiltAxis)
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), transform); err != nil {
		return fmt.Errorf("camera: add transform: %w", err)
	}

	fov := spec.FOV
	if fov == 0 {
		fov = 100
	}
	near := spec.Near
	if near == 0 {
		near = 0.1
	}
	far := spec.Far
	if far == 0 {
		far = 1000
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		FOV:  fov,
		Near: near,
		Far:  far,
	}); err != nil {
		return fmt.Errorf("camera: add camera component: %w", err)
	}

	if err := w.SetParent(camera, parent); err != nil {
		return fmt.Errorf("camera: attach to %s: %w", parent, err)
	}
	return nil
}
