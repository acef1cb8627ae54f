package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/ecs/component"
	"github.com/milk9111/fps/scenes"
)

// SpawnScene instantiates scene under a fresh SceneInstance root. Walls and
// props become children of the root, so destroying the root removes the whole
// scene.
func SpawnScene(w *ecs.World, scene *scenes.Scene, path string) (ecs.Entity, error) {
	if scene == nil {
		return 0, fmt.Errorf("scene: %s is nil", path)
	}
	root := ecs.CreateEntity(w)
	if err := buildScene(w, root, scene, path); err != nil {
		ecs.DestroyEntity(w, root)
		return 0, err
	}
	return root, nil
}

func buildScene(w *ecs.World, root ecs.Entity, scene *scenes.Scene, path string) error {
	id := uuid.New()
	if err := ecs.Add(w, root, component.SceneInstanceComponent.Kind(), &component.SceneInstance{
		ID:   id,
		Name: scene.Name,
		Path: path,
	}); err != nil {
		return fmt.Errorf("scene %q: add instance: %w", scene.Name, err)
	}
	if err := ecs.Add(w, root, component.TransformComponent.Kind(), component.NewTransform(mgl64.Vec3{0, 0, scene.GroundHeight})); err != nil {
		return fmt.Errorf("scene %q: add transform: %w", scene.Name, err)
	}

	for i, wall := range scene.Walls {
		e := ecs.CreateEntity(w)
		if err := w.SetParent(e, root); err != nil {
			return fmt.Errorf("scene %q: attach wall %d: %w", scene.Name, i, err)
		}
		if err := ecs.Add(w, e, component.SceneWallComponent.Kind(), &component.SceneWall{
			From:      mgl64.Vec2{wall.From[0], wall.From[1]},
			To:        mgl64.Vec2{wall.To[0], wall.To[1]},
			Thickness: wall.Thickness,
			Instance:  id,
		}); err != nil {
			return fmt.Errorf("scene %q: add wall %d: %w", scene.Name, i, err)
		}
	}

	for _, prop := range scene.Props {
		e := ecs.CreateEntity(w)
		if err := w.SetParent(e, root); err != nil {
			return fmt.Errorf("scene %q: attach prop %s: %w", scene.Name, prop.Name, err)
		}
		if err := ecs.Add(w, e, component.SceneObjectComponent.Kind(), &component.SceneObject{
			Name:     prop.Name,
			Radius:   prop.Radius,
			Instance: id,
		}); err != nil {
			return fmt.Errorf("scene %q: add prop %s: %w", scene.Name, prop.Name, err)
		}
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(prop.Translation())); err != nil {
			return fmt.Errorf("scene %q: add prop %s transform: %w", scene.Name, prop.Name, err)
		}
		if prop.Name != "" {
			if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: prop.Name}); err != nil {
				return fmt.Errorf("scene %q: add prop %s name: %w", scene.Name, prop.Name, err)
			}
		}
	}

	return nil
}
