package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// SceneInstance is the root of one instantiated scene. Every object spawned
// from the scene is parented under it.
type SceneInstance struct {
	ID   uuid.UUID
	Name string
	Path string
}

var SceneInstanceComponent = NewComponent[SceneInstance]()

// SceneObject is a static prop spawned from a scene. The physics system gives
// it a circular collider of Radius at its transform.
type SceneObject struct {
	Name     string
	Radius   float64
	Instance uuid.UUID
}

var SceneObjectComponent = NewComponent[SceneObject]()

// SceneWall is a static slab between From and To on the ground plane.
type SceneWall struct {
	From      mgl64.Vec2
	To        mgl64.Vec2
	Thickness float64
	Instance  uuid.UUID
}

var SceneWallComponent = NewComponent[SceneWall]()
