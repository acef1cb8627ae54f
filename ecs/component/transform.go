package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is an entity's pose relative to its parent, or to the world when
// it has none.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

func NewTransform(translation mgl64.Vec3) *Transform {
	return &Transform{
		Translation: translation,
		Rotation:    mgl64.QuatIdent(),
		Scale:       mgl64.Vec3{1, 1, 1},
	}
}

// Forward is the local -Z axis in parent space (camera convention).
func (t *Transform) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 0, -1})
}

var TransformComponent = NewComponent[Transform]()
