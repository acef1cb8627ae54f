package system

import (
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/ecs/component"
)

// LookInputSystem turns the sampled pointer motion into yaw and pitch.
type LookInputSystem struct{}

func NewLookInputSystem() *LookInputSystem {
	return &LookInputSystem{}
}

func (s *LookInputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach3(w,
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.MovementComponent.Kind(),
		func(_ ecs.Entity, _ *component.PlayerTag, input *component.Input, movement *component.Movement) {
			yaw, pitch := LookDelta(input.Look.X(), input.Look.Y(), input.WindowScale, movement.Sensitivity)
			movement.Accumulate(pitch, yaw)
		})
}

// LookDelta scales a pointer delta into degrees. Multiplying by the window
// scale keeps the feel the same across resolutions.
func LookDelta(dx, dy, windowScale, sensitivity float64) (yaw, pitch float64) {
	scale := windowScale * (sensitivity / 1000)
	return dx * scale, dy * scale
}
