package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/fps/common"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/ecs/component"
)

var keyAxes = [component.KeyCount]mgl64.Vec3{
	component.KeyForward:     common.Forward,
	component.KeyBack:        common.Forward.Mul(-1),
	component.KeyStrafeLeft:  common.Right.Mul(-1),
	component.KeyStrafeRight: common.Right,
}

// MoveInputSystem resolves held movement keys into a planar direction in
// actor space.
type MoveInputSystem struct{}

func NewMoveInputSystem() *MoveInputSystem {
	return &MoveInputSystem{}
}

func (s *MoveInputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach3(w,
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.MovementComponent.Kind(),
		func(_ ecs.Entity, _ *component.PlayerTag, input *component.Input, movement *component.Movement) {
			movement.SetDirection(MoveIntent(input))
		})
}

// MoveIntent sums the unit axis of every held movement key. The result is not
// normalized: forward and right together give (1, 1, 0).
func MoveIntent(input *component.Input) mgl64.Vec3 {
	var intent mgl64.Vec3
	for _, k := range component.MovementKeys {
		if input.Pressed(k) {
			intent = intent.Add(keyAxes[k])
		}
	}
	return intent
}

// JumpInputSystem copies the held jump key into every movement record. Holding
// jump keeps it set every frame.
type JumpInputSystem struct{}

func NewJumpInputSystem() *JumpInputSystem {
	return &JumpInputSystem{}
}

func (s *JumpInputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w,
		component.InputComponent.Kind(),
		component.MovementComponent.Kind(),
		func(_ ecs.Entity, input *component.Input, movement *component.Movement) {
			movement.WantsToJump = input.Jump
		})
}

// ApplyMovementSystem accelerates bodies along the facing-rotated intent and
// caps their speed.
type ApplyMovementSystem struct{}

func NewApplyMovementSystem() *ApplyMovementSystem {
	return &ApplyMovementSystem{}
}

func (s *ApplyMovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Time().Delta()
	ecs.ForEach2(w,
		component.MovementComponent.Kind(),
		component.RigidBodyComponent.Kind(),
		func(_ ecs.Entity, movement *component.Movement, body *component.RigidBody) {
			body.Linvel = ApplyMovement(movement, body.Linvel, dt)
		})
}

// ApplyMovement returns linvel after one frame of acceleration along the
// movement direction, clamped to the movement speed with the vertical
// component preserved.
func ApplyMovement(movement *component.Movement, linvel mgl64.Vec3, dt float64) mgl64.Vec3 {
	force := movement.Facing().Rotate(movement.Direction)
	linvel = linvel.Add(force.Mul(movement.Acceleration * dt))
	return common.ClampSpeed(linvel, movement.Speed)
}

// JumpImpulse is the vertical velocity added each frame jump is wanted.
const JumpImpulse = 1.0

type ApplyJumpSystem struct{}

func NewApplyJumpSystem() *ApplyJumpSystem {
	return &ApplyJumpSystem{}
}

func (s *ApplyJumpSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w,
		component.MovementComponent.Kind(),
		component.RigidBodyComponent.Kind(),
		func(_ ecs.Entity, movement *component.Movement, body *component.RigidBody) {
			if movement.WantsToJump {
				body.Linvel[common.UpAxis] += JumpImpulse
			}
		})
}
