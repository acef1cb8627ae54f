package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/fps/common"
)

const (
	DefaultSpeed        = 8.0
	DefaultAcceleration = 100.0
	DefaultSensitivity  = 0.05
	// DefaultPitch is clamped into [MinPitch, MaxPitch] by the first look update.
	DefaultPitch = 90.0

	MinPitch = -180.0
	MaxPitch = 0.0
)

var (
	yawAxis   = mgl64.Vec3{0, 0, 1}
	pitchAxis = mgl64.Vec3{-1, 0, 0}
)

// Movement is the per-actor orientation and movement record. FacingYaw and
// FacingPitch are derived from Yaw and Pitch by Accumulate and Refresh and
// are never set on their own.
type Movement struct {
	// Direction is the normalized planar intent in actor-local space.
	Direction mgl64.Vec3
	// Pitch and Yaw are in degrees.
	Pitch float64
	Yaw   float64
	Roll  float64

	FacingYaw   mgl64.Quat
	FacingPitch mgl64.Quat

	Speed        float64
	Acceleration float64
	WantsToJump  bool
	Sensitivity  float64
}

// NewMovement returns a record with the default tuning.
func NewMovement() *Movement {
	m := &Movement{
		Pitch:        DefaultPitch,
		Speed:        DefaultSpeed,
		Acceleration: DefaultAcceleration,
		Sensitivity:  DefaultSensitivity,
	}
	m.Refresh()
	return m
}

// Accumulate adds the deltas (degrees), clamps pitch to [MinPitch, MaxPitch]
// and recomputes both facing rotations from the stored angles.
func (m *Movement) Accumulate(pitchDelta, yawDelta float64) {
	m.Yaw += yawDelta
	m.Pitch = common.Clamp(m.Pitch+pitchDelta, MinPitch, MaxPitch)
	m.Refresh()
}

// Refresh recomputes both facing rotations from Pitch and Yaw as stored.
// Call it after assigning the angles directly. It does not clamp.
func (m *Movement) Refresh() {
	m.FacingYaw = mgl64.QuatRotate(-mgl64.DegToRad(m.Yaw), yawAxis)
	m.FacingPitch = mgl64.QuatRotate(mgl64.DegToRad(m.Pitch), pitchAxis)
}

// Facing is the yaw-only rotation used to move on the horizontal plane.
func (m *Movement) Facing() mgl64.Quat {
	return m.FacingYaw
}

// Look is the full camera rotation, yaw then pitch.
func (m *Movement) Look() mgl64.Quat {
	return m.FacingYaw.Mul(m.FacingPitch)
}

// SetDirection stores direction normalized, or zero when it has no length.
func (m *Movement) SetDirection(direction mgl64.Vec3) {
	m.Direction = common.NormalizeOrZero(direction)
}

// SetDirectionUnchecked stores direction as given.
func (m *Movement) SetDirectionUnchecked(direction mgl64.Vec3) {
	m.Direction = direction
}

var MovementComponent = NewComponent[Movement]()
