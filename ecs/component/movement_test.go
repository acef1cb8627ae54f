package component

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

// near compares absolutely; relative comparison fails against exact zeros.
func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestAccumulateClampsPitch(t *testing.T) {
	tests := []struct {
		name      string
		start     float64
		delta     float64
		wantPitch float64
	}{
		{"default_clamps_to_zero", DefaultPitch, 0, 0},
		{"within_range", -45, -10, -55},
		{"below_min", -170, -30, MinPitch},
		{"above_max", -5, 30, MaxPitch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMovement()
			m.Pitch = tc.start
			m.Accumulate(tc.delta, 0)
			if math.Abs(m.Pitch-tc.wantPitch) > eps {
				t.Fatalf("expected pitch %v, got %v", tc.wantPitch, m.Pitch)
			}
		})
	}
}

func TestAccumulateYawUnbounded(t *testing.T) {
	m := NewMovement()
	for i := 0; i < 10; i++ {
		m.Accumulate(0, 90)
	}
	if m.Yaw != 900 {
		t.Fatalf("expected yaw 900, got %v", m.Yaw)
	}
}

func TestFacingRotation(t *testing.T) {
	m := NewMovement()
	m.Accumulate(0, 90)

	// Positive yaw turns clockwise seen from above: forward (+Y) becomes +X.
	got := m.Facing().Rotate(mgl64.Vec3{0, 1, 0})
	if !got.ApproxFuncEqual(mgl64.Vec3{1, 0, 0}, near) {
		t.Fatalf("expected forward rotated to +X, got %v", got)
	}

	if zero := m.Facing().Rotate(mgl64.Vec3{}); zero != (mgl64.Vec3{}) {
		t.Fatalf("rotating the zero vector should stay zero, got %v", zero)
	}
}

func TestLookMatchesAngles(t *testing.T) {
	m := NewMovement()
	// The default pitch of 90 clamps to 0 on the first call.
	m.Accumulate(-30, 45)
	m.Accumulate(-15, 15)

	wantYaw := mgl64.QuatRotate(-mgl64.DegToRad(60), mgl64.Vec3{0, 0, 1})
	wantPitch := mgl64.QuatRotate(mgl64.DegToRad(-15), mgl64.Vec3{-1, 0, 0})
	if !m.FacingYaw.ApproxEqualFunc(wantYaw, near) {
		t.Fatalf("facing yaw out of sync: %v vs %v", m.FacingYaw, wantYaw)
	}
	if !m.Look().ApproxEqualFunc(wantYaw.Mul(wantPitch), near) {
		t.Fatalf("look should be yaw * pitch, got %v", m.Look())
	}
}

func TestSetDirection(t *testing.T) {
	tests := []struct {
		name string
		in   mgl64.Vec3
		want mgl64.Vec3
	}{
		{"zero_stays_zero", mgl64.Vec3{}, mgl64.Vec3{}},
		{"unit", mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 1, 0}},
		{"diagonal", mgl64.Vec3{1, 1, 0}, mgl64.Vec3{math.Sqrt2 / 2, math.Sqrt2 / 2, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMovement()
			m.SetDirection(tc.in)
			if !m.Direction.ApproxFuncEqual(tc.want, near) {
				t.Fatalf("expected %v, got %v", tc.want, m.Direction)
			}
		})
	}

	m := NewMovement()
	m.SetDirectionUnchecked(mgl64.Vec3{2, 0, 0})
	if m.Direction != (mgl64.Vec3{2, 0, 0}) {
		t.Fatalf("unchecked direction should be stored as given, got %v", m.Direction)
	}
}

func TestInputPressed(t *testing.T) {
	var in Input
	in.Held[KeyJump] = true
	if !in.Pressed(KeyJump) || in.Pressed(KeyForward) {
		t.Fatalf("unexpected pressed state %v", in.Held)
	}
	if in.Pressed(KeyCount) {
		t.Fatalf("out of range key should not be pressed")
	}
}
