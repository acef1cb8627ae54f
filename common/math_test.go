package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNormalizeOrZero(t *testing.T) {
	tests := []struct {
		name string
		in   mgl64.Vec3
		want mgl64.Vec3
	}{
		{"zero", mgl64.Vec3{}, mgl64.Vec3{}},
		{"tiny", mgl64.Vec3{1e-12, 0, 0}, mgl64.Vec3{}},
		{"axis", mgl64.Vec3{0, 3, 0}, mgl64.Vec3{0, 1, 0}},
		{"diagonal", mgl64.Vec3{1, -1, 0}, mgl64.Vec3{math.Sqrt2 / 2, -math.Sqrt2 / 2, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeOrZero(tc.in)
			if !got.ApproxFuncEqual(tc.want, near) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		name           string
		in             mgl64.Vec3
		speed          float64
		wantHorizontal float64
	}{
		{"under_limit_untouched", mgl64.Vec3{3, 4, 0}, 8, 5},
		{"planar_clamped_to_speed", mgl64.Vec3{30, 40, 0}, 8, 8},
		{"vertical_preserved", mgl64.Vec3{30, 40, 6}, 8, 8 * 50 / math.Sqrt(50*50+36)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClampSpeed(tc.in, tc.speed)
			if got[UpAxis] != tc.in[UpAxis] {
				t.Fatalf("vertical changed: %v -> %v", tc.in[UpAxis], got[UpAxis])
			}
			if h := Horizontal(got).Len(); math.Abs(h-tc.wantHorizontal) > 1e-9 {
				t.Fatalf("expected horizontal %v, got %v", tc.wantHorizontal, h)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Fatalf("clamp out of range")
	}
}
