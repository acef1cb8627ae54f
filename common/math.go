package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// UpAxis is the index of the vertical component. The world is Z-up.
const UpAxis = 2

// normalizeEpsilon is the length below which a vector counts as zero.
const normalizeEpsilon = 1e-9

var (
	Up      = mgl64.Vec3{0, 0, 1}
	Forward = mgl64.Vec3{0, 1, 0}
	Right   = mgl64.Vec3{1, 0, 0}
)

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// is too short to normalize.
func NormalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l <= normalizeEpsilon || math.IsInf(l, 0) || math.IsNaN(l) {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampSpeed rescales v to speed when it is longer, then puts the incoming
// vertical component back. The result is not a horizontal-only clamp: with a
// non-zero vertical component the horizontal part ends up shorter than speed.
func ClampSpeed(v mgl64.Vec3, speed float64) mgl64.Vec3 {
	if v.LenSqr() <= speed*speed {
		return v
	}
	vertical := v[UpAxis]
	v = v.Normalize().Mul(speed)
	v[UpAxis] = vertical
	return v
}

// Horizontal drops the vertical component.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	v[UpAxis] = 0
	return v
}
