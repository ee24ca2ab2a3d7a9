package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Axis indices into mgl32.Vec3
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

// V3 builds a vector from components
func V3(x, y, z float32) mgl32.Vec3 {
	return mgl32.Vec3{x, y, z}
}

// Splat returns a vector with all components set to s
func Splat(s float32) mgl32.Vec3 {
	return mgl32.Vec3{s, s, s}
}

// V3Abs returns the component-wise absolute value
func V3Abs(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{mgl32.Abs(v[0]), mgl32.Abs(v[1]), mgl32.Abs(v[2])}
}

// V3Finite reports whether every component is neither NaN nor infinite
func V3Finite(v mgl32.Vec3) bool {
	for _, c := range v {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// V3Damp scales v by factor (1 = no damp, 0 = full damp)
func V3Damp(v mgl32.Vec3, factor float32) mgl32.Vec3 {
	if factor == 1 {
		return v
	}
	return v.Mul(factor)
}
