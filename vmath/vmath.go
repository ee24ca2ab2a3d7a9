package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Model builds the model matrix T * R * Sh * S for a pose
// Rotation applies Euler angles in X, then Y, then Z order
func Model(position, euler, scale, shear mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(position[0], position[1], position[2])
	r := EulerQuat(euler).Mat4()
	sh := ShearMatrix(shear)
	s := mgl32.Scale3D(scale[0], scale[1], scale[2])
	return t.Mul4(r).Mul4(sh).Mul4(s)
}

// EulerQuat converts XYZ Euler angles (radians) to a quaternion
func EulerQuat(euler mgl32.Vec3) mgl32.Quat {
	return mgl32.AnglesToQuat(euler[0], euler[1], euler[2], mgl32.XYZ)
}

// ShearMatrix builds a 3D shear
// shear.X skews x by y, shear.Y skews y by z, shear.Z skews z by x
func ShearMatrix(shear mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.Ident4()
	// Column-major: element (row, col) at col*4+row
	m[1*4+0] = shear[0]
	m[2*4+1] = shear[1]
	m[0*4+2] = shear[2]
	return m
}

// TransformPoint applies m to point p (w = 1)
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// UnitCubeCorners are the corners of the [-1,1]^3 cube every scene mesh is built from
var UnitCubeCorners = [8]mgl32.Vec3{
	{-1, -1, -1}, {1, -1, -1}, {-1, 1, -1}, {1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {-1, 1, 1}, {1, 1, 1},
}

// Footprint returns the world-space bounds of the unit cube under m
func Footprint(m mgl32.Mat4) (lo, hi mgl32.Vec3) {
	lo = Splat(float32(math.Inf(1)))
	hi = Splat(float32(math.Inf(-1)))
	for _, c := range UnitCubeCorners {
		p := TransformPoint(m, c)
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], p[k])
			hi[k] = max(hi[k], p[k])
		}
	}
	return lo, hi
}

// --- Randomness ---

// FastRand is a xorshift64 generator; deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float32 returns a value in [0, 1)
func (r *FastRand) Float32() float32 {
	return float32(r.Next()>>40) / float32(1<<24)
}

// Range returns a value in [lo, hi); lo when the range is empty
func (r *FastRand) Range(lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float32()*(hi-lo)
}
