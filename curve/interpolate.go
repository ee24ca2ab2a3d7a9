package curve

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/cubular/parameter"
)

// Lerp returns a + t*(b-a)
// Exact at t = 0 and t = 1, and a fixed point when a == b
func Lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	if t == 1 {
		return b
	}
	return a.Add(b.Sub(a).Mul(t))
}

// Slerp interpolates along the great circle between the directions of a and b,
// scaling the result by the linearly interpolated magnitude
//
// Degenerate inputs fall back to Lerp: either vector of zero length, or directions
// parallel or anti-parallel (sin of the angle below SlerpParallelEpsilon). In the
// anti-parallel case the rotation plane is undefined, so no arc is invented.
func Slerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	if Degenerate(a, b) {
		return Lerp(a, b, t)
	}

	la, lb := float64(a.Len()), float64(b.Len())
	ua := vec64(a, 1/la)
	ub := vec64(b, 1/lb)

	dot := ua[0]*ub[0] + ua[1]*ub[1] + ua[2]*ub[2]
	dot = math.Max(-1, math.Min(1, dot))
	omega := math.Acos(dot)
	sinOmega := math.Sin(omega)

	tf := float64(t)
	wa := math.Sin((1-tf)*omega) / sinOmega
	wb := math.Sin(tf*omega) / sinOmega
	mag := la + tf*(lb-la)

	return mgl32.Vec3{
		float32((wa*ua[0] + wb*ub[0]) * mag),
		float32((wa*ua[1] + wb*ub[1]) * mag),
		float32((wa*ua[2] + wb*ub[2]) * mag),
	}
}

// Degenerate reports whether Slerp between a and b has no unique arc
func Degenerate(a, b mgl32.Vec3) bool {
	la, lb := float64(a.Len()), float64(b.Len())
	if la == 0 || lb == 0 {
		return true
	}
	ua := vec64(a, 1/la)
	ub := vec64(b, 1/lb)
	// |ua x ub| = sin(angle)
	cx := ua[1]*ub[2] - ua[2]*ub[1]
	cy := ua[2]*ub[0] - ua[0]*ub[2]
	cz := ua[0]*ub[1] - ua[1]*ub[0]
	return math.Sqrt(cx*cx+cy*cy+cz*cz) < parameter.SlerpParallelEpsilon
}

func vec64(v mgl32.Vec3, s float64) [3]float64 {
	return [3]float64{float64(v[0]) * s, float64(v[1]) * s, float64(v[2]) * s}
}
