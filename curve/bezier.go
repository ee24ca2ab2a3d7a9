// Package curve evaluates the closed-form curves and interpolants used by the animated examples
// and holds the ping-pong progress state that drives them.
package curve

import "github.com/go-gl/mathgl/mgl32"

// Bezier evaluates the cubic Bezier polynomial at t
// t outside [0,1] extrapolates; mgl32.CubicBezierCurve3D panics there, so the Bernstein form is inlined
func Bezier(p0, p1, p2, p3 mgl32.Vec3, t float32) mgl32.Vec3 {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return p0.Mul(b0).Add(p1.Mul(b1)).Add(p2.Mul(b2)).Add(p3.Mul(b3))
}

// Cubic is a cubic Bezier segment
type Cubic struct {
	P0, P1, P2, P3 mgl32.Vec3
}

// NewCubic creates a curve from four control points
func NewCubic(p0, p1, p2, p3 mgl32.Vec3) Cubic {
	return Cubic{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Point evaluates the curve at t
func (c Cubic) Point(t float32) mgl32.Vec3 {
	return Bezier(c.P0, c.P1, c.P2, c.P3, t)
}

// Sample returns n points at t = i/n for i in [0, n)
// The end point (t = 1) is not included, matching the marker trail layout
func (c Cubic) Sample(n int) []mgl32.Vec3 {
	if n <= 0 {
		return nil
	}
	out := make([]mgl32.Vec3, n)
	step := 1 / float32(n)
	for i := range out {
		out[i] = c.Point(step * float32(i))
	}
	return out
}
