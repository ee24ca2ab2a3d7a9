package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/cubular/engine"
	"github.com/lixenwraith/cubular/vmath"
)

// Integrate performs semi-implicit Euler: v = v*damping + (g + F)*dt; p = p + v*dt
// Unit mass; the accumulated force is then scaled by retention (0 clears it)
func Integrate(e *engine.Entity, gravity mgl32.Vec3, damping, retention, dt float32) {
	accel := gravity.Add(e.Force)
	e.Velocity = vmath.V3Damp(e.Velocity, damping).Add(accel.Mul(dt))
	e.Position = e.Position.Add(e.Velocity.Mul(dt))
	e.Force = vmath.V3Damp(e.Force, retention)
}

// Approaching reports whether velocity v moves against the push direction sign on axis
func Approaching(v mgl32.Vec3, axis int, sign float32) bool {
	return v[axis]*sign < 0
}

// Reflect inverts the velocity component on axis, scaled by restitution
func Reflect(v mgl32.Vec3, axis int, restitution float32) mgl32.Vec3 {
	v[axis] = -v[axis] * restitution
	return v
}
