package engine

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/cubular/vmath"
)

// Pose is everything the renderer reads from an entity
type Pose struct {
	Position mgl32.Vec3
	Euler    mgl32.Vec3 // Radians, applied X then Y then Z
	Scale    mgl32.Vec3
	Shear    mgl32.Vec3
}

// Entity is the mutable simulation unit
// Entities live in a Store and are referenced by ID; collections hold IDs, never copies
type Entity struct {
	Pose

	Color   mgl32.Vec3 // RGB in [0,1]
	Physics bool
	Extents mgl32.Vec3 // Collision half-size
	Group   int
	Tag     Tag

	// Unit mass: force and acceleration are interchangeable
	Velocity mgl32.Vec3
	Force    mgl32.Vec3
}

// NewEntity follows the scene construction contract; shear starts at zero
func NewEntity(position, euler, scale, color mgl32.Vec3, physics bool, extents mgl32.Vec3, group int, tag Tag) Entity {
	return Entity{
		Pose: Pose{
			Position: position,
			Euler:    euler,
			Scale:    scale,
		},
		Color:   color,
		Physics: physics,
		Extents: vmath.V3Abs(extents),
		Group:   group,
		Tag:     tag,
	}
}

// ApplyForce accumulates f until the next integration step
func (e *Entity) ApplyForce(f mgl32.Vec3) {
	e.Force = e.Force.Add(f)
}

// Bounds returns the collision box at the current position
func (e *Entity) Bounds() vmath.AABB {
	return vmath.AABB{Center: e.Position, Half: e.Extents}
}

// Model returns the world matrix for rendering
func (e *Entity) Model() mgl32.Mat4 {
	return vmath.Model(e.Position, e.Euler, e.Scale, e.Shear)
}
