package vmath

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis-aligned box described by its center and half-size
type AABB struct {
	Center mgl32.Vec3
	Half   mgl32.Vec3
}

// NewAABB creates a box from center and half extents; negative extents are folded to positive
func NewAABB(center, half mgl32.Vec3) AABB {
	return AABB{Center: center, Half: V3Abs(half)}
}

// Min returns the lower corner
func (b AABB) Min() mgl32.Vec3 {
	return b.Center.Sub(b.Half)
}

// Max returns the upper corner
func (b AABB) Max() mgl32.Vec3 {
	return b.Center.Add(b.Half)
}

// Intersects reports strict overlap on all three axes (touching faces do not count)
func (a AABB) Intersects(b AABB) bool {
	for k := 0; k < 3; k++ {
		if !(mgl32.Abs(a.Center[k]-b.Center[k]) < a.Half[k]+b.Half[k]) {
			return false
		}
	}
	return true
}

// Contact describes how to separate a from b along a single axis
type Contact struct {
	Axis  int     // Axis of least penetration
	Depth float32 // Penetration depth along Axis, > 0
	Sign  float32 // +1 pushes a toward +Axis, -1 toward -Axis
}

// Overlap computes the separating contact for a against b
// Returns false when the boxes do not strictly overlap
// Coincident centers on the contact axis resolve to Sign -1
func Overlap(a, b AABB) (Contact, bool) {
	best := Contact{Axis: -1}
	for k := 0; k < 3; k++ {
		d := a.Center[k] - b.Center[k]
		depth := a.Half[k] + b.Half[k] - mgl32.Abs(d)
		// Negated form also rejects NaN
		if !(depth > 0) {
			return Contact{}, false
		}
		if best.Axis < 0 || depth < best.Depth {
			sign := float32(-1)
			if d > 0 {
				sign = 1
			}
			best = Contact{Axis: k, Depth: depth, Sign: sign}
		}
	}
	return best, true
}

// SurfaceOffset returns the center coordinate on axis that places a box with half extent
// selfHalf flush against the face of other on the side given by sign
func SurfaceOffset(other AABB, selfHalf float32, axis int, sign float32) float32 {
	if sign >= 0 {
		return other.Center[axis] + (other.Half[axis] + selfHalf)
	}
	return other.Center[axis] - (other.Half[axis] + selfHalf)
}

// EntryContact picks the face of wall that a moving box crossed between prev and cur
// Only axes on which prev was clear of wall are candidates; among them the shallowest
// penetration from the entry side wins. Returns fallback when prev already overlapped on every axis
func EntryContact(prev, cur, wall AABB, fallback Contact) Contact {
	best := Contact{Axis: -1}
	for k := 0; k < 3; k++ {
		d := prev.Center[k] - wall.Center[k]
		if !(mgl32.Abs(d) >= prev.Half[k]+wall.Half[k]) {
			continue
		}
		var sign, depth float32
		if d > 0 {
			sign = 1
			depth = wall.Max()[k] - cur.Min()[k]
		} else {
			sign = -1
			depth = cur.Max()[k] - wall.Min()[k]
		}
		if best.Axis < 0 || depth < best.Depth {
			best = Contact{Axis: k, Depth: depth, Sign: sign}
		}
	}
	if best.Axis < 0 {
		return fallback
	}
	return best
}
