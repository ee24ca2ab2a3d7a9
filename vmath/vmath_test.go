package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOverlapLeastPenetrationAxis verifies the contact axis and push direction
func TestOverlapLeastPenetrationAxis(t *testing.T) {
	tests := []struct {
		name      string
		a, b      AABB
		wantAxis  int
		wantSign  float32
		wantDepth float32
	}{
		{
			name:      "x overlap, a left of b",
			a:         NewAABB(V3(0, 0, 0), Splat(0.5)),
			b:         NewAABB(V3(0.75, 0, 0), Splat(0.5)),
			wantAxis:  AxisX,
			wantSign:  -1,
			wantDepth: 0.25,
		},
		{
			name:      "resting on floor",
			a:         NewAABB(V3(3, -8.5, 2), Splat(2)),
			b:         NewAABB(V3(0, -10, 0), V3(100, 1, 100)),
			wantAxis:  AxisY,
			wantSign:  1,
			wantDepth: 1.5,
		},
		{
			name:      "z overlap, a in front",
			a:         NewAABB(V3(0, 0, 1.9), Splat(1)),
			b:         NewAABB(V3(0, 0, 0), Splat(1)),
			wantAxis:  AxisZ,
			wantSign:  1,
			wantDepth: 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Overlap(tt.a, tt.b)
			require.True(t, ok)
			assert.Equal(t, tt.wantAxis, c.Axis)
			assert.Equal(t, tt.wantSign, c.Sign)
			assert.InDelta(t, tt.wantDepth, c.Depth, 1e-5)
			assert.True(t, tt.a.Intersects(tt.b))
		})
	}
}

// TestOverlapTouchingIsNotOverlap verifies touching faces are separated
func TestOverlapTouchingIsNotOverlap(t *testing.T) {
	a := NewAABB(V3(0, 0, 0), Splat(0.25))
	b := NewAABB(V3(0.5, 0, 0), Splat(0.25))

	_, ok := Overlap(a, b)
	assert.False(t, ok)
	assert.False(t, a.Intersects(b))
}

// TestOverlapRejectsNaN verifies NaN positions never report contact
func TestOverlapRejectsNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := NewAABB(V3(nan, 0, 0), Splat(1))
	b := NewAABB(V3(0, 0, 0), Splat(1))

	_, ok := Overlap(a, b)
	assert.False(t, ok)
	assert.False(t, a.Intersects(b))
}

// TestSurfaceOffset verifies flush placement on both sides
func TestSurfaceOffset(t *testing.T) {
	floor := NewAABB(V3(0, -10, 0), V3(100, 1, 100))
	assert.Equal(t, float32(-7), SurfaceOffset(floor, 2, AxisY, 1))
	assert.Equal(t, float32(-13), SurfaceOffset(floor, 2, AxisY, -1))
}

// TestEntryContactUsesPreviousSide verifies the crossed face wins over center comparison
func TestEntryContactUsesPreviousSide(t *testing.T) {
	floor := NewAABB(V3(0, -10, 0), V3(100, 1, 100))
	prev := NewAABB(V3(0, -8.5, 0), Splat(0.25))
	cur := NewAABB(V3(0, -10.5, 0), Splat(0.25))

	fallback, ok := Overlap(cur, floor)
	require.True(t, ok)
	require.Equal(t, float32(-1), fallback.Sign, "center comparison picks the underside")

	c := EntryContact(prev, cur, floor, fallback)
	assert.Equal(t, AxisY, c.Axis)
	assert.Equal(t, float32(1), c.Sign)
	assert.InDelta(t, 1.75, float64(c.Depth), 1e-6)

	// Already overlapping before the step: nothing to infer
	inside := NewAABB(V3(0, -9.5, 0), Splat(0.25))
	assert.Equal(t, fallback, EntryContact(inside, cur, floor, fallback))
}

// TestModelIdentity verifies the rest pose yields identity
func TestModelIdentity(t *testing.T) {
	m := Model(V3(0, 0, 0), V3(0, 0, 0), Splat(1), V3(0, 0, 0))
	assert.True(t, m.ApproxEqual(mgl32.Ident4()))
}

// TestModelScaleTranslate verifies footprint of a scaled, translated cube
func TestModelScaleTranslate(t *testing.T) {
	m := Model(V3(40, 5, 5), V3(0, 0, 0), V3(2, 1, 1), V3(0, 0, 0))
	lo, hi := Footprint(m)
	assert.True(t, lo.ApproxEqual(V3(38, 4, 4)), "lo=%v", lo)
	assert.True(t, hi.ApproxEqual(V3(42, 6, 6)), "hi=%v", hi)
}

// TestShearMatrix verifies each shear component skews the documented axis
func TestShearMatrix(t *testing.T) {
	p := V3(1, 2, 3)

	assert.True(t, TransformPoint(ShearMatrix(V3(1, 0, 0)), p).ApproxEqual(V3(3, 2, 3)))
	assert.True(t, TransformPoint(ShearMatrix(V3(0, 1, 0)), p).ApproxEqual(V3(1, 5, 3)))
	assert.True(t, TransformPoint(ShearMatrix(V3(0, 0, 1)), p).ApproxEqual(V3(1, 2, 4)))
}

// TestEulerQuatRotation verifies a quarter turn about Y
func TestEulerQuatRotation(t *testing.T) {
	q := EulerQuat(V3(0, mgl32.DegToRad(90), 0))
	got := q.Rotate(V3(1, 0, 0))
	assert.True(t, got.ApproxEqualThreshold(V3(0, 0, -1), 1e-5), "got %v", got)
}

// TestFastRandDeterministic verifies identical seeds give identical streams
func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		va, vb := a.Range(-0.5, 0.5), b.Range(-0.5, 0.5)
		require.Equal(t, va, vb)
		require.GreaterOrEqual(t, va, float32(-0.5))
		require.Less(t, va, float32(0.5))
	}
	assert.Equal(t, float32(3), NewFastRand(0).Range(3, 3))
}

// TestV3Finite verifies NaN and Inf detection
func TestV3Finite(t *testing.T) {
	assert.True(t, V3Finite(V3(1, 2, 3)))
	assert.False(t, V3Finite(V3(float32(math.NaN()), 0, 0)))
	assert.False(t, V3Finite(V3(0, float32(math.Inf(1)), 0)))
}
