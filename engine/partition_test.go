package engine

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cubular/vmath"
)

var center = vmath.V3(0, -7, -70)

func TestClassifyTieBreak(t *testing.T) {
	tests := []struct {
		name string
		x, z float32
		want int
	}{
		{"both greater", 1, -69, QuadrantPP},
		{"both equal", 0, -70, QuadrantPP},
		{"x equal, z greater", 0, -60, QuadrantPP},
		{"x greater, z equal", 5, -70, QuadrantPP},
		{"x equal, z less", 0, -71, QuadrantPN},
		{"x greater, z less", 3, -80, QuadrantPN},
		{"both less", -1, -71, QuadrantNN},
		{"x less, z equal", -1, -70, QuadrantNP},
		{"x less, z greater", -5, -50, QuadrantNP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.x, tt.z, center[0], center[2]))
		})
	}
}

func TestPartitionMembership(t *testing.T) {
	s := NewStore(16)
	add := func(x, z float32, tag Tag) ID {
		id, err := s.Add(cube(vmath.V3(x, -6, z), tag))
		require.NoError(t, err)
		return id
	}

	floor := add(0, 0, TagFloor)
	wall := add(-20, -70, TagWall)
	pp := add(0, -70, TagCube) // tie on both axes
	pn := add(0, -70.5, TagCube)
	nn := add(-0.5, -70.5, TagSoundCube)
	np := add(-0.5, -70, TagObject)

	p := NewPartitioner(UnclassifiedExempt).Partition(s, s.All(), center)

	assert.Equal(t, View{floor, wall, pp}, p.Groups[QuadrantPP])
	assert.Equal(t, View{floor, wall, pn}, p.Groups[QuadrantPN])
	assert.Equal(t, View{floor, wall, nn}, p.Groups[QuadrantNN])
	assert.Equal(t, View{floor, wall, np}, p.Groups[QuadrantNP])
	assert.Empty(t, p.Dropped)
	assert.Equal(t, 4*2+4, p.Size())
}

func TestPartitionBoundaryInAllMovableInOne(t *testing.T) {
	s := NewStore(64)
	r := vmath.NewFastRand(7)
	for i := 0; i < 50; i++ {
		tag := TagCube
		if i%10 == 0 {
			tag = TagWall
		}
		_, _ = s.Add(cube(vmath.V3(r.Range(-10, 10), 0, r.Range(-80, -60)), tag))
	}

	p := NewPartitioner(UnclassifiedExempt).Partition(s, s.All(), center)

	counts := make(map[ID]int)
	for _, g := range p.Groups {
		for _, id := range g {
			counts[id]++
		}
	}
	s.Each(func(id ID, e *Entity) {
		if e.Tag.IsBoundary() {
			assert.Equal(t, QuadrantCount, counts[id], "boundary %d", id)
		} else {
			assert.Equal(t, 1, counts[id], "movable %d", id)
		}
	})
}

func TestPartitionNaNPolicy(t *testing.T) {
	s := NewStore(2)
	nan := float32(math.NaN())
	bad, _ := s.Add(cube(vmath.V3(nan, 0, -70), TagCube))
	good, _ := s.Add(cube(vmath.V3(1, 0, -69), TagCube))

	exempt := NewPartitioner(UnclassifiedExempt).Partition(s, s.All(), center)
	assert.Equal(t, View{bad}, exempt.Dropped)
	assert.Equal(t, View{good}, exempt.Groups[QuadrantPP])
	assert.Equal(t, 1, exempt.Size())

	first := NewPartitioner(UnclassifiedFirst).Partition(s, s.All(), center)
	assert.Equal(t, View{bad}, first.Dropped)
	assert.Equal(t, View{bad, good}, first.Groups[QuadrantPP])
}

func TestPartitionReusesBuffers(t *testing.T) {
	s := NewStore(8)
	for i := 0; i < 8; i++ {
		_, _ = s.Add(cube(vmath.V3(float32(i), 0, -69), TagCube))
	}
	p := NewPartitioner(UnclassifiedExempt)
	view := s.All()

	p.Partition(s, view, center)
	allocs := testing.AllocsPerRun(10, func() {
		p.Partition(s, view, center)
	})
	assert.Zero(t, allocs)

	// Moving an entity across the center changes its group on the next call
	s.Get(0).Position = mgl32.Vec3{-1, 0, -71}
	got := p.Partition(s, view, center)
	assert.Equal(t, View{0}, got.Groups[QuadrantNN])
	assert.Len(t, got.Groups[QuadrantPP], 7)
}
