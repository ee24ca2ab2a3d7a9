package engine

import "github.com/go-gl/mathgl/mgl32"

// QuadrantCount is fixed: the split is a single level, never recursive
const QuadrantCount = 4

// Quadrant indices in classification priority order relative to the center on (x, z)
const (
	QuadrantPP = iota // x >= cx, z >= cz
	QuadrantPN        // x >= cx, z <  cz
	QuadrantNN        // x <  cx, z <  cz
	QuadrantNP        // x <  cx, z >= cz
)

// UnclassifiedPolicy decides what happens to an entity matching no quadrant
// Only NaN coordinates can fail all four comparisons
type UnclassifiedPolicy int

const (
	// UnclassifiedExempt leaves the entity out of collision for the frame and reports it in Dropped
	UnclassifiedExempt UnclassifiedPolicy = iota
	// UnclassifiedFirst files the entity in QuadrantPP and still reports it in Dropped
	UnclassifiedFirst
)

// Partition is the result of one split
// Groups and Dropped alias the Partitioner's buffers and are valid until the next call
type Partition struct {
	Groups  [QuadrantCount]View
	Dropped View
}

// Size returns the total number of group memberships
func (p Partition) Size() int {
	n := 0
	for _, g := range p.Groups {
		n += len(g)
	}
	return n
}

// Partitioner buckets entities into four overlapping quadrant groups
// Buffers are reused across frames
type Partitioner struct {
	Policy UnclassifiedPolicy

	groups  [QuadrantCount]View
	dropped View
}

// NewPartitioner creates a partitioner with the given unclassified policy
func NewPartitioner(policy UnclassifiedPolicy) *Partitioner {
	return &Partitioner{Policy: policy}
}

// Partition classifies every entity in view around center
// Boundary entities go into all four groups; movable entities into the first matching branch
func (p *Partitioner) Partition(store *Store, view View, center mgl32.Vec3) Partition {
	for i := range p.groups {
		p.groups[i] = p.groups[i][:0]
	}
	p.dropped = p.dropped[:0]

	cx, cz := center[0], center[2]
	for _, id := range view {
		e := store.Get(id)
		if e.Tag.IsBoundary() {
			for q := range p.groups {
				p.groups[q] = append(p.groups[q], id)
			}
			continue
		}

		q := Classify(e.Position[0], e.Position[2], cx, cz)
		if q < 0 {
			p.dropped = append(p.dropped, id)
			if p.Policy != UnclassifiedFirst {
				continue
			}
			q = QuadrantPP
		}
		p.groups[q] = append(p.groups[q], id)
	}

	return Partition{Groups: p.groups, Dropped: p.dropped}
}

// Classify returns the quadrant of (x, z) relative to (cx, cz), or -1 if no branch matches
func Classify(x, z, cx, cz float32) int {
	switch {
	case x >= cx && z >= cz:
		return QuadrantPP
	case x >= cx && z < cz:
		return QuadrantPN
	case x < cx && z < cz:
		return QuadrantNN
	case x < cx && z >= cz:
		return QuadrantNP
	}
	return -1
}
