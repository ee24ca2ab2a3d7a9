package engine

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// ID is the stable index of an entity in its Store
type ID int

// View is an ordered list of entity references into one Store
type View []ID

// Store is the canonical, fixed-after-setup entity container
// Not safe for concurrent use; the frame loop owns it
type Store struct {
	entities []Entity
	sealed   bool
	scratch  [4]byte
}

// NewStore creates an empty store with room for capacity entities
func NewStore(capacity int) *Store {
	return &Store{entities: make([]Entity, 0, capacity)}
}

// Add appends an entity and returns its ID
func (s *Store) Add(e Entity) (ID, error) {
	if s.sealed {
		return -1, fmt.Errorf("add %s: %w", e.Tag, ErrStoreSealed)
	}
	s.entities = append(s.entities, e)
	return ID(len(s.entities) - 1), nil
}

// Seal fixes the entity set for the rest of the run
func (s *Store) Seal() {
	s.sealed = true
}

// Sealed reports whether Seal was called
func (s *Store) Sealed() bool {
	return s.sealed
}

// Len returns the number of entities
func (s *Store) Len() int {
	return len(s.entities)
}

// Get returns a pointer to the entity with the given ID
// An out-of-range ID is a caller bug and panics
func (s *Store) Get(id ID) *Entity {
	return &s.entities[id]
}

// All returns a view over every entity in insertion order
func (s *Store) All() View {
	v := make(View, len(s.entities))
	for i := range v {
		v[i] = ID(i)
	}
	return v
}

// Each calls fn for every entity in insertion order
func (s *Store) Each(fn func(id ID, e *Entity)) {
	for i := range s.entities {
		fn(ID(i), &s.entities[i])
	}
}

// Checksum hashes the dynamic state of every entity
// Identical seeds and frame counts must produce identical checksums
func (s *Store) Checksum() uint64 {
	d := xxhash.New()
	for i := range s.entities {
		e := &s.entities[i]
		s.writeVec(d, e.Position)
		s.writeVec(d, e.Euler)
		s.writeVec(d, e.Scale)
		s.writeVec(d, e.Shear)
		s.writeVec(d, e.Velocity)
	}
	return d.Sum64()
}

func (s *Store) writeVec(d *xxhash.Digest, v mgl32.Vec3) {
	for _, c := range v {
		binary.LittleEndian.PutUint32(s.scratch[:], math.Float32bits(c))
		_, _ = d.Write(s.scratch[:])
	}
}
