// Package physics integrates forces and resolves axis-aligned overlaps within quadrant groups.
//
// Resolution is two-phase: UpdateGroup only records corrections against the poses at the start
// of the pass, and Commit applies them once per entity. An entity shared by several groups (a
// wall, the floor) or a pair seen in several groups therefore contributes the same result
// regardless of group order.
package physics

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/lixenwraith/cubular/engine"
	"github.com/lixenwraith/cubular/parameter"
	"github.com/lixenwraith/cubular/vmath"
)

// Config holds the resolver tuning
type Config struct {
	TimeStep       float32
	Gravity        mgl32.Vec3
	Damping        float32 // Velocity kept per step, 1 = undamped
	ForceRetention float32 // Force kept after integration, 0 = cleared
	Slop           float32 // Extra separation added to every body push
	Profiles       map[engine.Tag]CollisionProfile
}

// DefaultConfig returns a fixed 60 Hz step with standard gravity for gravity-enabled profiles
func DefaultConfig() Config {
	return Config{
		TimeStep:       parameter.DefaultTimeStep,
		Gravity:        mgl32.Vec3{0, -9.8, 0},
		Damping:        1,
		ForceRetention: 0,
		Slop:           parameter.SeparationSlop,
		Profiles:       DefaultProfiles(),
	}
}

// Stats counts resolver work since the last BeginFrame
type Stats struct {
	Integrated       int
	PairTests        int
	BodyContacts     int
	BoundaryContacts int
	Sounds           int
}

// correction accumulates everything UpdateGroup decided for one entity
type correction struct {
	push mgl32.Vec3

	// Velocity taken over from approaching partners, averaged per axis
	velSum   mgl32.Vec3
	velCount [3]int

	// Boundary clamps take precedence over body pushes on the same axis
	clamp    mgl32.Vec3
	clampSet [3]bool
	reflect  [3]bool

	sound   bool
	pending bool
}

type pairKey struct {
	a, b engine.ID
}

// Resolver integrates and separates entities of one Store
// Not safe for concurrent use
type Resolver struct {
	store *engine.Store
	cfg   Config
	sound engine.SoundPlayer
	log   *zap.Logger

	frame      uint64
	integrated []uint64     // Frame stamp of last integration per entity
	prev       []mgl32.Vec3 // Position before this frame's integration
	pending    []correction
	touched    []engine.ID
	seen       map[pairKey]struct{}
	stats      Stats
}

// NewResolver creates a resolver for store
// A nil sound player or logger disables that collaborator
func NewResolver(store *engine.Store, cfg Config, sound engine.SoundPlayer, logger *zap.Logger) *Resolver {
	if sound == nil {
		sound = engine.NopSoundPlayer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Profiles == nil {
		cfg.Profiles = DefaultProfiles()
	}
	r := &Resolver{
		store: store,
		cfg:   cfg,
		sound: sound,
		log:   logger,
		frame: 1,
		seen:  make(map[pairKey]struct{}),
	}
	r.ensureCapacity()
	return r
}

// Profile returns the collision profile for tag
func (r *Resolver) Profile(tag engine.Tag) CollisionProfile {
	if p, ok := r.cfg.Profiles[tag]; ok {
		return p
	}
	return ElasticProfile
}

// BeginFrame starts a new simulation frame; every physics entity may integrate once after it
func (r *Resolver) BeginFrame() {
	r.frame++
	r.stats = Stats{}
	r.ensureCapacity()
}

// Stats returns the counters for the current frame
func (r *Resolver) Stats() Stats {
	return r.stats
}

// Resolve integrates every member of groups, records contacts for every member and commits
func (r *Resolver) Resolve(groups ...engine.View) {
	for _, g := range groups {
		for _, id := range g {
			r.integrate(id)
		}
	}
	for _, g := range groups {
		for i := range g {
			r.UpdateGroup(g, i)
		}
	}
	r.Commit()
}

// UpdateGroup integrates the entity at group[self] and records corrections for its overlaps
// with every other member of group. self out of range panics
func (r *Resolver) UpdateGroup(group engine.View, self int) {
	id := group[self]
	e := r.store.Get(id)
	r.integrate(id)

	if !e.Physics || e.Tag.IsBoundary() {
		return
	}

	for j, other := range group {
		if j == self || other == id {
			continue
		}
		key := pairKey{min(id, other), max(id, other)}
		if _, dup := r.seen[key]; dup {
			continue
		}
		r.seen[key] = struct{}{}

		o := r.store.Get(other)
		r.integrate(other)
		r.stats.PairTests++

		c, ok := vmath.Overlap(e.Bounds(), o.Bounds())
		if !ok {
			continue
		}

		if o.Physics && !o.Tag.IsBoundary() {
			r.recordBody(id, e, other, o, c)
		} else {
			r.recordBoundary(id, e, o, c)
		}
	}
}

// Commit applies every recorded correction once and plays collision sounds
func (r *Resolver) Commit() {
	for _, id := range r.touched {
		c := &r.pending[id]
		e := r.store.Get(id)
		prof := r.Profile(e.Tag)

		for k := 0; k < 3; k++ {
			if c.clampSet[k] {
				e.Position[k] = c.clamp[k]
				if c.reflect[k] {
					e.Velocity = Reflect(e.Velocity, k, prof.Restitution)
				}
				continue
			}
			e.Position[k] += c.push[k]
			if c.velCount[k] > 0 {
				e.Velocity[k] = c.velSum[k] / float32(c.velCount[k])
			}
		}

		if c.sound && prof.Sound {
			r.stats.Sounds++
			played := r.sound.Play(prof.Effect, prof.Volume, false)
			r.log.Debug("collision sound",
				zap.Int("entity", int(id)),
				zap.Stringer("tag", e.Tag),
				zap.Stringer("effect", prof.Effect),
				zap.Bool("played", played),
			)
		}

		*c = correction{}
	}
	r.touched = r.touched[:0]
	clear(r.seen)
}

func (r *Resolver) integrate(id engine.ID) {
	e := r.store.Get(id)
	if !e.Physics || e.Tag.IsBoundary() || r.integrated[id] == r.frame {
		return
	}
	r.integrated[id] = r.frame
	r.prev[id] = e.Position

	var g mgl32.Vec3
	if r.Profile(e.Tag).Gravity {
		g = r.cfg.Gravity
	}
	Integrate(e, g, r.cfg.Damping, r.cfg.ForceRetention, r.cfg.TimeStep)
	r.stats.Integrated++
}

// recordBody splits the penetration between two movable bodies and exchanges the approaching
// velocity component (equal masses)
func (r *Resolver) recordBody(aID engine.ID, a *engine.Entity, bID engine.ID, b *engine.Entity, c vmath.Contact) {
	r.stats.BodyContacts++
	k := c.Axis
	half := c.Depth/2 + r.cfg.Slop/2

	ca := r.correction(aID)
	cb := r.correction(bID)
	ca.push[k] += c.Sign * half
	cb.push[k] -= c.Sign * half

	if (a.Velocity[k]-b.Velocity[k])*c.Sign < 0 {
		ca.velSum[k] += b.Velocity[k]
		ca.velCount[k]++
		cb.velSum[k] += a.Velocity[k]
		cb.velCount[k]++
	}

	ca.sound = true
	cb.sound = true
}

// recordBoundary clamps a flush against an immovable entity on the side it entered from,
// so a body that crossed the wall center within one step is not pushed out the far face
// When several boundaries clamp the same axis, the one farthest from the current position wins
func (r *Resolver) recordBoundary(id engine.ID, e *engine.Entity, wall *engine.Entity, c vmath.Contact) {
	r.stats.BoundaryContacts++
	wb := wall.Bounds()
	c = vmath.EntryContact(vmath.NewAABB(r.prev[id], e.Extents), e.Bounds(), wb, c)
	k := c.Axis
	target := vmath.SurfaceOffset(wb, e.Extents[k], k, c.Sign)

	cc := r.correction(id)
	if !cc.clampSet[k] || mgl32.Abs(target-e.Position[k]) > mgl32.Abs(cc.clamp[k]-e.Position[k]) {
		cc.clamp[k] = target
		cc.clampSet[k] = true
	}
	if Approaching(e.Velocity, k, c.Sign) {
		cc.reflect[k] = true
	}
	cc.sound = true
}

func (r *Resolver) correction(id engine.ID) *correction {
	c := &r.pending[id]
	if !c.pending {
		c.pending = true
		r.touched = append(r.touched, id)
	}
	return c
}

func (r *Resolver) ensureCapacity() {
	n := r.store.Len()
	if len(r.integrated) < n {
		r.integrated = append(r.integrated, make([]uint64, n-len(r.integrated))...)
	}
	if len(r.prev) < n {
		r.prev = append(r.prev, make([]mgl32.Vec3, n-len(r.prev))...)
	}
	if len(r.pending) < n {
		r.pending = append(r.pending, make([]correction, n-len(r.pending))...)
	}
}
