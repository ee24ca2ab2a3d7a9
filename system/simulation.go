// Package system sequences one simulation frame over a scene.
package system

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/cubular/config"
	"github.com/lixenwraith/cubular/engine"
	"github.com/lixenwraith/cubular/parameter"
	"github.com/lixenwraith/cubular/physics"
	"github.com/lixenwraith/cubular/scene"
)

// Renderer is the presentation collaborator; it reads final poses once per frame
type Renderer interface {
	Render(store *engine.Store, frame uint64) error
}

// Phase names one stage of a frame, in execution order
type Phase int

const (
	PhaseDynamic Phase = iota
	PhaseStatic
	PhasePartition
	PhaseAnimate
	PhaseRender
)

func (p Phase) String() string {
	switch p {
	case PhaseDynamic:
		return "dynamic"
	case PhaseStatic:
		return "static"
	case PhasePartition:
		return "partition"
	case PhaseAnimate:
		return "animate"
	case PhaseRender:
		return "render"
	default:
		return "unknown"
	}
}

// Simulation owns a scene and advances it one frame at a time
// Not safe for concurrent use
type Simulation struct {
	scene       *scene.Scene
	resolver    *physics.Resolver
	partitioner *engine.Partitioner
	renderer    Renderer
	log         *zap.Logger

	frame uint64
	last  engine.Partition

	// Observe is called after each phase; tests use it to check ordering
	Observe func(phase Phase, frame uint64)
}

// PhysicsConfig maps the loaded config onto resolver settings
func PhysicsConfig(cfg *config.Config) physics.Config {
	pc := physics.DefaultConfig()
	pc.TimeStep = cfg.Simulation.Step()
	pc.Gravity = cfg.Simulation.Gravity.V()
	pc.Damping = cfg.Simulation.Damping
	pc.ForceRetention = cfg.Simulation.ForceRetention

	pc.Profiles = physics.DefaultProfiles()
	for tag, p := range cfg.Tags() {
		prof := physics.CollisionProfile{
			Restitution: p.Restitution,
			Gravity:     p.Gravity,
			Sound:       p.Sound,
			Volume:      p.Volume,
		}
		if p.Sound {
			prof.Effect = engine.SoundExplosion
			if st, err := engine.ParseSoundType(p.Effect); err == nil {
				prof.Effect = st
			}
		}
		pc.Profiles[tag] = prof
	}
	return pc
}

// PartitionPolicy maps the configured policy name
func PartitionPolicy(name string) engine.UnclassifiedPolicy {
	if name == config.UnclassifiedFirst {
		return engine.UnclassifiedFirst
	}
	return engine.UnclassifiedExempt
}

// NewSimulation wires a scene to its resolver and partitioner
// renderer, sound and logger may be nil
func NewSimulation(sc *scene.Scene, cfg *config.Config, renderer Renderer, sound engine.SoundPlayer, logger *zap.Logger) *Simulation {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulation{
		scene:       sc,
		resolver:    physics.NewResolver(sc.Store, PhysicsConfig(cfg), sound, logger),
		partitioner: engine.NewPartitioner(PartitionPolicy(cfg.Simulation.Unclassified)),
		renderer:    renderer,
		log:         logger,
	}
}

// Scene returns the simulated scene
func (s *Simulation) Scene() *scene.Scene {
	return s.scene
}

// Frame returns the number of completed frames
func (s *Simulation) Frame() uint64 {
	return s.frame
}

// Stats returns the resolver counters for the last frame
func (s *Simulation) Stats() physics.Stats {
	return s.resolver.Stats()
}

// LastPartition returns the quadrant split of the last frame
// Valid until the next Step
func (s *Simulation) LastPartition() engine.Partition {
	return s.last
}

// Step runs one frame: dynamic, static, partitioned physics, animators, render
func (s *Simulation) Step() error {
	sc := s.scene
	s.frame++
	s.resolver.BeginFrame()

	s.resolver.Resolve(sc.Dynamic)
	s.observe(PhaseDynamic)

	s.resolver.Resolve(sc.Static)
	s.observe(PhaseStatic)

	s.last = s.partitioner.Partition(sc.Store, sc.Physics, sc.Center)
	if len(s.last.Dropped) > 0 {
		s.log.Warn("entities outside every quadrant",
			zap.Uint64("frame", s.frame),
			zap.Int("count", len(s.last.Dropped)),
			zap.Int("first", int(s.last.Dropped[0])),
		)
	}
	s.resolver.Resolve(s.last.Groups[:]...)
	s.observe(PhasePartition)

	for _, a := range sc.Animators {
		a.Advance(sc.Store)
	}
	s.observe(PhaseAnimate)

	if s.frame%parameter.ChecksumInterval == 0 {
		st := s.resolver.Stats()
		s.log.Debug("frame checksum",
			zap.Uint64("frame", s.frame),
			zap.String("checksum", fmt.Sprintf("%016x", sc.Store.Checksum())),
			zap.Int("pair_tests", st.PairTests),
			zap.Int("contacts", st.BodyContacts+st.BoundaryContacts),
		)
	}

	if s.renderer != nil {
		if err := s.renderer.Render(sc.Store, s.frame); err != nil {
			return fmt.Errorf("render frame %d: %w", s.frame, err)
		}
	}
	s.observe(PhaseRender)
	return nil
}

// Run steps n frames, stopping at the first error
func (s *Simulation) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulation) observe(p Phase) {
	if s.Observe != nil {
		s.Observe(p, s.frame)
	}
}
