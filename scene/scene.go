// Package scene builds the demo: the curve and transform examples, the partitioned momentum
// example and the gravity example, all in one entity store.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/cubular/config"
	"github.com/lixenwraith/cubular/curve"
	"github.com/lixenwraith/cubular/engine"
	"github.com/lixenwraith/cubular/parameter"
	"github.com/lixenwraith/cubular/vmath"
)

// Entity groups
const (
	GroupDecor = iota
	GroupExample
	GroupMomentum
	GroupGravity
)

// Palette
var (
	ColorFloor    = vmath.V3(0.35, 0.35, 0.4)
	ColorWall     = vmath.V3(0.6, 0.45, 0.3)
	ColorCube     = vmath.V3(0.2, 0.6, 1.0)
	ColorSound    = vmath.V3(1.0, 0.8, 0.1)
	ColorMarker   = vmath.V3(0.5, 0.5, 0.5)
	ColorStart    = vmath.V3(1, 0, 0)
	ColorEnd      = vmath.V3(0, 1, 0)
	ColorBezier   = vmath.V3(0.8, 0.3, 0.9)
	ColorLerp     = vmath.V3(0.3, 0.9, 0.6)
	ColorSlerp    = vmath.V3(0.9, 0.5, 0.2)
	ColorScale    = vmath.V3(0.4, 0.8, 0.9)
	ColorShear    = vmath.V3(0.9, 0.4, 0.5)
)

// Scene is the simulation context: one store and the views the frame loop walks
type Scene struct {
	RunID uuid.UUID
	Store *engine.Store

	// Dynamic holds the gravity example and the floor it lands on
	Dynamic engine.View
	// Static holds the curve and transform examples, their markers and the floor
	Static engine.View
	// Physics holds the walls, the momentum cubes and the floor; it is the partitioned set
	Physics engine.View

	Animators []Animator
	Center    mgl32.Vec3

	Floor   engine.ID
	Gravity engine.ID
}

type builder struct {
	store *engine.Store
	err   error
}

func (b *builder) add(e engine.Entity) engine.ID {
	if b.err != nil {
		return -1
	}
	id, err := b.store.Add(e)
	if err != nil {
		b.err = err
	}
	return id
}

func object(pos mgl32.Vec3, scale float32, color mgl32.Vec3, group int) engine.Entity {
	return engine.NewEntity(pos, mgl32.Vec3{}, vmath.Splat(scale), color, false, vmath.Splat(scale), group, engine.TagObject)
}

// Build creates the demo scene from cfg and seals the store
func Build(cfg *config.Config, logger *zap.Logger) (*Scene, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ex := cfg.Examples
	b := &builder{store: engine.NewStore(parameter.DefaultStoreCapacity)}
	s := &Scene{
		RunID:  uuid.New(),
		Store:  b.store,
		Center: cfg.Simulation.Center.V(),
	}
	rng := vmath.NewFastRand(cfg.Simulation.Seed)

	// Floor is shared by all three collections
	s.Floor = b.add(engine.NewEntity(ex.Floor.Position.V(), mgl32.Vec3{}, ex.Floor.Extents.V(), ColorFloor,
		false, ex.Floor.Extents.V(), GroupDecor, engine.TagFloor))

	// Bezier
	c := ex.Bezier.Control
	bez := curve.NewCubic(c[0].V(), c[1].V(), c[2].V(), c[3].V())
	bezID := b.add(object(bez.P0, ex.Bezier.Scale, ColorBezier, GroupExample))
	s.Static = append(s.Static, bezID)
	for _, p := range bez.Sample(ex.Bezier.Markers) {
		s.Static = append(s.Static, b.add(object(p, ex.Bezier.MarkerScale, ColorMarker, GroupDecor)))
	}
	s.Static = append(s.Static,
		b.add(object(bez.P0, ex.Bezier.MarkerScale, ColorStart, GroupDecor)),
		b.add(object(bez.P3, ex.Bezier.MarkerScale, ColorEnd, GroupDecor)),
	)
	s.Animators = append(s.Animators, &BezierAnimator{ID: bezID, Curve: bez, Osc: curve.NewOscillator(ex.Bezier.Step)})

	// Scale
	sc := ex.Scale
	scaleID := b.add(object(sc.Position.V(), 1, ColorScale, GroupExample))
	s.Static = append(s.Static, scaleID)
	s.Animators = append(s.Animators, &ScaleAnimator{
		ID:    scaleID,
		Cycle: curve.NewAxisCycle(sc.Min, sc.Max, sc.Step),
		Spin:  sc.Spin.V(),
	})

	// Shear
	sh := ex.Shear
	shearID := b.add(object(sh.Position.V(), 1, ColorShear, GroupExample))
	s.Static = append(s.Static, shearID)
	s.Animators = append(s.Animators, &ShearAnimator{ID: shearID, Cycle: curve.NewAxisCycle(sh.Min, sh.Max, sh.Step)})

	// LERP
	lp := ex.Lerp
	from, to := lp.From.V(), lp.To.V()
	lerpID := b.add(object(from, lp.Scale, ColorLerp, GroupExample))
	s.Static = append(s.Static, lerpID)
	for i := 0; i < lp.Markers; i++ {
		p := curve.Lerp(from, to, float32(i)/float32(lp.Markers))
		s.Static = append(s.Static, b.add(object(p, lp.MarkerScale, ColorMarker, GroupDecor)))
	}
	s.Animators = append(s.Animators, &LerpAnimator{ID: lerpID, From: from, To: to, Osc: curve.NewOscillator(lp.Step)})

	// SLERP
	sl := ex.Slerp
	slerpID := b.add(object(sl.Position.V(), sl.Scale, ColorSlerp, GroupExample))
	s.Static = append(s.Static, slerpID)
	s.Animators = append(s.Animators, &SlerpAnimator{
		ID:   slerpID,
		From: sl.From.V(),
		To:   sl.To.V(),
		Osc:  curve.NewOscillator(sl.Step),
	})
	s.Static = append(s.Static, s.Floor)

	// Linear momentum: walls, cubes, floor
	for _, w := range ex.Walls {
		s.Physics = append(s.Physics, b.add(engine.NewEntity(w.Position.V(), mgl32.Vec3{}, w.Extents.V(), ColorWall,
			false, w.Extents.V(), GroupDecor, engine.TagWall)))
	}
	m := ex.Momentum
	for i := 0; i < m.Count; i++ {
		pos := vmath.V3(m.OriginX+m.Spacing*float32(i), m.Y, rng.Range(m.ZMin, m.ZMax))
		e := engine.NewEntity(pos, mgl32.Vec3{}, vmath.Splat(m.HalfExtent), ColorCube,
			true, vmath.Splat(m.HalfExtent), GroupMomentum, engine.TagCube)
		e.ApplyForce(vmath.V3(rng.Range(-m.Force, m.Force), 0, 0))
		s.Physics = append(s.Physics, b.add(e))
	}
	s.Physics = append(s.Physics, s.Floor)

	// Gravity
	g := ex.Gravity
	s.Gravity = b.add(engine.NewEntity(g.Position.V(), mgl32.Vec3{}, vmath.Splat(g.HalfExtent), ColorSound,
		true, vmath.Splat(g.HalfExtent), GroupGravity, engine.TagSoundCube))
	s.Dynamic = engine.View{s.Floor, s.Gravity}
	s.Animators = append(s.Animators, &GravityAnimator{ID: s.Gravity, FloorLevel: g.FloorLevel, Bounce: g.Bounce.V()})

	if b.err != nil {
		return nil, fmt.Errorf("build scene: %w", b.err)
	}
	s.Store.Seal()

	logger.Info("scene built",
		zap.Stringer("run_id", s.RunID),
		zap.Int("entities", s.Store.Len()),
		zap.Int("dynamic", len(s.Dynamic)),
		zap.Int("static", len(s.Static)),
		zap.Int("physics", len(s.Physics)),
		zap.Int("animators", len(s.Animators)),
		zap.Uint64("seed", cfg.Simulation.Seed),
	)
	return s, nil
}
