package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/cubular/curve"
	"github.com/lixenwraith/cubular/engine"
	"github.com/lixenwraith/cubular/vmath"
)

// Animator writes one example's pose into its entity once per frame
type Animator interface {
	Name() string
	Advance(store *engine.Store)
}

// BezierAnimator moves an entity back and forth along a cubic curve
type BezierAnimator struct {
	ID    engine.ID
	Curve curve.Cubic
	Osc   curve.Oscillator
}

func (a *BezierAnimator) Name() string { return "bezier" }

func (a *BezierAnimator) Advance(store *engine.Store) {
	store.Get(a.ID).Position = a.Curve.Point(a.Osc.Advance())
}

// ScaleAnimator scales one axis at a time and spins the entity continuously
type ScaleAnimator struct {
	ID    engine.ID
	Cycle curve.AxisCycle
	Spin  mgl32.Vec3
}

func (a *ScaleAnimator) Name() string { return "scale" }

func (a *ScaleAnimator) Advance(store *engine.Store) {
	a.Cycle.Advance()
	e := store.Get(a.ID)
	e.Scale = a.Cycle.Apply(vmath.Splat(1))
	e.Euler = e.Euler.Add(a.Spin)
}

// ShearAnimator shears one axis at a time
type ShearAnimator struct {
	ID    engine.ID
	Cycle curve.AxisCycle
}

func (a *ShearAnimator) Name() string { return "shear" }

func (a *ShearAnimator) Advance(store *engine.Store) {
	a.Cycle.Advance()
	store.Get(a.ID).Shear = a.Cycle.Apply(mgl32.Vec3{})
}

// LerpAnimator moves an entity along a straight segment
type LerpAnimator struct {
	ID       engine.ID
	From, To mgl32.Vec3
	Osc      curve.Oscillator
}

func (a *LerpAnimator) Name() string { return "lerp" }

func (a *LerpAnimator) Advance(store *engine.Store) {
	store.Get(a.ID).Position = curve.Lerp(a.From, a.To, a.Osc.Advance())
}

// SlerpAnimator drives an entity's Euler angles between two orientations
type SlerpAnimator struct {
	ID       engine.ID
	From, To mgl32.Vec3
	Osc      curve.Oscillator
}

func (a *SlerpAnimator) Name() string { return "slerp" }

func (a *SlerpAnimator) Advance(store *engine.Store) {
	store.Get(a.ID).Euler = curve.Slerp(a.From, a.To, a.Osc.Advance())
}

// GravityAnimator keeps the falling cube above the floor level and kicks it back up on landing
type GravityAnimator struct {
	ID         engine.ID
	FloorLevel float32
	Bounce     mgl32.Vec3

	bounces int
}

func (a *GravityAnimator) Name() string { return "gravity" }

func (a *GravityAnimator) Advance(store *engine.Store) {
	e := store.Get(a.ID)
	if e.Position[1] <= a.FloorLevel {
		e.Position[1] = a.FloorLevel
		e.ApplyForce(a.Bounce)
		a.bounces++
	}
}

// Bounces returns how many times the cube was kicked
func (a *GravityAnimator) Bounces() int {
	return a.bounces
}
