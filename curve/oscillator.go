package curve

import "github.com/go-gl/mathgl/mgl32"

// Oscillator is a progress scalar bouncing between 0 and 1
type Oscillator struct {
	Progress float32
	Step     float32
	Forward  bool
	flips    int
}

// NewOscillator starts at 0 moving forward
func NewOscillator(step float32) Oscillator {
	return Oscillator{Step: step, Forward: true}
}

// Advance moves progress one step, clamping at the ends and flipping direction there
func (o *Oscillator) Advance() float32 {
	if o.Forward {
		o.Progress += o.Step
	} else {
		o.Progress -= o.Step
	}

	if o.Progress >= 1 {
		o.Progress = 1
		o.Forward = false
		o.flips++
	} else if o.Progress <= 0 {
		o.Progress = 0
		o.Forward = true
		o.flips++
	}
	return o.Progress
}

// Flips returns the number of direction changes so far
func (o *Oscillator) Flips() int {
	return o.flips
}

// AxisCycleLen is the number of selector states: two half-cycles per axis
const AxisCycleLen = 6

// AxisCycle drives the scale and shear examples
// Amount rises toward Max on even selectors and falls toward Min on odd ones;
// each clamp advances Selector, so the axis receiving Amount cycles x, x, y, y, z, z
type AxisCycle struct {
	Amount   float32
	Min, Max float32
	Step     float32
	Selector int
}

// NewAxisCycle starts at min on the x axis
func NewAxisCycle(min, max, step float32) AxisCycle {
	return AxisCycle{Amount: min, Min: min, Max: max, Step: step}
}

// Advance moves the amount one step and rotates the selector on a clamp
func (c *AxisCycle) Advance() {
	if c.Selector%2 == 0 {
		c.Amount += c.Step
	} else {
		c.Amount -= c.Step
	}

	if c.Amount >= c.Max || c.Amount <= c.Min {
		if c.Amount >= c.Max {
			c.Amount = c.Max
		} else {
			c.Amount = c.Min
		}
		c.Selector = (c.Selector + 1) % AxisCycleLen
	}
}

// Axis returns the component index currently receiving the amount
func (c *AxisCycle) Axis() int {
	return c.Selector / 2
}

// Apply returns base with the active axis replaced by the amount
func (c *AxisCycle) Apply(base mgl32.Vec3) mgl32.Vec3 {
	base[c.Axis()] = c.Amount
	return base
}
