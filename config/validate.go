package config

import (
	"fmt"

	"github.com/lixenwraith/cubular/engine"
)

// Unclassified policy names
const (
	UnclassifiedExempt = "exempt"
	UnclassifiedFirst  = "first"
)

// Validate checks ranges and names
func (c *Config) Validate() error {
	s := c.Simulation
	if s.FrameRate <= 0 {
		return fmt.Errorf("%w: simulation.frame_rate must be positive, got %d", ErrInvalidConfig, s.FrameRate)
	}
	if s.TimeStep < 0 {
		return fmt.Errorf("%w: simulation.time_step must not be negative", ErrInvalidConfig)
	}
	if s.Damping < 0 || s.Damping > 1 {
		return fmt.Errorf("%w: simulation.damping must be in [0,1], got %v", ErrInvalidConfig, s.Damping)
	}
	if s.ForceRetention < 0 || s.ForceRetention > 1 {
		return fmt.Errorf("%w: simulation.force_retention must be in [0,1], got %v", ErrInvalidConfig, s.ForceRetention)
	}
	if s.Unclassified != UnclassifiedExempt && s.Unclassified != UnclassifiedFirst {
		return fmt.Errorf("%w: simulation.unclassified must be %q or %q, got %q",
			ErrInvalidConfig, UnclassifiedExempt, UnclassifiedFirst, s.Unclassified)
	}

	for name, p := range c.Profiles {
		if _, err := engine.ParseTag(name); err != nil {
			return fmt.Errorf("%w: profiles: %w", ErrInvalidConfig, err)
		}
		if p.Restitution < 0 || p.Restitution > 1 {
			return fmt.Errorf("%w: profiles.%s.restitution must be in [0,1]", ErrInvalidConfig, name)
		}
		if p.Effect != "" {
			st, err := engine.ParseSoundType(p.Effect)
			if err != nil {
				return fmt.Errorf("%w: profiles.%s.effect: %w", ErrInvalidConfig, name, err)
			}
			if st == engine.SoundMusic {
				return fmt.Errorf("%w: profiles.%s.effect cannot be music", ErrInvalidConfig, name)
			}
		}
		if p.Volume < 0 || p.Volume > 1 {
			return fmt.Errorf("%w: profiles.%s.volume must be in [0,1]", ErrInvalidConfig, name)
		}
	}

	ex := c.Examples
	for name, step := range map[string]float32{
		"bezier": ex.Bezier.Step,
		"scale":  ex.Scale.Step,
		"shear":  ex.Shear.Step,
		"lerp":   ex.Lerp.Step,
		"slerp":  ex.Slerp.Step,
	} {
		if step <= 0 || step > 1 {
			return fmt.Errorf("%w: examples.%s.step must be in (0,1], got %v", ErrInvalidConfig, name, step)
		}
	}
	if ex.Scale.Min > ex.Scale.Max || ex.Shear.Min > ex.Shear.Max {
		return fmt.Errorf("%w: example min exceeds max", ErrInvalidConfig)
	}
	if ex.Bezier.Markers < 0 || ex.Lerp.Markers < 0 {
		return fmt.Errorf("%w: marker counts must not be negative", ErrInvalidConfig)
	}

	m := ex.Momentum
	if m.Count < 0 {
		return fmt.Errorf("%w: examples.momentum.count must not be negative", ErrInvalidConfig)
	}
	if m.HalfExtent <= 0 {
		return fmt.Errorf("%w: examples.momentum.half_extent must be positive", ErrInvalidConfig)
	}
	if m.ZMin > m.ZMax {
		return fmt.Errorf("%w: examples.momentum.z_min exceeds z_max", ErrInvalidConfig)
	}
	if ex.Gravity.HalfExtent <= 0 {
		return fmt.Errorf("%w: examples.gravity.half_extent must be positive", ErrInvalidConfig)
	}

	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: audio.master_volume must be in [0,1]", ErrInvalidConfig)
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		return fmt.Errorf("%w: audio.music_volume must be in [0,1]", ErrInvalidConfig)
	}

	if len(c.Views) == 0 {
		return fmt.Errorf("%w: at least one view is required", ErrInvalidConfig)
	}
	for i, v := range c.Views {
		if v.Plane != "xy" && v.Plane != "xz" {
			return fmt.Errorf("%w: views[%d].plane must be xy or xz, got %q", ErrInvalidConfig, i, v.Plane)
		}
		if v.CellSize <= 0 {
			return fmt.Errorf("%w: views[%d].cell_size must be positive", ErrInvalidConfig, i)
		}
	}
	return nil
}

// Tags returns the profiles keyed by entity tag
// Validate must have passed
func (c *Config) Tags() map[engine.Tag]Profile {
	out := make(map[engine.Tag]Profile, len(c.Profiles))
	for name, p := range c.Profiles {
		tag, err := engine.ParseTag(name)
		if err != nil {
			continue
		}
		out[tag] = p
	}
	return out
}
