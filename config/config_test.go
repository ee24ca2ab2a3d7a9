package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cubular/engine"
	"github.com/lixenwraith/cubular/vmath"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAudioEnabled, EnvMasterVolume, EnvSeed} {
		t.Setenv(k, "")
	}
}

// TestDefaultConfig verifies the embedded defaults reproduce the demo scene
func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 60, cfg.Simulation.FrameRate)
	assert.InDelta(t, 1.0/60.0, float64(cfg.Simulation.Step()), 1e-9)
	assert.Equal(t, vmath.V3(0, -7, -70), cfg.Simulation.Center.V())
	assert.Equal(t, UnclassifiedExempt, cfg.Simulation.Unclassified)

	ex := cfg.Examples
	assert.Equal(t, vmath.V3(20, 10, 5), ex.Bezier.Control[0].V())
	assert.Equal(t, vmath.V3(25, 20, 5), ex.Bezier.Control[3].V())
	assert.Len(t, ex.Walls, 4)
	assert.Equal(t, 35, ex.Momentum.Count)
	assert.Equal(t, float32(0.25), ex.Momentum.HalfExtent)
	assert.Equal(t, float32(-7), ex.Gravity.FloorLevel)

	assert.Len(t, cfg.Views, 8)
	assert.Equal(t, "xz", cfg.Views[6].Plane)

	tags := cfg.Tags()
	assert.True(t, tags[engine.TagSoundCube].Gravity)
	assert.True(t, tags[engine.TagSoundCube].Sound)
	assert.False(t, tags[engine.TagCube].Gravity)
}

// TestLoadOverlay verifies a user file overrides only what it names
func TestLoadOverlay(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := `
simulation:
  frame_rate: 30
  partition_center: [1, 2, 3]
profiles:
  Cube:
    restitution: 0.5
examples:
  momentum:
    count: 10
views:
  - name: Only
    center: [0, 0, 0]
    plane: xz
    cell_size: 2
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Simulation.FrameRate)
	assert.Equal(t, vmath.V3(1, 2, 3), cfg.Simulation.Center.V())
	assert.Equal(t, float32(0.5), cfg.Profiles["Cube"].Restitution)
	// Other profiles survive the merge
	assert.True(t, cfg.Profiles["SoundCube"].Gravity)
	assert.Equal(t, 10, cfg.Examples.Momentum.Count)
	assert.Equal(t, float32(0.7), cfg.Examples.Momentum.Spacing)
	require.Len(t, cfg.Views, 1)
	assert.Equal(t, "Only", cfg.Views[0].Name)
}

// TestLoadMissingFile verifies read errors surface
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestVec3Length verifies vectors must have exactly three components
func TestVec3Length(t *testing.T) {
	_, err := Parse([]byte("simulation:\n  gravity: [0, -9.8]\n"), nil)
	assert.Error(t, err)

	cfg, err := Parse([]byte("simulation:\n  gravity: [1, 2, 3]\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, vmath.V3(1, 2, 3), cfg.Simulation.Gravity.V())
}

// TestLoadOverlaySingleProfileField verifies unset profile fields keep their defaults
func TestLoadOverlaySingleProfileField(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "profile.yaml")
	data := `
profiles:
  SoundCube:
    volume: 0.5
  Cube:
    sound: true
    effect: impact
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	sc := cfg.Profiles["SoundCube"]
	assert.Equal(t, 0.5, sc.Volume)
	assert.True(t, sc.Gravity)
	assert.True(t, sc.Sound)
	assert.Equal(t, "explosion", sc.Effect)
	assert.Zero(t, sc.Restitution)

	cube := cfg.Profiles["Cube"]
	assert.Equal(t, float32(1), cube.Restitution)
	assert.Equal(t, "impact", cube.Effect)

	assert.Contains(t, cfg.Profiles, "Object")
}

// TestValidate verifies each rule rejects with ErrInvalidConfig
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"frame rate", func(c *Config) { c.Simulation.FrameRate = 0 }},
		{"damping", func(c *Config) { c.Simulation.Damping = 1.5 }},
		{"retention", func(c *Config) { c.Simulation.ForceRetention = -0.1 }},
		{"policy", func(c *Config) { c.Simulation.Unclassified = "nearest" }},
		{"unknown tag", func(c *Config) { c.Profiles["Ghost"] = Profile{} }},
		{"restitution", func(c *Config) { c.Profiles["Cube"] = Profile{Restitution: 2} }},
		{"effect", func(c *Config) { c.Profiles["Cube"] = Profile{Sound: true, Effect: "boom"} }},
		{"music effect", func(c *Config) { c.Profiles["Cube"] = Profile{Sound: true, Effect: "music"} }},
		{"step", func(c *Config) { c.Examples.Lerp.Step = 0 }},
		{"scale range", func(c *Config) { c.Examples.Scale.Min = 3 }},
		{"momentum extent", func(c *Config) { c.Examples.Momentum.HalfExtent = 0 }},
		{"z range", func(c *Config) { c.Examples.Momentum.ZMin = 0 }},
		{"volume", func(c *Config) { c.Audio.MasterVolume = 2 }},
		{"no views", func(c *Config) { c.Views = nil }},
		{"plane", func(c *Config) { c.Views[0].Plane = "yz" }},
		{"cell size", func(c *Config) { c.Views[0].CellSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

// TestApplyEnv verifies environment overrides and clamping
func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "150")
	t.Setenv(EnvSeed, "424242")

	cfg := Default()
	ApplyEnv(cfg)

	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 1.0, cfg.Audio.MasterVolume)
	assert.Equal(t, uint64(424242), cfg.Simulation.Seed)

	t.Setenv(EnvMasterVolume, "25")
	t.Setenv(EnvAudioEnabled, "not-a-bool")
	cfg = Default()
	ApplyEnv(cfg)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.25, cfg.Audio.MasterVolume)
}
