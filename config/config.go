// Package config loads the scene and simulation settings.
//
// Defaults are embedded; a user file is overlaid on them and environment variables are applied
// last. Maps are merged key by key, lists are replaced.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Vec3 is a YAML sequence of exactly three numbers
type Vec3 mgl32.Vec3

// UnmarshalYAML rejects sequences of the wrong length
func (v *Vec3) UnmarshalYAML(n *yaml.Node) error {
	var xs []float32
	if err := n.Decode(&xs); err != nil {
		return err
	}
	if len(xs) != 3 {
		return fmt.Errorf("line %d: vector needs 3 components, got %d", n.Line, len(xs))
	}
	*v = Vec3{xs[0], xs[1], xs[2]}
	return nil
}

// MarshalYAML writes the vector as a flow sequence
func (v Vec3) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range v {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprint(c)})
	}
	return n, nil
}

// V returns the mgl32 form
func (v Vec3) V() mgl32.Vec3 {
	return mgl32.Vec3(v)
}

type Config struct {
	Simulation Simulation         `yaml:"simulation"`
	Profiles   Profiles           `yaml:"profiles"`
	Examples   Examples           `yaml:"examples"`
	Audio      Audio              `yaml:"audio"`
	Views      []View             `yaml:"views"`
}

type Simulation struct {
	FrameRate      int     `yaml:"frame_rate"`
	TimeStep       float32 `yaml:"time_step"`
	Gravity        Vec3    `yaml:"gravity"`
	Damping        float32 `yaml:"damping"`
	ForceRetention float32 `yaml:"force_retention"`
	Seed           uint64  `yaml:"seed"`
	Center         Vec3    `yaml:"partition_center"`
	Unclassified   string  `yaml:"unclassified"`
}

// Step returns the fixed physics step in seconds
func (s Simulation) Step() float32 {
	if s.TimeStep > 0 {
		return s.TimeStep
	}
	return 1 / float32(s.FrameRate)
}

// Profile is the collision response for one tag
type Profile struct {
	Restitution float32 `yaml:"restitution"`
	Gravity     bool    `yaml:"gravity"`
	Sound       bool    `yaml:"sound"`
	Effect      string  `yaml:"effect"` // explosion | impact, empty = explosion
	Volume      float64 `yaml:"volume"`
}

// Profiles maps tag names to profiles
// An overlay decodes each entry over the existing one, so unset fields keep their values
type Profiles map[string]Profile

// UnmarshalYAML merges entry by entry instead of replacing whole profiles
func (p *Profiles) UnmarshalYAML(n *yaml.Node) error {
	if n.Tag == "!!null" {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: profiles must be a mapping", n.Line)
	}
	if *p == nil {
		*p = make(Profiles, len(n.Content)/2)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := n.Content[i].Value
		prof := (*p)[name]
		if err := n.Content[i+1].Decode(&prof); err != nil {
			return err
		}
		(*p)[name] = prof
	}
	return nil
}

type Examples struct {
	Bezier   Bezier   `yaml:"bezier"`
	Scale    Axis     `yaml:"scale"`
	Shear    Axis     `yaml:"shear"`
	Lerp     Lerp     `yaml:"lerp"`
	Slerp    Slerp    `yaml:"slerp"`
	Floor    Box      `yaml:"floor"`
	Walls    []Box    `yaml:"walls"`
	Momentum Momentum `yaml:"momentum"`
	Gravity  Gravity  `yaml:"gravity"`
}

type Bezier struct {
	Control     [4]Vec3 `yaml:"control"`
	Step        float32 `yaml:"step"`
	Markers     int     `yaml:"markers"`
	MarkerScale float32 `yaml:"marker_scale"`
	Scale       float32 `yaml:"scale"`
}

// Axis configures the scale and shear examples
type Axis struct {
	Position Vec3    `yaml:"position"`
	Min      float32 `yaml:"min"`
	Max      float32 `yaml:"max"`
	Step     float32 `yaml:"step"`
	Spin     Vec3    `yaml:"spin"`
}

type Lerp struct {
	From        Vec3    `yaml:"from"`
	To          Vec3    `yaml:"to"`
	Step        float32 `yaml:"step"`
	Markers     int     `yaml:"markers"`
	MarkerScale float32 `yaml:"marker_scale"`
	Scale       float32 `yaml:"scale"`
}

type Slerp struct {
	Position Vec3    `yaml:"position"`
	From     Vec3    `yaml:"from"`
	To       Vec3    `yaml:"to"`
	Step     float32 `yaml:"step"`
	Scale    float32 `yaml:"scale"`
}

// Box is an immovable boundary; extents are half sizes
type Box struct {
	Position Vec3 `yaml:"position"`
	Extents  Vec3 `yaml:"extents"`
}

type Momentum struct {
	Count      int     `yaml:"count"`
	Spacing    float32 `yaml:"spacing"`
	OriginX    float32 `yaml:"origin_x"`
	Y          float32 `yaml:"y"`
	ZMin       float32 `yaml:"z_min"`
	ZMax       float32 `yaml:"z_max"`
	HalfExtent float32 `yaml:"half_extent"`
	Force      float32 `yaml:"force"`
}

type Gravity struct {
	Position   Vec3    `yaml:"position"`
	HalfExtent float32 `yaml:"half_extent"`
	FloorLevel float32 `yaml:"floor_level"`
	Bounce     Vec3    `yaml:"bounce"`
}

type Audio struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	Music        bool    `yaml:"music"`
	MusicVolume  float64 `yaml:"music_volume"`
	MusicFile    string  `yaml:"music_file"`
}

// View is one named camera, projected onto a plane
type View struct {
	Name     string  `yaml:"name"`
	Center   Vec3    `yaml:"center"`
	Plane    string  `yaml:"plane"`
	CellSize float32 `yaml:"cell_size"`
}

// Default returns the embedded configuration
func Default() *Config {
	cfg, err := Parse(defaultYAML, nil)
	if err != nil {
		panic(fmt.Sprintf("embedded config: %v", err))
	}
	return cfg
}

// Parse decodes data over base; a nil base starts from zero values
func Parse(data []byte, base *Config) (*Config, error) {
	cfg := base
	if cfg == nil {
		cfg = &Config{}
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Load overlays the file at path on the defaults, applies environment overrides and validates
// An empty path loads the defaults only
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if cfg, err = Parse(data, cfg); err != nil {
			return nil, err
		}
	}
	ApplyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
