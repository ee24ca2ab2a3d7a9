package physics

import (
	"github.com/lixenwraith/cubular/engine"
	"github.com/lixenwraith/cubular/parameter"
)

// CollisionProfile defines per-tag response parameters
type CollisionProfile struct {
	// Restitution scales the reflected velocity on boundary contact (0 = stop, 1 = elastic)
	Restitution float32
	// Gravity enables the resolver's constant acceleration for this tag
	Gravity bool
	// Sound plays Effect at Volume when an entity with this profile collides
	Sound  bool
	Effect engine.SoundType
	Volume float64
}

// Default profiles - pre-defined so lookups never allocate

// ElasticProfile bounces off boundaries without loss
var ElasticProfile = CollisionProfile{
	Restitution: parameter.DefaultRestitution,
}

// GravityProfile falls under gravity, stops dead on contact and announces it
var GravityProfile = CollisionProfile{
	Restitution: 0,
	Gravity:     true,
	Sound:       true,
	Effect:      engine.SoundExplosion,
	Volume:      1.0,
}

// DefaultProfiles returns the built-in tag table
func DefaultProfiles() map[engine.Tag]CollisionProfile {
	return map[engine.Tag]CollisionProfile{
		engine.TagObject:    ElasticProfile,
		engine.TagCube:      ElasticProfile,
		engine.TagSoundCube: GravityProfile,
	}
}
