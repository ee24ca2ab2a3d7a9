package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// ResampleQuality for music files whose rate differs from the speaker
	ResampleQuality = 4
)

// Explosion Sound
const (
	ExplosionSoundDuration = 450 * time.Millisecond
	ExplosionSoundAttack   = 4 * time.Millisecond
	ExplosionSoundRelease  = 300 * time.Millisecond
	ExplosionRumbleFreq    = 55.0
)

// Impact Sound
const (
	ImpactSoundDuration = 90 * time.Millisecond
	ImpactSoundAttack   = 2 * time.Millisecond
	ImpactSoundRelease  = 60 * time.Millisecond
	ImpactSoundFreq     = 330.0
)

// Music Pad (used when no music file is configured)
const (
	MusicBeatDuration = 600 * time.Millisecond
	MusicBassFreq     = 110.0
	MusicPadLevel     = 0.15
)
