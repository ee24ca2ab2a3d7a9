package engine

import (
	"fmt"
	"strings"
)

// SoundType identifies a sound the simulation can request
type SoundType int

const (
	SoundExplosion SoundType = iota
	SoundImpact
	SoundMusic
)

func (s SoundType) String() string {
	switch s {
	case SoundExplosion:
		return "explosion"
	case SoundImpact:
		return "impact"
	case SoundMusic:
		return "music"
	default:
		return "unknown"
	}
}

// ParseSoundType accepts the String form, case-insensitive
func ParseSoundType(s string) (SoundType, error) {
	for _, st := range []SoundType{SoundExplosion, SoundImpact, SoundMusic} {
		if strings.EqualFold(st.String(), s) {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSound, s)
}

// SoundPlayer is the audio collaborator
// Play returns false when the sound was not queued (audio disabled, muted or full)
type SoundPlayer interface {
	Play(sound SoundType, volume float64, loop bool) bool
}

// NopSoundPlayer drops every request
type NopSoundPlayer struct{}

func (NopSoundPlayer) Play(SoundType, float64, bool) bool { return false }
