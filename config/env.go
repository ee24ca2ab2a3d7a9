package config

import (
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvAudioEnabled = "CUBULAR_AUDIO_ENABLED"
	EnvMasterVolume = "CUBULAR_MASTER_VOLUME"
	EnvSeed         = "CUBULAR_SEED"
)

// ApplyEnv overrides cfg from the environment; unparsable values are ignored
func ApplyEnv(cfg *Config) {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Audio.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if seed := os.Getenv(EnvSeed); seed != "" {
		if val, err := strconv.ParseUint(seed, 10, 64); err == nil {
			cfg.Simulation.Seed = val
		}
	}
}
