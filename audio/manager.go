// Package audio plays synthesized collision effects and background music through beep's speaker.
// Every operation degrades to a no-op when the speaker is unavailable or audio is disabled.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/cubular/config"
	"github.com/lixenwraith/cubular/engine"
	"github.com/lixenwraith/cubular/parameter"
)

// ErrNotInitialized is returned by operations that need a running speaker
var ErrNotInitialized = errors.New("audio not initialized")

// Manager owns the speaker mixer and implements engine.SoundPlayer
type Manager struct {
	mu          sync.Mutex
	cfg         config.Audio
	log         *zap.Logger
	rate        beep.SampleRate
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicFile   io.Closer
	initialized bool
	muted       bool
}

var _ engine.SoundPlayer = (*Manager)(nil)

// NewManager creates an idle manager; call Initialize to open the speaker
func NewManager(cfg config.Audio, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		cfg:   cfg,
		log:   logger.Named("audio"),
		rate:  beep.SampleRate(parameter.AudioSampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
// A disabled config is not an error: the manager simply stays silent
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || !m.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(m.rate, m.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	m.log.Info("audio initialized", zap.Int("sample_rate", int(m.rate)))
	return nil
}

// Initialized reports whether the speaker is running
func (m *Manager) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// Play starts sound at volume scaled by the master volume
// Returns false when nothing was queued (not initialized, muted, or silent)
func (m *Manager) Play(sound engine.SoundType, volume float64, loop bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return false
	}

	if sound == engine.SoundMusic {
		return m.startMusicLocked(volume) == nil
	}

	vol := volume * m.cfg.MasterVolume
	if vol <= 0 {
		return false
	}

	var s beep.Streamer
	if loop {
		s = beep.Iterate(func() beep.Streamer { return m.create(sound, vol) })
	} else {
		s = m.create(sound, vol)
	}
	if s == nil {
		return false
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
	return true
}

// StartMusic begins the background loop at the configured music volume
func (m *Manager) StartMusic() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return ErrNotInitialized
	}
	return m.startMusicLocked(m.cfg.MusicVolume)
}

// ToggleMute silences or resumes everything and returns the new muted state
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.muted = !m.muted
	if m.initialized && m.music != nil {
		speaker.Lock()
		m.music.Paused = m.muted
		speaker.Unlock()
	}
	m.log.Debug("mute toggled", zap.Bool("muted", m.muted))
	return m.muted
}

// Muted reports the mute state
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Cleanup stops all sounds and releases the music file
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	if m.music != nil {
		m.music.Paused = true
	}
	m.mixer.Clear()
	speaker.Unlock()

	m.closeMusicLocked()
	m.initialized = false
}

func (m *Manager) create(sound engine.SoundType, vol float64) beep.Streamer {
	switch sound {
	case engine.SoundExplosion:
		return CreateExplosionSound(m.rate, vol)
	case engine.SoundImpact:
		return CreateImpactSound(m.rate, vol)
	default:
		return nil
	}
}

func (m *Manager) startMusicLocked(volume float64) error {
	if m.music != nil && !m.music.Paused {
		return nil
	}
	vol := volume * m.cfg.MasterVolume

	var s beep.Streamer
	if m.cfg.MusicFile != "" {
		file, err := openMusic(m.cfg.MusicFile, m.rate)
		if err != nil {
			m.log.Warn("music file unavailable, using synthesized pad",
				zap.String("path", m.cfg.MusicFile), zap.Error(err))
		} else {
			m.closeMusicLocked()
			m.musicFile = file
			s = file
		}
	}
	if s == nil {
		s = beep.Iterate(func() beep.Streamer { return CreateMusicBeat(m.rate, 1) })
	}

	ctrl := &beep.Ctrl{Streamer: newVolume(s, vol)}
	speaker.Lock()
	m.music = ctrl
	m.mixer.Add(ctrl)
	speaker.Unlock()
	return nil
}

func (m *Manager) closeMusicLocked() {
	if m.musicFile != nil {
		_ = m.musicFile.Close()
		m.musicFile = nil
	}
}

// musicStream is a looping, resampled mp3 that still owns its decoder
type musicStream struct {
	beep.Streamer
	io.Closer
}

// openMusic decodes an mp3 file into an endless loop at rate
func openMusic(path string, rate beep.SampleRate) (*musicStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open music: %w", err)
	}

	decoded, format, err := mp3.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode music %s: %w", path, err)
	}

	var s beep.Streamer = beep.Loop(-1, decoded)
	if format.SampleRate != rate {
		s = beep.Resample(parameter.ResampleQuality, format.SampleRate, rate, s)
	}
	return &musicStream{Streamer: s, Closer: decoded}, nil
}
