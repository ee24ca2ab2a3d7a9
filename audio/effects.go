package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/cubular/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release ramps to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s over duration; attack and release longer than duration overlap
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, 0),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.releaseStart {
			vol = min(vol, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateExplosionSound is a noise burst over a low rumble, played when a gravity cube lands
func CreateExplosionSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := parameter.ExplosionSoundDuration

	noise := NewOscillator(0, d, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, d, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)

	rumble := NewOscillator(parameter.ExplosionRumbleFreq, d, WaveSine, rate)
	rumbleShaped := NewEnvelope(rumble, d, parameter.ExplosionSoundAttack, d, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.5),
		newVolume(rumbleShaped, 0.5),
	)
	return newVolume(mixed, vol)
}

// CreateImpactSound is a short square click
func CreateImpactSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := parameter.ImpactSoundDuration
	osc := NewOscillator(parameter.ImpactSoundFreq, d, WaveSquare, rate)
	shaped := NewEnvelope(osc, d, parameter.ImpactSoundAttack, parameter.ImpactSoundRelease, rate)
	return newVolume(shaped, vol*0.5)
}

// CreateMusicBeat is one beat of the synthesized pad: a pitch-dropping kick over a steady bass
func CreateMusicBeat(rate beep.SampleRate, vol float64) beep.Streamer {
	beat := parameter.MusicBeatDuration
	kickLen := beat / 6

	kick := beep.Seq(
		NewEnvelope(NewOscillator(parameter.MusicBassFreq/2, kickLen, WaveSine, rate), kickLen, 0, kickLen, rate),
		beep.Silence(rate.N(beat-kickLen)),
	)
	bass := NewOscillator(parameter.MusicBassFreq, beat, WaveSine, rate)

	mixed := beep.Mix(
		newVolume(kick, 0.6),
		newVolume(bass, parameter.MusicPadLevel),
	)
	return newVolume(mixed, vol)
}
