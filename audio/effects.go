package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/survivor/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a finite wave, optionally sweeping frequency linearly
type oscillator struct {
	from     float64
	to       float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another over duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:     from,
		to:       to,
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
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release ramp ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies a linear gain; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreatePickupSound generates a short A5 chime with an octave overtone
func CreatePickupSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewOscillator(constant.PickupFrequency, constant.PickupSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constant.PickupSoundDuration, constant.PickupSoundAttack, constant.PickupSoundRelease, rate)

	over := NewOscillator(constant.PickupFrequency*2, constant.PickupSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constant.PickupSoundDuration, constant.PickupSoundAttack, constant.PickupSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cfg.volume(CuePickup))
}

// CreateSpeedSound generates a rising saw sweep
func CreateSpeedSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sweep := NewSweep(constant.SpeedSweepFrom, constant.SpeedSweepTo, constant.SweepSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(sweep, constant.SweepSoundDuration, constant.SweepSoundAttack, constant.SweepSoundRelease, rate)
	return newVolume(shaped, cfg.volume(CueSpeed)*0.5)
}

// CreateSlowSound generates a falling square buzz
func CreateSlowSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sweep := NewSweep(constant.SlowSweepFrom, constant.SlowSweepTo, constant.SweepSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(sweep, constant.SweepSoundDuration, constant.SweepSoundAttack, constant.SweepSoundRelease, rate)
	return newVolume(shaped, cfg.volume(CueSlow)*0.4)
}

// CreateGameOverSound generates a descending three-note sequence
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(constant.GameOverNotes))
	for _, freq := range constant.GameOverNotes {
		osc := NewOscillator(freq, constant.GameOverNoteDuration, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, constant.GameOverNoteDuration, constant.GameOverNoteAttack, constant.GameOverNoteRelease, rate))
	}
	return newVolume(beep.Seq(notes...), cfg.volume(CueGameOver)*0.5)
}

// GetSoundEffect returns the streamer for cue, nil for CueNone
func GetSoundEffect(cue Cue, cfg *AudioConfig) beep.Streamer {
	switch cue {
	case CuePickup:
		return CreatePickupSound(cfg)
	case CueSpeed:
		return CreateSpeedSound(cfg)
	case CueSlow:
		return CreateSlowSound(cfg)
	case CueGameOver:
		return CreateGameOverSound(cfg)
	}
	return nil
}
