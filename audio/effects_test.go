package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/constant"
	"github.com/lixenwraith/survivor/event"
)

const testRate = beep.SampleRate(8000)

// drain reads a streamer to completion and returns all samples
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("Streamer did not terminate")
	return nil
}

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)
	samples := drain(t, osc)

	if len(samples) != testRate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", testRate.N(100*time.Millisecond), len(samples))
	}
	for i, s := range samples {
		if s[0] != s[1] {
			t.Fatalf("Sample %d: expected mono, got %v", i, s)
		}
		if math.Abs(s[0]) > 1 {
			t.Fatalf("Sample %d out of range: %v", i, s[0])
		}
	}
}

func TestSquareWaveValues(t *testing.T) {
	samples := drain(t, NewOscillator(100, 50*time.Millisecond, WaveSquare, testRate))
	for i, s := range samples {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("Sample %d: expected ±1, got %v", i, s[0])
		}
	}
}

// zeroCrossings counts sign changes, a proxy for frequency
func zeroCrossings(samples [][2]float64) int {
	n := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1][0] < 0) != (samples[i][0] < 0) {
			n++
		}
	}
	return n
}

func TestSweepDirection(t *testing.T) {
	rising := drain(t, NewSweep(100, 1000, time.Second, WaveSine, testRate))
	half := len(rising) / 2
	if first, second := zeroCrossings(rising[:half]), zeroCrossings(rising[half:]); second <= first {
		t.Errorf("Expected rising sweep to cross zero more in second half, got %d then %d", first, second)
	}

	falling := drain(t, NewSweep(1000, 100, time.Second, WaveSine, testRate))
	if first, second := zeroCrossings(falling[:half]), zeroCrossings(falling[half:]); second >= first {
		t.Errorf("Expected falling sweep to cross zero less in second half, got %d then %d", first, second)
	}
}

func TestEnvelopeRamps(t *testing.T) {
	square := NewOscillator(1, 100*time.Millisecond, WaveSquare, testRate) // Constant +1 over this span
	env := NewEnvelope(square, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, testRate)
	samples := drain(t, env)

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %v", samples[0][0])
	}
	mid := len(samples) / 2
	if samples[mid][0] != 1 {
		t.Errorf("Expected full sustain, got %v", samples[mid][0])
	}
	last := samples[len(samples)-1][0]
	if last <= 0 || last > 0.01 {
		t.Errorf("Expected release tail near zero, got %v", last)
	}
}

func TestCueStreamsTerminate(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = int(testRate)

	tests := []struct {
		cue  Cue
		want time.Duration
	}{
		{CuePickup, constant.PickupSoundDuration},
		{CueSpeed, constant.SweepSoundDuration},
		{CueSlow, constant.SweepSoundDuration},
		{CueGameOver, constant.GameOverNoteDuration * 3},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.cue, cfg)
			if s == nil {
				t.Fatal("Expected streamer, got nil")
			}
			samples := drain(t, s)
			if want := testRate.N(tt.want); len(samples) != want {
				t.Errorf("Expected %d samples, got %d", want, len(samples))
			}
		})
	}

	if GetSoundEffect(CueNone, cfg) != nil {
		t.Error("Expected nil streamer for CueNone")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = int(testRate)
	cfg.MasterVolume = 0

	for i, s := range drain(t, CreatePickupSound(cfg)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Sample %d: expected silence, got %v", i, s)
		}
	}
}

func TestCueFor(t *testing.T) {
	collected := func(kind component.CoinKind) event.GameEvent {
		return event.GameEvent{Type: event.EventCoinCollected, Payload: &event.CoinCollectedPayload{Kind: kind}}
	}

	tests := []struct {
		name string
		ev   event.GameEvent
		want Cue
	}{
		{"default", collected(component.KindDefault), CuePickup},
		{"speed", collected(component.KindSpeed), CueSpeed},
		{"slow", collected(component.KindSlow), CueSlow},
		{"game over", event.GameEvent{Type: event.EventGameOver, Payload: &event.GameOverPayload{}}, CueGameOver},
		{"spawn", event.GameEvent{Type: event.EventCoinSpawned}, CueNone},
		{"bad payload", event.GameEvent{Type: event.EventCoinCollected}, CueNone},
	}

	for _, tt := range tests {
		if got := CueFor(tt.ev); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, got)
		}
	}
}
