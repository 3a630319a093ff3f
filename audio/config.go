package audio

import "github.com/lixenwraith/survivor/constant"

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	SampleRate    int
	EffectVolumes map[Cue]float64
}

// DefaultAudioConfig returns the default audio configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constant.AudioSampleRate,
		EffectVolumes: map[Cue]float64{
			CuePickup:   0.6,
			CueSpeed:    0.5,
			CueSlow:     0.5,
			CueGameOver: 0.7,
		},
	}
}

// volume returns the effective gain for c
func (cfg *AudioConfig) volume(c Cue) float64 {
	v, ok := cfg.EffectVolumes[c]
	if !ok {
		v = 1
	}
	return v * cfg.MasterVolume
}
