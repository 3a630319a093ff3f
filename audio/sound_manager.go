package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/survivor/constant"
	"github.com/lixenwraith/survivor/event"
)

// SoundManager plays one-shot cues through a single speaker mixer
// Failures leave the manager silent; gameplay never depends on audio
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	output      *effects.Volume
	initialized bool
	muted       atomic.Bool
}

// NewSoundManager creates a sound manager; a nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:    cfg,
		mixer:  mixer,
		output: &effects.Volume{Streamer: mixer, Base: 2},
	}
}

// Initialize opens the speaker; a disabled config is a silent no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.output.Silent = sm.muted.Load()
	speaker.Play(sm.output)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play starts cue unless muted or uninitialized
func (sm *SoundManager) Play(cue Cue) {
	if cue == CueNone || sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := GetSoundEffect(cue, sm.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Handle plays the cue mapped to ev, if any
func (sm *SoundManager) Handle(ev event.GameEvent) {
	sm.Play(CueFor(ev))
}

// SetMuted silences output and suppresses new cues
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.output.Silent = muted
	if muted {
		sm.mixer.Clear()
	}
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.SetMuted(muted)
	return muted
}

func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
