package audio

import (
	"errors"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/event"
)

// Cue identifies a sound effect
type Cue int

const (
	CueNone     Cue = iota
	CuePickup       // Default coin collected
	CueSpeed        // Speed coin collected
	CueSlow         // Slow coin collected
	CueGameOver     // Score limit reached
	cueCount
)

var cueNames = [cueCount]string{"none", "pickup", "speed", "slow", "game_over"}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// ErrNotInitialized is returned when playback is requested before Initialize
var ErrNotInitialized = errors.New("audio not initialized")

// CueFor maps a game event to its sound, CueNone for silent events
func CueFor(ev event.GameEvent) Cue {
	switch ev.Type {
	case event.EventCoinCollected:
		p, ok := ev.Payload.(*event.CoinCollectedPayload)
		if !ok {
			return CueNone
		}
		switch p.Kind {
		case component.KindSpeed:
			return CueSpeed
		case component.KindSlow:
			return CueSlow
		}
		return CuePickup
	case event.EventGameOver:
		return CueGameOver
	}
	return CueNone
}
