package engine

import "github.com/lixenwraith/survivor/constant"

// Ambient is the cosmetic match-progress state consumed by the renderer
type Ambient uint8

const (
	AmbientNeutral  Ambient = iota // Both scores below the threshold
	AmbientOneAt20                 // Exactly one score at or above the threshold
	AmbientBothAt20                // Both scores at or above the threshold
	AmbientEnded                   // Game over, overrides the score states
)

var ambientNames = [...]string{
	AmbientNeutral:  "neutral",
	AmbientOneAt20:  "one_at_20",
	AmbientBothAt20: "both_at_20",
	AmbientEnded:    "ended",
}

func (a Ambient) String() string {
	if int(a) < len(ambientNames) {
		return ambientNames[a]
	}
	return "unknown"
}

// AmbientFor derives the ambient state from match state and scores
func AmbientFor(state State, score1, score2 int) Ambient {
	if state == StateGameOver {
		return AmbientEnded
	}

	high1 := score1 >= constant.AmbientThreshold
	high2 := score2 >= constant.AmbientThreshold
	switch {
	case high1 && high2:
		return AmbientBothAt20
	case high1 || high2:
		return AmbientOneAt20
	default:
		return AmbientNeutral
	}
}
