package event

import (
	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/vmath"
)

// MatchStartedPayload identifies a new match
type MatchStartedPayload struct {
	MatchID string `json:"match_id"`
	Seed    int64  `json:"seed"`
}

// CoinCollectedPayload describes a resolved pickup
type CoinCollectedPayload struct {
	Player int                `json:"player"`
	CoinID uint64             `json:"coin_id"`
	Kind   component.CoinKind `json:"kind"`
	Value  int                `json:"value"`
	Score  int                `json:"score"` // Collector's score after the pickup
}

// CoinSpawnedPayload describes a coin entering the arena
type CoinSpawnedPayload struct {
	CoinID   uint64             `json:"coin_id"`
	Kind     component.CoinKind `json:"kind"`
	Position vmath.Point        `json:"position"`
}

// StepSizeChangedPayload describes a step ratchet
type StepSizeChangedPayload struct {
	Player int `json:"player"`
	From   int `json:"from"`
	To     int `json:"to"`
}

// AmbientChangedPayload carries the ambient state ordinal before and after
type AmbientChangedPayload struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// GameOverPayload carries the final result
type GameOverPayload struct {
	Winner int `json:"winner"`
	Score1 int `json:"score1"`
	Score2 int `json:"score2"`
}
