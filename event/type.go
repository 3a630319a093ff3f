package event

// EventType represents the type of game event
type EventType int

const (
	// EventMatchStarted signals a fresh match (startup or restart)
	// Trigger: Match.Reset | Payload: *MatchStartedPayload
	EventMatchStarted EventType = iota

	// EventCoinCollected signals a pickup
	// Trigger: Match.Update | Consumer: audio, log | Payload: *CoinCollectedPayload
	EventCoinCollected

	// EventCoinSpawned signals a coin entering the arena
	// Trigger: Match initial population and replacements | Payload: *CoinSpawnedPayload
	EventCoinSpawned

	// EventStepSizeChanged signals a speed or slow ratchet
	// Trigger: speed/slow pickup | Consumer: audio | Payload: *StepSizeChangedPayload
	EventStepSizeChanged

	// EventAmbientChanged signals a background state transition
	// Trigger: Match.Update, Match.Reset | Consumer: log | Payload: *AmbientChangedPayload
	EventAmbientChanged

	// EventGameOver signals the terminal match state
	// Trigger: score limit reached | Consumer: audio, log | Payload: *GameOverPayload
	EventGameOver
)

var typeNames = map[EventType]string{
	EventMatchStarted:    "match_started",
	EventCoinCollected:   "coin_collected",
	EventCoinSpawned:     "coin_spawned",
	EventStepSizeChanged: "step_size_changed",
	EventAmbientChanged:  "ambient_changed",
	EventGameOver:        "game_over",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Frame   uint64 // Match frame the event was raised in
	Payload any
}
