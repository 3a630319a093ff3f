package engine

import (
	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/vmath"
)

// Scene is an immutable per-frame view of the match for the renderer
type Scene struct {
	MatchID   string
	Frame     uint64
	State     State
	Ambient   Ambient
	Score1    int
	Score2    int
	Winner    int
	Drawables []component.Drawable
}

// Scene captures the current frame; call under the scheduler lock
func (m *Match) Scene() Scene {
	return Scene{
		MatchID:   m.ID.String(),
		Frame:     m.frame,
		State:     m.State,
		Ambient:   m.ambient,
		Score1:    m.Score1,
		Score2:    m.Score2,
		Winner:    m.Winner(),
		Drawables: m.Drawables(),
	}
}

// PlayerSnapshot is the wire form of a player
type PlayerSnapshot struct {
	Index    int           `json:"index"`
	Vertices []vmath.Point `json:"vertices"`
	Step     int           `json:"step"`
}

// CoinSnapshot is the wire form of a coin
type CoinSnapshot struct {
	ID       uint64        `json:"id"`
	Kind     string        `json:"kind"`
	Vertices []vmath.Point `json:"vertices"`
}

// Snapshot is the spectator wire form of the match
type Snapshot struct {
	MatchID string           `json:"match_id"`
	Frame   uint64           `json:"frame"`
	State   string           `json:"state"`
	Ambient string           `json:"ambient"`
	Score1  int              `json:"score1"`
	Score2  int              `json:"score2"`
	Players []PlayerSnapshot `json:"players"`
	Coins   []CoinSnapshot   `json:"coins"`
}

// Snapshot captures the match for spectators; call under the scheduler lock
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		MatchID: m.ID.String(),
		Frame:   m.frame,
		State:   m.State.String(),
		Ambient: m.ambient.String(),
		Score1:  m.Score1,
		Score2:  m.Score2,
		Players: make([]PlayerSnapshot, 0, 2),
		Coins:   make([]CoinSnapshot, 0, len(m.coins)),
	}
	for _, p := range [2]*component.Player{m.Player1, m.Player2} {
		s.Players = append(s.Players, PlayerSnapshot{
			Index:    p.Index,
			Vertices: p.Shape.WorldVertices(),
			Step:     p.StepSize,
		})
	}
	for _, c := range m.Coins() {
		s.Coins = append(s.Coins, CoinSnapshot{
			ID:       c.ID,
			Kind:     c.Kind.String(),
			Vertices: c.Shape.WorldVertices(),
		})
	}
	return s
}
