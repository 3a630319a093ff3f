package engine

import (
	"math/rand"
	"slices"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/constant"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/status"
)

// State is the match lifecycle state
type State uint8

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "playing"
}

// Match owns both players, the scoreboard panel, the live coin set and the scores
// Not safe for concurrent use; the Scheduler serializes access
type Match struct {
	ID   uuid.UUID
	Seed int64

	Player1    *component.Player
	Player2    *component.Player
	Scoreboard *component.Scoreboard

	// Scores are not floored; a Slow pickup at zero yields -1 and negative scores are intentional
	Score1 int
	Score2 int
	State  State

	coins      map[uint64]*component.Coin
	ambient    Ambient
	frame      uint64
	nextCoinID uint64
	rng        *rand.Rand

	events *event.EventQueue // nil disables event emission

	// Cached metric pointers
	statFrames  *atomic.Int64
	statPickups *atomic.Int64
	statCoins   *atomic.Int64
	statSpawns  map[component.CoinKind]*atomic.Int64
	statMatchID *status.AtomicString
}

// NewMatch creates a match initialized from seed
// queue and reg are optional
func NewMatch(seed int64, queue *event.EventQueue, reg *status.Registry) *Match {
	if reg == nil {
		reg = status.NewRegistry()
	}

	m := &Match{
		events:      queue,
		statFrames:  reg.Ints.Get(status.KeyFrames),
		statPickups: reg.Ints.Get(status.KeyPickups),
		statCoins:   reg.Ints.Get(status.KeyCoinsLive),
		statSpawns: map[component.CoinKind]*atomic.Int64{
			component.KindDefault: reg.Ints.Get(status.KeySpawnDefault),
			component.KindSpeed:   reg.Ints.Get(status.KeySpawnSpeed),
			component.KindSlow:    reg.Ints.Get(status.KeySpawnSlow),
		},
		statMatchID: reg.Strings.Get(status.KeyMatchID),
	}
	m.Reset(seed)
	return m
}

// Reset re-initializes every piece of match state with a fresh seed and ID
func (m *Match) Reset(seed int64) {
	prevAmbient := m.ambient

	m.ID = uuid.New()
	m.Seed = seed
	m.rng = rand.New(rand.NewSource(seed))

	m.Player1 = component.NewPlayer(1, constant.Player1Start)
	m.Player2 = component.NewPlayer(2, constant.Player2Start)
	m.Scoreboard = component.NewScoreboard()

	m.Score1, m.Score2 = 0, 0
	m.State = StatePlaying
	m.ambient = AmbientNeutral
	m.frame = 0
	m.nextCoinID = 0
	m.coins = make(map[uint64]*component.Coin, constant.InitialDefaultCoins+constant.InitialSpeedCoins)

	m.statFrames.Store(0)
	m.statPickups.Store(0)
	m.statMatchID.Store(m.ID.String())

	m.emit(event.EventMatchStarted, &event.MatchStartedPayload{MatchID: m.ID.String(), Seed: seed})
	if prevAmbient != AmbientNeutral {
		m.emit(event.EventAmbientChanged, &event.AmbientChangedPayload{From: int(prevAmbient), To: int(AmbientNeutral)})
	}

	m.populate()
}

// Update advances the match by one frame
// Order: move players, resolve at most one pickup, check the score limit, derive ambient state
func (m *Match) Update() {
	m.frame++
	m.statFrames.Add(1)

	m.Player1.Move(constant.PlayerArea)
	m.Player2.Move(constant.PlayerArea)

	if m.State == StatePlaying {
		m.resolvePickup()
		if m.Score1 >= constant.ScoreLimit || m.Score2 >= constant.ScoreLimit {
			m.endMatch()
		}
	}

	m.updateAmbient()
}

// resolvePickup consumes the first overlapping coin in ascending ID order, player 1 before player 2
func (m *Match) resolvePickup() {
	for _, c := range m.Coins() {
		for _, p := range [2]*component.Player{m.Player1, m.Player2} {
			if !p.Shape.Intersects(c.Shape) {
				continue
			}
			m.collect(p, c)
			return
		}
	}
}

func (m *Match) collect(p *component.Player, c *component.Coin) {
	delete(m.coins, c.ID)

	score := m.addScore(p.Index, c.Value())
	m.statPickups.Add(1)
	m.emit(event.EventCoinCollected, &event.CoinCollectedPayload{
		Player: p.Index,
		CoinID: c.ID,
		Kind:   c.Kind,
		Value:  c.Value(),
		Score:  score,
	})

	var from, to int
	switch c.Kind {
	case component.KindSpeed:
		from, to = p.ApplySpeed()
	case component.KindSlow:
		from, to = p.ApplySlow()
	case component.KindDefault:
		from, to = p.StepSize, p.StepSize
	}
	if from != to {
		m.emit(event.EventStepSizeChanged, &event.StepSizeChangedPayload{Player: p.Index, From: from, To: to})
	}

	m.spawnCoin(m.replacementFor(c.Kind))
}

func (m *Match) addScore(player, value int) int {
	if player == 2 {
		m.Score2 += value
		return m.Score2
	}
	m.Score1 += value
	return m.Score1
}

// endMatch enters the terminal state and clears the arena
func (m *Match) endMatch() {
	m.State = StateGameOver
	clear(m.coins)
	m.statCoins.Store(0)

	m.emit(event.EventGameOver, &event.GameOverPayload{
		Winner: m.Winner(),
		Score1: m.Score1,
		Score2: m.Score2,
	})
}

func (m *Match) updateAmbient() {
	next := AmbientFor(m.State, m.Score1, m.Score2)
	if next == m.ambient {
		return
	}
	m.emit(event.EventAmbientChanged, &event.AmbientChangedPayload{From: int(m.ambient), To: int(next)})
	m.ambient = next
}

func (m *Match) emit(t event.EventType, payload any) {
	if m.events == nil {
		return
	}
	m.events.Push(event.GameEvent{Type: t, Frame: m.frame, Payload: payload})
}

// Winner returns 1 or 2 once the match is over, 0 while playing
func (m *Match) Winner() int {
	if m.State != StateGameOver {
		return 0
	}
	if m.Score1 >= constant.ScoreLimit {
		return 1
	}
	return 2
}

func (m *Match) Ambient() Ambient {
	return m.ambient
}

func (m *Match) Frame() uint64 {
	return m.frame
}

// Player returns the player with index 1 or 2, nil otherwise
func (m *Match) Player(index int) *component.Player {
	switch index {
	case 1:
		return m.Player1
	case 2:
		return m.Player2
	}
	return nil
}

// Coins returns the live coins in ascending ID order
func (m *Match) Coins() []*component.Coin {
	coins := make([]*component.Coin, 0, len(m.coins))
	for _, c := range m.coins {
		coins = append(coins, c)
	}
	slices.SortFunc(coins, func(a, b *component.Coin) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return coins
}

func (m *Match) CoinCount() int {
	return len(m.coins)
}

// Drawables returns entities in paint order: scoreboard panel, coins, players
func (m *Match) Drawables() []component.Drawable {
	out := make([]component.Drawable, 0, len(m.coins)+3)
	out = append(out, m.Scoreboard.Drawable())
	for _, c := range m.Coins() {
		out = append(out, c.Drawable())
	}
	out = append(out, m.Player1.Drawable(), m.Player2.Drawable())
	return out
}
