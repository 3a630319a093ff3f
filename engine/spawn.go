package engine

import (
	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/constant"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/vmath"
)

// spawnPosition draws a uniform point inside the spawn margin
func (m *Match) spawnPosition() vmath.Point {
	x := constant.SpawnMargin + m.rng.Intn(constant.SpawnRangeX)
	y := constant.SpawnMargin + m.rng.Intn(constant.SpawnRangeY)
	return vmath.Pt(float64(x), float64(y))
}

// replacementFor picks the kind spawned after collecting a coin of kind
// Speed and slow pickups never chain
func (m *Match) replacementFor(kind component.CoinKind) component.CoinKind {
	if kind != component.KindDefault {
		return component.KindDefault
	}
	return component.ReplacementKind(m.rng.Intn(constant.CoinKindRange))
}

// spawnCoin adds a coin of kind at a random interior position
func (m *Match) spawnCoin(kind component.CoinKind) *component.Coin {
	return m.placeCoin(kind, m.spawnPosition())
}

// placeCoin adds a coin of kind at pos with the next sequence ID
func (m *Match) placeCoin(kind component.CoinKind, pos vmath.Point) *component.Coin {
	m.nextCoinID++
	c := component.NewCoin(m.nextCoinID, kind, pos)
	m.coins[c.ID] = c

	if stat := m.statSpawns[kind]; stat != nil {
		stat.Add(1)
	}
	m.statCoins.Store(int64(len(m.coins)))

	m.emit(event.EventCoinSpawned, &event.CoinSpawnedPayload{
		CoinID:   c.ID,
		Kind:     kind,
		Position: pos,
	})
	return c
}

// populate seeds the arena with the initial coin set
func (m *Match) populate() {
	for i := 0; i < constant.InitialDefaultCoins; i++ {
		m.spawnCoin(component.KindDefault)
	}
	for i := 0; i < constant.InitialSpeedCoins; i++ {
		m.spawnCoin(component.KindSpeed)
	}
}
