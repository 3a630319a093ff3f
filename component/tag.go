package component

import "github.com/lixenwraith/survivor/vmath"

// Tag identifies how an entity is painted
type Tag uint8

const (
	TagNone Tag = iota
	TagPlayer1
	TagPlayer2
	TagCoinDefault
	TagCoinSpeed
	TagCoinSlow
	TagScoreboard
)

var tagNames = [...]string{
	TagNone:        "none",
	TagPlayer1:     "player1",
	TagPlayer2:     "player2",
	TagCoinDefault: "coin_default",
	TagCoinSpeed:   "coin_speed",
	TagCoinSlow:    "coin_slow",
	TagScoreboard:  "scoreboard",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// Drawable is a world-space outline handed to renderers
type Drawable struct {
	Vertices []vmath.Point
	Tag      Tag
}
