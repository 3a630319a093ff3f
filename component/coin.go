package component

import (
	"github.com/lixenwraith/survivor/constant"
	"github.com/lixenwraith/survivor/vmath"
)

// CoinKind discriminates coin behavior on pickup
type CoinKind uint8

const (
	KindDefault CoinKind = iota
	KindSpeed            // Raises the collector's step size
	KindSlow             // Lowers the collector's step size
)

func (k CoinKind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindSpeed:
		return "speed"
	case KindSlow:
		return "slow"
	}
	return "unknown"
}

// Value returns the score delta awarded on pickup
func (k CoinKind) Value() int {
	switch k {
	case KindSpeed:
		return constant.CoinValueSpeed
	case KindSlow:
		return constant.CoinValueSlow
	default:
		return constant.CoinValueDefault
	}
}

// Tag returns the render tag for the kind
func (k CoinKind) Tag() Tag {
	switch k {
	case KindSpeed:
		return TagCoinSpeed
	case KindSlow:
		return TagCoinSlow
	default:
		return TagCoinDefault
	}
}

// ReplacementKind maps a draw from [0, CoinKindRange) to the kind spawned after a default pickup
func ReplacementKind(draw int) CoinKind {
	switch draw {
	case 0:
		return KindSpeed
	case 1:
		return KindSlow
	default:
		return KindDefault
	}
}

// Coin is a collectible diamond; stateless apart from its pose
type Coin struct {
	ID    uint64 // Unique within a match, ascending in spawn order
	Kind  CoinKind
	Shape *vmath.Polygon
}

// NewCoin creates a coin of kind at pos with rotation 0
func NewCoin(id uint64, kind CoinKind, pos vmath.Point) *Coin {
	return &Coin{
		ID:    id,
		Kind:  kind,
		Shape: vmath.MustPolygon(constant.CoinShape, pos, 0),
	}
}

func (c *Coin) Value() int {
	return c.Kind.Value()
}

// Drawable returns the coin outline in world space
func (c *Coin) Drawable() Drawable {
	return Drawable{Vertices: c.Shape.WorldVertices(), Tag: c.Kind.Tag()}
}
