package component

import (
	"github.com/lixenwraith/survivor/constant"
	"github.com/lixenwraith/survivor/vmath"
)

// Scoreboard is the HUD panel; it takes part in drawing but not collision
type Scoreboard struct {
	Shape *vmath.Polygon
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{
		Shape: vmath.MustPolygon(constant.ScoreboardShape, constant.ScoreboardPosition, 0),
	}
}

func (s *Scoreboard) Drawable() Drawable {
	return Drawable{Vertices: s.Shape.WorldVertices(), Tag: TagScoreboard}
}
