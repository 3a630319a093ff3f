package constant

import "github.com/lixenwraith/survivor/vmath"

// Local-frame outlines shared by every entity of a kind
// Callers receive copies through vmath.NewPolygon, so these are never mutated
var (
	// CoinShape is a 10px diamond
	CoinShape = []vmath.Point{
		{X: 0, Y: -5}, {X: 5, Y: 0}, {X: 0, Y: 5}, {X: -5, Y: 0},
	}

	// PlayerShape is a four-pointed chevron with a long tail; concave
	PlayerShape = []vmath.Point{
		{X: 0, Y: -20}, {X: 5, Y: -5}, {X: 20, Y: 0}, {X: 5, Y: 5},
		{X: 0, Y: 20}, {X: -5, Y: 5}, {X: -30, Y: 0}, {X: -5, Y: -5},
	}

	// ScoreboardShape is the HUD panel, anchored at its bottom-left corner
	ScoreboardShape = []vmath.Point{
		{X: 0, Y: -30}, {X: 0, Y: 0}, {X: 400, Y: 0}, {X: 400, Y: -30},
	}
)
