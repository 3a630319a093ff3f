package constant

import "github.com/lixenwraith/survivor/vmath"

// Canvas dimensions in virtual pixels
const (
	CanvasWidth  = 800
	CanvasHeight = 600
)

// Player clamp bounds, applied at the start of each movement step
const (
	PlayerMinX = 15
	PlayerMaxX = 765
	PlayerMinY = 20
	PlayerMaxY = 535
)

// Coin spawn area: margin from the canvas origin plus an exclusive random span
// x ∈ [35, 765), y ∈ [35, 550)
const (
	SpawnMargin = 35
	SpawnRangeX = 730
	SpawnRangeY = 515
)

// PlayerArea is the clamp box for player positions
var PlayerArea = vmath.AABB{
	Min: vmath.Pt(PlayerMinX, PlayerMinY),
	Max: vmath.Pt(PlayerMaxX, PlayerMaxY),
}

// Starting poses
var (
	Player1Start       = vmath.Pt(250, 250)
	Player2Start       = vmath.Pt(450, 250)
	ScoreboardPosition = vmath.Pt(300, 0)
)
