package render

import (
	"math"

	"github.com/lixenwraith/survivor/constant"
	"github.com/lixenwraith/survivor/vmath"
)

// Viewport maps the fixed arena canvas onto a terminal grid, scaling each axis independently
type Viewport struct {
	Cols int
	Rows int
}

func (v Viewport) cellWidth() float64 {
	return float64(constant.CanvasWidth) / float64(v.Cols)
}

func (v Viewport) cellHeight() float64 {
	return float64(constant.CanvasHeight) / float64(v.Rows)
}

// CellCenter returns the arena point sampled for cell (col, row)
func (v Viewport) CellCenter(col, row int) vmath.Point {
	return vmath.Pt((float64(col)+0.5)*v.cellWidth(), (float64(row)+0.5)*v.cellHeight())
}

// Column returns the cell column containing arena x
func (v Viewport) Column(x float64) int {
	return int(math.Floor(x / v.cellWidth()))
}

// Row returns the cell row containing arena y
func (v Viewport) Row(y float64) int {
	return int(math.Floor(y / v.cellHeight()))
}

// CellOf returns the cell containing p
func (v Viewport) CellOf(p vmath.Point) (col, row int) {
	return v.Column(p.X), v.Row(p.Y)
}

func (v Viewport) Valid() bool {
	return v.Cols > 0 && v.Rows > 0
}
