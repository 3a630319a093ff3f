package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/survivor/vmath"
)

// FillPolygon fills every cell whose center lies inside the polygon
// Shapes too small to cover any cell center still mark their centroid cell
// Returns the number of cells filled
func FillPolygon(buf *RenderBuffer, vp Viewport, verts []vmath.Point, bg tcell.Color) int {
	if len(verts) < 3 || !vp.Valid() {
		return 0
	}

	width, height := buf.Bounds()
	box := vmath.BoundsOf(verts)
	c0, r0 := vp.CellOf(box.Min)
	c1, r1 := vp.CellOf(box.Max)
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, width-1), min(r1, height-1)

	filled := 0
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if vmath.ContainsPoint(verts, vp.CellCenter(col, row)) {
				buf.Fill(col, row, bg)
				filled++
			}
		}
	}

	if filled == 0 {
		col, row := vp.CellOf(vmath.Centroid(verts))
		if buf.inBounds(col, row) {
			buf.Fill(col, row, bg)
			filled = 1
		}
	}
	return filled
}
