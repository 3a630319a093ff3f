package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell; style is composed at flush
type Cell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
	Bold bool
}

// RenderBuffer is a compositor over a flat cell array
// Renderers write fills and text; FlushToScreen emits every cell once
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank on black using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RgbText, Bg: RgbBlack}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) Bounds() (width, height int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), zero Cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set overwrites a cell
func (b *RenderBuffer) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// Fill blanks a cell and sets its background
func (b *RenderBuffer) Fill(x, y int, bg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: ' ', Fg: RgbText, Bg: bg}
}

// FillRow fills columns [x0, x1] of row y
func (b *RenderBuffer) FillRow(y, x0, x1 int, bg tcell.Color) {
	for x := max(x0, 0); x <= x1 && x < b.width; x++ {
		b.Fill(x, y, bg)
	}
}

// FillRect fills the inclusive cell rectangle
func (b *RenderBuffer) FillRect(x0, y0, x1, y1 int, bg tcell.Color) {
	for y := max(y0, 0); y <= y1 && y < b.height; y++ {
		b.FillRow(y, x0, x1, bg)
	}
}

// DrawText writes s starting at (x, y), keeping each cell's background
// Returns the display width consumed
func (b *RenderBuffer) DrawText(x, y int, s string, fg tcell.Color, bold bool) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if b.inBounds(col, y) {
			c := &b.cells[y*b.width+col]
			c.Rune, c.Fg, c.Bold = r, fg, bold
			// Wide runes own the following cell
			if w == 2 && b.inBounds(col+1, y) {
				b.cells[y*b.width+col+1].Rune = 0
			}
		}
		col += w
	}
	return col - x
}

// DrawTextBg writes s with an explicit background
func (b *RenderBuffer) DrawTextBg(x, y int, s string, fg, bg tcell.Color, bold bool) int {
	b.FillRow(y, x, x+runewidth.StringWidth(s)-1, bg)
	return b.DrawText(x, y, s, fg, bold)
}

// DrawCentered writes s horizontally centered on row y
func (b *RenderBuffer) DrawCentered(y int, s string, fg tcell.Color, bold bool) {
	b.DrawText(CenterColumn(b.width, s), y, s, fg, bold)
}

// CenterColumn returns the start column that centers s in width cells
func CenterColumn(width int, s string) int {
	x := (width - runewidth.StringWidth(s)) / 2
	if x < 0 {
		return 0
	}
	return x
}

// FlushToScreen writes every cell to the screen
func (b *RenderBuffer) FlushToScreen(s Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			if c.Rune == 0 {
				// Continuation of a wide rune
				continue
			}
			style := tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg).Bold(c.Bold)
			s.SetContent(x, y, c.Rune, nil, style)
		}
	}
}
