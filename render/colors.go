package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/engine"
)

// Entity fills
var (
	RgbPlayer1     = tcell.NewRGBColor(255, 0, 0)
	RgbPlayer2     = tcell.NewRGBColor(0, 0, 255)
	RgbCoinDefault = tcell.NewRGBColor(255, 255, 0)
	RgbCoinSpeed   = tcell.NewRGBColor(0, 255, 0)
	RgbCoinSlow    = tcell.NewRGBColor(200, 0, 0) // Darker than player 1 red
	RgbPanel       = tcell.NewRGBColor(128, 128, 128)
)

// Text and overlay colors
var (
	RgbText    = tcell.NewRGBColor(255, 255, 255)
	RgbBlack   = tcell.NewRGBColor(0, 0, 0)
	RgbStats   = tcell.NewRGBColor(180, 180, 180)
	RgbHUDText = tcell.NewRGBColor(255, 255, 255)
	RgbBanner  = tcell.NewRGBColor(0, 0, 0)
)

// TagColor returns the fill color for a render tag
func TagColor(tag component.Tag) tcell.Color {
	switch tag {
	case component.TagPlayer1:
		return RgbPlayer1
	case component.TagPlayer2:
		return RgbPlayer2
	case component.TagCoinDefault:
		return RgbCoinDefault
	case component.TagCoinSpeed:
		return RgbCoinSpeed
	case component.TagCoinSlow:
		return RgbCoinSlow
	case component.TagScoreboard:
		return RgbPanel
	}
	return RgbText
}

// PlayerColor returns the HUD color of player index
func PlayerColor(index int) tcell.Color {
	if index == 2 {
		return RgbPlayer2
	}
	return RgbPlayer1
}

// Ambient backgrounds: neutral and ended are black, one-at-20 magenta, both-at-20 orange
var (
	ambientNeutral = colorful.Color{R: 0, G: 0, B: 0}
	ambientOne     = colorful.Color{R: 1, G: 0, B: 1}
	ambientBoth    = colorful.Color{R: 1, G: 200.0 / 255, B: 0}
	ambientEnded   = colorful.Color{R: 0, G: 0, B: 0}
)

// AmbientColor returns the background target for an ambient state
func AmbientColor(a engine.Ambient) colorful.Color {
	switch a {
	case engine.AmbientOneAt20:
		return ambientOne
	case engine.AmbientBothAt20:
		return ambientBoth
	case engine.AmbientEnded:
		return ambientEnded
	}
	return ambientNeutral
}

// ToTcell converts a colorful color to a terminal RGB color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
