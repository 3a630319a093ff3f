package render

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/engine"
)

// HUD anchor x positions on the arena canvas
const (
	hudPlayer1X    = 205
	hudScoreboardX = 365
	hudPlayer2X    = 515
	bannerY        = 50
	overlayTopY    = 30
	gameOverY      = 230
	winnerY        = 280
	restartY       = 325
)

// Overlay and banner text
const (
	TextScoreboard   = "| Scoreboard |"
	TextOneAt20      = "A Player has 20 points!"
	TextBothAt20     = "Both Players have 20 points!"
	TextGameOver     = "GAME OVER"
	TextPlayer1Wins  = "PLAYER 1 WINS!"
	TextPlayer2Wins  = "PLAYER 2 WINS"
	TextRestartHint  = "Press R to restart"
	TextMutedMarker  = "[muted]"
	scoreTextPattern = "| Player %d: %d |"
)

// ScoreText formats a player's HUD score
func ScoreText(player, score int) string {
	return fmt.Sprintf(scoreTextPattern, player, score)
}

// BackgroundRenderer fills the frame with the fading ambient color
type BackgroundRenderer struct {
	fader *Fader
}

func NewBackgroundRenderer(fader *Fader) *BackgroundRenderer {
	return &BackgroundRenderer{fader: fader}
}

func (r *BackgroundRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	r.fader.Target(ctx.Scene.Ambient, ctx.Now)
	bg := ToTcell(r.fader.Current(ctx.Now))
	w, h := buf.Bounds()
	buf.FillRect(0, 0, w-1, h-1, bg)
}

// PanelRenderer draws the scoreboard panel
// The panel sits above the canvas origin, so it is pinned to the first row over its x span
type PanelRenderer struct{}

func (PanelRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	for _, d := range ctx.Scene.Drawables {
		if d.Tag != component.TagScoreboard {
			continue
		}
		x0, x1 := d.Vertices[0].X, d.Vertices[0].X
		for _, v := range d.Vertices[1:] {
			x0, x1 = min(x0, v.X), max(x1, v.X)
		}
		buf.FillRow(0, ctx.Viewport.Column(x0), ctx.Viewport.Column(x1)-1, TagColor(d.Tag))
	}
}

// EntityRenderer rasterizes coins and players in scene order
type EntityRenderer struct{}

func (EntityRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	for _, d := range ctx.Scene.Drawables {
		if d.Tag == component.TagScoreboard {
			continue
		}
		FillPolygon(buf, ctx.Viewport, d.Vertices, TagColor(d.Tag))
	}
}

// HUDRenderer writes the score strings on the panel row
type HUDRenderer struct{}

func (HUDRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	vp := ctx.Viewport
	buf.DrawTextBg(vp.Column(hudPlayer1X), 0, ScoreText(1, ctx.Scene.Score1), PlayerColor(1), RgbPanel, true)
	buf.DrawTextBg(vp.Column(hudScoreboardX), 0, TextScoreboard, RgbHUDText, RgbPanel, true)
	buf.DrawTextBg(vp.Column(hudPlayer2X), 0, ScoreText(2, ctx.Scene.Score2), PlayerColor(2), RgbPanel, true)

	if ctx.Muted {
		w, _ := buf.Bounds()
		buf.DrawText(w-len(TextMutedMarker), 0, TextMutedMarker, RgbStats, false)
	}
}

// BannerRenderer shows the 20-point announcements
type BannerRenderer struct{}

func (BannerRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	var text string
	switch ctx.Scene.Ambient {
	case engine.AmbientOneAt20:
		text = TextOneAt20
	case engine.AmbientBothAt20:
		text = TextBothAt20
	default:
		return
	}
	buf.DrawCentered(ctx.Viewport.Row(bannerY), text, RgbBanner, true)
}

// GameOverRenderer blanks the arena below the panel and announces the winner
type GameOverRenderer struct{}

func (GameOverRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	if ctx.Scene.State != engine.StateGameOver {
		return
	}

	vp := ctx.Viewport
	w, h := buf.Bounds()
	buf.FillRect(0, max(vp.Row(overlayTopY), 1), w-1, h-1, RgbBlack)

	winner := TextPlayer1Wins
	if ctx.Scene.Winner == 2 {
		winner = TextPlayer2Wins
	}
	color := PlayerColor(ctx.Scene.Winner)

	buf.DrawCentered(vp.Row(gameOverY), TextGameOver, RgbText, true)
	buf.DrawCentered(vp.Row(winnerY), winner, color, true)
	buf.DrawCentered(vp.Row(restartY), TextRestartHint, color, false)
}

// StatsRenderer lists metric lines in the bottom-left corner when enabled
type StatsRenderer struct {
	visible atomic.Bool
}

func (r *StatsRenderer) IsVisible() bool {
	return r.visible.Load()
}

// Toggle flips visibility and returns the new state
func (r *StatsRenderer) Toggle() bool {
	for {
		cur := r.visible.Load()
		if r.visible.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

func (r *StatsRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	_, h := buf.Bounds()
	top := h - len(ctx.Stats)
	for i, line := range ctx.Stats {
		if y := top + i; y > 0 {
			buf.DrawText(0, y, line, RgbStats, false)
		}
	}
}
