package render

import "time"

// NewGameRenderer builds the orchestrator with every layer registered
// Returns the stats layer so the caller can toggle it
func NewGameRenderer(screen Screen, fade time.Duration) (*RenderOrchestrator, *StatsRenderer) {
	o := NewRenderOrchestrator(screen)
	stats := &StatsRenderer{}

	o.Register(NewBackgroundRenderer(NewFader(fade)), PriorityBackground)
	o.Register(PanelRenderer{}, PriorityPanel)
	o.Register(EntityRenderer{}, PriorityEntities)
	o.Register(HUDRenderer{}, PriorityUI)
	o.Register(BannerRenderer{}, PriorityUI)
	o.Register(GameOverRenderer{}, PriorityOverlay)
	o.Register(stats, PriorityDebug)

	return o, stats
}
