package render

import (
	"time"

	"github.com/lixenwraith/survivor/engine"
)

// RenderContext carries the per-frame inputs shared by all renderers
type RenderContext struct {
	Scene    engine.Scene
	Viewport Viewport
	Now      time.Time
	Stats    []string // Metric lines for the stats overlay
	Muted    bool
}
