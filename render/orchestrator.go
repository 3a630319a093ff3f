package render

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RenderFrame executes the render pipeline: resize, clear, render all, flush, show
// The viewport is derived from the current screen size
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	w, h := o.screen.Size()
	if bw, bh := o.buffer.Bounds(); bw != w || bh != h {
		o.buffer.Resize(w, h)
	} else {
		o.buffer.Clear()
	}
	ctx.Viewport = Viewport{Cols: w, Rows: h}

	if ctx.Viewport.Valid() {
		for _, entry := range o.renderers {
			if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
				continue
			}
			entry.renderer.Render(ctx, o.buffer)
		}
	}

	o.buffer.FlushToScreen(o.screen)
	o.screen.Show()
}

// Buffer exposes the composed frame for inspection
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}
