package render

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/survivor/engine"
)

// Fader blends the background between ambient colors over a fixed duration
type Fader struct {
	duration time.Duration
	target   engine.Ambient
	from     colorful.Color
	to       colorful.Color
	start    time.Time
}

// NewFader creates a fader resting on the neutral color
func NewFader(duration time.Duration) *Fader {
	c := AmbientColor(engine.AmbientNeutral)
	return &Fader{
		duration: duration,
		target:   engine.AmbientNeutral,
		from:     c,
		to:       c,
	}
}

// Target starts a transition toward a's color, continuing from the current blend
func (f *Fader) Target(a engine.Ambient, now time.Time) {
	if a == f.target {
		return
	}
	f.from = f.Current(now)
	f.to = AmbientColor(a)
	f.target = a
	f.start = now
}

// Current returns the blended color at now
func (f *Fader) Current(now time.Time) colorful.Color {
	if f.duration <= 0 || f.start.IsZero() {
		return f.to
	}
	t := float64(now.Sub(f.start)) / float64(f.duration)
	switch {
	case t <= 0:
		return f.from
	case t >= 1:
		return f.to
	}
	return f.from.BlendLab(f.to, t)
}

// Done reports whether the last transition has completed
func (f *Fader) Done(now time.Time) bool {
	return f.start.IsZero() || now.Sub(f.start) >= f.duration
}
