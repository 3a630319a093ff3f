package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the engine and read by the stats overlay
const (
	KeyTicks         = "engine.ticks"
	KeyTickMicros    = "engine.tick_us"
	KeyFrames        = "match.frames"
	KeyPickups       = "match.pickups"
	KeyCoinsLive     = "match.coins"
	KeySpawnDefault  = "spawn.default"
	KeySpawnSpeed    = "spawn.speed"
	KeySpawnSlow     = "spawn.slow"
	KeyMatchID       = "match.id"
	KeyEventsDropped = "events.dropped"
	KeySpectators    = "spectate.clients"
)

// Registry is the central metrics facade
// Systems cache pointers during init; update loops write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Lines formats every metric as key=value, ints then floats then strings, each sorted by key
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	return lines
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
