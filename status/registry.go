// Package status holds session counters shared between the game loop and the shell
package status

import "sync/atomic"

// Well-known metric keys written by the game loop
const (
	KeyTicks = "ticks"
	KeyMoves = "moves"
	KeyFood  = "food"
	KeyPhase = "phase"
)

// Registry is the central metrics facade
// The loop caches pointers during init and writes directly to the atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}

// Snapshot returns every metric rendered as text, keyed by name
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = formatInt(v.Load())
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		out[key] = v.Load()
	})
	return out
}
