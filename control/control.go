// File: control/control.go
// Author: momentics <momentics@gmail.com>
//
// Runtime inspection for rtsync: named probe registry plus a metrics
// snapshot map. The facade registers probes for allocator occupancy,
// kernel thread-table usage and executor throughput; embedders may add
// their own.

package control

import (
	"sync"
	"time"
)

// Probe supplies one point-in-time observation.
type Probe func() any

// Registry holds named probes and ad-hoc metrics.
type Registry struct {
	mu      sync.RWMutex
	probes  map[string]Probe
	metrics map[string]any
	updated time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		probes:  make(map[string]Probe),
		metrics: make(map[string]any),
	}
}

// RegisterProbe inserts a named probe, replacing any previous one under
// the same name.
func (r *Registry) RegisterProbe(name string, p Probe) {
	r.mu.Lock()
	r.probes[name] = p
	r.mu.Unlock()
}

// Set records an ad-hoc metric value.
func (r *Registry) Set(key string, value any) {
	r.mu.Lock()
	r.metrics[key] = value
	r.updated = time.Now()
	r.mu.Unlock()
}

// Snapshot evaluates all probes and merges them with stored metrics.
func (r *Registry) Snapshot() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]any, len(r.probes)+len(r.metrics))
	for k, v := range r.metrics {
		out[k] = v
	}
	for k, p := range r.probes {
		out[k] = p()
	}
	return out
}

// Updated returns the time of the last Set call.
func (r *Registry) Updated() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.updated
}
