// File: control/control_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control

import "testing"

func TestRegistryProbes(t *testing.T) {
	r := NewRegistry()
	calls := 0
	r.RegisterProbe("live", func() any {
		calls++
		return calls
	})
	r.Set("backend", "slab")

	snap := r.Snapshot()
	if snap["backend"] != "slab" {
		t.Errorf("backend = %v, want slab", snap["backend"])
	}
	if snap["live"] != 1 {
		t.Errorf("live = %v, want 1", snap["live"])
	}
	// probes are re-evaluated on every snapshot
	if snap := r.Snapshot(); snap["live"] != 2 {
		t.Errorf("live = %v, want 2", snap["live"])
	}
}

func TestRegistryProbeReplacement(t *testing.T) {
	r := NewRegistry()
	r.RegisterProbe("x", func() any { return "old" })
	r.RegisterProbe("x", func() any { return "new" })
	if got := r.Snapshot()["x"]; got != "new" {
		t.Errorf("x = %v, want new", got)
	}
}

func TestRegistryUpdated(t *testing.T) {
	r := NewRegistry()
	if !r.Updated().IsZero() {
		t.Error("fresh registry has non-zero update time")
	}
	r.Set("k", 1)
	if r.Updated().IsZero() {
		t.Error("Set did not record update time")
	}
}
