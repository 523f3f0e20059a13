// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations, DTOs, and constants.

package api

// AllocBackend selects how backing objects for mutexes and threads are
// provisioned. The choice is made once per facade instance and applies
// uniformly to every primitive it constructs.
type AllocBackend int

const (
	// AllocStatic: caller-supplied or value storage; construction
	// cannot fail for resource reasons.
	AllocStatic AllocBackend = iota
	// AllocHeap: unbounded dynamic allocation.
	AllocHeap
	// AllocSlab: fixed-capacity slot pool; construction fails with
	// ErrOutOfResources once the pool is exhausted.
	AllocSlab
)

func (b AllocBackend) String() string {
	switch b {
	case AllocStatic:
		return "static"
	case AllocHeap:
		return "heap"
	case AllocSlab:
		return "slab"
	default:
		return "unknown"
	}
}

// PoolStats is a point-in-time snapshot of an allocator's slot usage.
type PoolStats struct {
	Capacity   int   // 0 means unbounded
	Live       int64 // objects currently allocated
	TotalAlloc int64
	TotalFree  int64
	Recycled   int64 // allocations served from the freelist
}

// ThreadStats reports the kernel's thread-table occupancy.
type ThreadStats struct {
	MaxThreads int
	Running    int
	Spawned    int64
	Completed  int64
}
