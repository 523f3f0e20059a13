// File: pool/heap.go
// Package pool — unbounded heap backend.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/momentics/rtsync/api"
)

// heapAllocator is the unbounded dynamic backend. It only fails if the
// underlying allocator is exhausted, which on a hosted runtime
// surfaces as an out-of-memory abort rather than an error here; the
// allocator itself never rejects.
type heapAllocator struct {
	totalAlloc *xsync.Counter
	totalFree  *xsync.Counter
}

// NewHeap returns the heap backend.
func NewHeap() Allocator {
	return &heapAllocator{
		totalAlloc: xsync.NewCounter(),
		totalFree:  xsync.NewCounter(),
	}
}

func (h *heapAllocator) Acquire() error {
	h.totalAlloc.Inc()
	return nil
}

func (h *heapAllocator) Release() {
	h.totalFree.Inc()
}

func (h *heapAllocator) Stats() api.PoolStats {
	alloc := h.totalAlloc.Value()
	free := h.totalFree.Value()
	return api.PoolStats{
		TotalAlloc: alloc,
		TotalFree:  free,
		Live:       alloc - free,
	}
}
