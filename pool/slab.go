// File: pool/slab.go
// Package pool — fixed-capacity slab backend.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// One slab is shared across all mutex variants of a facade instance:
// slots are sized by count, not by type, so the family shares a single
// hard ceiling fixed at construction time. Acquisition is non-blocking;
// exhaustion reports ErrOutOfResources immediately.

package pool

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/momentics/rtsync/api"
)

const defaultSlabCapacity = 64

type slabAllocator struct {
	capacity   int64
	live       atomic.Int64
	totalAlloc *xsync.Counter
	totalFree  *xsync.Counter
}

// NewSlab returns a slab backend with the given slot capacity.
func NewSlab(capacity int) Allocator {
	if capacity <= 0 {
		capacity = defaultSlabCapacity
	}
	return &slabAllocator{
		capacity:   int64(capacity),
		totalAlloc: xsync.NewCounter(),
		totalFree:  xsync.NewCounter(),
	}
}

func (s *slabAllocator) Acquire() error {
	for {
		cur := s.live.Load()
		if cur >= s.capacity {
			return api.ErrOutOfResources
		}
		if s.live.CompareAndSwap(cur, cur+1) {
			s.totalAlloc.Inc()
			return nil
		}
	}
}

func (s *slabAllocator) Release() {
	if s.live.Add(-1) < 0 {
		// release without acquire; clamp rather than corrupt
		s.live.Add(1)
		return
	}
	s.totalFree.Inc()
}

func (s *slabAllocator) Stats() api.PoolStats {
	return api.PoolStats{
		Capacity:   int(s.capacity),
		Live:       s.live.Load(),
		TotalAlloc: s.totalAlloc.Value(),
		TotalFree:  s.totalFree.Value(),
	}
}
