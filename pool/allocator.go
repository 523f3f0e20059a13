// File: pool/allocator.go
// Package pool — allocation backend contract and the static backend.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/rtsync/api"

// Allocator provisions backing slots for primitive construction. The
// backend only intercepts object lifetime; it never participates in
// the locking protocol itself.
type Allocator interface {
	// Acquire reserves one slot, failing with ErrOutOfResources when
	// the backend cannot supply backing storage. Never blocks.
	Acquire() error

	// Release returns one previously acquired slot.
	Release()

	// Stats reports slot usage.
	Stats() api.PoolStats
}

// New returns the allocator for the selected backend. capacity is only
// meaningful for AllocSlab.
func New(backend api.AllocBackend, capacity int) Allocator {
	switch backend {
	case api.AllocHeap:
		return NewHeap()
	case api.AllocSlab:
		return NewSlab(capacity)
	default:
		return NewStatic()
	}
}

// staticAllocator models caller-supplied storage: no dynamic
// allocation, no accounting, cannot fail for resource reasons.
type staticAllocator struct{}

// NewStatic returns the static backend.
func NewStatic() Allocator { return staticAllocator{} }

func (staticAllocator) Acquire() error { return nil }
func (staticAllocator) Release()       {}
func (staticAllocator) Stats() api.PoolStats {
	return api.PoolStats{}
}
