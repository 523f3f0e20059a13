// File: core/lock/lock.go
// Package lock implements the shared acquire machinery of the mutex family.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Deadlock self-detection runs above the kernel call: the kernel's
// counted-ownership primitive cannot distinguish owner re-entry from
// contention, so without this check a non-recursive Lock by the owner
// would nest silently and a TryLock would return an ambiguous busy
// signal. The two reads (hold count, then owner) are stable whenever
// the check can fire, because only the calling thread mutates the
// owner field while the calling thread owns the mutex.

package lock

import (
	"errors"
	"time"

	"github.com/momentics/rtsync/api"
)

// Lockable is the error-returning mutual exclusion contract shared by
// all variants.
type Lockable interface {
	Lock() error
	TryLock() (bool, error)
	Unlock() error
}

// TimedLockable adds bounded waits to Lockable.
type TimedLockable interface {
	Lockable
	TryLockFor(d time.Duration) (bool, error)
	TryLockUntil(deadline time.Time) (bool, error)
}

// noCopy triggers `go vet -copylocks` on value copies of a mutex.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Option customizes mutex construction.
type Option func(*base)

// WithReleaser attaches a hook invoked once on Close, used by slab
// allocation backends to return the backing slot.
func WithReleaser(fn func()) Option {
	return func(b *base) { b.release = fn }
}

// base carries the state common to all four variants. Identity is tied
// to the embedded kernel object's address: not copyable, not movable.
type base struct {
	noCopy  noCopy
	kernel  api.Kernel
	obj     api.KernelMutex
	release func()
}

// initBase initializes in place; base is never passed by value once
// the kernel object exists.
func initBase(b *base, k api.Kernel, opts []Option) {
	b.kernel = k
	b.obj = k.InitMutex()
	for _, opt := range opts {
		opt(b)
	}
}

// ownedByCaller reports whether the calling thread currently holds the
// kernel object.
func (b *base) ownedByCaller() bool {
	return b.obj.HoldCount() > 0 && b.obj.Owner() == b.kernel.Current()
}

// acquire is the single lock path. checkOwner selects the non-recursive
// trait: owner re-entry is reported as ErrDeadlock before any kernel
// wait is issued, on blocking and polling paths alike.
func (b *base) acquire(timeout api.Ticks, checkOwner bool) error {
	if checkOwner && b.ownedByCaller() {
		return api.ErrDeadlock
	}
	return b.obj.Acquire(timeout)
}

// tryAcquire maps a kernel timeout onto the boolean try contract.
func (b *base) tryAcquire(timeout api.Ticks, checkOwner bool) (bool, error) {
	err := b.acquire(timeout, checkOwner)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, api.ErrTimeout):
		return false, nil
	default:
		return false, err
	}
}

// unlock releases one level of ownership. Releasing without ownership
// surfaces the kernel's state error; the hold count is never corrupted.
func (b *base) unlock() error {
	return b.obj.Release()
}

// ticksFor converts a relative bound to kernel ticks, rounding up so
// the caller never waits less than requested.
func (b *base) ticksFor(d time.Duration) api.Ticks {
	return api.TicksFor(d, b.kernel.TickRate())
}

// close validates the destruction contract and returns the backing
// slot. Closing a held mutex is misuse.
func (b *base) close() error {
	if b.obj.HoldCount() > 0 {
		return api.ErrInvalidState
	}
	if b.release != nil {
		b.release()
		b.release = nil
	}
	return nil
}

// NativeHandle exposes the underlying kernel object.
func (b *base) NativeHandle() api.KernelMutex { return b.obj }
