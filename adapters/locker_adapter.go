// File: adapters/locker_adapter.go
// Package adapters bridges rtsync primitives to standard-library contracts.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The mutex family reports errors as values; the conventional Locker
// contract has no error channel, so this adapter substitutes the
// abort-style propagation the mirrored API uses in environments without
// recoverable errors. A deadlock or kernel rejection panics: observable
// by the caller, never a silent no-op.

package adapters

import (
	"context"
	"time"

	"github.com/momentics/rtsync/core/lock"
)

// LockerAdapter exposes any rtsync mutex as a sync.Locker.
type LockerAdapter struct {
	M lock.Lockable
}

// NewLocker wraps m for use with lock-guard style utilities.
func NewLocker(m lock.Lockable) *LockerAdapter {
	return &LockerAdapter{M: m}
}

// Lock acquires the mutex, panicking on error.
func (a *LockerAdapter) Lock() {
	if err := a.M.Lock(); err != nil {
		panic(err)
	}
}

// Unlock releases the mutex, panicking on error.
func (a *LockerAdapter) Unlock() {
	if err := a.M.Unlock(); err != nil {
		panic(err)
	}
}

// CtxLocker adapts a timed mutex to context-bounded acquisition.
type CtxLocker struct {
	M lock.TimedLockable

	// PollInterval bounds each wait slice while watching ctx; defaults
	// to 10ms.
	PollInterval time.Duration
}

// NewCtxLocker wraps a timed mutex for context-aware locking.
func NewCtxLocker(m lock.TimedLockable) *CtxLocker {
	return &CtxLocker{M: m}
}

// Lock acquires the mutex or gives up when ctx is done. The underlying
// kernel wait has no cancellation, so the wait is sliced into bounded
// attempts between context checks.
func (c *CtxLocker) Lock(ctx context.Context) error {
	slice := c.PollInterval
	if slice <= 0 {
		slice = 10 * time.Millisecond
	}
	for {
		if deadline, ok := ctx.Deadline(); ok {
			if remain := time.Until(deadline); remain < slice {
				slice = remain
			}
		}
		ok, err := c.M.TryLockFor(slice)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}

// Unlock releases the mutex.
func (c *CtxLocker) Unlock() error {
	return c.M.Unlock()
}
