// File: core/lock/timed.go
// Package lock — timed mutex variants with bounded waits.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package lock

import (
	"time"

	"github.com/momentics/rtsync/api"
)

// TimedMutex is a non-recursive mutex supporting bounded waits.
type TimedMutex struct {
	base
}

// NewTimedMutex constructs an unlocked TimedMutex on k.
func NewTimedMutex(k api.Kernel, opts ...Option) *TimedMutex {
	m := &TimedMutex{}
	initBase(&m.base, k, opts)
	return m
}

// Lock blocks until ownership is obtained.
func (m *TimedMutex) Lock() error {
	return m.acquire(api.Forever, true)
}

// TryLock attempts ownership without blocking.
func (m *TimedMutex) TryLock() (bool, error) {
	return m.tryAcquire(api.NoWait, true)
}

// TryLockFor blocks at most d and reports whether ownership was
// obtained within the bound. Owner re-entry reports ErrDeadlock.
func (m *TimedMutex) TryLockFor(d time.Duration) (bool, error) {
	return m.tryAcquire(m.ticksFor(d), true)
}

// TryLockUntil blocks at most until deadline.
func (m *TimedMutex) TryLockUntil(deadline time.Time) (bool, error) {
	return m.tryAcquire(m.ticksFor(time.Until(deadline)), true)
}

// Unlock releases ownership.
func (m *TimedMutex) Unlock() error {
	return m.unlock()
}

// Close ends the mutex's lifecycle and returns its backing slot.
func (m *TimedMutex) Close() error { return m.close() }

// RecursiveTimedMutex combines recursion with bounded waits.
type RecursiveTimedMutex struct {
	base
}

// NewRecursiveTimedMutex constructs an unlocked RecursiveTimedMutex on k.
func NewRecursiveTimedMutex(k api.Kernel, opts ...Option) *RecursiveTimedMutex {
	m := &RecursiveTimedMutex{}
	initBase(&m.base, k, opts)
	return m
}

// Lock obtains one level of ownership, nesting for the owner.
func (m *RecursiveTimedMutex) Lock() error {
	return m.acquire(api.Forever, false)
}

// TryLock attempts one level of ownership without blocking.
func (m *RecursiveTimedMutex) TryLock() (bool, error) {
	return m.tryAcquire(api.NoWait, false)
}

// TryLockFor blocks at most d for one level of ownership.
func (m *RecursiveTimedMutex) TryLockFor(d time.Duration) (bool, error) {
	return m.tryAcquire(m.ticksFor(d), false)
}

// TryLockUntil blocks at most until deadline for one level of ownership.
func (m *RecursiveTimedMutex) TryLockUntil(deadline time.Time) (bool, error) {
	return m.tryAcquire(m.ticksFor(time.Until(deadline)), false)
}

// Unlock releases one level of ownership.
func (m *RecursiveTimedMutex) Unlock() error {
	return m.unlock()
}

// Close ends the mutex's lifecycle and returns its backing slot.
func (m *RecursiveTimedMutex) Close() error { return m.close() }

var (
	_ TimedLockable = (*TimedMutex)(nil)
	_ TimedLockable = (*RecursiveTimedMutex)(nil)
)
