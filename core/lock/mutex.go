// File: core/lock/mutex.go
// Package lock — plain and recursive mutex variants.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package lock

import "github.com/momentics/rtsync/api"

// Mutex is a non-recursive mutual exclusion lock. Re-entry by the
// owning thread fails with ErrDeadlock instead of blocking forever.
type Mutex struct {
	base
}

// NewMutex constructs an unlocked Mutex on k. Construction never blocks.
func NewMutex(k api.Kernel, opts ...Option) *Mutex {
	m := &Mutex{}
	initBase(&m.base, k, opts)
	return m
}

// Lock blocks the calling thread until ownership is obtained.
func (m *Mutex) Lock() error {
	return m.acquire(api.Forever, true)
}

// TryLock attempts to obtain ownership without blocking. Re-entry by
// the current owner reports ErrDeadlock, not a false busy result.
func (m *Mutex) TryLock() (bool, error) {
	return m.tryAcquire(api.NoWait, true)
}

// Unlock releases ownership.
func (m *Mutex) Unlock() error {
	return m.unlock()
}

// Close ends the mutex's lifecycle and returns its backing slot.
// The mutex must be unlocked.
func (m *Mutex) Close() error { return m.close() }

// RecursiveMutex may be locked repeatedly by the owning thread; it is
// released only after an equal number of Unlock calls. Self re-entry
// never raises a deadlock error: recursion is the point.
type RecursiveMutex struct {
	base
}

// NewRecursiveMutex constructs an unlocked RecursiveMutex on k.
func NewRecursiveMutex(k api.Kernel, opts ...Option) *RecursiveMutex {
	m := &RecursiveMutex{}
	initBase(&m.base, k, opts)
	return m
}

// Lock obtains one level of ownership, nesting if already held by the
// calling thread.
func (m *RecursiveMutex) Lock() error {
	return m.acquire(api.Forever, false)
}

// TryLock attempts one level of ownership without blocking.
func (m *RecursiveMutex) TryLock() (bool, error) {
	return m.tryAcquire(api.NoWait, false)
}

// Unlock releases one level of ownership.
func (m *RecursiveMutex) Unlock() error {
	return m.unlock()
}

// Close ends the mutex's lifecycle and returns its backing slot.
func (m *RecursiveMutex) Close() error { return m.close() }

var (
	_ Lockable = (*Mutex)(nil)
	_ Lockable = (*RecursiveMutex)(nil)
)
