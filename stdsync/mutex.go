// File: stdsync/mutex.go
// Package stdsync — recursive and timed mutexes bound to the default kernel.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package stdsync

import (
	"sync"
	"time"

	"github.com/momentics/rtsync/core/lock"
)

// RecursiveMutex may be locked repeatedly by the owning thread; it is
// released after an equal number of Unlock calls. The zero value is an
// unlocked mutex.
type RecursiveMutex struct {
	once sync.Once
	m    *lock.RecursiveMutex
}

func (m *RecursiveMutex) init() {
	m.once.Do(func() { m.m = lock.NewRecursiveMutex(DefaultKernel()) })
}

// Lock acquires one level of ownership.
func (m *RecursiveMutex) Lock() {
	m.init()
	if err := m.m.Lock(); err != nil {
		panic(err)
	}
}

// TryLock attempts one level of ownership without blocking.
func (m *RecursiveMutex) TryLock() bool {
	m.init()
	ok, err := m.m.TryLock()
	if err != nil {
		panic(err)
	}
	return ok
}

// Unlock releases one level of ownership.
func (m *RecursiveMutex) Unlock() {
	m.init()
	if err := m.m.Unlock(); err != nil {
		panic(err)
	}
}

// TimedMutex is a non-recursive mutex with bounded waits. The zero
// value is an unlocked mutex.
type TimedMutex struct {
	once sync.Once
	m    *lock.TimedMutex
}

func (m *TimedMutex) init() {
	m.once.Do(func() { m.m = lock.NewTimedMutex(DefaultKernel()) })
}

// Lock acquires the mutex.
func (m *TimedMutex) Lock() {
	m.init()
	if err := m.m.Lock(); err != nil {
		panic(err)
	}
}

// TryLock attempts acquisition without blocking.
func (m *TimedMutex) TryLock() bool {
	m.init()
	ok, err := m.m.TryLock()
	if err != nil {
		panic(err)
	}
	return ok
}

// TryLockFor blocks at most d and reports whether the mutex was acquired.
func (m *TimedMutex) TryLockFor(d time.Duration) bool {
	m.init()
	ok, err := m.m.TryLockFor(d)
	if err != nil {
		panic(err)
	}
	return ok
}

// TryLockUntil blocks at most until the deadline.
func (m *TimedMutex) TryLockUntil(deadline time.Time) bool {
	m.init()
	ok, err := m.m.TryLockUntil(deadline)
	if err != nil {
		panic(err)
	}
	return ok
}

// Unlock releases the mutex.
func (m *TimedMutex) Unlock() {
	m.init()
	if err := m.m.Unlock(); err != nil {
		panic(err)
	}
}

// RecursiveTimedMutex combines recursion with bounded waits. The zero
// value is an unlocked mutex.
type RecursiveTimedMutex struct {
	once sync.Once
	m    *lock.RecursiveTimedMutex
}

func (m *RecursiveTimedMutex) init() {
	m.once.Do(func() { m.m = lock.NewRecursiveTimedMutex(DefaultKernel()) })
}

// Lock acquires one level of ownership.
func (m *RecursiveTimedMutex) Lock() {
	m.init()
	if err := m.m.Lock(); err != nil {
		panic(err)
	}
}

// TryLock attempts one level of ownership without blocking.
func (m *RecursiveTimedMutex) TryLock() bool {
	m.init()
	ok, err := m.m.TryLock()
	if err != nil {
		panic(err)
	}
	return ok
}

// TryLockFor blocks at most d for one level of ownership.
func (m *RecursiveTimedMutex) TryLockFor(d time.Duration) bool {
	m.init()
	ok, err := m.m.TryLockFor(d)
	if err != nil {
		panic(err)
	}
	return ok
}

// TryLockUntil blocks at most until the deadline.
func (m *RecursiveTimedMutex) TryLockUntil(deadline time.Time) bool {
	m.init()
	ok, err := m.m.TryLockUntil(deadline)
	if err != nil {
		panic(err)
	}
	return ok
}

// Unlock releases one level of ownership.
func (m *RecursiveTimedMutex) Unlock() {
	m.init()
	if err := m.m.Unlock(); err != nil {
		panic(err)
	}
}

var (
	_ sync.Locker = (*RecursiveMutex)(nil)
	_ sync.Locker = (*TimedMutex)(nil)
	_ sync.Locker = (*RecursiveTimedMutex)(nil)
)
