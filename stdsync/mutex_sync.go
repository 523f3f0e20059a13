// File: stdsync/mutex_sync.go
// Package stdsync — kernel-backed plain mutex.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build !deadlock

package stdsync

import (
	"sync"

	"github.com/momentics/rtsync/core/lock"
)

// DeadlockEnabled is true when the deadlock detector build is active.
const DeadlockEnabled = false

// Mutex is a non-recursive mutual exclusion lock satisfying
// sync.Locker. The zero value is an unlocked mutex. Owner re-entry
// panics with ErrDeadlock instead of blocking forever.
type Mutex struct {
	once sync.Once
	m    *lock.Mutex
}

func (m *Mutex) init() {
	m.once.Do(func() { m.m = lock.NewMutex(DefaultKernel()) })
}

// Lock acquires the mutex.
func (m *Mutex) Lock() {
	m.init()
	if err := m.m.Lock(); err != nil {
		panic(err)
	}
}

// TryLock reports whether the mutex was acquired without blocking.
func (m *Mutex) TryLock() bool {
	m.init()
	ok, err := m.m.TryLock()
	if err != nil {
		panic(err)
	}
	return ok
}

// Unlock releases the mutex.
func (m *Mutex) Unlock() {
	m.init()
	if err := m.m.Unlock(); err != nil {
		panic(err)
	}
}

var _ sync.Locker = (*Mutex)(nil)
