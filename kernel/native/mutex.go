// File: kernel/native/mutex.go
// Package native — counted-ownership mutex object with FIFO hand-off.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The object lock (mu) orders every state transition. Release hands
// ownership directly to the first live waiter before signalling it, so
// a wakeup can never be missed and a timed-out waiter that raced its
// grant observes the grant under mu and keeps the lock.

package native

import (
	"sync"
	"time"

	"github.com/eapache/queue"

	"github.com/momentics/rtsync/api"
)

// InitMutex allocates and initializes an unlocked mutex object.
func (k *Kernel) InitMutex() api.KernelMutex {
	return &nativeMutex{
		k:       k,
		waiters: queue.New(),
	}
}

type nativeMutex struct {
	k       *Kernel
	mu      sync.Mutex
	owner   api.ThreadID
	count   uint32
	waiters *queue.Queue // FIFO of *waiter
}

// waiter is one blocked Acquire. All fields other than grant are
// guarded by the mutex object's mu.
type waiter struct {
	id        api.ThreadID
	grant     chan struct{}
	granted   bool
	abandoned bool
}

// Acquire obtains one level of ownership within timeout ticks.
func (m *nativeMutex) Acquire(timeout api.Ticks) error {
	cur := m.k.Current()

	m.mu.Lock()
	if m.count > 0 && m.owner == cur {
		// counted ownership: owner re-entry nests
		m.count++
		m.mu.Unlock()
		return nil
	}
	if m.count == 0 {
		m.owner = cur
		m.count = 1
		m.mu.Unlock()
		return nil
	}
	if timeout == api.NoWait {
		m.mu.Unlock()
		return api.ErrTimeout
	}
	w := &waiter{id: cur, grant: make(chan struct{})}
	m.waiters.Add(w)
	m.mu.Unlock()

	if timeout == api.Forever {
		<-w.grant
		return nil
	}

	timer := time.NewTimer(m.k.tickSpan(timeout))
	defer timer.Stop()
	select {
	case <-w.grant:
		return nil
	case <-timer.C:
		m.mu.Lock()
		if w.granted {
			// ownership arrived at the boundary; keep it
			m.mu.Unlock()
			return nil
		}
		w.abandoned = true
		m.mu.Unlock()
		return api.ErrTimeout
	}
}

// Release drops one level of ownership, handing the lock to the first
// live waiter when the count reaches zero.
func (m *nativeMutex) Release() error {
	cur := m.k.Current()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.count == 0 || m.owner != cur {
		return api.ErrInvalidState
	}
	m.count--
	if m.count > 0 {
		return nil
	}
	for m.waiters.Length() > 0 {
		w := m.waiters.Remove().(*waiter)
		if w.abandoned {
			continue
		}
		m.owner = w.id
		m.count = 1
		w.granted = true
		close(w.grant)
		return nil
	}
	m.owner = api.NilThreadID
	return nil
}

// Owner returns the current owner identity, or NilThreadID if unlocked.
func (m *nativeMutex) Owner() api.ThreadID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.owner
}

// HoldCount returns the current recursion depth.
func (m *nativeMutex) HoldCount() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

var _ api.KernelMutex = (*nativeMutex)(nil)
