// File: core/lock/timed_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package lock

import (
	"errors"
	"testing"
	"time"

	"github.com/momentics/rtsync/api"
	"github.com/momentics/rtsync/kernel/native"
)

// holdLock locks m on another thread and returns channels to observe
// and release the hold.
func holdLock(t *testing.T, m Lockable) (release chan struct{}, done chan struct{}) {
	t.Helper()
	locked := make(chan struct{})
	release = make(chan struct{})
	done = make(chan struct{})
	go func() {
		defer close(done)
		if err := m.Lock(); err != nil {
			t.Errorf("holder Lock: %v", err)
			return
		}
		close(locked)
		<-release
		if err := m.Unlock(); err != nil {
			t.Errorf("holder Unlock: %v", err)
		}
	}()
	<-locked
	return release, done
}

func TestTimedMutexTryLockForContended(t *testing.T) {
	m := NewTimedMutex(native.New())
	release, done := holdLock(t, m)

	const bound = 50 * time.Millisecond
	start := time.Now()
	ok, err := m.TryLockFor(bound)
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("TryLockFor: %v", err)
	}
	if ok {
		t.Fatal("TryLockFor succeeded while another thread held the lock")
	}
	if elapsed < bound {
		t.Errorf("TryLockFor returned after %v, want >= %v", elapsed, bound)
	}
	if elapsed > bound+time.Second {
		t.Errorf("TryLockFor overshot: %v", elapsed)
	}

	close(release)
	<-done
	ok, err = m.TryLockFor(bound)
	if err != nil || !ok {
		t.Fatalf("TryLockFor after release = (%v, %v), want (true, nil)", ok, err)
	}
	m.Unlock()
}

func TestTimedMutexTryLockForUncontended(t *testing.T) {
	m := NewTimedMutex(native.New())
	start := time.Now()
	ok, err := m.TryLockFor(time.Second)
	if err != nil || !ok {
		t.Fatalf("TryLockFor = (%v, %v), want (true, nil)", ok, err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("uncontended TryLockFor took %v", elapsed)
	}
	m.Unlock()
}

func TestTimedMutexTryLockUntil(t *testing.T) {
	m := NewTimedMutex(native.New())
	release, done := holdLock(t, m)

	deadline := time.Now().Add(40 * time.Millisecond)
	ok, err := m.TryLockUntil(deadline)
	if err != nil {
		t.Fatalf("TryLockUntil: %v", err)
	}
	if ok {
		t.Fatal("TryLockUntil succeeded while held")
	}
	if remaining := time.Until(deadline); remaining > 5*time.Millisecond {
		t.Errorf("TryLockUntil returned %v before the deadline", remaining)
	}

	// past deadline degrades to a poll
	ok, err = m.TryLockUntil(time.Now().Add(-time.Second))
	if err != nil || ok {
		t.Errorf("past-deadline TryLockUntil = (%v, %v), want (false, nil)", ok, err)
	}

	close(release)
	<-done
}

func TestTimedMutexSelfDeadlock(t *testing.T) {
	m := NewTimedMutex(native.New())
	if err := m.Lock(); err != nil {
		t.Fatalf("Lock: %v", err)
	}
	if err := m.Lock(); !errors.Is(err, api.ErrDeadlock) {
		t.Errorf("re-entrant Lock error = %v, want ErrDeadlock", err)
	}
	if _, err := m.TryLockFor(10 * time.Millisecond); !errors.Is(err, api.ErrDeadlock) {
		t.Errorf("re-entrant TryLockFor error = %v, want ErrDeadlock", err)
	}
	if _, err := m.TryLockUntil(time.Now().Add(10 * time.Millisecond)); !errors.Is(err, api.ErrDeadlock) {
		t.Errorf("re-entrant TryLockUntil error = %v, want ErrDeadlock", err)
	}
	m.Unlock()
}

func TestRecursiveTimedMutexSelfReentry(t *testing.T) {
	// the recursive timed variant must never report a deadlock to its
	// own owner, on any path
	m := NewRecursiveTimedMutex(native.New())
	if err := m.Lock(); err != nil {
		t.Fatalf("Lock: %v", err)
	}
	if ok, err := m.TryLock(); err != nil || !ok {
		t.Fatalf("TryLock = (%v, %v), want (true, nil)", ok, err)
	}
	if ok, err := m.TryLockFor(10 * time.Millisecond); err != nil || !ok {
		t.Fatalf("TryLockFor = (%v, %v), want (true, nil)", ok, err)
	}
	if ok, err := m.TryLockUntil(time.Now().Add(10 * time.Millisecond)); err != nil || !ok {
		t.Fatalf("TryLockUntil = (%v, %v), want (true, nil)", ok, err)
	}
	for i := 0; i < 4; i++ {
		if err := m.Unlock(); err != nil {
			t.Fatalf("Unlock %d: %v", i, err)
		}
	}
}

func TestRecursiveTimedMutexBoundedContention(t *testing.T) {
	m := NewRecursiveTimedMutex(native.New())
	release, done := holdLock(t, m)

	start := time.Now()
	ok, err := m.TryLockFor(30 * time.Millisecond)
	if err != nil {
		t.Fatalf("TryLockFor: %v", err)
	}
	if ok {
		t.Fatal("TryLockFor succeeded while held by another thread")
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("bounded wait returned after %v, want >= 30ms", elapsed)
	}
	close(release)
	<-done
}
