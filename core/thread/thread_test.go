// File: core/thread/thread_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package thread

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/momentics/rtsync/api"
	"github.com/momentics/rtsync/kernel/native"
)

func TestEmptyHandle(t *testing.T) {
	var th Thread
	if th.Joinable() {
		t.Error("zero-value handle reports joinable")
	}
	if got := th.ID(); got != api.NilThreadID {
		t.Errorf("empty handle ID = %d, want NilThreadID", got)
	}
	if err := th.Join(); !errors.Is(err, api.ErrInvalidState) {
		t.Errorf("Join on empty handle error = %v, want ErrInvalidState", err)
	}
	if err := th.Detach(); !errors.Is(err, api.ErrInvalidState) {
		t.Errorf("Detach on empty handle error = %v, want ErrInvalidState", err)
	}
}

func TestSpawnAndJoin(t *testing.T) {
	k := native.New()
	var finished atomic.Bool
	th, err := New(k, func() {
		time.Sleep(30 * time.Millisecond)
		finished.Store(true)
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !th.Joinable() {
		t.Error("running handle not joinable")
	}
	if !th.ID().Valid() {
		t.Error("running handle has no identity")
	}

	if err := th.Join(); err != nil {
		t.Fatalf("Join: %v", err)
	}
	if !finished.Load() {
		t.Error("Join returned before the callable finished")
	}
	if th.Joinable() {
		t.Error("joined handle still joinable")
	}
	if got := th.ID(); got != api.NilThreadID {
		t.Errorf("joined handle ID = %d, want NilThreadID", got)
	}

	// terminal state: second join or detach is misuse
	if err := th.Join(); !errors.Is(err, api.ErrInvalidState) {
		t.Errorf("second Join error = %v, want ErrInvalidState", err)
	}
	if err := th.Detach(); !errors.Is(err, api.ErrInvalidState) {
		t.Errorf("Detach after Join error = %v, want ErrInvalidState", err)
	}
}

func TestDetach(t *testing.T) {
	k := native.New()
	done := make(chan struct{})
	th, err := New(k, func() { close(done) })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := th.Detach(); err != nil {
		t.Fatalf("Detach: %v", err)
	}
	if th.Joinable() {
		t.Error("detached handle still joinable")
	}
	if err := th.Join(); !errors.Is(err, api.ErrInvalidState) {
		t.Errorf("Join after Detach error = %v, want ErrInvalidState", err)
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("detached thread never ran")
	}
}

func TestSpawnExhaustion(t *testing.T) {
	k := native.New(native.WithMaxThreads(1))
	release := make(chan struct{})
	th, err := New(k, func() { <-release })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := New(k, func() {}); !errors.Is(err, api.ErrOutOfResources) {
		t.Errorf("over-capacity New error = %v, want ErrOutOfResources", err)
	}
	close(release)
	if err := th.Join(); err != nil {
		t.Fatalf("Join: %v", err)
	}
	th2, err := New(k, func() {})
	if err != nil {
		t.Fatalf("New after reclaim: %v", err)
	}
	th2.Join()
}

func TestSwap(t *testing.T) {
	k := native.New()
	release := make(chan struct{})
	running, err := New(k, func() { <-release })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	id := running.ID()

	var empty Thread
	running.Swap(&empty)
	if running.Joinable() {
		t.Error("source still joinable after swap")
	}
	if !empty.Joinable() || empty.ID() != id {
		t.Error("destination did not receive the association")
	}
	close(release)
	if err := empty.Join(); err != nil {
		t.Fatalf("Join via swapped handle: %v", err)
	}
}

func TestMoveTo(t *testing.T) {
	k := native.New()
	release := make(chan struct{})
	src, err := New(k, func() { <-release })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	id := src.ID()

	var dst Thread
	src.MoveTo(&dst)
	if src.Joinable() {
		t.Error("moved-from handle still joinable")
	}
	if src.ID() != api.NilThreadID {
		t.Error("moved-from handle retains identity")
	}
	if !dst.Joinable() || dst.ID() != id {
		t.Error("moved-to handle did not receive the association")
	}
	close(release)
	dst.Join()
}

func TestMoveOntoRunningPanics(t *testing.T) {
	k := native.New()
	releaseA := make(chan struct{})
	releaseB := make(chan struct{})
	a, err := New(k, func() { <-releaseA })
	if err != nil {
		t.Fatalf("New a: %v", err)
	}
	b, err := New(k, func() { <-releaseB })
	if err != nil {
		t.Fatalf("New b: %v", err)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("MoveTo onto a running handle did not panic")
			}
		}()
		a.MoveTo(b)
	}()

	close(releaseA)
	close(releaseB)
	a.Join()
	b.Join()
}

func TestThisThread(t *testing.T) {
	k := native.New(native.WithMaxThreads(7))
	if HardwareConcurrency(k) != 7 {
		t.Errorf("HardwareConcurrency = %d, want 7", HardwareConcurrency(k))
	}

	main := CurrentID(k)
	if !main.Valid() {
		t.Fatal("current identity invalid")
	}

	var spawned api.ThreadID
	th, err := New(k, func() { spawned = CurrentID(k) })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	th.Join()
	if spawned == main || !spawned.Valid() {
		t.Errorf("spawned identity %d not distinct from main %d", spawned, main)
	}

	Yield(k)

	start := time.Now()
	SleepFor(k, 25*time.Millisecond)
	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Errorf("SleepFor(25ms) took %v", elapsed)
	}

	start = time.Now()
	SleepUntil(k, time.Now().Add(20*time.Millisecond))
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("SleepUntil(+20ms) took %v", elapsed)
	}
	SleepUntil(k, time.Now().Add(-time.Second)) // past deadline: no sleep
}

func TestHandleIdentityMatchesThread(t *testing.T) {
	k := native.New()
	ids := make(chan api.ThreadID, 1)
	th, err := New(k, func() { ids <- CurrentID(k) })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	handleID := th.ID()
	inner := <-ids
	if handleID != inner {
		t.Errorf("handle ID %d != thread's own ID %d", handleID, inner)
	}
	th.Join()
}
