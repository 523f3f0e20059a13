// File: core/concurrency/executor_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/momentics/rtsync/api"
	"github.com/momentics/rtsync/kernel/native"
)

func TestExecutorRunsTasks(t *testing.T) {
	k := native.New()
	e, err := NewExecutor(k, 2, api.SpawnOptions{})
	if err != nil {
		t.Fatalf("NewExecutor: %v", err)
	}
	defer e.Close()

	var done atomic.Int64
	const tasks = 100
	for i := 0; i < tasks; i++ {
		if err := e.Submit(func() { done.Add(1) }); err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
	}
	deadline := time.After(5 * time.Second)
	for done.Load() < tasks {
		select {
		case <-deadline:
			t.Fatalf("only %d of %d tasks ran", done.Load(), tasks)
		default:
			time.Sleep(time.Millisecond)
		}
	}
	s := e.Stats()
	if s["num_workers"] != 2 {
		t.Errorf("num_workers = %d, want 2", s["num_workers"])
	}
}

func TestExecutorSurvivesPanic(t *testing.T) {
	k := native.New()
	e, err := NewExecutor(k, 1, api.SpawnOptions{})
	if err != nil {
		t.Fatalf("NewExecutor: %v", err)
	}
	defer e.Close()

	if err := e.Submit(func() { panic("boom") }); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	var ran atomic.Bool
	if err := e.Submit(func() { ran.Store(true) }); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	deadline := time.After(5 * time.Second)
	for !ran.Load() {
		select {
		case <-deadline:
			t.Fatal("worker did not survive task panic")
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func TestExecutorClose(t *testing.T) {
	k := native.New()
	e, err := NewExecutor(k, 2, api.SpawnOptions{})
	if err != nil {
		t.Fatalf("NewExecutor: %v", err)
	}
	e.Close()
	e.Close() // idempotent
	if err := e.Submit(func() {}); !errors.Is(err, ErrExecutorClosed) {
		t.Errorf("Submit after Close error = %v, want ErrExecutorClosed", err)
	}
	// worker threads are joined: kernel slots are free again
	if got := k.Stats().Running; got != 0 {
		t.Errorf("running threads after Close = %d, want 0", got)
	}
}

func TestExecutorCapacityRollback(t *testing.T) {
	k := native.New(native.WithMaxThreads(2))
	if _, err := NewExecutor(k, 4, api.SpawnOptions{}); !errors.Is(err, api.ErrOutOfResources) {
		t.Fatalf("NewExecutor error = %v, want ErrOutOfResources", err)
	}
	// partially spawned workers were rolled back
	deadline := time.After(5 * time.Second)
	for k.Stats().Running != 0 {
		select {
		case <-deadline:
			t.Fatalf("rollback left %d workers running", k.Stats().Running)
		default:
			time.Sleep(time.Millisecond)
		}
	}
}
