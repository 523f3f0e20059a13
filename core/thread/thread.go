// File: core/thread/thread.go
// Package thread implements the rtsync thread handle.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A Thread owns at most one live kernel thread association and walks
// the state machine empty -> running -> joined|detached. Ownership
// transfers via Swap/MoveTo; a running handle must be joined or
// detached exactly once before it is discarded.

package thread

import (
	"log"
	"runtime"
	"sync/atomic"

	"github.com/momentics/rtsync/api"
)

const (
	stateEmpty int32 = iota
	stateRunning
	stateJoined
	stateDetached
)

// Option customizes thread creation.
type Option func(*api.SpawnOptions)

// WithStackSize requests a stack of the given size in bytes.
func WithStackSize(bytes int) Option {
	return func(o *api.SpawnOptions) { o.StackSize = bytes }
}

// WithPriority requests a kernel scheduling priority.
func WithPriority(prio int) Option {
	return func(o *api.SpawnOptions) { o.Priority = prio }
}

// WithName attaches a debugging label.
func WithName(name string) Option {
	return func(o *api.SpawnOptions) { o.Name = name }
}

// Thread is a handle to one kernel thread. The zero value is an empty
// handle. Handles are single-owner: no two handles reference the same
// live kernel thread.
type Thread struct {
	kernel api.Kernel
	kt     api.KernelThread
	state  atomic.Int32
}

// New spawns fn on a kernel thread of k and returns a running handle.
// Fails with ErrOutOfResources when the kernel's fixed stack pool is
// exhausted.
func New(k api.Kernel, fn func(), opts ...Option) (*Thread, error) {
	var so api.SpawnOptions
	for _, opt := range opts {
		opt(&so)
	}
	kt, err := k.Spawn(fn, so)
	if err != nil {
		return nil, err
	}
	t := &Thread{kernel: k, kt: kt}
	t.state.Store(stateRunning)
	// A running handle reclaimed by the collector was neither joined
	// nor detached: unrecoverable misuse, mirror a fatal abort.
	runtime.SetFinalizer(t, finalizeThread)
	return t, nil
}

func finalizeThread(t *Thread) {
	if t.state.Load() == stateRunning {
		log.Panicf("rtsync/thread: running handle discarded without join or detach (id=%d)", t.kt.ID())
	}
}

// Joinable reports whether the handle is associated with a live kernel
// thread.
func (t *Thread) Joinable() bool {
	return t.state.Load() == stateRunning
}

// Join blocks the calling thread until the target completes. Valid only
// from the running state.
func (t *Thread) Join() error {
	if !t.state.CompareAndSwap(stateRunning, stateJoined) {
		return api.ErrInvalidState
	}
	return t.kt.Join()
}

// Detach releases the join obligation; the kernel reclaims the thread
// on completion. Valid only from the running state.
func (t *Thread) Detach() error {
	if !t.state.CompareAndSwap(stateRunning, stateDetached) {
		return api.ErrInvalidState
	}
	return t.kt.Detach()
}

// ID returns the identity of the associated kernel thread, or
// NilThreadID for a handle that is not running.
func (t *Thread) ID() api.ThreadID {
	if t.state.Load() != stateRunning {
		return api.NilThreadID
	}
	return t.kt.ID()
}

// Swap exchanges the associations of two handles. Like the contract it
// mirrors, Swap is not safe against concurrent use of either handle.
func (t *Thread) Swap(o *Thread) {
	t.kernel, o.kernel = o.kernel, t.kernel
	t.kt, o.kt = o.kt, t.kt
	ts, os := t.state.Load(), o.state.Load()
	t.state.Store(os)
	o.state.Store(ts)
}

// MoveTo transfers the association into dst, leaving t empty. Moving
// into a handle that still owns a running thread would silently leak
// its join obligation; that is asserted, not tolerated.
func (t *Thread) MoveTo(dst *Thread) {
	if dst.state.Load() == stateRunning {
		log.Panicf("rtsync/thread: move target still owns a running thread (id=%d)", dst.kt.ID())
	}
	dst.kernel = t.kernel
	dst.kt = t.kt
	dst.state.Store(t.state.Load())
	t.kt = nil
	t.state.Store(stateEmpty)
}
