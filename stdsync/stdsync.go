// File: stdsync/stdsync.go
// Package stdsync — default kernel binding and this-thread facilities.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package stdsync

import (
	"sync/atomic"
	"time"

	"github.com/momentics/rtsync/api"
	"github.com/momentics/rtsync/core/thread"
	"github.com/momentics/rtsync/kernel/native"
)

var defaultKernel atomic.Pointer[kernelBox]

type kernelBox struct{ k api.Kernel }

// DefaultKernel returns the kernel all stdsync primitives are bound to,
// initializing the built-in native kernel on first use.
func DefaultKernel() api.Kernel {
	if b := defaultKernel.Load(); b != nil {
		return b.k
	}
	defaultKernel.CompareAndSwap(nil, &kernelBox{k: native.New()})
	return defaultKernel.Load().k
}

// SetDefaultKernel installs a host kernel adapter. Must be called
// before any stdsync primitive is used; later calls are ignored.
func SetDefaultKernel(k api.Kernel) {
	defaultKernel.CompareAndSwap(nil, &kernelBox{k: k})
}

// ThisThread groups the ambient current-thread facilities.

// ID returns the calling thread's identity.
func ID() api.ThreadID {
	return thread.CurrentID(DefaultKernel())
}

// Yield cooperatively relinquishes the processor.
func Yield() {
	thread.Yield(DefaultKernel())
}

// SleepFor suspends the calling thread for at least d.
func SleepFor(d time.Duration) {
	thread.SleepFor(DefaultKernel(), d)
}

// SleepUntil suspends the calling thread until the deadline.
func SleepUntil(deadline time.Time) {
	thread.SleepUntil(DefaultKernel(), deadline)
}

// HardwareConcurrency returns the default kernel's thread capacity.
func HardwareConcurrency() int {
	return thread.HardwareConcurrency(DefaultKernel())
}
