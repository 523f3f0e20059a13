// File: core/thread/thisthread.go
// Package thread — ambient current-thread facilities.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// These helpers are not tied to a handle instance: any thread,
// including ones not spawned through rtsync, may query its identity,
// yield, or sleep against a kernel's monotonic clock.

package thread

import (
	"time"

	"github.com/momentics/rtsync/api"
)

// CurrentID returns the calling thread's identity on k.
func CurrentID(k api.Kernel) api.ThreadID {
	return k.Current()
}

// Yield cooperatively relinquishes the processor without blocking for a
// duration.
func Yield(k api.Kernel) {
	k.Yield()
}

// SleepFor suspends the calling thread for at least d. The duration is
// converted to ticks rounding up, so the thread never sleeps less than
// requested.
func SleepFor(k api.Kernel, d time.Duration) {
	if d <= 0 {
		return
	}
	k.Sleep(api.TicksFor(d, k.TickRate()))
}

// SleepUntil suspends the calling thread until the deadline, computed
// against the monotonic clock. Deadlines already passed return
// immediately.
func SleepUntil(k api.Kernel, deadline time.Time) {
	SleepFor(k, time.Until(deadline))
}

// HardwareConcurrency returns the kernel's fixed thread capacity, the
// closest analog of a core count in a stack-pool scheduling domain.
func HardwareConcurrency(k api.Kernel) int {
	return k.MaxThreads()
}
