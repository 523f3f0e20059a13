// File: stdsync/mutex_deadlock.go
// Package stdsync — detector-backed plain mutex for development builds.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Build with -tags=deadlock to route the plain mutex through a lock
// order and hold-time detector. The kernel-backed variants are
// unaffected; they carry their own owner re-entry check.

//go:build deadlock

package stdsync

import (
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockEnabled is true when the deadlock detector build is active.
const DeadlockEnabled = true

func init() {
	deadlock.Opts.DeadlockTimeout = 30 * time.Second
}

// Mutex is a non-recursive mutual exclusion lock with deadlock
// detection. The zero value is an unlocked mutex.
type Mutex struct {
	deadlock.Mutex
}
