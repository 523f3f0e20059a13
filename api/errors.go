// File: api/errors.go
// Package api — error taxonomy shared across rtsync.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Every failure the library reports maps onto one of four classes:
// deadlock self-detection, kernel rejection, resource exhaustion, or a
// state-machine violation. All are surfaced synchronously at the
// offending call; none are retried internally.

package api

import (
	"errors"
	"fmt"
)

var (
	// ErrDeadlock indicates a non-recursive mutex was re-entered by its
	// current owner on Lock or TryLock.
	ErrDeadlock = errors.New("resource deadlock would occur")

	// ErrOutOfResources indicates the allocation backend could not
	// supply backing storage for a new mutex or thread.
	ErrOutOfResources = errors.New("out of resources")

	// ErrInvalidState indicates an operation invoked in a state that
	// forbids it, e.g. Join on an empty handle or Unlock without
	// ownership.
	ErrInvalidState = errors.New("invalid state for operation")

	// ErrTimeout indicates a bounded wait elapsed without obtaining the
	// resource. Timed lock paths translate this into a false result
	// rather than an error.
	ErrTimeout = errors.New("operation timed out")
)

// KernelError wraps a native kernel return code not otherwise
// classified. The code is preserved for diagnostics.
type KernelError struct {
	Op   string // operation that failed, e.g. "mutex_lock"
	Code int    // native kernel code
}

// Error implements the error interface.
func (e *KernelError) Error() string {
	return fmt.Sprintf("kernel rejected %s: code %d", e.Op, e.Code)
}

// NewKernelError builds a KernelError for the given operation and code.
func NewKernelError(op string, code int) *KernelError {
	return &KernelError{Op: op, Code: code}
}

// AsKernelError reports whether err carries a native kernel code and
// extracts it.
func AsKernelError(err error) (*KernelError, bool) {
	var ke *KernelError
	if errors.As(err, &ke) {
		return ke, true
	}
	return nil, false
}
