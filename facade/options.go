// File: facade/options.go
// Package facade defines functional options for rtsync assembly.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

import "github.com/momentics/rtsync/api"

// Option customizes facade initialization.
type Option func(*RTSync)

// WithKernel injects a host kernel adapter in place of the built-in
// native one.
func WithKernel(k api.Kernel) Option {
	return func(r *RTSync) { r.kernel = k }
}

// WithBackend selects the allocation backend for mutex construction.
func WithBackend(b api.AllocBackend) Option {
	return func(r *RTSync) { r.cfg.Backend = b }
}

// WithPoolCapacity sets the slab backend's slot ceiling.
func WithPoolCapacity(n int) Option {
	return func(r *RTSync) { r.cfg.PoolCapacity = n }
}

// WithMaxThreads fixes the thread stack pool capacity of the built-in
// kernel.
func WithMaxThreads(n int) Option {
	return func(r *RTSync) { r.cfg.MaxThreads = n }
}

// WithStackSize sets the default thread stack size in bytes.
func WithStackSize(bytes int) Option {
	return func(r *RTSync) { r.cfg.StackSize = bytes }
}

// WithPriority sets the default thread priority.
func WithPriority(prio int) Option {
	return func(r *RTSync) { r.cfg.Priority = prio }
}

// WithExecutorWorkers enables the task executor with n worker threads.
func WithExecutorWorkers(n int) Option {
	return func(r *RTSync) { r.cfg.ExecutorWorkers = n }
}

// WithTickRate sets the built-in kernel's clock resolution.
func WithTickRate(rate int64) Option {
	return func(r *RTSync) { r.cfg.TickRate = rate }
}
