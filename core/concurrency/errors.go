// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for the concurrency module.

package concurrency

import "errors"

var (
	// ErrExecutorClosed indicates the executor has been shut down.
	ErrExecutorClosed = errors.New("executor is closed")

	// ErrQueueFull indicates a task could not be enqueued anywhere.
	ErrQueueFull = errors.New("task queues are full")

	// ErrInvalidWorkerCount indicates invalid worker count configuration.
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)
