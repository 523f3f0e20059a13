// File: core/concurrency/executor.go
// Package concurrency implements a task executor running on kernel threads.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Executor dispatches tasks across a fixed set of worker threads spawned
// through the kernel adapter, using lock-free local queues with a global
// channel fallback. Worker count is bounded by the kernel's thread
// capacity, so construction can fail with ErrOutOfResources.

package concurrency

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/rtsync/api"
)

// TaskFunc is a unit of work to execute.
type TaskFunc func()

// Executor manages a pool of worker threads.
type Executor struct {
	kernel      api.Kernel
	globalQueue chan TaskFunc
	localQueues []*LockFreeQueue[TaskFunc]
	workers     []*worker
	closeCh     chan struct{}
	closed      atomic.Bool
	mu          sync.Mutex

	totalTasks     atomic.Int64
	completedTasks atomic.Int64
}

// NewExecutor spawns numWorkers worker threads on k. If numWorkers <= 0
// it defaults to the kernel's thread capacity halved, minimum one.
func NewExecutor(k api.Kernel, numWorkers int, opts api.SpawnOptions) (*Executor, error) {
	if numWorkers <= 0 {
		numWorkers = k.MaxThreads() / 2
		if numWorkers < 1 {
			numWorkers = 1
		}
	}
	e := &Executor{
		kernel:      k,
		globalQueue: make(chan TaskFunc, numWorkers*4),
		closeCh:     make(chan struct{}),
		localQueues: make([]*LockFreeQueue[TaskFunc], numWorkers),
		workers:     make([]*worker, numWorkers),
	}
	for i := 0; i < numWorkers; i++ {
		e.localQueues[i] = NewLockFreeQueue[TaskFunc](1024)
	}
	for i := 0; i < numWorkers; i++ {
		w := &worker{
			id:         i,
			executor:   e,
			localQueue: e.localQueues[i],
			stopCh:     make(chan struct{}),
		}
		kt, err := k.Spawn(w.run, opts)
		if err != nil {
			// roll back the workers already started
			for _, started := range e.workers[:i] {
				close(started.stopCh)
				started.thread.Join()
			}
			return nil, err
		}
		w.thread = kt
		e.workers[i] = w
	}
	return e, nil
}

// Submit enqueues a task for execution.
func (e *Executor) Submit(task TaskFunc) error {
	if e.closed.Load() {
		return ErrExecutorClosed
	}
	n := e.totalTasks.Add(1)
	idx := int(n % int64(len(e.localQueues)))
	if e.localQueues[idx].Enqueue(task) {
		return nil
	}
	select {
	case e.globalQueue <- task:
		return nil
	case <-e.closeCh:
		return ErrExecutorClosed
	default:
		return ErrQueueFull
	}
}

// NumWorkers returns the number of worker threads.
func (e *Executor) NumWorkers() int { return len(e.workers) }

// Close shuts the executor down and joins all worker threads.
func (e *Executor) Close() {
	if !e.closed.CompareAndSwap(false, true) {
		return
	}
	close(e.closeCh)
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, w := range e.workers {
		close(w.stopCh)
	}
	for _, w := range e.workers {
		w.thread.Join()
	}
}

// Stats returns basic executor metrics.
func (e *Executor) Stats() map[string]int64 {
	total := e.totalTasks.Load()
	done := e.completedTasks.Load()
	return map[string]int64{
		"total_tasks":     total,
		"completed_tasks": done,
		"pending_tasks":   total - done,
		"num_workers":     int64(len(e.workers)),
	}
}

// worker is a single executor thread.
type worker struct {
	id         int
	executor   *Executor
	localQueue *LockFreeQueue[TaskFunc]
	thread     api.KernelThread
	stopCh     chan struct{}
}

func (w *worker) run() {
	k := w.executor.kernel
	for {
		select {
		case <-w.stopCh:
			return
		default:
			if task, ok := w.localQueue.Dequeue(); ok {
				w.executeTask(task)
				continue
			}
			select {
			case task := <-w.executor.globalQueue:
				w.executeTask(task)
			case <-w.stopCh:
				return
			default:
				// back off one tick to avoid spinning
				k.Sleep(1)
			}
		}
	}
}

// executeTask runs the task, recovering from panics to keep the worker alive.
func (w *worker) executeTask(task TaskFunc) {
	defer func() {
		if r := recover(); r != nil {
			// swallow panic to keep worker alive
		}
		w.executor.completedTasks.Add(1)
	}()
	task()
}
