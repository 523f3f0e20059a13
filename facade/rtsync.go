// File: facade/rtsync.go
// Unified facade layer for the rtsync library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RTSync aggregates a kernel adapter, an allocation backend, an
// optional task executor and the control registry behind one handle.
// Configuration is immutable per instance: the backend choice applies
// uniformly to every mutex the facade constructs, and thread creation
// inherits the configured stack size and priority.

package facade

import (
	"log"

	"github.com/momentics/rtsync/api"
	"github.com/momentics/rtsync/control"
	"github.com/momentics/rtsync/core/concurrency"
	"github.com/momentics/rtsync/core/lock"
	"github.com/momentics/rtsync/core/thread"
	"github.com/momentics/rtsync/kernel/native"
	"github.com/momentics/rtsync/pool"
)

// Config holds parameters immutable per facade instance.
type Config struct {
	Backend         api.AllocBackend // allocation backend for mutexes
	PoolCapacity    int              // slab slot ceiling (slab backend only)
	MaxThreads      int              // stack pool capacity of the built-in kernel
	StackSize       int              // default thread stack size in bytes
	Priority        int              // default thread priority
	TickRate        int64            // built-in kernel clock, ticks per second
	ExecutorWorkers int              // 0 disables the task executor
	EnableMetrics   bool             // register control probes
}

// DefaultConfig returns defaults suitable for a hosted test environment.
func DefaultConfig() *Config {
	return &Config{
		Backend:         api.AllocStatic,
		PoolCapacity:    64,
		MaxThreads:      native.DefaultMaxThreads,
		StackSize:       native.DefaultStackSize,
		Priority:        0,
		TickRate:        native.DefaultTickRate,
		ExecutorWorkers: 0,
		EnableMetrics:   true,
	}
}

// RTSync is the main facade type.
type RTSync struct {
	cfg      *Config
	kernel   api.Kernel
	alloc    pool.Allocator
	executor *concurrency.Executor
	registry *control.Registry
}

// New assembles a facade from cfg and options. A nil cfg selects
// DefaultConfig.
func New(cfg *Config, opts ...Option) (*RTSync, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r := &RTSync{cfg: cfg, registry: control.NewRegistry()}
	for _, opt := range opts {
		opt(r)
	}
	if r.kernel == nil {
		r.kernel = native.New(
			native.WithMaxThreads(cfg.MaxThreads),
			native.WithTickRate(cfg.TickRate),
			native.WithStackSize(cfg.StackSize),
		)
	}
	r.alloc = pool.New(cfg.Backend, cfg.PoolCapacity)

	if cfg.ExecutorWorkers > 0 {
		ex, err := concurrency.NewExecutor(r.kernel, cfg.ExecutorWorkers, api.SpawnOptions{
			StackSize: cfg.StackSize,
			Priority:  cfg.Priority,
		})
		if err != nil {
			return nil, err
		}
		r.executor = ex
	}

	if cfg.EnableMetrics {
		r.registerProbes()
	}
	return r, nil
}

func (r *RTSync) registerProbes() {
	r.registry.RegisterProbe("alloc", func() any { return r.alloc.Stats() })
	if k, ok := r.kernel.(*native.Kernel); ok {
		r.registry.RegisterProbe("threads", func() any { return k.Stats() })
	}
	if r.executor != nil {
		r.registry.RegisterProbe("executor", func() any { return r.executor.Stats() })
	}
}

// Kernel returns the kernel adapter in use.
func (r *RTSync) Kernel() api.Kernel { return r.kernel }

// Control returns the runtime inspection registry.
func (r *RTSync) Control() *control.Registry { return r.registry }

// NewMutex constructs a plain mutex on the configured backend.
func (r *RTSync) NewMutex() (*lock.Mutex, error) {
	if err := r.alloc.Acquire(); err != nil {
		return nil, err
	}
	return lock.NewMutex(r.kernel, lock.WithReleaser(r.alloc.Release)), nil
}

// NewRecursiveMutex constructs a recursive mutex.
func (r *RTSync) NewRecursiveMutex() (*lock.RecursiveMutex, error) {
	if err := r.alloc.Acquire(); err != nil {
		return nil, err
	}
	return lock.NewRecursiveMutex(r.kernel, lock.WithReleaser(r.alloc.Release)), nil
}

// NewTimedMutex constructs a timed mutex.
func (r *RTSync) NewTimedMutex() (*lock.TimedMutex, error) {
	if err := r.alloc.Acquire(); err != nil {
		return nil, err
	}
	return lock.NewTimedMutex(r.kernel, lock.WithReleaser(r.alloc.Release)), nil
}

// NewRecursiveTimedMutex constructs a recursive timed mutex.
func (r *RTSync) NewRecursiveTimedMutex() (*lock.RecursiveTimedMutex, error) {
	if err := r.alloc.Acquire(); err != nil {
		return nil, err
	}
	return lock.NewRecursiveTimedMutex(r.kernel, lock.WithReleaser(r.alloc.Release)), nil
}

// NewThread spawns fn on a kernel thread with the configured stack size
// and priority.
func (r *RTSync) NewThread(fn func()) (*thread.Thread, error) {
	return thread.New(r.kernel, fn,
		thread.WithStackSize(r.cfg.StackSize),
		thread.WithPriority(r.cfg.Priority),
	)
}

// Submit runs a task on the executor.
func (r *RTSync) Submit(task func()) error {
	if r.executor == nil {
		return concurrency.ErrExecutorClosed
	}
	return r.executor.Submit(task)
}

// Shutdown stops the executor and joins its workers.
func (r *RTSync) Shutdown() {
	if r.executor != nil {
		r.executor.Close()
		log.Printf("rtsync: executor stopped, %v", r.executor.Stats())
	}
}
