// File: kernel/native/native.go
// Package native implements the rtsync kernel adapter on the Go runtime.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package native

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/petermattis/goid"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/momentics/rtsync/api"
)

const (
	// DefaultTickRate mirrors a 1 ms system tick.
	DefaultTickRate = 1000
	// DefaultMaxThreads is the default thread stack pool capacity.
	DefaultMaxThreads = 32
	// DefaultStackSize is advisory only; the Go runtime grows stacks.
	DefaultStackSize = 8 * 1024
)

// Option customizes kernel construction.
type Option func(*Kernel)

// WithTickRate sets the kernel clock resolution in ticks per second.
func WithTickRate(rate int64) Option {
	return func(k *Kernel) {
		if rate > 0 {
			k.tickRate = rate
		}
	}
}

// WithMaxThreads fixes the thread stack pool capacity.
func WithMaxThreads(n int) Option {
	return func(k *Kernel) {
		if n > 0 {
			k.maxThreads = n
		}
	}
}

// WithStackSize sets the default advisory stack size for Spawn.
func WithStackSize(bytes int) Option {
	return func(k *Kernel) {
		if bytes > 0 {
			k.stackSize = bytes
		}
	}
}

// Kernel is a scheduling domain backed by the Go runtime. All objects
// created through one Kernel share its tick source and thread table.
type Kernel struct {
	start      time.Time
	tickRate   int64
	maxThreads int
	stackSize  int

	// threads maps goroutine id to thread record. Records for spawned
	// threads are removed on exit; lazily assigned identities of
	// foreign goroutines persist for the kernel's lifetime.
	threads *xsync.MapOf[int64, *threadRec]

	nextID    atomic.Uint64
	running   atomic.Int64
	spawned   atomic.Int64
	completed atomic.Int64
}

// New constructs a kernel with the given options applied over defaults.
func New(opts ...Option) *Kernel {
	k := &Kernel{
		start:      time.Now(),
		tickRate:   DefaultTickRate,
		maxThreads: DefaultMaxThreads,
		stackSize:  DefaultStackSize,
		threads:    xsync.NewMapOf[int64, *threadRec](),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// threadRec is the kernel-side record of one thread slot.
type threadRec struct {
	id       api.ThreadID
	done     chan struct{}
	joined   atomic.Bool
	detached atomic.Bool
}

// Spawn creates a thread executing entry. The thread slot is reserved
// before the goroutine starts so the capacity ceiling is exact under
// concurrent spawns.
func (k *Kernel) Spawn(entry func(), _ api.SpawnOptions) (api.KernelThread, error) {
	for {
		cur := k.running.Load()
		if cur >= int64(k.maxThreads) {
			return nil, api.ErrOutOfResources
		}
		if k.running.CompareAndSwap(cur, cur+1) {
			break
		}
	}
	rec := &threadRec{
		id:   api.ThreadID(k.nextID.Add(1)),
		done: make(chan struct{}),
	}
	k.spawned.Add(1)
	go func() {
		gid := goid.Get()
		k.threads.Store(gid, rec)
		defer func() {
			k.threads.Delete(gid)
			k.running.Add(-1)
			k.completed.Add(1)
			close(rec.done)
		}()
		entry()
	}()
	return &nativeThread{rec: rec}, nil
}

// Current returns the calling thread's identity, assigning one lazily
// to goroutines not spawned through this kernel (main, test runners).
func (k *Kernel) Current() api.ThreadID {
	gid := goid.Get()
	if rec, ok := k.threads.Load(gid); ok {
		return rec.id
	}
	rec := &threadRec{
		id:   api.ThreadID(k.nextID.Add(1)),
		done: make(chan struct{}),
	}
	actual, _ := k.threads.LoadOrStore(gid, rec)
	return actual.id
}

// Yield cooperatively relinquishes the processor.
func (k *Kernel) Yield() { runtime.Gosched() }

// Sleep suspends the calling thread for d ticks. Non-positive counts
// degrade to a yield.
func (k *Kernel) Sleep(d api.Ticks) {
	if d <= 0 {
		runtime.Gosched()
		return
	}
	time.Sleep(k.tickSpan(d))
}

// Uptime returns the monotonic tick counter since kernel start.
func (k *Kernel) Uptime() api.Ticks {
	return api.Ticks(int64(time.Since(k.start)) / int64(api.TickDuration(k.tickRate)))
}

// TickRate returns ticks per second.
func (k *Kernel) TickRate() int64 { return k.tickRate }

// MaxThreads returns the fixed thread capacity.
func (k *Kernel) MaxThreads() int { return k.maxThreads }

// WallTime converts the monotonic counter to seconds and microseconds
// since kernel start.
func (k *Kernel) WallTime() (sec int64, usec int64) {
	ns := int64(time.Since(k.start))
	return ns / int64(time.Second), (ns % int64(time.Second)) / int64(time.Microsecond)
}

// Stats reports thread-table occupancy.
func (k *Kernel) Stats() api.ThreadStats {
	return api.ThreadStats{
		MaxThreads: k.maxThreads,
		Running:    int(k.running.Load()),
		Spawned:    k.spawned.Load(),
		Completed:  k.completed.Load(),
	}
}

// tickSpan converts a tick count to a wall duration, saturating on
// overflow.
func (k *Kernel) tickSpan(t api.Ticks) time.Duration {
	period := api.TickDuration(k.tickRate)
	if int64(t) > int64(maxDuration/period) {
		return maxDuration
	}
	return time.Duration(t) * period
}

const maxDuration = time.Duration(1<<63 - 1)

// nativeThread implements api.KernelThread for one spawned record.
type nativeThread struct {
	rec *threadRec
}

func (t *nativeThread) ID() api.ThreadID { return t.rec.id }

// Join blocks until the thread completes. Joining a detached or
// already-joined thread is a state violation.
func (t *nativeThread) Join() error {
	if t.rec.detached.Load() {
		return api.ErrInvalidState
	}
	if !t.rec.joined.CompareAndSwap(false, true) {
		return api.ErrInvalidState
	}
	<-t.rec.done
	return nil
}

// Detach releases the join obligation.
func (t *nativeThread) Detach() error {
	if t.rec.joined.Load() {
		return api.ErrInvalidState
	}
	if !t.rec.detached.CompareAndSwap(false, true) {
		return api.ErrInvalidState
	}
	return nil
}

var _ api.Kernel = (*Kernel)(nil)
