// File: api/kernel.go
// Package api declares the kernel primitive adapter consumed by rtsync.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// ThreadID is an opaque, comparable token denoting a kernel thread's
// execution context. The zero value means "no thread".
type ThreadID uint64

// NilThreadID is the sentinel identity of no thread.
const NilThreadID ThreadID = 0

// Valid reports whether the identity denotes a thread rather than the
// "no thread" sentinel.
func (id ThreadID) Valid() bool { return id != NilThreadID }

// SpawnOptions carries per-thread creation parameters. Kernels that do
// not support a field ignore it.
type SpawnOptions struct {
	// StackSize in bytes; 0 selects the kernel's configured default.
	StackSize int
	// Priority in the kernel's native priority space; 0 is the default.
	Priority int
	// Name is an optional debugging label for the thread.
	Name string
}

// KernelMutex is one native mutual-exclusion object. Ownership is
// counted: the kernel records the owning thread and a hold count, so
// re-acquisition by the owner nests. The object's identity is its
// memory address; it must never be copied once initialized.
type KernelMutex interface {
	// Acquire obtains one level of ownership, blocking at most for the
	// given timeout (Forever blocks indefinitely, NoWait polls).
	// Returns ErrTimeout if the bound elapsed without ownership, or a
	// *KernelError for any other native failure.
	Acquire(timeout Ticks) error

	// Release drops one level of ownership. Releasing a mutex the
	// calling thread does not own returns ErrInvalidState.
	Release() error

	// Owner returns the identity of the current owner, or NilThreadID
	// when unlocked.
	Owner() ThreadID

	// HoldCount returns the current recursion depth (0 when unlocked).
	HoldCount() uint32
}

// KernelThread is a live kernel thread created through Spawn. Exactly
// one of Join or Detach must be called before the handle that owns it
// is discarded.
type KernelThread interface {
	// ID returns the thread's identity; stable for the thread's lifetime.
	ID() ThreadID

	// Join blocks the calling thread until the target completes.
	Join() error

	// Detach releases the join obligation; the kernel reclaims the
	// thread's resources on completion.
	Detach() error
}

// Kernel is the minimal capability set the synchronization core
// requires from a host kernel. One Kernel instance represents one
// scheduling domain; all objects created through it share its tick
// source and thread table.
type Kernel interface {
	// InitMutex allocates and initializes an unlocked mutex object.
	// Never blocks; backing storage policy is the caller's concern.
	InitMutex() KernelMutex

	// Spawn creates a thread executing entry and returns its handle.
	// Fails with ErrOutOfResources when the kernel's fixed stack pool
	// is exhausted.
	Spawn(entry func(), opts SpawnOptions) (KernelThread, error)

	// Current returns the identity of the calling thread.
	Current() ThreadID

	// Yield cooperatively relinquishes the processor without blocking.
	Yield()

	// Sleep suspends the calling thread for the given tick count.
	Sleep(d Ticks)

	// Uptime returns the monotonic tick counter since kernel start.
	Uptime() Ticks

	// TickRate returns ticks per second of the kernel clock.
	TickRate() int64

	// MaxThreads returns the fixed capacity of the thread stack pool.
	MaxThreads() int

	// WallTime converts the monotonic counter to wall-clock seconds
	// and microseconds since kernel start.
	WallTime() (sec int64, usec int64)
}
