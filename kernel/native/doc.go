// Package native
// Author: momentics <momentics@gmail.com>
//
// Reference api.Kernel implementation backed by the Go runtime.
// Threads map onto goroutines with identities tracked through a
// goroutine-id registry, mutex objects implement counted ownership with
// a FIFO wait queue and direct hand-off, and the tick clock derives
// from the monotonic runtime clock. Deployments targeting a real RTOS
// supply their own adapter with the same contracts; this one makes the
// library usable and testable on a stock Go toolchain.
package native
