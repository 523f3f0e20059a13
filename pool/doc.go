// Package pool
// Author: momentics <momentics@gmail.com>
//
// Allocation backends for rtsync primitive construction: static
// (caller storage, infallible), heap (unbounded), and slab (fixed
// capacity, immediate failure on exhaustion). One backend is selected
// per facade instance and applied uniformly to every mutex the facade
// constructs; thread stacks are bounded separately by the kernel's own
// fixed pool. Slot accounting is atomic on purpose: guarding the slot
// table with a mutex from this library would create a bootstrapping
// cycle.
package pool
