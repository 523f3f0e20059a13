// Package lock
// Author: momentics <momentics@gmail.com>
//
// The rtsync mutex family: Mutex, RecursiveMutex, TimedMutex and
// RecursiveTimedMutex over any api.Kernel. The four variants share one
// acquire routine parameterized by variant traits; ownership tracking,
// deadlock self-detection and tick conversion are built once. Mutexes
// are identity objects: never copy one after construction.
package lock
