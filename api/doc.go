// Package api
// Author: momentics <momentics@gmail.com>
//
// Kernel-facing contracts for rtsync.
// Declares the minimal capability surface a host real-time kernel must
// supply (counted-ownership mutex objects, threads, a monotonic tick
// source) together with the error taxonomy and shared value types used
// across the library. The core never performs kernel-specific logic
// beyond these interfaces; implementations live under kernel/.
package api
