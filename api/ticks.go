// File: api/ticks.go
// Package api — kernel time units and duration conversion.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import (
	"math"
	"time"
)

// Ticks is a count of kernel clock ticks. Negative values are reserved
// for the Forever sentinel.
type Ticks int64

const (
	// Forever blocks without bound.
	Forever Ticks = -1
	// NoWait polls and returns immediately.
	NoWait Ticks = 0
)

// TicksFor converts a relative duration to ticks at the given rate.
// The conversion rounds up: a caller asking to wait at least d must not
// be granted less wait time than requested. Values beyond the
// representable range saturate instead of wrapping; non-positive
// durations collapse to NoWait.
func TicksFor(d time.Duration, rate int64) Ticks {
	if d <= 0 {
		return NoWait
	}
	period := TickDuration(rate)
	if d > math.MaxInt64-period+1 {
		return Ticks(math.MaxInt64)
	}
	return Ticks((int64(d) + int64(period) - 1) / int64(period))
}

// TicksUntil converts an absolute deadline to a relative tick count
// measured from now. Deadlines already passed collapse to NoWait.
func TicksUntil(deadline time.Time, rate int64) Ticks {
	return TicksFor(time.Until(deadline), rate)
}

// TickDuration returns the wall-clock length of one tick at rate.
func TickDuration(rate int64) time.Duration {
	if rate <= 0 {
		rate = 1
	}
	d := time.Duration(int64(time.Second) / rate)
	if d <= 0 {
		d = time.Nanosecond
	}
	return d
}
