// Package monoclock reads the runtime's monotonic clock.
//
// The reading is a nanosecond count from an arbitrary, process-local
// start point. It has no meaning outside the process and cannot be
// converted to wall time, but it never decreases, which makes it the
// right base for elapsed-time measurement.
package monoclock

import (
	_ "unsafe" // for go:linkname
)

//go:linkname nanotime runtime.nanotime
func nanotime() int64

// source is swapped out by tests via Override.
var source = nanotime

// Nanotime returns the current monotonic reading in nanoseconds. The
// runtime reading is non-negative, so the uint64 conversion is lossless.
func Nanotime() uint64 {
	return uint64(source())
}

// Override replaces the clock source and returns a function restoring the
// real one. Test use only; not safe to call concurrently with readers.
func Override(f func() int64) (restore func()) {
	source = f
	return func() { source = nanotime }
}
