package instant

import (
	"math"
	"time"

	"github.com/tempus-project/tempus-go/internal/monoclock"
	"github.com/tempus-project/tempus-go/pkg/span"
)

const nanosPerSecond = 1_000_000_000

// Instant is a point on the process's monotonic clock. The zero value is
// the clock's arbitrary start point; obtain meaningful values from Now or
// by arithmetic on one.
type Instant struct {
	// nanos is the raw monotonic reading. Unsigned: instants order by
	// magnitude and differences are unsigned until given a direction.
	nanos uint64
}

// Now samples the monotonic clock.
func Now() Instant {
	return Instant{nanos: monoclock.Nanotime()}
}

// Elapsed returns the time passed since i was sampled. Nonnegative for
// any instant that came from Now.
func (i Instant) Elapsed() span.Duration {
	return Now().Sub(i)
}

// Since is shorthand for Now().Sub(earlier).
func Since(earlier Instant) span.Duration {
	return Now().Sub(earlier)
}

// Time measures how long f takes to run.
func Time(f func()) span.Duration {
	start := Now()
	f()
	return start.Elapsed()
}

// Sub returns the signed span from earlier to i: positive when i is the
// later instant, and always satisfying a.Sub(b) == b.Sub(a).Neg(). The
// unsigned magnitude of the clock difference always fits a Duration in
// practice; if it ever did not, Sub panics rather than wrapping.
func (i Instant) Sub(earlier Instant) span.Duration {
	switch {
	case i.nanos == earlier.nanos:
		return span.Zero
	case i.nanos > earlier.nanos:
		return magnitude(i.nanos - earlier.nanos)
	default:
		return magnitude(earlier.nanos - i.nanos).Neg()
	}
}

// magnitude converts an unsigned nanosecond count to a Duration.
func magnitude(nanos uint64) span.Duration {
	if nanos > math.MaxInt64 {
		panic("instant: clock difference exceeds duration range")
	}
	return span.Nanoseconds(int64(nanos))
}

// CheckedAdd shifts the instant by d, reporting ok=false when the shifted
// reading would leave the clock's range. Negative durations move the
// instant backward.
func (i Instant) CheckedAdd(d span.Duration) (Instant, bool) {
	switch {
	case d.IsZero():
		return i, true
	case d.IsPositive():
		nanos, ok := unsignedNanos(d)
		if !ok {
			return Instant{}, false
		}
		sum := i.nanos + nanos
		if sum < i.nanos {
			return Instant{}, false
		}
		return Instant{nanos: sum}, true
	default:
		nanos, ok := unsignedNanos(d)
		if !ok || nanos > i.nanos {
			return Instant{}, false
		}
		return Instant{nanos: i.nanos - nanos}, true
	}
}

// CheckedSub shifts the instant by -d with the same range checking as
// CheckedAdd.
func (i Instant) CheckedSub(d span.Duration) (Instant, bool) {
	switch {
	case d.IsZero():
		return i, true
	case d.IsPositive():
		nanos, ok := unsignedNanos(d)
		if !ok || nanos > i.nanos {
			return Instant{}, false
		}
		return Instant{nanos: i.nanos - nanos}, true
	default:
		nanos, ok := unsignedNanos(d)
		if !ok {
			return Instant{}, false
		}
		sum := i.nanos + nanos
		if sum < i.nanos {
			return Instant{}, false
		}
		return Instant{nanos: sum}, true
	}
}

// unsignedNanos returns |d| as a nanosecond count, with ok=false when the
// magnitude exceeds uint64 nanoseconds (spans beyond ≈584 years).
func unsignedNanos(d span.Duration) (uint64, bool) {
	seconds := d.WholeSeconds()
	var usec uint64
	if seconds < 0 {
		usec = uint64(-(seconds + 1)) + 1
	} else {
		usec = uint64(seconds)
	}
	if usec > math.MaxUint64/nanosPerSecond {
		return 0, false
	}
	nanos := usec * nanosPerSecond
	sub := int64(d.SubsecNanoseconds())
	if sub < 0 {
		sub = -sub
	}
	sum := nanos + uint64(sub)
	if sum < nanos {
		return 0, false
	}
	return sum, true
}

// Add shifts the instant by d, panicking when the result is out of range.
func (i Instant) Add(d span.Duration) Instant {
	shifted, ok := i.CheckedAdd(d)
	if !ok {
		panic("instant: shifted instant out of clock range")
	}
	return shifted
}

// SubDuration shifts the instant by -d, panicking when the result is out
// of range. (Sub is taken by instant-to-instant subtraction.)
func (i Instant) SubDuration(d span.Duration) Instant {
	shifted, ok := i.CheckedSub(d)
	if !ok {
		panic("instant: shifted instant out of clock range")
	}
	return shifted
}

// AddStd shifts the instant by a time.Duration, panicking when the result
// is out of range.
func (i Instant) AddStd(d time.Duration) Instant {
	return i.Add(span.FromStd(d))
}

// SubStd shifts the instant by a negated time.Duration, panicking when
// the result is out of range.
func (i Instant) SubStd(d time.Duration) Instant {
	return i.SubDuration(span.FromStd(d))
}

// Equal reports whether two instants are the same clock reading.
func (i Instant) Equal(rhs Instant) bool { return i.nanos == rhs.nanos }

// Before reports whether i precedes rhs.
func (i Instant) Before(rhs Instant) bool { return i.nanos < rhs.nanos }

// After reports whether i follows rhs.
func (i Instant) After(rhs Instant) bool { return i.nanos > rhs.nanos }

// Compare returns -1, 0, or 1 ordering i against rhs.
func (i Instant) Compare(rhs Instant) int {
	switch {
	case i.nanos < rhs.nanos:
		return -1
	case i.nanos > rhs.nanos:
		return 1
	}
	return 0
}
