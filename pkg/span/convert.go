package span

import (
	"errors"
	"fmt"
	"time"
)

// Conversion errors.
var (
	// ErrConversionRange is returned when a duration cannot be
	// represented in the target type of a conversion.
	ErrConversionRange = errors.New("duration out of range for conversion")
)

// FromStd converts a time.Duration. The conversion is total: every int64
// nanosecond count splits exactly into seconds and a remainder.
func FromStd(d time.Duration) Duration {
	return newUnchecked(int64(d)/nanosPerSecond, int32(int64(d)%nanosPerSecond))
}

// Std converts the duration to a time.Duration. It fails with
// ErrConversionRange when the total nanosecond count exceeds int64, i.e.
// for durations beyond roughly ±292 years.
func (d Duration) Std() (time.Duration, error) {
	ns, ok := mul64(d.seconds, nanosPerSecond)
	if ok {
		ns, ok = add64(ns, int64(d.nanoseconds))
	}
	if !ok {
		return 0, fmt.Errorf("%w: %d seconds exceeds time.Duration", ErrConversionRange, d.seconds)
	}
	return time.Duration(ns), nil
}

// AddStd computes d plus a time.Duration with the panicking policy.
func (d Duration) AddStd(rhs time.Duration) Duration {
	return d.Add(FromStd(rhs))
}

// SubStd computes d minus a time.Duration with the panicking policy.
func (d Duration) SubStd(rhs time.Duration) Duration {
	return d.Sub(FromStd(rhs))
}

// RatioStd returns d divided by a time.Duration as a dimensionless
// float64.
func (d Duration) RatioStd(rhs time.Duration) float64 {
	return d.AsSecondsFloat64() / rhs.Seconds()
}
