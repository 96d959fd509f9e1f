package span

import (
	"fmt"
	"math"
)

// Unit conversion factors.
const (
	nanosPerSecond   = 1_000_000_000
	nanosPerMilli    = 1_000_000
	nanosPerMicro    = 1_000
	secondsPerWeek   = 604_800
	secondsPerDay    = 86_400
	secondsPerHour   = 3_600
	secondsPerMinute = 60
)

// Duration is a signed span of time with nanosecond resolution.
//
// The zero value is the zero duration. Duration is a small value type;
// pass and compare it by value.
type Duration struct {
	// seconds is the whole-second component, any sign.
	seconds int64

	// nanoseconds is the sub-second component, always in
	// (-1e9, 1e9) and sign-matching seconds.
	nanoseconds int32
}

// Common spans and the representable bounds. These are package variables
// only because Go constants cannot have struct type; treat them as
// constants.
var (
	// Zero is the zero duration, the only representation of "no time".
	Zero = Duration{}

	Nanosecond  = Nanoseconds(1)
	Microsecond = Microseconds(1)
	Millisecond = Milliseconds(1)
	Second      = Seconds(1)
	Minute      = Minutes(1)
	Hour        = Hours(1)
	Day         = Days(1)
	Week        = Weeks(1)

	// Min is the most negative representable duration. Subtracting any
	// positive duration from it overflows.
	Min = newUnchecked(math.MinInt64, -nanosPerSecond+1)

	// Max is the most positive representable duration. Adding any
	// positive duration to it overflows.
	Max = newUnchecked(math.MaxInt64, nanosPerSecond-1)
)

// newUnchecked builds a Duration from parts that already satisfy the sign
// invariant. Callers must guarantee |nanoseconds| < 1e9 and sign agreement.
func newUnchecked(seconds int64, nanoseconds int32) Duration {
	return Duration{seconds: seconds, nanoseconds: nanoseconds}
}

// New returns the duration of seconds plus nanoseconds. The nanosecond
// component may have any magnitude or sign; whole-second multiples carry
// into the seconds component and the result is normalized so both fields
// agree in sign.
//
//	New(1, 2_000_000_000) == Seconds(3)
//	New(1, -500_000_000)  == Milliseconds(500)
func New(seconds int64, nanoseconds int32) Duration {
	seconds += int64(nanoseconds) / nanosPerSecond
	nanoseconds %= nanosPerSecond
	if seconds > 0 && nanoseconds < 0 {
		seconds--
		nanoseconds += nanosPerSecond
	} else if seconds < 0 && nanoseconds > 0 {
		seconds++
		nanoseconds -= nanosPerSecond
	}
	return newUnchecked(seconds, nanoseconds)
}

// Weeks returns the duration of n weeks.
func Weeks(n int64) Duration { return Seconds(n * secondsPerWeek) }

// Days returns the duration of n days.
func Days(n int64) Duration { return Seconds(n * secondsPerDay) }

// Hours returns the duration of n hours.
func Hours(n int64) Duration { return Seconds(n * secondsPerHour) }

// Minutes returns the duration of n minutes.
func Minutes(n int64) Duration { return Seconds(n * secondsPerMinute) }

// Seconds returns the duration of n seconds.
func Seconds(n int64) Duration { return newUnchecked(n, 0) }

// SecondsFloat64 returns the duration of n fractional seconds. The
// fractional part is truncated toward zero at nanosecond resolution, not
// rounded: SecondsFloat64(0.123456789_9) has 123456789 nanoseconds.
// NaN yields Zero; values beyond the representable range clamp to Min or
// Max whole seconds.
func SecondsFloat64(n float64) Duration {
	frac := math.Mod(n, 1) * nanosPerSecond
	if math.IsNaN(frac) {
		frac = 0
	}
	return newUnchecked(saturateInt64(n), int32(frac))
}

// SecondsFloat32 is SecondsFloat64 for float32 input. The fractional part
// is computed at float32 precision, so resolution degrades for large n.
func SecondsFloat32(n float32) Duration {
	frac := float32(math.Mod(float64(n), 1)) * nanosPerSecond
	if math.IsNaN(float64(frac)) {
		frac = 0
	}
	return newUnchecked(saturateInt64(float64(n)), int32(frac))
}

// saturateInt64 converts a float to int64 with saturating semantics:
// NaN becomes 0, values beyond the int64 range clamp to the bounds. A
// plain int64(n) conversion of such values is implementation-defined.
func saturateInt64(n float64) int64 {
	switch {
	case math.IsNaN(n):
		return 0
	case n >= math.MaxInt64:
		return math.MaxInt64
	case n <= math.MinInt64:
		return math.MinInt64
	}
	return int64(n)
}

// Milliseconds returns the duration of n milliseconds.
func Milliseconds(n int64) Duration {
	return newUnchecked(n/1_000, int32(n%1_000)*nanosPerMilli)
}

// Microseconds returns the duration of n microseconds.
func Microseconds(n int64) Duration {
	return newUnchecked(n/1_000_000, int32(n%1_000_000)*nanosPerMicro)
}

// Nanoseconds returns the duration of n nanoseconds.
func Nanoseconds(n int64) Duration {
	return newUnchecked(n/nanosPerSecond, int32(n%nanosPerSecond))
}

// WholeWeeks returns the number of whole weeks, truncated toward zero.
func (d Duration) WholeWeeks() int64 { return d.seconds / secondsPerWeek }

// WholeDays returns the number of whole days, truncated toward zero.
func (d Duration) WholeDays() int64 { return d.seconds / secondsPerDay }

// WholeHours returns the number of whole hours, truncated toward zero.
func (d Duration) WholeHours() int64 { return d.seconds / secondsPerHour }

// WholeMinutes returns the number of whole minutes, truncated toward zero.
func (d Duration) WholeMinutes() int64 { return d.seconds / secondsPerMinute }

// WholeSeconds returns the number of whole seconds, truncated toward zero.
func (d Duration) WholeSeconds() int64 { return d.seconds }

// WholeMilliseconds returns the number of whole milliseconds, truncated
// toward zero and saturating at the int64 bounds (durations beyond about
// ±292 million years).
func (d Duration) WholeMilliseconds() int64 {
	return d.wholeScaled(1_000, int64(d.nanoseconds)/nanosPerMilli)
}

// WholeMicroseconds returns the number of whole microseconds, truncated
// toward zero and saturating at the int64 bounds (durations beyond about
// ±292 thousand years).
func (d Duration) WholeMicroseconds() int64 {
	return d.wholeScaled(1_000_000, int64(d.nanoseconds)/nanosPerMicro)
}

// WholeNanoseconds returns the total number of nanoseconds, saturating at
// the int64 bounds (durations beyond about ±292 years).
func (d Duration) WholeNanoseconds() int64 {
	return d.wholeScaled(nanosPerSecond, int64(d.nanoseconds))
}

// wholeScaled computes seconds*scale+sub with saturation in d's direction.
func (d Duration) wholeScaled(scale, sub int64) int64 {
	n, ok := mul64(d.seconds, scale)
	if ok {
		if n, ok = add64(n, sub); ok {
			return n
		}
	}
	if d.IsNegative() {
		return math.MinInt64
	}
	return math.MaxInt64
}

// SubsecMilliseconds returns the millisecond remainder past the whole
// seconds, in (-1000, 1000), sign-matching the duration.
func (d Duration) SubsecMilliseconds() int32 { return d.nanoseconds / nanosPerMilli }

// SubsecMicroseconds returns the microsecond remainder past the whole
// seconds, in (-1e6, 1e6), sign-matching the duration.
func (d Duration) SubsecMicroseconds() int32 { return d.nanoseconds / nanosPerMicro }

// SubsecNanoseconds returns the nanosecond remainder past the whole
// seconds, in (-1e9, 1e9), sign-matching the duration.
func (d Duration) SubsecNanoseconds() int32 { return d.nanoseconds }

// AsSecondsFloat64 returns the duration as fractional seconds.
func (d Duration) AsSecondsFloat64() float64 {
	return float64(d.seconds) + float64(d.nanoseconds)/nanosPerSecond
}

// AsSecondsFloat32 returns the duration as fractional float32 seconds.
// float32 cannot represent large second counts exactly.
func (d Duration) AsSecondsFloat32() float32 {
	return float32(d.seconds) + float32(d.nanoseconds)/nanosPerSecond
}

// IsZero reports whether the duration is exactly zero.
func (d Duration) IsZero() bool { return d.seconds == 0 && d.nanoseconds == 0 }

// IsNegative reports whether the duration is less than zero.
func (d Duration) IsNegative() bool { return d.seconds < 0 || d.nanoseconds < 0 }

// IsPositive reports whether the duration is greater than zero. The zero
// duration is neither positive nor negative.
func (d Duration) IsPositive() bool { return d.seconds > 0 || d.nanoseconds > 0 }

// Abs returns the magnitude of the duration. Min has no exact positive
// counterpart, so Abs saturates to Max for it.
func (d Duration) Abs() Duration {
	seconds := d.seconds
	switch {
	case seconds == math.MinInt64:
		seconds = math.MaxInt64
	case seconds < 0:
		seconds = -seconds
	}
	nanoseconds := d.nanoseconds
	if nanoseconds < 0 {
		nanoseconds = -nanoseconds
	}
	return newUnchecked(seconds, nanoseconds)
}

// Compare returns -1, 0, or 1 ordering d against rhs. The order is total
// and lexicographic on (seconds, nanoseconds), which matches numeric order
// because the fields agree in sign.
func (d Duration) Compare(rhs Duration) int {
	switch {
	case d.seconds < rhs.seconds:
		return -1
	case d.seconds > rhs.seconds:
		return 1
	case d.nanoseconds < rhs.nanoseconds:
		return -1
	case d.nanoseconds > rhs.nanoseconds:
		return 1
	}
	return 0
}

// String returns a debug representation in fractional seconds, such as
// "1.500000000s" or "-0.000000001s". It is not a parseable or localized
// format.
func (d Duration) String() string {
	if !d.IsNegative() {
		return fmt.Sprintf("%d.%09ds", d.seconds, d.nanoseconds)
	}
	// Print the magnitude through uint64 so Min does not overflow.
	seconds := uint64(d.seconds)
	if d.seconds < 0 {
		seconds = uint64(-(d.seconds + 1)) + 1
	}
	nanoseconds := d.nanoseconds
	if nanoseconds < 0 {
		nanoseconds = -nanoseconds
	}
	return fmt.Sprintf("-%d.%09ds", seconds, nanoseconds)
}
