package span

import (
	"math"
	"math/bits"
)

// add64 returns a+b and whether the sum stayed within int64.
func add64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// sub64 returns a-b and whether the difference stayed within int64.
func sub64(a, b int64) (int64, bool) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, false
	}
	return diff, true
}

// mul64 returns a*b and whether the product stayed within int64.
func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	prod := a * b
	return prod, prod/b == a
}

// absU64 returns |n| as uint64, exact for MinInt64.
func absU64(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

// scaleDiv returns carry*1e9/scalar truncated toward zero, computed with a
// 128-bit intermediate so the scaling cannot overflow. Requires
// |carry| < |scalar|, which bounds the quotient below 1e9.
func scaleDiv(carry, scalar int64) int64 {
	hi, lo := bits.Mul64(absU64(carry), nanosPerSecond)
	q, _ := bits.Div64(hi, lo, absU64(scalar))
	if (carry < 0) != (scalar < 0) {
		return -int64(q)
	}
	return int64(q)
}

// CheckedAdd computes d+rhs, reporting ok=false instead of overflowing.
func (d Duration) CheckedAdd(rhs Duration) (Duration, bool) {
	seconds, ok := add64(d.seconds, rhs.seconds)
	if !ok {
		return Zero, false
	}
	// Neither term reaches 1e9 in magnitude, so the sum cannot overflow
	// int32; it only needs the sign-consistency carry.
	nanoseconds := d.nanoseconds + rhs.nanoseconds
	if nanoseconds >= nanosPerSecond || (seconds < 0 && nanoseconds > 0) {
		nanoseconds -= nanosPerSecond
		if seconds, ok = add64(seconds, 1); !ok {
			return Zero, false
		}
	} else if nanoseconds <= -nanosPerSecond || (seconds > 0 && nanoseconds < 0) {
		nanoseconds += nanosPerSecond
		if seconds, ok = sub64(seconds, 1); !ok {
			return Zero, false
		}
	}
	return newUnchecked(seconds, nanoseconds), true
}

// CheckedSub computes d-rhs, reporting ok=false instead of overflowing.
func (d Duration) CheckedSub(rhs Duration) (Duration, bool) {
	seconds, ok := sub64(d.seconds, rhs.seconds)
	if !ok {
		return Zero, false
	}
	nanoseconds := d.nanoseconds - rhs.nanoseconds
	if nanoseconds >= nanosPerSecond || (seconds < 0 && nanoseconds > 0) {
		nanoseconds -= nanosPerSecond
		if seconds, ok = add64(seconds, 1); !ok {
			return Zero, false
		}
	} else if nanoseconds <= -nanosPerSecond || (seconds > 0 && nanoseconds < 0) {
		nanoseconds += nanosPerSecond
		if seconds, ok = sub64(seconds, 1); !ok {
			return Zero, false
		}
	}
	return newUnchecked(seconds, nanoseconds), true
}

// mulParts splits d.nanoseconds*scalar into whole seconds and a remainder.
// Decomposing scalar as q*1e9+r keeps every intermediate product within
// int64: |nanoseconds*q| < 1e9*(2^63/1e9) and |nanoseconds*r| < 1e18.
// All terms share the sign of the full product, so no carry fix is needed.
func (d Duration) mulParts(scalar int64) (extraSeconds int64, nanoseconds int32) {
	q, r := scalar/nanosPerSecond, scalar%nanosPerSecond
	nr := int64(d.nanoseconds) * r
	return int64(d.nanoseconds)*q + nr/nanosPerSecond, int32(nr % nanosPerSecond)
}

// CheckedMul computes d*scalar, reporting ok=false instead of overflowing.
func (d Duration) CheckedMul(scalar int64) (Duration, bool) {
	extra, nanoseconds := d.mulParts(scalar)
	seconds, ok := mul64(d.seconds, scalar)
	if !ok {
		return Zero, false
	}
	if seconds, ok = add64(seconds, extra); !ok {
		return Zero, false
	}
	return newUnchecked(seconds, nanoseconds), true
}

// CheckedDiv computes d/scalar with truncation toward zero, reporting
// ok=false for a zero scalar or an overflowing quotient.
func (d Duration) CheckedDiv(scalar int64) (Duration, bool) {
	if scalar == 0 {
		return Zero, false
	}
	if d.seconds == math.MinInt64 && scalar == -1 {
		return Zero, false
	}
	seconds := d.seconds / scalar
	carry := d.seconds - seconds*scalar
	extraNanos := scaleDiv(carry, scalar)
	nanoseconds := int32(int64(d.nanoseconds)/scalar + extraNanos)
	return newUnchecked(seconds, nanoseconds), true
}

// SaturatingAdd computes d+rhs, clamping to Min or Max on overflow. The
// clamp direction follows the sign of the overflowing operands.
func (d Duration) SaturatingAdd(rhs Duration) Duration {
	if sum, ok := d.CheckedAdd(rhs); ok {
		return sum
	}
	if d.IsPositive() {
		return Max
	}
	return Min
}

// SaturatingSub computes d-rhs, clamping to Min or Max on overflow.
func (d Duration) SaturatingSub(rhs Duration) Duration {
	if diff, ok := d.CheckedSub(rhs); ok {
		return diff
	}
	if d.IsPositive() {
		return Max
	}
	return Min
}

// SaturatingMul computes d*scalar, clamping to Min or Max on overflow.
func (d Duration) SaturatingMul(scalar int64) Duration {
	if prod, ok := d.CheckedMul(scalar); ok {
		return prod
	}
	if d.IsNegative() == (scalar < 0) {
		return Max
	}
	return Min
}

// Add computes d+rhs, panicking on overflow. Use CheckedAdd or
// SaturatingAdd for data-controlled magnitudes.
func (d Duration) Add(rhs Duration) Duration {
	sum, ok := d.CheckedAdd(rhs)
	if !ok {
		panic("span: duration addition overflows")
	}
	return sum
}

// Sub computes d-rhs, panicking on overflow.
func (d Duration) Sub(rhs Duration) Duration {
	diff, ok := d.CheckedSub(rhs)
	if !ok {
		panic("span: duration subtraction overflows")
	}
	return diff
}

// Mul computes d*scalar, panicking on overflow.
func (d Duration) Mul(scalar int64) Duration {
	prod, ok := d.CheckedMul(scalar)
	if !ok {
		panic("span: duration multiplication overflows")
	}
	return prod
}

// Div computes d/scalar with truncation toward zero, panicking on a zero
// scalar or overflow. Unlike CheckedDiv, the quotient is computed over
// the total nanosecond count at full precision, so (d.Mul(n)).Div(n) == d
// for any non-zero n that does not overflow the product.
func (d Duration) Div(scalar int64) Duration {
	if scalar == 0 {
		panic("span: duration divided by zero scalar")
	}
	if d.seconds == math.MinInt64 && scalar == -1 {
		panic("span: duration division overflows")
	}
	seconds := d.seconds / scalar
	carry := d.seconds - seconds*scalar
	nanoseconds := divRemainder(carry, int64(d.nanoseconds), scalar)
	return newUnchecked(seconds, int32(nanoseconds))
}

// divRemainder returns (carry*1e9+nanos)/scalar truncated toward zero,
// over a 128-bit numerator. Requires |carry| < |scalar| and sign
// agreement between carry and nanos, which bounds the quotient magnitude
// below 1e9.
func divRemainder(carry, nanos, scalar int64) int64 {
	hi, lo := bits.Mul64(absU64(carry), nanosPerSecond)
	lo, c := bits.Add64(lo, absU64(nanos), 0)
	q, _ := bits.Div64(hi+c, lo, absU64(scalar))
	if (carry < 0 || nanos < 0) != (scalar < 0) && q != 0 {
		return -int64(q)
	}
	return int64(q)
}

// Neg returns the duration with both components' signs flipped. Min has no
// exact negation and saturates to Max, matching Abs.
func (d Duration) Neg() Duration {
	if d.seconds == math.MinInt64 {
		return Max
	}
	return newUnchecked(-d.seconds, -d.nanoseconds)
}

// MulFloat64 scales the duration by a float64 factor, going through the
// fractional-second representation. Precision is that of float64.
func (d Duration) MulFloat64(factor float64) Duration {
	return SecondsFloat64(d.AsSecondsFloat64() * factor)
}

// MulFloat32 scales the duration by a float32 factor at float32 precision.
func (d Duration) MulFloat32(factor float32) Duration {
	return SecondsFloat32(d.AsSecondsFloat32() * factor)
}

// DivFloat64 divides the duration by a float64 divisor.
func (d Duration) DivFloat64(divisor float64) Duration {
	return SecondsFloat64(d.AsSecondsFloat64() / divisor)
}

// DivFloat32 divides the duration by a float32 divisor at float32
// precision.
func (d Duration) DivFloat32(divisor float32) Duration {
	return SecondsFloat32(d.AsSecondsFloat32() / divisor)
}

// Ratio returns d/rhs as a dimensionless float64.
func (d Duration) Ratio(rhs Duration) float64 {
	return d.AsSecondsFloat64() / rhs.AsSecondsFloat64()
}

// Sum adds the durations with the panicking policy, reducing none to Zero.
func Sum(ds ...Duration) Duration {
	total := Zero
	for _, d := range ds {
		total = total.Add(d)
	}
	return total
}
