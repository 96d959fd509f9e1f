package span

import (
	"math"
	"testing"
)

// checkInvariant fails the test when d violates sign consistency or the
// nanosecond bound.
func checkInvariant(t *testing.T, d Duration) {
	t.Helper()
	if d.nanoseconds <= -nanosPerSecond || d.nanoseconds >= nanosPerSecond {
		t.Errorf("nanoseconds %d out of range", d.nanoseconds)
	}
	if (d.seconds > 0 && d.nanoseconds < 0) || (d.seconds < 0 && d.nanoseconds > 0) {
		t.Errorf("sign mismatch: seconds=%d nanoseconds=%d", d.seconds, d.nanoseconds)
	}
}

func TestNewNormalization(t *testing.T) {
	tests := []struct {
		name        string
		seconds     int64
		nanoseconds int32
		want        Duration
	}{
		{"AlreadyNormal", 1, 500_000_000, Duration{1, 500_000_000}},
		{"NanosCarryUp", 1, 2_000_000_000, Duration{3, 0}},
		{"NanosCarryDown", -1, -2_000_000_000, Duration{-3, 0}},
		{"BorrowPositive", 1, -500_000_000, Duration{0, 500_000_000}},
		{"BorrowNegative", -1, 500_000_000, Duration{0, -500_000_000}},
		{"BorrowLeavesSeconds", 2, -500_000_000, Duration{1, 500_000_000}},
		{"Zero", 0, 0, Duration{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.seconds, tt.nanoseconds)
			if got != tt.want {
				t.Errorf("New(%d, %d) = %v, want %v", tt.seconds, tt.nanoseconds, got, tt.want)
			}
			checkInvariant(t, got)
		})
	}
}

func TestUnitConstructorsAgree(t *testing.T) {
	// One second expressed at every scale.
	one := Seconds(1)
	tests := []struct {
		name string
		got  Duration
	}{
		{"Milliseconds", Milliseconds(1_000)},
		{"Microseconds", Microseconds(1_000_000)},
		{"Nanoseconds", Nanoseconds(1_000_000_000)},
		{"Float", SecondsFloat64(1.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != one {
				t.Errorf("got %v, want %v", tt.got, one)
			}
		})
	}

	if Milliseconds(1) != Microseconds(1_000) {
		t.Errorf("Milliseconds(1) = %v, Microseconds(1000) = %v",
			Milliseconds(1), Microseconds(1_000))
	}
	if Weeks(1) != Seconds(604_800) {
		t.Errorf("Weeks(1) = %v", Weeks(1))
	}
	if Days(1) != Hours(24) || Hours(1) != Minutes(60) || Minutes(1) != Seconds(60) {
		t.Error("larger unit constructors disagree")
	}
}

func TestSubUnitConstructorSigns(t *testing.T) {
	tests := []struct {
		name string
		got  Duration
		want Duration
	}{
		{"NegativeMillis", Milliseconds(-1_600), Duration{-1, -600_000_000}},
		{"NegativeMicros", Microseconds(-1_000_001), Duration{-1, -1_000}},
		{"NegativeNanos", Nanoseconds(-1_500_000_000), Duration{-1, -500_000_000}},
		{"SubSecondNegative", Milliseconds(-5), Duration{0, -5_000_000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
			checkInvariant(t, tt.got)
		})
	}
}

func TestFloatConstructorsTruncate(t *testing.T) {
	// The fractional part truncates toward zero; it must not round up.
	d := SecondsFloat64(1.999_999_999_9)
	if d.SubsecNanoseconds() != 999_999_999 {
		t.Errorf("SubsecNanoseconds() = %d, want 999999999", d.SubsecNanoseconds())
	}
	if d.WholeSeconds() != 1 {
		t.Errorf("WholeSeconds() = %d, want 1", d.WholeSeconds())
	}

	neg := SecondsFloat64(-0.5)
	if neg != (Duration{0, -500_000_000}) {
		t.Errorf("SecondsFloat64(-0.5) = %v", neg)
	}
	checkInvariant(t, neg)

	if SecondsFloat32(0.5) != Milliseconds(500) {
		t.Errorf("SecondsFloat32(0.5) = %v", SecondsFloat32(0.5))
	}
}

func TestFloatConstructorsSpecialValues(t *testing.T) {
	// NaN and out-of-range inputs must behave the same on every
	// platform: NaN is Zero, overflow clamps to whole-second bounds.
	tests := []struct {
		name string
		n    float64
		want Duration
	}{
		{"NaN", math.NaN(), Zero},
		{"+Inf", math.Inf(1), Seconds(math.MaxInt64)},
		{"-Inf", math.Inf(-1), Seconds(math.MinInt64)},
		{"above int64 range", 2e19, Seconds(math.MaxInt64)},
		{"below int64 range", -2e19, Seconds(math.MinInt64)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SecondsFloat64(tt.n); got != tt.want {
				t.Errorf("SecondsFloat64(%v) = %v, want %v", tt.n, got, tt.want)
			}
			if got := SecondsFloat32(float32(tt.n)); got != tt.want {
				t.Errorf("SecondsFloat32(%v) = %v, want %v", tt.n, got, tt.want)
			}
			checkInvariant(t, SecondsFloat64(tt.n))
		})
	}

	// Float scaling routes through the same conversion.
	if got := Seconds(1).MulFloat64(math.NaN()); got != Zero {
		t.Errorf("MulFloat64(NaN) = %v, want Zero", got)
	}
	if got := Max.MulFloat64(2); got != Seconds(math.MaxInt64) {
		t.Errorf("Max.MulFloat64(2) = %v, want max whole seconds", got)
	}
	if got := Seconds(1).DivFloat64(0); got != Seconds(math.MaxInt64) {
		t.Errorf("DivFloat64(0) = %v, want max whole seconds", got)
	}
}

func TestWholeAccessors(t *testing.T) {
	d := New(90_061, 500_000_000) // 1 day, 1 hour, 1 minute, 1.5 seconds
	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"WholeWeeks", d.WholeWeeks(), 0},
		{"WholeDays", d.WholeDays(), 1},
		{"WholeHours", d.WholeHours(), 25},
		{"WholeMinutes", d.WholeMinutes(), 1_501},
		{"WholeSeconds", d.WholeSeconds(), 90_061},
		{"WholeMilliseconds", d.WholeMilliseconds(), 90_061_500},
		{"WholeMicroseconds", d.WholeMicroseconds(), 90_061_500_000},
		{"WholeNanoseconds", d.WholeNanoseconds(), 90_061_500_000_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}

	neg := d.Neg()
	if neg.WholeDays() != -1 || neg.WholeMilliseconds() != -90_061_500 {
		t.Errorf("negated accessors: days=%d ms=%d", neg.WholeDays(), neg.WholeMilliseconds())
	}
}

func TestWholeAccessorsSaturate(t *testing.T) {
	if Max.WholeNanoseconds() != math.MaxInt64 {
		t.Errorf("Max.WholeNanoseconds() = %d", Max.WholeNanoseconds())
	}
	if Min.WholeNanoseconds() != math.MinInt64 {
		t.Errorf("Min.WholeNanoseconds() = %d", Min.WholeNanoseconds())
	}
	if Min.WholeMilliseconds() != math.MinInt64 {
		t.Errorf("Min.WholeMilliseconds() = %d", Min.WholeMilliseconds())
	}
}

func TestSubsecAccessors(t *testing.T) {
	d := New(1, 400_000_000)
	if d.SubsecMilliseconds() != 400 {
		t.Errorf("SubsecMilliseconds() = %d", d.SubsecMilliseconds())
	}
	if d.SubsecMicroseconds() != 400_000 {
		t.Errorf("SubsecMicroseconds() = %d", d.SubsecMicroseconds())
	}
	if d.SubsecNanoseconds() != 400_000_000 {
		t.Errorf("SubsecNanoseconds() = %d", d.SubsecNanoseconds())
	}

	neg := New(-1, -400_000_000)
	if neg.SubsecMilliseconds() != -400 {
		t.Errorf("negative SubsecMilliseconds() = %d", neg.SubsecMilliseconds())
	}
}

func TestAsSecondsFloat(t *testing.T) {
	if got := New(1, 500_000_000).AsSecondsFloat64(); got != 1.5 {
		t.Errorf("AsSecondsFloat64() = %v, want 1.5", got)
	}
	if got := New(-1, -500_000_000).AsSecondsFloat64(); got != -1.5 {
		t.Errorf("AsSecondsFloat64() = %v, want -1.5", got)
	}
	if got := New(1, 500_000_000).AsSecondsFloat32(); got != 1.5 {
		t.Errorf("AsSecondsFloat32() = %v, want 1.5", got)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name     string
		d        Duration
		zero     bool
		negative bool
		positive bool
	}{
		{"Zero", Zero, true, false, false},
		{"PositiveSeconds", Seconds(1), false, false, true},
		{"NegativeSeconds", Seconds(-1), false, true, false},
		{"PositiveNanos", Nanosecond, false, false, true},
		{"NegativeNanos", Nanoseconds(-1), false, true, false},
		{"Min", Min, false, true, false},
		{"Max", Max, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.IsZero(); got != tt.zero {
				t.Errorf("IsZero() = %v, want %v", got, tt.zero)
			}
			if got := tt.d.IsNegative(); got != tt.negative {
				t.Errorf("IsNegative() = %v, want %v", got, tt.negative)
			}
			if got := tt.d.IsPositive(); got != tt.positive {
				t.Errorf("IsPositive() = %v, want %v", got, tt.positive)
			}
		})
	}
}

func TestConstants(t *testing.T) {
	if Zero != (Duration{}) {
		t.Error("Zero is not the zero value")
	}
	if Second != Milliseconds(1_000) || Millisecond != Microseconds(1_000) ||
		Microsecond != Nanoseconds(1_000) {
		t.Error("unit constants disagree with constructors")
	}
	if Week != Days(7) || Day != Hours(24) || Hour != Minutes(60) || Minute != Seconds(60) {
		t.Error("calendar-scale constants disagree with constructors")
	}
	if !Min.IsNegative() || !Max.IsPositive() {
		t.Error("Min/Max signs wrong")
	}
	checkInvariant(t, Min)
	checkInvariant(t, Max)
}

func TestCompare(t *testing.T) {
	ordered := []Duration{
		Min,
		Seconds(-2),
		New(-1, -500_000_000),
		Nanoseconds(-1),
		Zero,
		Nanosecond,
		New(1, 500_000_000),
		Seconds(2),
		Max,
	}
	for i, a := range ordered {
		for j, b := range ordered {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := a.Compare(b); got != want {
				t.Errorf("(%v).Compare(%v) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		d    Duration
		want string
	}{
		{Zero, "0.000000000s"},
		{New(1, 500_000_000), "1.500000000s"},
		{Nanoseconds(-1), "-0.000000001s"},
		{Seconds(-90), "-90.000000000s"},
		{Min, "-9223372036854775808.999999999s"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRoundTripParts(t *testing.T) {
	// Constructing from parts and reading the parts back reproduces the
	// normalized pair.
	tests := []struct {
		seconds     int64
		nanoseconds int32
	}{
		{0, 0},
		{1, 1},
		{-1, -1},
		{5, 999_999_999},
		{-5, -999_999_999},
		{math.MaxInt64, 999_999_999},
		{math.MinInt64, -999_999_999},
	}
	for _, tt := range tests {
		d := New(tt.seconds, tt.nanoseconds)
		if d.WholeSeconds() != tt.seconds || d.SubsecNanoseconds() != tt.nanoseconds {
			t.Errorf("round trip (%d, %d) -> (%d, %d)",
				tt.seconds, tt.nanoseconds, d.WholeSeconds(), d.SubsecNanoseconds())
		}
	}
}
