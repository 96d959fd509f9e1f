package clock

import (
	"sync"
	"time"

	"github.com/tempus-project/tempus-go/pkg/span"
)

// Clock is a wall-clock source. Implementations must be safe for
// concurrent use.
type Clock interface {
	// Now returns the current wall-clock time.
	Now() time.Time

	// Since returns the span from t to Now. Negative when t is in the
	// future of this clock.
	Since(t time.Time) span.Duration
}

// SystemClock reads the operating system clock. The zero value is usable.
type SystemClock struct{}

// NewSystemClock returns a Clock backed by the operating system clock.
func NewSystemClock() Clock { return SystemClock{} }

// Now returns the current system time.
func (SystemClock) Now() time.Time { return time.Now() }

// Since returns the span from t to the current system time.
func (SystemClock) Since(t time.Time) span.Duration {
	return span.FromStd(time.Since(t))
}

// Compile-time interface satisfaction checks.
var (
	_ Clock = SystemClock{}
	_ Clock = (*ManualClock)(nil)
	_ Clock = (*NTPClock)(nil)
)

// ManualClock is a deterministic clock that only moves when told to.
// Useful in tests that need reproducible elapsed times.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock returns a ManualClock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current position.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Since returns the span from t to the clock's current position.
func (c *ManualClock) Since(t time.Time) span.Duration {
	return span.FromStd(c.Now().Sub(t))
}

// Advance moves the clock forward (or backward, for a negative span) by
// d. It panics if d does not fit a time.Duration.
func (c *ManualClock) Advance(d span.Duration) {
	std, err := d.Std()
	if err != nil {
		panic("clock: manual clock advanced beyond time.Duration range")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(std)
}

// Set moves the clock to an absolute position.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
