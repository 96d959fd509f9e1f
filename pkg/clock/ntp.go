package clock

import (
	"log/slog"
	"sync"
	"time"

	"github.com/beevik/ntp"

	"github.com/tempus-project/tempus-go/pkg/span"
)

// Config configures an NTPClock.
type Config struct {
	// Server is the NTP server to query, e.g. "pool.ntp.org".
	Server string `yaml:"server"`

	// SyncInterval is how often the offset is re-measured. 5-10 minutes
	// is a reasonable range.
	SyncInterval time.Duration `yaml:"syncInterval"`

	// BackoffInitial is the retry delay after a failed query. The delay
	// doubles on each consecutive failure up to BackoffMax.
	BackoffInitial time.Duration `yaml:"backoffInitial"`

	// BackoffMax caps the retry delay.
	BackoffMax time.Duration `yaml:"backoffMax"`

	// UnhealthyOffset marks the clock unhealthy when the measured offset
	// magnitude exceeds it. Zero disables the check.
	UnhealthyOffset span.Duration `yaml:"unhealthyOffset"`

	// Logger receives sync events. Defaults to slog.Default.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns the configuration used for unset fields.
func DefaultConfig() Config {
	return Config{
		Server:         "pool.ntp.org",
		SyncInterval:   5 * time.Minute,
		BackoffInitial: 5 * time.Second,
		BackoffMax:     5 * time.Minute,
	}
}

// NTPClock reads the system clock corrected by an offset measured against
// an NTP server. The offset is re-measured lazily: a read past the sync
// interval triggers a query, and failed queries back off exponentially so
// an unreachable server does not stall reads.
type NTPClock struct {
	cfg   Config
	query func(server string) (*ntp.Response, error)

	mu          sync.Mutex
	offset      time.Duration
	lastSync    time.Time
	lastAttempt time.Time
	backoff     time.Duration
	lastErr     error
}

// NewNTPClock creates an NTP-corrected clock and performs the initial
// offset measurement. A failed initial query is not fatal: the clock
// starts with a zero offset and retries on later reads.
func NewNTPClock(cfg Config) *NTPClock {
	def := DefaultConfig()
	if cfg.Server == "" {
		cfg.Server = def.Server
	}
	if cfg.SyncInterval <= 0 {
		cfg.SyncInterval = def.SyncInterval
	}
	if cfg.BackoffInitial <= 0 {
		cfg.BackoffInitial = def.BackoffInitial
	}
	if cfg.BackoffMax <= 0 {
		cfg.BackoffMax = def.BackoffMax
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	c := &NTPClock{cfg: cfg, query: ntp.Query}
	if err := c.sync(); err != nil {
		c.lastErr = err
		c.backoff = cfg.BackoffInitial
		cfg.Logger.Warn("initial NTP sync failed, starting with zero offset",
			"server", cfg.Server, "error", err)
	}
	return c
}

// Now returns the current time corrected by the measured NTP offset,
// re-measuring first if the sync interval has passed.
func (c *NTPClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maybeSync()
	return time.Now().Add(c.offset)
}

// Since returns the span from t to the corrected current time.
func (c *NTPClock) Since(t time.Time) span.Duration {
	return span.FromStd(c.Now().Sub(t))
}

// Offset returns the current correction applied to the system clock.
// Positive means the system clock runs behind the reference.
func (c *NTPClock) Offset() span.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return span.FromStd(c.offset)
}

// Health reports whether the clock is trustworthy, with the current
// offset, the time of the last successful sync, and the last query error.
// The clock is unhealthy after a failed sync or when the offset magnitude
// exceeds the configured threshold.
func (c *NTPClock) Health() (healthy bool, offset span.Duration, lastSync time.Time, lastErr error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	offset = span.FromStd(c.offset)
	if c.lastErr != nil {
		return false, offset, c.lastSync, c.lastErr
	}
	if threshold := c.cfg.UnhealthyOffset; threshold.IsPositive() {
		if offset.Abs().Compare(threshold) > 0 {
			return false, offset, c.lastSync, nil
		}
	}
	return true, offset, c.lastSync, nil
}

// maybeSync re-measures the offset when the effective interval has
// passed since the last attempt. Gating on the attempt time rather than
// the success time is what makes the backoff hold: an unreachable server
// would otherwise be re-queried on every read. Callers hold c.mu.
func (c *NTPClock) maybeSync() {
	effective := c.cfg.SyncInterval
	if c.backoff > 0 {
		effective = c.backoff
	}
	if time.Since(c.lastAttempt) < effective {
		return
	}
	if err := c.sync(); err != nil {
		c.lastErr = err
		if c.backoff == 0 {
			c.backoff = c.cfg.BackoffInitial
		} else if c.backoff < c.cfg.BackoffMax {
			c.backoff *= 2
			if c.backoff > c.cfg.BackoffMax {
				c.backoff = c.cfg.BackoffMax
			}
		}
		c.cfg.Logger.Warn("NTP sync failed",
			"server", c.cfg.Server, "retryIn", c.backoff, "error", err)
		return
	}
	c.backoff = 0
}

// sync queries the server and records the measured offset.
func (c *NTPClock) sync() error {
	c.lastAttempt = time.Now()
	resp, err := c.query(c.cfg.Server)
	if err != nil {
		return err
	}
	c.offset = resp.ClockOffset
	c.lastSync = time.Now()
	c.lastErr = nil
	c.cfg.Logger.Debug("NTP sync succeeded",
		"server", c.cfg.Server, "offset", span.FromStd(c.offset))
	return nil
}
