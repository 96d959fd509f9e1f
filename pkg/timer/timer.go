package timer

import (
	"errors"
	"sync"
	"time"

	"github.com/tempus-project/tempus-go/pkg/instant"
	"github.com/tempus-project/tempus-go/pkg/span"
)

// Timer errors.
var (
	ErrTimerNotFound   = errors.New("timer not found")
	ErrInvalidDuration = errors.New("invalid timer duration")
)

// Timer represents an active named timer.
type Timer struct {
	// Name identifies this timer
	Name string

	// Started is the monotonic reading taken when the timer was set
	Started instant.Instant

	// Length is how long the timer runs
	Length span.Duration

	// Value is handed to the expiry callback when the timer fires
	Value any

	// timer drives automatic expiry
	timer *time.Timer
}

// Remaining returns the time until expiry, or Zero once expired.
func (t *Timer) Remaining() span.Duration {
	remaining := t.Length.SaturatingSub(t.Started.Elapsed())
	if remaining.IsNegative() {
		return span.Zero
	}
	return remaining
}

// IsExpired returns true if the timer has run for its full length.
func (t *Timer) IsExpired() bool {
	return t.Started.Elapsed().Compare(t.Length) >= 0
}

// Manager manages named single-shot timers.
type Manager struct {
	mu sync.RWMutex

	// Active timers by name
	timers map[string]*Timer

	// Callback when a timer fires
	onExpiry func(name string, value any)
}

// NewManager creates a new timer manager.
func NewManager() *Manager {
	return &Manager{
		timers: make(map[string]*Timer),
	}
}

// Set creates or replaces the timer for name. The timer starts immediately.
// The duration must be positive and within the host clock's range.
func (m *Manager) Set(name string, d span.Duration, value any) error {
	if !d.IsPositive() {
		return ErrInvalidDuration
	}
	host, err := d.Std()
	if err != nil {
		return ErrInvalidDuration
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Cancel existing timer if any
	if existing, exists := m.timers[name]; exists {
		existing.timer.Stop()
	}

	t := &Timer{
		Name:    name,
		Started: instant.Now(),
		Length:  d,
		Value:   value,
	}
	t.timer = time.AfterFunc(host, func() {
		m.expire(name, t)
	})

	m.timers[name] = t
	return nil
}

// Cancel stops a timer without triggering the expiry callback.
func (m *Manager) Cancel(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, exists := m.timers[name]
	if !exists {
		return ErrTimerNotFound
	}

	t.timer.Stop()
	delete(m.timers, name)
	return nil
}

// CancelAll stops every active timer without triggering callbacks.
func (m *Manager) CancelAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, t := range m.timers {
		t.timer.Stop()
		delete(m.timers, name)
	}
}

// Get returns timer info for name, or nil if no timer is set.
func (m *Manager) Get(name string) *Timer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if t, exists := m.timers[name]; exists {
		// Return a copy to avoid race conditions
		return &Timer{
			Name:    t.Name,
			Started: t.Started,
			Length:  t.Length,
			Value:   t.Value,
		}
	}
	return nil
}

// Count returns the number of active timers.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.timers)
}

// OnExpiry sets the callback invoked when a timer fires.
// The callback receives the timer name and the value that was set.
func (m *Manager) OnExpiry(fn func(name string, value any)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onExpiry = fn
}

// expire handles timer expiry. The pointer check skips stale callbacks
// from timers that were replaced after their AfterFunc already fired.
func (m *Manager) expire(name string, t *Timer) {
	m.mu.Lock()

	current, exists := m.timers[name]
	if !exists || current != t {
		m.mu.Unlock()
		return
	}

	value := t.Value
	delete(m.timers, name)

	callback := m.onExpiry

	m.mu.Unlock()

	// Call callback outside lock
	if callback != nil {
		callback(name, value)
	}
}
