// Package timer implements named single-shot expiry timers driven by
// span.Duration and monotonic instant readings.
//
// A Manager tracks at most one timer per name. Setting a timer for a name
// that already has one replaces it; there is no stacking or accumulation.
// Each timer carries an opaque value that is handed to the expiry callback,
// so callers can attach whatever state should be cleared or applied when
// the timer fires.
//
// # Monotonic Deadlines
//
// Timers record their start as an instant.Instant and compute remaining
// time against the monotonic clock, so wall-clock adjustments (NTP steps,
// manual changes) never shorten or lengthen a running timer.
//
// # Expiry
//
// Expiry is delivered through a single callback registered with OnExpiry.
// The callback runs outside the manager lock and receives the timer name
// and its value. A timer cancelled before it fires never reaches the
// callback.
package timer
