// Package clock provides pluggable wall-clock sources that report elapsed
// time as span.Duration values.
//
// # Sources
//
//   - SystemClock reads the operating system clock directly.
//   - NTPClock reads the system clock corrected by an offset measured
//     against an NTP server, re-measured periodically with exponential
//     backoff on failure.
//   - ManualClock is a deterministic clock advanced explicitly by the
//     caller, for tests and simulations.
//
// Applications depend on the Clock interface and inject the source:
//
//	var c clock.Clock = clock.NewSystemClock()
//	started := c.Now()
//	…
//	took := c.Since(started) // span.Duration
//
// NTP clock offsets are signed (the local clock may run ahead of or
// behind the reference), which is exactly what span.Duration represents;
// Offset exposes the current correction.
package clock
