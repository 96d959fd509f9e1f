// Package instant provides an opaque monotonic timestamp for elapsed-time
// measurement.
//
// An Instant wraps a single reading of the runtime's monotonic clock. It
// carries no wall-clock meaning and cannot be serialized or compared
// across processes; its only operations are ordering, subtraction (which
// yields a signed span.Duration), and shifting by a span.Duration.
//
// The underlying reading is an unsigned magnitude, so a signed Duration
// moves an Instant by explicit sign dispatch: a positive duration adds to
// the reading, a negative one subtracts. Add and Sub panic when the
// shifted reading leaves the representable range; CheckedAdd and
// CheckedSub report ok=false instead.
//
// Instants are immutable values. Copies, comparisons, and reads from
// multiple goroutines need no synchronization.
package instant
