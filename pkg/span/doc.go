// Package span implements a signed, nanosecond-resolution time span.
//
// # Duration
//
// Duration is an immutable value split into whole seconds (int64) and a
// sub-second nanosecond remainder (int32). The two fields always agree in
// sign: it is never the case that seconds is positive while nanoseconds is
// negative, or the reverse. Every constructor and every arithmetic
// operation maintains this invariant, so structural equality (==) is exact
// value equality.
//
// Compared to time.Duration, span.Duration covers roughly ±292 billion
// years instead of ±292 years, at the cost of a two-field representation.
// FromStd and Duration.Std convert between the two; Std fails with
// ErrConversionRange when the value does not fit.
//
// # Overflow Policies
//
// Every operation that can overflow is offered in three explicitly named
// forms so call sites state their failure expectation:
//
//   - Add, Sub, Mul, Div panic on overflow (logic-error policy, for
//     values the caller controls)
//   - CheckedAdd, CheckedSub, CheckedMul, CheckedDiv report ok=false
//     (for data-controlled magnitudes)
//   - SaturatingAdd, SaturatingSub, SaturatingMul clamp to Min or Max
//
// A Checked operation succeeds exactly when the matching Saturating
// operation returns an unclamped value.
//
// # Serialization
//
// Duration marshals to CBOR as a two-element [seconds, nanoseconds] array,
// and to JSON and YAML as a {seconds, nanoseconds} mapping. YAML
// additionally accepts a bare scalar number of seconds. Decoding always
// re-normalizes, so no codec can produce a value that violates the sign
// invariant.
package span
