// Package checkit provides a small, composable validation engine that
// normalizes heterogeneous check functions into a uniform contract and turns
// any failure into a single, richly contextualized error.
//
// A check is any callable that receives a value and reports success or
// failure. Checkit accepts several raw shapes (boolean predicates,
// error-returning functions, context-aware variants), wraps them so that a
// false result, a returned error, or a panic all surface as a structured
// *Failure, and lets you compose wrapped checks with boolean operators
// (And, Or, Xor, Not) that keep precise per-child bookkeeping.
//
// # Architecture
//
// Core building blocks, leaf first:
//
//   - Failure / FailureSpec   – structured, templated failure of one check
//   - CompositionFailure      – failure of a boolean combinator, with an
//     ordered per-child success/failure report
//   - Check                   – the normalized check function unit
//   - FailureRaiser / Compile – the normalizer and definition compiler
//   - And, Or, Xor, Not       – composition operators
//   - Validator               – binds a compiled Check to error reporting
//     configuration and synthesizes the outward *ValidationError
//
// Every failure carries a classification (value mismatch vs type mismatch)
// derived from its innermost cause, so a predicate that fails because the
// value has the wrong dynamic type produces an error that matches
// ErrTypeMismatch via errors.Is without any inspection by the caller.
//
// # Usage
//
//	v, err := checkit.New([]any{
//		checks.Gt(0),
//		checkit.WithMessage(checks.IsMultipleOf(100), "surface must be a round number"),
//	})
//	if err != nil {
//		// configuration error: bad check definition
//	}
//	if err := v.Validate("surface", 250); err != nil {
//		var verr *checkit.ValidationError
//		errors.As(err, &verr) // verr.VarName, verr.VarValue, verr.Failure
//	}
//
// One-shot helpers are available for inline assertions:
//
//	if err := checkit.AssertValid("age", age, checks.Between(0, 150)); err != nil { ... }
//	if checkit.Valid(s, checks.MinLen(3)) { ... }
//
// # Error Handling
//
// Configuration mistakes (malformed definitions) are reported at compile
// time as ordinary errors wrapping ErrBadDefinition. Validation failures are
// reported as *ValidationError, which implements Is for the
// ErrValueMismatch/ErrTypeMismatch sentinels and Unwrap for the underlying
// failure chain.
//
// # Concurrency
//
// Checks and Validators are immutable after construction and safe for
// concurrent use. The only shared mutable state is the process-wide error
// spec cache, which is guarded internally.
package checkit
