// Package checks provides a catalog of ready-made validation checks for the
// checkit package: type assertions, ordered comparisons, integer properties
// and container checks.
//
// Every function returns a checkit.Check suitable for direct use or for
// composition with checkit.And, checkit.Or and friends. Checks carry
// descriptive display names ("gt(0)", "instance_of(int)") so composition
// reports read naturally without extra configuration.
//
// # Usage
//
//	v := checkit.MustNew([]any{
//		checks.IsType[int](),
//		checks.Gte(0),
//		checks.IsMultipleOf(100),
//	})
//	if err := v.Validate("surface", s.Surface); err != nil {
//		return err
//	}
//
// # Error Handling
//
// Catalog checks fail with *checkit.Failure values built from package-level
// failure specs (TooSmall, HasWrongType, ...), so callers can distinguish
// failure modes by spec and match the checkit.ErrValueMismatch and
// checkit.ErrTypeMismatch sentinels with errors.Is. A value whose dynamic
// type does not fit a check (a string given to Gt(0), a struct given to
// MinLen) fails with the HasWrongType spec and is classified as type
// related.
package checks
