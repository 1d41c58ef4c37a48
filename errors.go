package checkit

import (
	"errors"
	"runtime"
)

// Common sentinel errors exposed by the package.
var (
	// ErrBadDefinition is wrapped by every configuration-time error returned
	// when a check definition does not match the supported syntax. These are
	// programmer mistakes, not bad runtime values, and are reported before
	// any value is checked.
	ErrBadDefinition = errors.New("invalid check definition")

	// ErrValueMismatch matches (via errors.Is) failures and validation
	// errors classified as value related.
	ErrValueMismatch = errors.New("value mismatch")

	// ErrTypeMismatch matches (via errors.Is) failures and validation
	// errors classified as type related.
	ErrTypeMismatch = errors.New("type mismatch")
)

// Kind classifies a failure's underlying cause as either a type mismatch or
// a value mismatch. The zero value means the classification has not been
// decided; most consumers resolve it to KindValue as the default.
type Kind int

const (
	KindUnspecified Kind = iota
	KindValue
	KindType
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "ValueMismatch"
	case KindType:
		return "TypeMismatch"
	default:
		return "Unspecified"
	}
}

// Classify inspects err and its cause chain and reports whether the failure
// is type related or value related. The walk is depth-first: composition
// failures are resolved through their children in evaluation order, and the
// first type-related hit wins. A failed type assertion inside a check (a
// recovered *runtime.TypeAssertionError) counts as type related. When
// nothing decisive is found, KindUnspecified is returned so that callers can
// apply their own default (the Validator defaults to KindValue).
func Classify(err error) Kind {
	switch e := err.(type) {
	case nil:
		return KindUnspecified
	case *CompositionFailure:
		if e.Kind != KindUnspecified {
			return e.Kind
		}
		for _, r := range e.Results {
			if r.Err == nil {
				continue
			}
			if Classify(r.Err) == KindType {
				return KindType
			}
		}
		return Classify(e.Cause)
	case *Failure:
		if e.Kind != KindUnspecified {
			return e.Kind
		}
		return Classify(e.Cause)
	}

	var taErr *runtime.TypeAssertionError
	if errors.As(err, &taErr) {
		return KindType
	}
	if inner := errors.Unwrap(err); inner != nil {
		return Classify(inner)
	}
	return KindUnspecified
}

// orValueKind resolves an undecided classification to the value-related
// default.
func orValueKind(k Kind) Kind {
	if k == KindUnspecified {
		return KindValue
	}
	return k
}
