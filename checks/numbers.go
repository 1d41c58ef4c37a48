package checks

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/checkit"
)

// IsNotEven is raised by IsEven on odd values.
var IsNotEven = &checkit.FailureSpec{
	Name:    "IsNotEven",
	HelpMsg: "value should be even",
}

// IsNotOdd is raised by IsOdd on even values.
var IsNotOdd = &checkit.FailureSpec{
	Name:    "IsNotOdd",
	HelpMsg: "value should be odd",
}

// IsNotMultipleOf is raised by IsMultipleOf when the value is not a multiple
// of the reference.
var IsNotMultipleOf = &checkit.FailureSpec{
	Name:    "IsNotMultipleOf",
	HelpMsg: "value should be a multiple of {ref_value}",
}

// asInteger widens any integer-kinded value to int64. Unsigned values above
// math.MaxInt64 and non-integer values are rejected.
func asInteger(value any) (int64, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > uint64(1)<<63-1 {
			return 0, false
		}
		return int64(u), true
	default:
		return 0, false
	}
}

// IsEven checks that the value is an even integer.
func IsEven() checkit.Check {
	return checkit.NewCheck("is_even", func(value any) error {
		n, ok := asInteger(value)
		if !ok {
			return wrongType(value, "integer")
		}
		if n%2 != 0 {
			return IsNotEven.Fail(value, nil)
		}
		return nil
	})
}

// IsOdd checks that the value is an odd integer.
func IsOdd() checkit.Check {
	return checkit.NewCheck("is_odd", func(value any) error {
		n, ok := asInteger(value)
		if !ok {
			return wrongType(value, "integer")
		}
		if n%2 == 0 {
			return IsNotOdd.Fail(value, nil)
		}
		return nil
	})
}

// IsMultipleOf checks that the value is an integer multiple of ref. A zero
// ref only admits a zero value.
func IsMultipleOf(ref int64) checkit.Check {
	return checkit.NewCheck(fmt.Sprintf("is_multiple_of(%d)", ref), func(value any) error {
		n, ok := asInteger(value)
		if !ok {
			return wrongType(value, "integer")
		}
		fields := map[string]any{"ref_value": ref}
		if ref == 0 {
			if n != 0 {
				return IsNotMultipleOf.Fail(value, fields)
			}
			return nil
		}
		if n%ref != 0 {
			return IsNotMultipleOf.Fail(value, fields)
		}
		return nil
	})
}
