package checks

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/checkit"
)

// TooShort is raised by MinLen and LenBetween when the value is shorter than
// the minimum length.
var TooShort = &checkit.FailureSpec{
	Name:    "TooShort",
	HelpMsg: "length should be at least {min_length}",
}

// TooLong is raised by MaxLen and LenBetween when the value is longer than
// the maximum length.
var TooLong = &checkit.FailureSpec{
	Name:    "TooLong",
	HelpMsg: "length should be at most {max_length}",
}

// Empty is raised by NotEmpty on zero-length values.
var Empty = &checkit.FailureSpec{
	Name:    "Empty",
	HelpMsg: "value should be non-empty",
}

// NotInAllowedValues is raised by IsIn when the value is outside the allowed
// set.
var NotInAllowedValues = &checkit.FailureSpec{
	Name:    "NotInAllowedValues",
	HelpMsg: "value should be one of {allowed_values}",
}

// InForbiddenValues is raised by NotIn when the value belongs to the
// forbidden set.
var InForbiddenValues = &checkit.FailureSpec{
	Name:    "InForbiddenValues",
	HelpMsg: "value should not be one of {forbidden_values}",
}

// NotSubsetOf is raised by IsSubset when the value holds elements outside
// the reference set.
var NotSubsetOf = &checkit.FailureSpec{
	Name:    "NotSubsetOf",
	HelpMsg: "value should be a subset of {ref_values}; unexpected elements: {unexpected}",
}

// DoesNotContainValue is raised by Contains when the item is missing from
// the container.
var DoesNotContainValue = &checkit.FailureSpec{
	Name:    "DoesNotContainValue",
	HelpMsg: "container should contain {ref_value}",
}

// length reports the length of a string, slice, array, map or channel.
func length(value any) (int, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true
	default:
		return 0, false
	}
}

// MinLen checks that the value has at least n elements. Applies to strings,
// slices, arrays, maps and channels; other types fail as type related.
func MinLen(n int) checkit.Check {
	return checkit.NewCheck(fmt.Sprintf("minlen(%d)", n), func(value any) error {
		l, ok := length(value)
		if !ok {
			return wrongType(value, "sized value")
		}
		if l < n {
			return TooShort.Fail(value, map[string]any{"min_length": n, "length": l})
		}
		return nil
	})
}

// MaxLen checks that the value has at most n elements.
func MaxLen(n int) checkit.Check {
	return checkit.NewCheck(fmt.Sprintf("maxlen(%d)", n), func(value any) error {
		l, ok := length(value)
		if !ok {
			return wrongType(value, "sized value")
		}
		if l > n {
			return TooLong.Fail(value, map[string]any{"max_length": n, "length": l})
		}
		return nil
	})
}

// LenBetween checks that the value's length is within [min, max].
func LenBetween(min, max int) checkit.Check {
	return checkit.NewCheck(fmt.Sprintf("len_between(%d, %d)", min, max), func(value any) error {
		l, ok := length(value)
		if !ok {
			return wrongType(value, "sized value")
		}
		if l < min {
			return TooShort.Fail(value, map[string]any{"min_length": min, "length": l})
		}
		if l > max {
			return TooLong.Fail(value, map[string]any{"max_length": max, "length": l})
		}
		return nil
	})
}

// NotEmpty checks that the value has at least one element.
func NotEmpty() checkit.Check {
	return checkit.NewCheck("not_empty", func(value any) error {
		l, ok := length(value)
		if !ok {
			return wrongType(value, "sized value")
		}
		if l == 0 {
			return Empty.Fail(value, nil)
		}
		return nil
	})
}

// IsIn checks that the value belongs to the allowed set.
func IsIn[T comparable](allowed ...T) checkit.Check {
	return checkit.NewCheck(fmt.Sprintf("is_in(%v)", allowed), func(value any) error {
		v, err := assert[T](value)
		if err != nil {
			return err
		}
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return NotInAllowedValues.Fail(value, map[string]any{"allowed_values": allowed})
	})
}

// NotIn checks that the value does not belong to the forbidden set.
func NotIn[T comparable](forbidden ...T) checkit.Check {
	return checkit.NewCheck(fmt.Sprintf("not_in(%v)", forbidden), func(value any) error {
		v, err := assert[T](value)
		if err != nil {
			return err
		}
		for _, f := range forbidden {
			if v == f {
				return InForbiddenValues.Fail(value, map[string]any{"forbidden_values": forbidden})
			}
		}
		return nil
	})
}

// IsSubset checks that every element of the value, a []T, belongs to the
// reference set.
func IsSubset[T comparable](reference ...T) checkit.Check {
	return checkit.NewCheck(fmt.Sprintf("is_subset(%v)", reference), func(value any) error {
		items, err := assert[[]T](value)
		if err != nil {
			return err
		}
		ref := make(map[T]struct{}, len(reference))
		for _, r := range reference {
			ref[r] = struct{}{}
		}
		var unexpected []T
		for _, item := range items {
			if _, ok := ref[item]; !ok {
				unexpected = append(unexpected, item)
			}
		}
		if len(unexpected) > 0 {
			return NotSubsetOf.Fail(value, map[string]any{
				"ref_values": reference,
				"unexpected": unexpected,
			})
		}
		return nil
	})
}

// Contains checks that the container holds item: a substring for strings, an
// element for slices and arrays, a key for maps.
func Contains(item any) checkit.Check {
	return checkit.NewCheck(fmt.Sprintf("contains(%v)", item), func(value any) error {
		rv := reflect.ValueOf(value)
		fields := map[string]any{"ref_value": item}
		switch rv.Kind() {
		case reflect.String:
			sub, ok := item.(string)
			if !ok {
				return wrongType(item, "string")
			}
			if strings.Contains(rv.String(), sub) {
				return nil
			}
			return DoesNotContainValue.Fail(value, fields)
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				if rv.Index(i).Interface() == item {
					return nil
				}
			}
			return DoesNotContainValue.Fail(value, fields)
		case reflect.Map:
			iv := reflect.ValueOf(item)
			if iv.IsValid() && iv.Type() == rv.Type().Key() && rv.MapIndex(iv).IsValid() {
				return nil
			}
			return DoesNotContainValue.Fail(value, fields)
		default:
			return wrongType(value, "container")
		}
	})
}
