package checks

import (
	"cmp"
	"fmt"

	"github.com/dmitrymomot/checkit"
)

// TooSmall is raised by Gt and Gte when the value falls below the minimum.
var TooSmall = &checkit.FailureSpec{
	Name:    "TooSmall",
	HelpMsg: "value should be greater than {min_value}",
}

// TooBig is raised by Lt and Lte when the value exceeds the maximum.
var TooBig = &checkit.FailureSpec{
	Name:    "TooBig",
	HelpMsg: "value should be less than {max_value}",
}

// NotInRange is raised by Between when the value falls outside the bounds.
var NotInRange = &checkit.FailureSpec{
	Name:    "NotInRange",
	HelpMsg: "value should be between {min_value} and {max_value} (included)",
}

// NotEqual is raised by Eq when the value differs from the reference.
var NotEqual = &checkit.FailureSpec{
	Name:    "NotEqual",
	HelpMsg: "value should be equal to {ref_value}",
}

// IsForbiddenValue is raised by NotEq when the value equals the forbidden
// reference.
var IsForbiddenValue = &checkit.FailureSpec{
	Name:    "IsForbiddenValue",
	HelpMsg: "value should not be equal to {ref_value}",
}

// Gt checks that the value is strictly greater than min. A value whose
// dynamic type is not T fails as type related.
func Gt[T cmp.Ordered](min T) checkit.Check {
	return checkit.NewCheck(fmt.Sprintf("gt(%v)", min), func(value any) error {
		v, err := assert[T](value)
		if err != nil {
			return err
		}
		if v <= min {
			return TooSmall.Fail(value, map[string]any{"min_value": min})
		}
		return nil
	})
}

// Gte checks that the value is greater than or equal to min.
func Gte[T cmp.Ordered](min T) checkit.Check {
	return checkit.NewCheck(fmt.Sprintf("gte(%v)", min), func(value any) error {
		v, err := assert[T](value)
		if err != nil {
			return err
		}
		if v < min {
			return TooSmall.Fail(value, map[string]any{"min_value": min})
		}
		return nil
	})
}

// Lt checks that the value is strictly less than max.
func Lt[T cmp.Ordered](max T) checkit.Check {
	return checkit.NewCheck(fmt.Sprintf("lt(%v)", max), func(value any) error {
		v, err := assert[T](value)
		if err != nil {
			return err
		}
		if v >= max {
			return TooBig.Fail(value, map[string]any{"max_value": max})
		}
		return nil
	})
}

// Lte checks that the value is less than or equal to max.
func Lte[T cmp.Ordered](max T) checkit.Check {
	return checkit.NewCheck(fmt.Sprintf("lte(%v)", max), func(value any) error {
		v, err := assert[T](value)
		if err != nil {
			return err
		}
		if v > max {
			return TooBig.Fail(value, map[string]any{"max_value": max})
		}
		return nil
	})
}

// Between checks that min <= value <= max.
func Between[T cmp.Ordered](min, max T) checkit.Check {
	return checkit.NewCheck(fmt.Sprintf("between(%v, %v)", min, max), func(value any) error {
		v, err := assert[T](value)
		if err != nil {
			return err
		}
		if v < min || v > max {
			return NotInRange.Fail(value, map[string]any{"min_value": min, "max_value": max})
		}
		return nil
	})
}

// Eq checks that the value equals ref.
func Eq[T comparable](ref T) checkit.Check {
	return checkit.NewCheck(fmt.Sprintf("eq(%v)", ref), func(value any) error {
		v, err := assert[T](value)
		if err != nil {
			return err
		}
		if v != ref {
			return NotEqual.Fail(value, map[string]any{"ref_value": ref})
		}
		return nil
	})
}

// NotEq checks that the value differs from ref.
func NotEq[T comparable](ref T) checkit.Check {
	return checkit.NewCheck(fmt.Sprintf("not_eq(%v)", ref), func(value any) error {
		v, err := assert[T](value)
		if err != nil {
			return err
		}
		if v == ref {
			return IsForbiddenValue.Fail(value, map[string]any{"ref_value": ref})
		}
		return nil
	})
}
