package checkit

import (
	"reflect"
)

// NonePolicy controls how a Validator treats nil values. Callers that derive
// the policy from optionality information (optional parameters, nullable
// fields) must resolve it to one of these three values before constructing
// the Validator.
type NonePolicy int

const (
	// NoneValidate treats nil exactly like any other value: it flows
	// through the compiled check. This is the default.
	NoneValidate NonePolicy = iota
	// NoneSkip accepts nil without invoking the compiled check.
	NoneSkip
	// NoneFail rejects nil with a ValueIsNil failure without invoking the
	// compiled check.
	NoneFail
)

func (p NonePolicy) String() string {
	switch p {
	case NoneSkip:
		return "SKIP"
	case NoneFail:
		return "FAIL"
	default:
		return "VALIDATE"
	}
}

// SkipOnNil wraps a check definition so that nil values (including typed nil
// pointers, maps and slices) are accepted immediately, without invoking the
// inner check.
func SkipOnNil(def any) (Check, error) {
	child, err := Compile(def)
	if err != nil {
		return Check{}, err
	}
	return Check{
		name: "skip_on_nil(" + child.Name() + ")",
		fn: func(value any, ctx map[string]any) error {
			if isNil(value) {
				return nil
			}
			return child.Eval(value, ctx)
		},
	}, nil
}

// FailOnNil wraps a check definition so that nil values are rejected
// immediately with a ValueIsNil failure, without invoking the inner check.
func FailOnNil(def any) (Check, error) {
	child, err := Compile(def)
	if err != nil {
		return Check{}, err
	}
	name := "fail_on_nil(" + child.Name() + ")"
	return Check{
		name: name,
		fn: func(value any, ctx map[string]any) error {
			if isNil(value) {
				f := valueIsNil.Fail(value, nil)
				f.Check = name
				return f
			}
			return child.Eval(value, ctx)
		},
	}, nil
}

// isNil reports whether v is nil, looking through interfaces holding typed
// nil pointers, maps, slices, channels and funcs.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
