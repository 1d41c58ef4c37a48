package checks

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/checkit"
)

// WrongType is the failure spec raised when a value's dynamic type does not
// fit the check. Failures from this spec are classified as type related.
var WrongType = &checkit.FailureSpec{
	Name:    "HasWrongType",
	HelpMsg: "value should be an instance of {ref_type}",
	Kind:    checkit.KindType,
}

// typeName returns the display name of T without instantiating it.
func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func wrongType(value any, refType string) *checkit.Failure {
	return WrongType.Fail(value, map[string]any{"ref_type": refType})
}

// IsType checks that the value's dynamic type is exactly T (or implements T
// when T is an interface type).
func IsType[T any]() checkit.Check {
	ref := typeName[T]()
	return checkit.NewCheck(fmt.Sprintf("instance_of(%s)", ref), func(value any) error {
		if _, ok := value.(T); !ok {
			return wrongType(value, ref)
		}
		return nil
	})
}

// assert narrows value to T, failing with a WrongType failure otherwise.
func assert[T any](value any) (T, error) {
	t, ok := value.(T)
	if !ok {
		return t, wrongType(value, typeName[T]())
	}
	return t, nil
}
