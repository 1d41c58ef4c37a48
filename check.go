package checkit

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Check is the normalized validation function unit: an immutable pairing of
// a display name with an evaluation function. Eval returns nil on success
// and an error (normally a *Failure) on failure. Composite checks built by
// the composition operators exclusively own their children; nothing mutates
// a Check after compilation, so values are safe to share across goroutines.
type Check struct {
	name    string
	fn      func(value any, ctx map[string]any) error
	helpMsg string
	spec    *FailureSpec
}

// Name returns the check's display name, used in error reports.
func (c Check) Name() string { return c.name }

// Eval runs the check against value. The ctx map carries optional keyword
// context forwarded to context-aware callables. A zero Check always
// succeeds.
func (c Check) Eval(value any, ctx map[string]any) error {
	if c.fn == nil {
		return nil
	}
	return c.fn(value, ctx)
}

func (c Check) defined() bool { return c.fn != nil }

// NewCheck builds a Check from a name and an evaluation function. The
// function should return nil on success and a *Failure (or any error) on
// failure; a panic inside fn is recovered and reported as a generic failure
// with the panic as its cause. Failures returned without a check name are
// stamped with this check's name for reporting.
//
// Most callers want Compile or the checks catalog instead; NewCheck is the
// escape hatch for hand-built checks.
func NewCheck(name string, fn func(value any) error) Check {
	return Check{
		name: name,
		fn: func(value any, _ map[string]any) error {
			err := contain(name, value, func() error { return fn(value) })
			return stampCheckName(err, name)
		},
	}
}

// contain runs eval, converting a panic into a generic failure that carries
// the recovered value as its cause.
func contain(name string, value any, eval func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("panic: %v", r)
			}
			err = &Failure{
				Spec:       invalidValue,
				Check:      name,
				WrongValue: value,
				Cause:      cause,
			}
		}
	}()
	return eval()
}

// stampCheckName fills the Check field of a directly returned failure so
// that reports name the check that produced it. Already-named failures are
// left alone.
func stampCheckName(err error, name string) error {
	switch f := err.(type) {
	case *Failure:
		if f.Check == "" {
			f.Check = name
		}
	case *CompositionFailure:
		if f.Check == "" {
			f.Check = name
		}
	}
	return err
}

// funcName derives a display name for a raw callable from its runtime
// symbol, falling back to the dynamic type when no symbol is available.
func funcName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() == reflect.Func {
		if rf := runtime.FuncForPC(rv.Pointer()); rf != nil {
			name := rf.Name()
			if i := strings.LastIndex(name, "/"); i >= 0 {
				name = name[i+1:]
			}
			name = strings.TrimSuffix(name, "-fm")
			return name
		}
	}
	return fmt.Sprintf("%T", fn)
}

// checkNames joins the display names of several checks for composite names.
func checkNames(cs []Check) string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name()
	}
	return strings.Join(names, ", ")
}
