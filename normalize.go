package checkit

import (
	"fmt"
)

// FailureRaiser wraps a raw callable so that any non-success outcome — a
// false result, a returned error, or a panic — is reported as a *Failure
// carrying the offending value, the optional custom help message, spec and
// template fields, and the original error (if any) as its cause.
//
// fn may be one of the supported raw shapes (see Compile) or an existing
// Check. Wrapping a Check that already carries the same help message and
// spec is idempotent: the Check is returned unchanged.
//
// When the callable returns a *Failure directly, that failure passes through
// as-is; a help message requested at the wrapping site annotates it only if
// the failure does not already carry one, so the innermost, most specific
// message always wins.
func FailureRaiser(fn any, helpMsg string, spec *FailureSpec, fields map[string]any) (Check, error) {
	if c, ok := fn.(Check); ok {
		if !c.defined() {
			return Check{}, fmt.Errorf("%w: zero Check", ErrBadDefinition)
		}
		if c.helpMsg == helpMsg && c.spec == spec {
			return c, nil
		}
		inner := c
		return Check{
			name:    c.name,
			helpMsg: helpMsg,
			spec:    spec,
			fn: func(value any, ctx map[string]any) error {
				err := inner.Eval(value, ctx)
				if err == nil {
					return nil
				}
				return annotateFailure(err, helpMsg, spec, fields, inner.Name(), value)
			},
		}, nil
	}

	call, err := rawCall(fn)
	if err != nil {
		return Check{}, err
	}
	name := funcName(fn)
	return Check{
		name:    name,
		helpMsg: helpMsg,
		spec:    spec,
		fn: func(value any, ctx map[string]any) error {
			ok, res := safeCall(call, value, ctx)
			if ok && res == nil {
				return nil
			}
			return annotateFailure(res, helpMsg, spec, fields, name, value)
		},
	}, nil
}

// rawCall normalizes the closed set of accepted raw callable shapes into a
// canonical (ok, err) call. Boolean-returning predicates signal failure with
// false; error-returning checks signal failure with a non-nil error.
// Context-aware shapes additionally receive the keyword context forwarded by
// the Validator.
func rawCall(fn any) (func(value any, ctx map[string]any) (bool, error), error) {
	switch f := fn.(type) {
	case func(any) bool:
		return func(v any, _ map[string]any) (bool, error) { return f(v), nil }, nil
	case func(any) error:
		return func(v any, _ map[string]any) (bool, error) {
			err := f(v)
			return err == nil, err
		}, nil
	case func(any) (bool, error):
		return func(v any, _ map[string]any) (bool, error) { return f(v) }, nil
	case func(any, map[string]any) bool:
		return func(v any, ctx map[string]any) (bool, error) { return f(v, ctx), nil }, nil
	case func(any, map[string]any) error:
		return func(v any, ctx map[string]any) (bool, error) {
			err := f(v, ctx)
			return err == nil, err
		}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported callable shape %T", ErrBadDefinition, fn)
	}
}

// safeCall invokes call, recovering any panic into a failure cause so that
// a misbehaving user callable cannot crash the validation path.
func safeCall(call func(any, map[string]any) (bool, error), value any, ctx map[string]any) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			if e, isErr := r.(error); isErr {
				err = e
			} else {
				err = fmt.Errorf("panic: %v", r)
			}
		}
	}()
	return call(value, ctx)
}

// annotateFailure builds the failure reported by a failure raiser. A failure
// returned directly by the callable is passed through, annotated with the
// wrapping-site help message only when it has none of its own. Anything else
// (false result, plain error, recovered panic) is wrapped into a fresh
// failure of the requested spec.
func annotateFailure(res error, helpMsg string, spec *FailureSpec, fields map[string]any, name string, value any) error {
	switch f := res.(type) {
	case *Failure:
		if helpMsg != "" && f.HelpMsg == "" {
			clone := *f
			clone.HelpMsg = helpMsg
			clone.Fields = mergeFields(f.Fields, fields)
			return &clone
		}
		return f
	case *CompositionFailure:
		return f
	}

	s := spec
	if s == nil {
		s = invalidValue
	}
	msg := helpMsg
	if msg == "" {
		msg = s.HelpMsg
	}
	return &Failure{
		Spec:       s,
		Check:      name,
		WrongValue: value,
		HelpMsg:    msg,
		Kind:       s.Kind,
		Fields:     fields,
		Cause:      res,
	}
}

func mergeFields(base, extra map[string]any) map[string]any {
	if len(extra) == 0 {
		return base
	}
	merged := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
