package checkit

import (
	"fmt"
)

// And combines check definitions into a single check that evaluates its
// children in order and stops at the first failure, reporting every prior
// child as a success and the failing child's detail in an AtLeastOneFailed
// composition failure. Children after the failure are never evaluated. A
// single definition is returned unwrapped.
func And(defs ...any) (Check, error) {
	checks, err := composeList("and", defs)
	if err != nil {
		return Check{}, err
	}
	if len(checks) == 1 {
		return checks[0], nil
	}
	return andChecks(checks), nil
}

func andChecks(checks []Check) Check {
	return Check{
		name: "and(" + checkNames(checks) + ")",
		fn: func(value any, ctx map[string]any) error {
			results := make([]ChildResult, 0, len(checks))
			for _, c := range checks {
				if err := c.Eval(value, ctx); err != nil {
					results = append(results, ChildResult{Name: c.Name(), Err: err})
					return newCompositionFailure("and", AtLeastOneFailed, value, results, err)
				}
				results = append(results, ChildResult{Name: c.Name(), Err: nil})
			}
			return nil
		},
	}
}

// Or combines check definitions into a single check that succeeds when at
// least one child succeeds. Unlike And it never short-circuits: every child
// is evaluated, with all errors silently contained, so that the AllFailed
// report names every alternative and why it failed.
func Or(defs ...any) (Check, error) {
	checks, err := composeList("or", defs)
	if err != nil {
		return Check{}, err
	}
	if len(checks) == 1 {
		return checks[0], nil
	}
	return Check{
		name: "or(" + checkNames(checks) + ")",
		fn: func(value any, ctx map[string]any) error {
			results := make([]ChildResult, 0, len(checks))
			succeeded := false
			for _, c := range checks {
				err := c.Eval(value, ctx)
				if err == nil {
					succeeded = true
				}
				results = append(results, ChildResult{Name: c.Name(), Err: err})
			}
			if succeeded {
				return nil
			}
			return newCompositionFailure("or", AllFailed, value, results, nil)
		},
	}, nil
}

// Xor combines check definitions into a single check that succeeds when
// exactly one child succeeds. Like Or it always evaluates every child: the
// full success count is needed to detect the over-satisfied case, reported
// as TooManySuccess (listing which children unexpectedly succeeded) as
// opposed to the AllFailed report when no child succeeds.
func Xor(defs ...any) (Check, error) {
	checks, err := composeList("xor", defs)
	if err != nil {
		return Check{}, err
	}
	if len(checks) == 1 {
		return checks[0], nil
	}
	return Check{
		name: "xor(" + checkNames(checks) + ")",
		fn: func(value any, ctx map[string]any) error {
			results := make([]ChildResult, 0, len(checks))
			successes := 0
			for _, c := range checks {
				err := c.Eval(value, ctx)
				if err == nil {
					successes++
				}
				results = append(results, ChildResult{Name: c.Name(), Err: err})
			}
			switch {
			case successes == 1:
				return nil
			case successes == 0:
				return newCompositionFailure("xor", AllFailed, value, results, nil)
			default:
				return newCompositionFailure("xor", TooManySuccess, value, results, nil)
			}
		},
	}, nil
}

// Not inverts a check definition: when the child fails with a check failure,
// Not succeeds; when the child succeeds, Not fails with a DidNotFail
// failure. A []any definition is combined with an implicit And first.
//
// By default an error that is not a check failure propagates unchanged — an
// unexpected error from an unwrapped callable is not an "expected failure".
// Set catchAll to treat any error from the child as a successful negation.
func Not(def any, catchAll bool) (Check, error) {
	child, err := Compile(def)
	if err != nil {
		return Check{}, err
	}
	name := "not(" + child.Name() + ")"
	return Check{
		name: name,
		fn: func(value any, ctx map[string]any) error {
			err := child.Eval(value, ctx)
			if err == nil {
				f := didNotFail.Fail(value, nil)
				f.Check = child.Name()
				return f
			}
			if catchAll || IsFailure(err) {
				return nil
			}
			return err
		},
	}, nil
}

// NotAll is shorthand for Not over the implicit And of several definitions,
// without catch-all behavior.
func NotAll(defs ...any) (Check, error) {
	child, err := And(defs...)
	if err != nil {
		return Check{}, err
	}
	return Not(child, false)
}

// composeList compiles operator children, rejecting empty child lists.
func composeList(op string, defs []any) ([]Check, error) {
	checks, err := compileList(defs)
	if err != nil {
		return nil, err
	}
	if len(checks) == 0 {
		return nil, fmt.Errorf("%w: %s() requires at least one check", ErrBadDefinition, op)
	}
	return checks, nil
}
