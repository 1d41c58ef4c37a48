package checkit

import (
	"fmt"
	"sort"
)

// Def pairs a raw callable with an optional custom help message and failure
// spec, mirroring the (callable, message, failure-type) definition form.
// Prefer the WithMessage and WithFailure constructors for the two-element
// forms.
type Def struct {
	Fn      any
	HelpMsg string
	Failure *FailureSpec
	Fields  map[string]any
}

// WithMessage defines a check from a callable and a custom help message for
// its failures.
func WithMessage(fn any, helpMsg string) Def {
	return Def{Fn: fn, HelpMsg: helpMsg}
}

// WithFailure defines a check from a callable and a custom failure spec to
// raise when it fails.
func WithFailure(fn any, spec *FailureSpec) Def {
	return Def{Fn: fn, Failure: spec}
}

// alwaysValid is the vacuous-truth check produced by an empty definition
// list.
var alwaysValid = Check{
	name: "always_valid",
	fn:   func(any, map[string]any) error { return nil },
}

// Compile parses one or more check definitions into a single normalized
// Check. A definition is one of:
//
//   - a Check (used as-is)
//   - a raw callable: func(any) bool, func(any) error, func(any) (bool, error),
//     or the context-aware func(any, map[string]any) bool|error variants
//   - a Def (callable plus message and/or failure spec)
//   - a []any of such definitions, meaning "all must pass"; only one level
//     of grouping is supported
//   - a map[string]any of message → definition pairs (see CompileMap)
//
// Several definitions are implicitly combined with And. A single resolved
// definition is used directly, without an And wrapper, to keep error
// messages minimal. An empty definition list compiles to an always
// succeeding check. Malformed definitions are reported immediately as
// configuration errors wrapping ErrBadDefinition.
func Compile(defs ...any) (Check, error) {
	checks, err := compileList(defs)
	if err != nil {
		return Check{}, err
	}
	return collapse(checks), nil
}

// CompileMap parses the mapping definition syntax: each key is the help
// message for one check, and each value identifies the callable, optionally
// grouped with a failure spec as []any{callable, spec}. The pairs are
// combined with And. A pair containing two callables, two messages or two
// specs is a configuration error. Pairs are compiled in sorted key order so
// reports are deterministic.
func CompileMap(m map[string]any) (Check, error) {
	checks, err := mapChecks(m)
	if err != nil {
		return Check{}, err
	}
	return collapse(checks), nil
}

// collapse applies the single-item simplification: no And wrapper around a
// lone check.
func collapse(checks []Check) Check {
	switch len(checks) {
	case 0:
		return alwaysValid
	case 1:
		return checks[0]
	default:
		return andChecks(checks)
	}
}

// compileList resolves a list of definitions into normalized checks. When a
// single non-tuple definition is given and it is a slice or mapping, its
// elements become the per-item definitions.
func compileList(defs []any) ([]Check, error) {
	unwrapped := false
	if len(defs) == 1 {
		switch d := defs[0].(type) {
		case []any:
			defs = d
			unwrapped = true
		case map[string]any:
			return mapChecks(d)
		}
	}

	checks := make([]Check, 0, len(defs))
	for _, def := range defs {
		switch d := def.(type) {
		case nil:
			return nil, fmt.Errorf("%w: nil definition", ErrBadDefinition)
		case Check:
			if !d.defined() {
				return nil, fmt.Errorf("%w: zero Check", ErrBadDefinition)
			}
			checks = append(checks, d)
		case Def:
			c, err := compileDef(d)
			if err != nil {
				return nil, err
			}
			checks = append(checks, c)
		case []any:
			if unwrapped {
				return nil, fmt.Errorf("%w: nested groups beyond one level are not supported", ErrBadDefinition)
			}
			c, err := And(d...)
			if err != nil {
				return nil, err
			}
			checks = append(checks, c)
		case map[string]any:
			mcs, err := mapChecks(d)
			if err != nil {
				return nil, err
			}
			checks = append(checks, mcs...)
		default:
			c, err := FailureRaiser(def, "", nil, nil)
			if err != nil {
				return nil, err
			}
			checks = append(checks, c)
		}
	}
	return checks, nil
}

func compileDef(d Def) (Check, error) {
	switch d.Fn.(type) {
	case nil:
		return Check{}, fmt.Errorf("%w: Def without a callable", ErrBadDefinition)
	case Def, []any, map[string]any:
		return Check{}, fmt.Errorf("%w: Def.Fn must be a callable, got %T", ErrBadDefinition, d.Fn)
	}
	return FailureRaiser(d.Fn, d.HelpMsg, d.Failure, d.Fields)
}

func mapChecks(m map[string]any) ([]Check, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	checks := make([]Check, 0, len(keys))
	for _, msg := range keys {
		c, err := mapPair(msg, m[msg])
		if err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}
	return checks, nil
}

// mapPair resolves one key/value pair of the mapping syntax. The key is the
// help message; the value contributes the callable and, optionally, a
// failure spec. Each role may appear at most once across the pair.
func mapPair(msg string, value any) (Check, error) {
	elements, ok := value.([]any)
	if !ok {
		elements = []any{value}
	}

	var fn any
	var spec *FailureSpec
	for _, elt := range elements {
		switch e := elt.(type) {
		case string:
			return Check{}, fmt.Errorf("%w: mapping pair %q contains two help messages", ErrBadDefinition, msg)
		case *FailureSpec:
			if spec != nil {
				return Check{}, fmt.Errorf("%w: mapping pair %q contains two failure specs", ErrBadDefinition, msg)
			}
			spec = e
		default:
			if fn != nil {
				return Check{}, fmt.Errorf("%w: mapping pair %q contains two callables", ErrBadDefinition, msg)
			}
			fn = e
		}
	}
	if fn == nil {
		return Check{}, fmt.Errorf("%w: mapping pair %q contains no callable", ErrBadDefinition, msg)
	}
	return FailureRaiser(fn, msg, spec, nil)
}
