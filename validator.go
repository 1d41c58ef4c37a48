package checkit

import (
	"errors"
	"fmt"
	"sync"
)

// ErrorSpec declares an outward validation error kind: a name, a default
// help message template, and an optional explicit classification. Validators
// raise *ValidationError values resolved against an ErrorSpec; applications
// declare one spec per applicative error so failures carry a unique,
// matchable identity.
//
// A spec whose Kind is left unspecified is refined at validation time: the
// concrete spec attached to the raised error is derived from the declared
// spec and the triggering failure's classification, through a process-wide
// cache that guarantees the same (spec, classification) pair always yields
// the identical *ErrorSpec.
type ErrorSpec struct {
	Name    string
	HelpMsg string
	Kind    Kind
}

var baseErrorSpec = &ErrorSpec{Name: "ValidationError"}

type specKey struct {
	declared *ErrorSpec
	kind     Kind
}

// The error spec cache lives for the whole process: its size is bounded by the
// number of declared error specs, not by validation volume. Guarded so
// concurrent first-use cannot race two distinct derived specs into
// existence for the same key.
var (
	specCacheMu sync.Mutex
	specCache   = make(map[specKey]*ErrorSpec)
)

func resolveErrorSpec(declared *ErrorSpec, kind Kind) *ErrorSpec {
	if declared.Kind != KindUnspecified {
		// The declared spec already commits to a category; no synthesis.
		return declared
	}

	specCacheMu.Lock()
	defer specCacheMu.Unlock()
	key := specKey{declared: declared, kind: kind}
	if s, ok := specCache[key]; ok {
		return s
	}
	s := &ErrorSpec{
		Name:    fmt.Sprintf("%s[%s]", declared.Name, kind),
		HelpMsg: declared.HelpMsg,
		Kind:    kind,
	}
	specCache[key] = s
	return s
}

// ValidationError is the outward-facing error raised when validation fails.
// It carries the name and value under validation, the triggering check
// failure (nil when the check produced an error that is not a failure), the
// resolved error spec and classification, and the merged template context.
// A ValidationError is constructed once per failed validation and never
// mutated afterward.
type ValidationError struct {
	VarName  string
	VarValue any
	// Failure is the triggering check failure, nil if the compiled check
	// produced a non-failure error.
	Failure CheckFailure
	// Spec is the resolved error spec (possibly derived from the declared
	// spec and the failure classification).
	Spec *ErrorSpec
	// Kind is the resolved classification.
	Kind Kind
	// HelpMsg is the help message template in effect for this error.
	HelpMsg string
	// Context holds the extra named values available for templating.
	Context map[string]any

	checkName string
	cause     error
}

// Message renders the error's help message template against the validation
// context (var_name, var_value and any extra context arguments).
func (e *ValidationError) Message() (string, error) {
	if e.HelpMsg == "" {
		return "", nil
	}
	return renderTemplate(e.HelpMsg, e.templateContext())
}

func (e *ValidationError) templateContext() map[string]any {
	ctx := make(map[string]any, len(e.Context)+3)
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx["var_name"] = e.VarName
	ctx["var_value"] = e.VarValue
	ctx["wrong_value"] = e.VarValue
	return ctx
}

func (e *ValidationError) Error() string {
	msg, err := e.Message()
	if err != nil {
		// A bad template must not mask the validation failure itself.
		msg = err.Error()
	}

	what := "[" + displayValue(e.VarValue) + "]"
	if e.VarName != "" {
		what = "[" + e.VarName + "=" + displayValue(e.VarValue) + "]"
	}

	var detail string
	switch {
	case e.Failure != nil:
		detail = fmt.Sprintf("Check [%s] raised [%s: %s]", e.checkName, failureName(e.cause), e.cause)
	case e.cause != nil:
		detail = fmt.Sprintf("Check [%s] raised [%T: %v]", e.checkName, e.cause, e.cause)
	default:
		detail = fmt.Sprintf("Check [%s] failed", e.checkName)
	}

	return fmt.Sprintf("%s: %sError validating %s. %s.", e.Spec.Name, endWithDot(msg), what, detail)
}

func (e *ValidationError) Unwrap() error { return e.cause }

// Is matches the ErrValueMismatch/ErrTypeMismatch sentinels according to the
// error's resolved classification.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrValueMismatch:
		return e.Kind == KindValue
	case ErrTypeMismatch:
		return e.Kind == KindType
	}
	return false
}

// Validator binds a compiled check to a name-agnostic error reporting
// configuration: a declared error spec, an optional help message template,
// a nil-handling policy and extra template context. A Validator is built
// once and may be reused for any number of values, concurrently.
type Validator struct {
	main    Check
	spec    *ErrorSpec
	helpMsg string
	policy  NonePolicy
	context map[string]any
}

// Option configures a Validator during construction.
type Option func(*Validator)

// WithErrorSpec declares the error spec raised on failure instead of the
// generic ValidationError spec.
func WithErrorSpec(spec *ErrorSpec) Option {
	return func(v *Validator) {
		if spec != nil {
			v.spec = spec
		}
	}
}

// WithHelpMsg sets a custom help message template for raised errors. The
// template may reference {var_name}, {var_value} and any context argument.
func WithHelpMsg(msg string) Option {
	return func(v *Validator) { v.helpMsg = msg }
}

// WithNonePolicy selects how nil values are treated. Default is
// NoneValidate.
func WithNonePolicy(policy NonePolicy) Option {
	return func(v *Validator) { v.policy = policy }
}

// WithContext adds one named value to the template context, forwarded to
// context-aware callables and available to help message templates.
func WithContext(key string, value any) Option {
	return func(v *Validator) {
		if v.context == nil {
			v.context = make(map[string]any)
		}
		v.context[key] = value
	}
}

// New builds a Validator from a check definition (see Compile for the
// accepted forms; pass a []any to combine several definitions with an
// implicit And). The definition is compiled once, then wrapped according to
// the nil policy. A malformed definition is reported here, before any value
// is checked.
func New(def any, opts ...Option) (*Validator, error) {
	v := &Validator{spec: baseErrorSpec}
	for _, opt := range opts {
		opt(v)
	}

	main, err := Compile(def)
	if err != nil {
		return nil, err
	}
	switch v.policy {
	case NoneSkip:
		main, err = SkipOnNil(main)
	case NoneFail:
		main, err = FailOnNil(main)
	}
	if err != nil {
		return nil, err
	}
	v.main = main
	return v, nil
}

// MustNew is like New but panics on a malformed definition. It simplifies
// package-level validator variables, in the manner of regexp.MustCompile.
func MustNew(def any, opts ...Option) *Validator {
	v, err := New(def, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Check returns the compiled main check, including the nil-policy wrapper.
func (v *Validator) Check() Check { return v.main }

// Validate runs the compiled check against the named value. It returns nil
// on success and a *ValidationError on failure. Nothing is retried: a
// validation failure is a terminal, caller-visible outcome.
func (v *Validator) Validate(name string, value any) error {
	if err := v.main.Eval(value, v.context); err != nil {
		return v.newError(name, value, err)
	}
	return nil
}

// IsValid runs the compiled check and reports success as a boolean,
// swallowing all failure detail. Useful for case handling rather than
// defensive programming.
func (v *Validator) IsValid(value any) bool {
	return v.main.Eval(value, v.context) == nil
}

func (v *Validator) newError(name string, value any, cause error) *ValidationError {
	var f CheckFailure
	errors.As(cause, &f)

	kind := KindValue
	if f != nil {
		kind = f.Classification()
	}
	spec := resolveErrorSpec(v.spec, kind)

	helpMsg := v.helpMsg
	if helpMsg == "" {
		helpMsg = spec.HelpMsg
	}
	ctx := make(map[string]any, len(v.context))
	for k, val := range v.context {
		ctx[k] = val
	}

	return &ValidationError{
		VarName:   name,
		VarValue:  value,
		Failure:   f,
		Spec:      spec,
		Kind:      spec.Kind,
		HelpMsg:   helpMsg,
		Context:   ctx,
		checkName: v.main.Name(),
		cause:     cause,
	}
}

// AssertValid validates the named value against one or more check
// definitions in a single call, constructing a throwaway Validator. It
// returns nil on success, a configuration error for a malformed definition,
// or a *ValidationError on failure.
func AssertValid(name string, value any, defs ...any) error {
	v, err := New(defs)
	if err != nil {
		return err
	}
	return v.Validate(name, value)
}

// Valid reports whether value passes the given check definitions, swallowing
// all detail. A malformed definition counts as invalid.
func Valid(value any, defs ...any) bool {
	v, err := New(defs)
	if err != nil {
		return false
	}
	return v.IsValid(value)
}
