package checkit

import (
	"errors"
	"fmt"
	"strings"
)

// FailureSpec describes a distinct failure mode: a name, a default help
// message template, and an optional explicit classification. Specs play the
// role of dedicated failure types; check authors declare one package-level
// spec per failure mode and instantiate failures from it with Fail, which
// gives every failure a stable identifier and a reusable message.
type FailureSpec struct {
	Name    string
	HelpMsg string
	Kind    Kind
}

// Fail creates a *Failure for wrongValue from this spec. The optional fields
// map provides template substitution context for the help message and is
// stored on the failure.
func (s *FailureSpec) Fail(wrongValue any, fields map[string]any) *Failure {
	return &Failure{
		Spec:       s,
		WrongValue: wrongValue,
		HelpMsg:    s.HelpMsg,
		Kind:       s.Kind,
		Fields:     fields,
	}
}

// invalidValue is the generic spec used by the normalizer when a wrapped
// callable fails and no custom spec was requested.
var invalidValue = &FailureSpec{Name: "InvalidValue"}

// valueIsNil is raised by FailOnNil. Rejecting nil is a type-level concern,
// mirroring the treatment of nil as "wrong shape" rather than "wrong value".
var valueIsNil = &FailureSpec{
	Name:    "ValueIsNil",
	HelpMsg: "the value must be non-nil",
	Kind:    KindType,
}

// didNotFail is raised by Not when the negated check unexpectedly succeeded.
var didNotFail = &FailureSpec{
	Name:    "DidNotFail",
	HelpMsg: "{check} validated value {wrong_value} with success, therefore the not() is a failure",
}

// Failure represents one check's negative outcome. It records the offending
// value, a templated help message with arbitrary named fields, an optional
// inner cause (the error or recovered panic produced by the underlying
// callable, kept for display only), and a classification.
//
// A zero HelpMsg is valid: the rendered message then consists of the details
// trailer only.
type Failure struct {
	// Spec identifies the failure mode. May be nil for ad-hoc failures.
	Spec *FailureSpec
	// Check is the display name of the check function that failed.
	Check string
	// WrongValue is the value that failed validation.
	WrongValue any
	// HelpMsg is the help message template. Placeholders use {field} syntax
	// and draw on Fields plus the built-in wrong_value and check entries.
	HelpMsg string
	// Kind is the explicit classification, if any. When unspecified, the
	// classification is derived from Cause.
	Kind Kind
	// Fields holds extra named values for template substitution.
	Fields map[string]any
	// Cause is the error originally produced by the underlying callable,
	// nil when the callable merely returned false.
	Cause error
}

// Name returns the failure mode identifier.
func (f *Failure) Name() string {
	if f.Spec != nil {
		return f.Spec.Name
	}
	return "Failure"
}

// Message renders the help message template against the failure's fields.
func (f *Failure) Message() (string, error) {
	if f.HelpMsg == "" {
		return "", nil
	}
	return renderTemplate(f.HelpMsg, f.templateContext())
}

func (f *Failure) templateContext() map[string]any {
	ctx := make(map[string]any, len(f.Fields)+2)
	for k, v := range f.Fields {
		ctx[k] = v
	}
	ctx["wrong_value"] = f.WrongValue
	if f.Check != "" {
		ctx["check"] = f.Check
	}
	return ctx
}

func (f *Failure) Error() string {
	msg, err := f.Message()
	if err != nil {
		// Surface the templating problem without masking the failure.
		msg = err.Error()
	}
	return endWithDot(msg) + f.details()
}

// details describes the check function and the value that failed, with
// oversized values elided.
func (f *Failure) details() string {
	switch {
	case f.Cause != nil && IsFailure(f.Cause):
		// The inner failure already mentions the value.
		return fmt.Sprintf("Check [%s] raised [%s: %s].", f.Check, failureName(f.Cause), f.Cause)
	case f.Cause != nil:
		return fmt.Sprintf("Check [%s] raised [%T: %v] for value [%s].", f.Check, f.Cause, f.Cause, displayValue(f.WrongValue))
	case f.Check != "":
		return fmt.Sprintf("Check [%s] returned [false] for value [%s].", f.Check, displayValue(f.WrongValue))
	default:
		return fmt.Sprintf("Wrong value: [%s].", displayValue(f.WrongValue))
	}
}

// Classification reports whether this failure is type related or value
// related, defaulting to value related when nothing decisive is found.
func (f *Failure) Classification() Kind {
	return orValueKind(Classify(f))
}

func (f *Failure) Unwrap() error { return f.Cause }

// Is matches the ErrValueMismatch/ErrTypeMismatch sentinels according to the
// failure's classification.
func (f *Failure) Is(target error) bool {
	switch target {
	case ErrValueMismatch:
		return f.Classification() == KindValue
	case ErrTypeMismatch:
		return f.Classification() == KindType
	}
	return false
}

func (f *Failure) isCheckFailure() {}

// CheckFailure is implemented by all failure types in this package
// (*Failure and *CompositionFailure). Use IsFailure to detect failures in an
// error chain.
type CheckFailure interface {
	error
	Classification() Kind
	isCheckFailure()
}

// IsFailure reports whether err or anything in its chain is a check failure.
func IsFailure(err error) bool {
	var cf CheckFailure
	return errors.As(err, &cf)
}

// failureName returns a short identifier for err in per-child reports.
func failureName(err error) string {
	switch e := err.(type) {
	case *CompositionFailure:
		return e.Name()
	case *Failure:
		return e.Name()
	default:
		return fmt.Sprintf("%T", err)
	}
}

// CompositionReason discriminates the failure modes of the composition
// operators.
type CompositionReason int

const (
	// AtLeastOneFailed is reported by And when a child fails.
	AtLeastOneFailed CompositionReason = iota
	// AllFailed is reported by Or and Xor when no child succeeds.
	AllFailed
	// TooManySuccess is reported by Xor when more than one child succeeds.
	TooManySuccess
)

func (r CompositionReason) String() string {
	switch r {
	case AtLeastOneFailed:
		return "at least one check failed validation"
	case AllFailed:
		return "no check succeeded validation"
	case TooManySuccess:
		return "too many checks (more than 1) succeeded validation"
	default:
		return "composition failed"
	}
}

// ChildResult records the outcome of one child check inside a composition,
// in evaluation order. A nil Err means the child succeeded.
type ChildResult struct {
	Name string
	Err  error
}

// CompositionFailure is the failure produced by the composition operators.
// In addition to the base failure fields it preserves, in declaration order,
// each child's name and outcome.
type CompositionFailure struct {
	Failure
	// Op is the operator display name: "and", "or" or "xor".
	Op string
	// Reason discriminates why the composition failed.
	Reason CompositionReason
	// Results lists the evaluated children in order. Under And, children
	// after the first failure are absent because they were never evaluated.
	Results []ChildResult
}

func newCompositionFailure(op string, reason CompositionReason, value any, results []ChildResult, cause error) *CompositionFailure {
	return &CompositionFailure{
		Failure: Failure{
			WrongValue: value,
			Cause:      cause,
		},
		Op:      op,
		Reason:  reason,
		Results: results,
	}
}

// Name returns the failure mode identifier for the composition reason.
func (c *CompositionFailure) Name() string {
	switch c.Reason {
	case AtLeastOneFailed:
		return "AtLeastOneFailed"
	case AllFailed:
		return "AllChecksFailed"
	case TooManySuccess:
		return "XorTooManySuccess"
	default:
		return "CompositionFailure"
	}
}

func (c *CompositionFailure) Error() string {
	var successes []string
	var failures []string
	for _, r := range c.Results {
		if r.Err == nil {
			successes = append(successes, r.Name)
			continue
		}
		detail := fmt.Sprintf("%s: %s", failureName(r.Err), r.Err)
		if !IsFailure(r.Err) {
			detail = fmt.Sprintf("%T: %s", r.Err, r.Err)
		}
		failures = append(failures, fmt.Sprintf("%q: %q", r.Name, detail))
	}

	msg, err := c.Message()
	if err != nil {
		msg = err.Error()
	}
	return fmt.Sprintf("%s%s for value [%s]. Successes: [%s] / Failures: {%s}.",
		endWithDot(msg), c.Reason, displayValue(c.WrongValue),
		strings.Join(successes, ", "), strings.Join(failures, ", "))
}

// Classification resolves through the children in evaluation order: the
// first type-related child failure wins, the default is value related.
func (c *CompositionFailure) Classification() Kind {
	return orValueKind(Classify(c))
}

// Is matches the ErrValueMismatch/ErrTypeMismatch sentinels according to the
// composition's resolved classification.
func (c *CompositionFailure) Is(target error) bool {
	switch target {
	case ErrValueMismatch:
		return c.Classification() == KindValue
	case ErrTypeMismatch:
		return c.Classification() == KindType
	}
	return false
}
