package checkit

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// MaxDisplayLength is the threshold above which a value's string form is
// elided from rendered messages, to keep errors readable when validating
// large payloads.
const MaxDisplayLength = 100

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// TemplateError is returned when a help message template references a field
// that is not present in the available context. It is reported at render
// time, not at construction, so that failure authors can attach fields after
// creating a failure and before it is displayed.
type TemplateError struct {
	Template string
	Missing  string
	Context  map[string]any
}

func (e *TemplateError) Error() string {
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("cannot format help message %q: field {%s} not found in context (available: %s)",
		e.Template, e.Missing, strings.Join(keys, ", "))
}

// renderTemplate substitutes {field} placeholders in tmpl with values from
// ctx. Substituted values longer than MaxDisplayLength are elided. A
// reference to a missing field yields a *TemplateError.
func renderTemplate(tmpl string, ctx map[string]any) (string, error) {
	var missing string
	out := placeholderRe.ReplaceAllStringFunc(tmpl, func(ph string) string {
		key := ph[1 : len(ph)-1]
		v, ok := ctx[key]
		if !ok {
			if missing == "" {
				missing = key
			}
			return ph
		}
		return displayValue(v)
	})
	if missing != "" {
		return "", &TemplateError{Template: tmpl, Missing: missing, Context: ctx}
	}
	return out, nil
}

// displayValue renders v for inclusion in an error message, eliding string
// forms that exceed MaxDisplayLength.
func displayValue(v any) string {
	s := fmt.Sprint(v)
	if len(s) > MaxDisplayLength {
		return "(too big for display)"
	}
	return s
}

// endWithDot appends ". " to msg unless it is empty or already terminated.
func endWithDot(msg string) string {
	if msg == "" {
		return ""
	}
	if strings.HasSuffix(msg, ".") {
		return msg + " "
	}
	if strings.HasSuffix(msg, ". ") {
		return msg
	}
	return msg + ". "
}
