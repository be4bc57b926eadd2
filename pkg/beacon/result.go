package beacon

import "fmt"

// Result is the immutable outcome of a validation pass. Each sequence keeps
// the order in which diagnostics were produced. Accessors return copies.
type Result struct {
	errors   []string
	warnings []string
	info     []string
}

// NewResult creates a result from existing diagnostics. The slices are copied.
func NewResult(errors, warnings, info []string) Result {
	return Result{
		errors:   clone(errors),
		warnings: clone(warnings),
		info:     clone(info),
	}
}

// IsValid reports whether validation produced no errors.
func (r Result) IsValid() bool { return len(r.errors) == 0 }

// Errors returns the error messages.
func (r Result) Errors() []string { return clone(r.errors) }

// Warnings returns the warning messages.
func (r Result) Warnings() []string { return clone(r.warnings) }

// Info returns the informational messages.
func (r Result) Info() []string { return clone(r.info) }

// IssueCount returns the number of errors plus warnings.
func (r Result) IssueCount() int { return len(r.errors) + len(r.warnings) }

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// resultBuilder accumulates diagnostics during a single validation pass.
type resultBuilder struct {
	errors   []string
	warnings []string
	info     []string
}

func (b *resultBuilder) addError(format string, args ...interface{}) {
	b.errors = append(b.errors, fmt.Sprintf(format, args...))
}

func (b *resultBuilder) addWarning(format string, args ...interface{}) {
	b.warnings = append(b.warnings, fmt.Sprintf(format, args...))
}

func (b *resultBuilder) addInfo(format string, args ...interface{}) {
	b.info = append(b.info, fmt.Sprintf(format, args...))
}

// freeze hands the accumulated slices over to an immutable Result.
// The builder must not be used afterwards.
func (b *resultBuilder) freeze() Result {
	return Result{errors: b.errors, warnings: b.warnings, info: b.info}
}
