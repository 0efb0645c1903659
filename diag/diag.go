package diag

import "fmt"

// Severity classifies how serious a finding is.
type Severity int

const (
	// SeverityWarning marks advisory findings the caller may ignore.
	SeverityWarning Severity = iota
	// SeverityError marks findings that make the configuration unusable
	// under most policies.
	SeverityError
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Category identifies the kind of finding a diagnostic reports.
type Category string

const (
	// CategoryUnresolvedVariable reports a ${NAME} placeholder with no value
	// in the environment mapping.
	CategoryUnresolvedVariable Category = "unresolved-variable"
	// CategoryTabCharacter reports a tab character in leading whitespace.
	CategoryTabCharacter Category = "tab-character"
	// CategoryUnbalancedQuote reports a line with an odd number of unescaped
	// quote characters.
	CategoryUnbalancedQuote Category = "unbalanced-quote"
	// CategoryInconsistentIndentation reports a mix of even and odd
	// indentation widths across the document.
	CategoryInconsistentIndentation Category = "inconsistent-indentation"
	// CategoryMissingRequiredKey reports a required key path that is absent
	// or resolves to null.
	CategoryMissingRequiredKey Category = "missing-required-key"
	// CategoryEmptyValue reports a mapping entry whose value is null or an
	// empty string.
	CategoryEmptyValue Category = "empty-value"
	// CategoryParseFailure reports that no value tree could be built,
	// including duplicate mapping keys.
	CategoryParseFailure Category = "parse-failure"
)

// Diagnostic is a single finding. It is never mutated after creation.
type Diagnostic struct {
	Severity Severity
	Category Category
	// Line is 1-based. Zero means the finding has no single line.
	Line    int
	Message string
}

// Errorf creates an Error-severity diagnostic with a formatted message.
func Errorf(category Category, line int, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Category: category,
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Warnf creates a Warning-severity diagnostic with a formatted message.
func Warnf(category Category, line int, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Category: category,
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
	}
}

// String renders the diagnostic in a single line suitable for terminal output.
func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s[%s] line %d: %s", d.Severity, d.Category, d.Line, d.Message)
	}

	return fmt.Sprintf("%s[%s]: %s", d.Severity, d.Category, d.Message)
}

// HasErrors reports whether any diagnostic in the sequence has Error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}

	return false
}
