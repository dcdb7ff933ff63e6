package lint

import "strings"

// Severity indicates the importance of a lint diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError indicates a failed rule requirement.
	SeverityError Severity = iota
	// SeverityWarning indicates a finding that should be reviewed but does
	// not fail the lint on its own.
	SeverityWarning
	// SeverityException indicates a rule that could not be evaluated:
	// a broken configuration, an invalid selector, or a panic inside the
	// rule implementation. Exceptions count toward the error verdict.
	SeverityException
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityException:
		return "exception"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityWarning and false if
// invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	case "exception":
		return SeverityException, true
	default:
		return SeverityWarning, false
	}
}
