package lint

// State is the lifecycle state of a lint Process.
//
// A Process starts in StatePending and transitions exactly once, after
// every configured rule instance has completed, to one of the three
// terminal states.
type State int

// Process states.
const (
	// StatePending means rule instances are still running.
	StatePending State = iota
	// StateSuccess means no diagnostics were reported.
	StateSuccess
	// StateWarning means warnings were reported but no errors.
	StateWarning
	// StateError means at least one error or exception was reported.
	StateError
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSuccess:
		return "success"
	case StateWarning:
		return "warning"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state is one of the three final states.
func (s State) Terminal() bool { return s != StatePending }

// stateOf derives the terminal state from a set of diagnostics.
// Exceptions are evaluation failures and count as errors.
func stateOf(diags []Diagnostic) State {
	state := StateSuccess
	for _, d := range diags {
		switch d.Severity {
		case SeverityError, SeverityException:
			return StateError
		case SeverityWarning:
			state = StateWarning
		}
	}
	return state
}
