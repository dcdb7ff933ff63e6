package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "exception", SeverityException.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input string
		want  Severity
		ok    bool
	}{
		{"error", SeverityError, true},
		{"WARNING", SeverityWarning, true},
		{"Exception", SeverityException, true},
		{"fatal", SeverityWarning, false},
		{"", SeverityWarning, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSeverity(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "success", StateSuccess.String())
	assert.Equal(t, "warning", StateWarning.String())
	assert.Equal(t, "error", StateError.String())
}

func TestStateTerminal(t *testing.T) {
	assert.False(t, StatePending.Terminal())
	assert.True(t, StateSuccess.Terminal())
	assert.True(t, StateWarning.Terminal())
	assert.True(t, StateError.Terminal())
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		name  string
		diags []Diagnostic
		want  State
	}{
		{"empty", nil, StateSuccess},
		{"warning only", []Diagnostic{{Severity: SeverityWarning}}, StateWarning},
		{"error", []Diagnostic{{Severity: SeverityError}}, StateError},
		{"exception", []Diagnostic{{Severity: SeverityException}}, StateError},
		{
			"error beats warning",
			[]Diagnostic{{Severity: SeverityWarning}, {Severity: SeverityError}},
			StateError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stateOf(tt.diags))
		})
	}
}
