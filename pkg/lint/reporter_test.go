package lint

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterScopesRuleID(t *testing.T) {
	s := newSink(nil)

	s.reporter("attr").Error("bad attribute", nil, nil)
	s.reporter("elm").Warn("odd element", nil, nil)
	s.reporter("elm").Exception(errors.New("boom"))

	diags := s.diagnostics()
	require.Len(t, diags, 3)

	assert.Equal(t, "attr", diags[0].RuleID)
	assert.Equal(t, SeverityError, diags[0].Severity)
	assert.Equal(t, "bad attribute", diags[0].Message)

	assert.Equal(t, "elm", diags[1].RuleID)
	assert.Equal(t, SeverityWarning, diags[1].Severity)

	assert.Equal(t, "elm", diags[2].RuleID)
	assert.Equal(t, SeverityException, diags[2].Severity)
	assert.Equal(t, "boom", diags[2].Message)
}

func TestSinkDropsAppendsAfterClose(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := newSink(logger)
	r := s.reporter("attr")

	r.Error("before close", nil, nil)
	s.close()
	r.Error("after close", nil, nil)

	diags := s.diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "before close", diags[0].Message)

	// The late append is logged, not silently swallowed.
	assert.Contains(t, buf.String(), "dropping")
	assert.Contains(t, buf.String(), "after close")
}

func TestDiagnosticsReturnsCopy(t *testing.T) {
	s := newSink(nil)
	s.reporter("attr").Error("finding", nil, nil)

	first := s.diagnostics()
	first[0].Message = "mutated"

	assert.Equal(t, "finding", s.diagnostics()[0].Message)
}
