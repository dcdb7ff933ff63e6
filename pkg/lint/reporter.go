package lint

import (
	"log/slog"
	"sync"

	"github.com/veclint/veclint/pkg/svg"
	"golang.org/x/net/html"
)

// Reporter is an append-only diagnostic sink scoped to one rule instance.
// All reporters of a Process share one underlying sink, so appends from
// concurrently running rule instances interleave atomically.
type Reporter struct {
	rule string
	sink *sink
}

// Warn appends a warning-severity diagnostic. element and node may be nil
// for findings not tied to a specific element.
func (r *Reporter) Warn(message string, element *svg.Element, node *html.Node) {
	r.sink.append(Diagnostic{
		RuleID:   r.rule,
		Severity: SeverityWarning,
		Message:  message,
		Element:  element,
		Node:     node,
	})
}

// Error appends an error-severity diagnostic. element and node may be nil
// for findings not tied to a specific element.
func (r *Reporter) Error(message string, element *svg.Element, node *html.Node) {
	r.sink.append(Diagnostic{
		RuleID:   r.rule,
		Severity: SeverityError,
		Message:  message,
		Element:  element,
		Node:     node,
	})
}

// Exception records an evaluation failure: the rule could not run to
// completion, typically because of a broken configuration or a panic in
// the rule implementation.
func (r *Reporter) Exception(err error) {
	r.sink.append(Diagnostic{
		RuleID:   r.rule,
		Severity: SeverityException,
		Message:  err.Error(),
	})
}

// sink is the shared accumulator behind every Reporter of one Process.
type sink struct {
	logger *slog.Logger

	mu     sync.Mutex
	diags  []Diagnostic
	closed bool
}

func newSink(logger *slog.Logger) *sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &sink{logger: logger}
}

func (s *sink) reporter(rule string) *Reporter {
	return &Reporter{rule: rule, sink: s}
}

// append adds one diagnostic. Appends after close come from a rule
// implementation reporting past its completion signal; that is a bug in
// the rule, not a user-facing failure, so the diagnostic is dropped and
// logged instead of propagated.
func (s *sink) append(d Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.logger.Debug("diagnostic reported after lint completed, dropping",
			"rule", d.RuleID,
			"severity", d.Severity.String(),
			"message", d.Message,
		)
		return
	}
	s.diags = append(s.diags, d)
}

// close seals the sink. Called exactly once, when the owning Process
// reaches its terminal state.
func (s *sink) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// diagnostics returns a copy of the accumulated diagnostics.
func (s *sink) diagnostics() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Diagnostic, len(s.diags))
	copy(out, s.diags)
	return out
}
