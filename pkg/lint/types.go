package lint

import (
	"github.com/veclint/veclint/pkg/svg"
	"golang.org/x/net/html"
)

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic represents a single lint finding. Diagnostics are write-once:
// they are created by a Reporter during evaluation and read by formatters
// after the process completes.
type Diagnostic struct {
	// RuleID names the rule instance that produced the finding, e.g. "attr".
	RuleID string
	// Severity of the finding.
	Severity Severity
	// Message is the human-readable description.
	Message string
	// Element is the offending element, or nil for findings not tied to a
	// specific node (e.g. "expected at least one match, found none").
	Element *svg.Element
	// Node is the underlying tree node, kept for source-location lookup.
	Node *html.Node
}

// =============================================================================
// Clause evaluation results
// =============================================================================

// Result classifies one element (or, when Element is nil, a whole
// selector) as allowed or disallowed by a rule clause.
type Result struct {
	// Element is the matched element handle; nil for selector-level
	// results that are not attributable to one node.
	Element *svg.Element
	// Message describes why the element was disallowed. Empty for allowed
	// results.
	Message string
}

// Execution is the output of evaluating one clause of a rule instance:
// the elements the clause allows and the elements (or selector-level
// findings) it disallows.
type Execution struct {
	Allowed    []Result
	Disallowed []Result
}

// Merge reconciles the clause executions of one rule instance into the
// final disallowed set, applying the allowed-anywhere-wins policy: an
// element allowed by any clause is dropped from every clause's disallowed
// set. Selector-level results (nil Element) have no identity to match
// against and are always kept.
//
// A document may legitimately exempt a narrower selector from a broader
// sibling clause, e.g. ban title globally but allow svg > title, so
// per-clause disallow decisions are provisional until merged here.
func Merge(execs []Execution) []Result {
	allowed := make(map[*svg.Element]struct{})
	for _, ex := range execs {
		for _, res := range ex.Allowed {
			if res.Element != nil {
				allowed[res.Element] = struct{}{}
			}
		}
	}

	var out []Result
	for _, ex := range execs {
		for _, res := range ex.Disallowed {
			if res.Element != nil {
				if _, ok := allowed[res.Element]; ok {
					continue
				}
			}
			out = append(out, res)
		}
	}
	return out
}
