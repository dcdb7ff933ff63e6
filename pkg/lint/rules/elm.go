package rules

import (
	"fmt"
	"math"
	"sort"

	"github.com/veclint/veclint/pkg/lint"
	"github.com/veclint/veclint/pkg/svg"
)

func init() {
	lint.Register(Elm)
}

// Elm checks the presence and cardinality of elements matched by
// selectors.
var Elm = lint.RuleDef{
	Name:        "elm",
	Description: "Requires, forbids, or counts elements matched by selectors.",
	Factory:     newElmRule,
}

// elmReqKind enumerates the recognized requirement shapes.
type elmReqKind int

const (
	elmExists    elmReqKind = iota // true: at least one match
	elmForbidden                   // false: zero matches
	elmExact                       // N: exactly N matches
	elmRange                       // [min, max]: inclusive match count range
)

type elmRequirement struct {
	kind     elmReqKind
	exact    int
	min, max int
}

// elmClause is one selector/requirement pair. A shape error is carried so
// sibling clauses still evaluate.
type elmClause struct {
	selector string
	req      elmRequirement
	err      error
}

func newElmRule(config any) (lint.RuleFunc, error) {
	cfg, err := configMap(config)
	if err != nil {
		return nil, err
	}

	clauses := make([]elmClause, 0, len(cfg))
	for selector, raw := range cfg {
		req, err := parseElmRequirement(raw)
		clauses = append(clauses, elmClause{selector: selector, req: req, err: err})
	}
	sort.Slice(clauses, func(i, j int) bool { return clauses[i].selector < clauses[j].selector })

	return func(r *lint.Reporter, doc *svg.Document) error {
		// Each clause classifies its own matches; disallow decisions stay
		// provisional until every clause has contributed its allowed set.
		var execs []lint.Execution
		for _, c := range clauses {
			if c.err != nil {
				r.Exception(fmt.Errorf("selector %q: %w", c.selector, c.err))
				continue
			}
			elems, err := doc.Find(c.selector)
			if err != nil {
				r.Exception(err)
				continue
			}
			execs = append(execs, c.evaluate(elems))
		}

		for _, res := range lint.Merge(execs) {
			if res.Element != nil {
				r.Error(res.Message, res.Element, res.Element.Node())
			} else {
				r.Error(res.Message, nil, nil)
			}
		}
		return nil
	}, nil
}

// evaluate classifies the clause's matches as wholly allowed or wholly
// disallowed. Failures with no matched element to blame (a missing match,
// a count miss with zero matches, a range miss) become one selector-level
// result with a nil Element.
func (c elmClause) evaluate(elems []*svg.Element) lint.Execution {
	var exec lint.Execution
	count := len(elems)

	switch c.req.kind {
	case elmExists:
		if count == 0 {
			exec.Disallowed = append(exec.Disallowed, lint.Result{
				Message: fmt.Sprintf("Expected at least one element matching '%s', found none", c.selector),
			})
			return exec
		}
		for _, el := range elems {
			exec.Allowed = append(exec.Allowed, lint.Result{Element: el})
		}

	case elmForbidden:
		for _, el := range elems {
			exec.Disallowed = append(exec.Disallowed, lint.Result{
				Element: el,
				Message: fmt.Sprintf("Element %s matching '%s' is disallowed", el, c.selector),
			})
		}

	case elmExact:
		if count == c.req.exact {
			for _, el := range elems {
				exec.Allowed = append(exec.Allowed, lint.Result{Element: el})
			}
			return exec
		}
		msg := fmt.Sprintf("Expected %d elements matching '%s', found %d", c.req.exact, c.selector, count)
		if count == 0 {
			exec.Disallowed = append(exec.Disallowed, lint.Result{Message: msg})
			return exec
		}
		for _, el := range elems {
			exec.Disallowed = append(exec.Disallowed, lint.Result{Element: el, Message: msg})
		}

	case elmRange:
		if count >= c.req.min && count <= c.req.max {
			for _, el := range elems {
				exec.Allowed = append(exec.Allowed, lint.Result{Element: el})
			}
			return exec
		}
		exec.Disallowed = append(exec.Disallowed, lint.Result{
			Message: fmt.Sprintf("Expected between %d and %d elements matching '%s', found %d",
				c.req.min, c.req.max, c.selector, count),
		})
	}
	return exec
}

// parseElmRequirement maps a raw configuration value onto the closed set
// of requirement shapes.
func parseElmRequirement(v any) (elmRequirement, error) {
	switch val := v.(type) {
	case bool:
		if val {
			return elmRequirement{kind: elmExists}, nil
		}
		return elmRequirement{kind: elmForbidden}, nil
	case int, int64, float64:
		n, err := asCount(val)
		if err != nil {
			return elmRequirement{}, err
		}
		return elmRequirement{kind: elmExact, exact: n}, nil
	case []any:
		if len(val) != 2 {
			return elmRequirement{}, fmt.Errorf("range must have exactly two elements, got %d", len(val))
		}
		min, err := asCount(val[0])
		if err != nil {
			return elmRequirement{}, err
		}
		max, err := asCount(val[1])
		if err != nil {
			return elmRequirement{}, err
		}
		if min > max {
			return elmRequirement{}, fmt.Errorf("range minimum %d exceeds maximum %d", min, max)
		}
		return elmRequirement{kind: elmRange, min: min, max: max}, nil
	default:
		return elmRequirement{}, fmt.Errorf("unsupported requirement %v (%T)", v, v)
	}
}

// asCount converts a numeric configuration value to a non-negative
// integer count.
func asCount(v any) (int, error) {
	switch n := v.(type) {
	case int:
		if n < 0 {
			return 0, fmt.Errorf("count must not be negative, got %d", n)
		}
		return n, nil
	case int64:
		return asCount(int(n))
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("count must be an integer, got %v", n)
		}
		return asCount(int(n))
	default:
		return 0, fmt.Errorf("count must be a number, got %T", v)
	}
}
