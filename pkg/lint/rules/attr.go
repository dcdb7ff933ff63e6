package rules

import (
	"fmt"
	"slices"
	"sort"

	"github.com/veclint/veclint/pkg/lint"
	"github.com/veclint/veclint/pkg/svg"
)

func init() {
	lint.Register(Attr)
}

// Reserved attr configuration keys. They are directives, not attribute
// names.
const (
	// SelectorKey overrides the selector an attr instance applies to.
	// Defaults to "*", i.e. every element in the document.
	SelectorKey = "rule::selector"
	// WhitelistKey switches an attr instance to whitelist mode, where any
	// attribute not named in the configuration is itself a violation.
	WhitelistKey = "rule::whitelist"
)

// Attr checks attributes on the elements matched by one selector.
var Attr = lint.RuleDef{
	Name:        "attr",
	Description: "Requires, forbids, or constrains attribute values on matched elements.",
	ConfigKeys:  []string{SelectorKey, WhitelistKey},
	Factory:     newAttrRule,
}

// attrReqKind enumerates the recognized requirement shapes. The raw
// configuration value is inspected once, at construction; evaluation
// dispatches on the tag.
type attrReqKind int

const (
	attrPresent attrReqKind = iota // true: attribute must exist
	attrAbsent                     // false: attribute must not exist
	attrLiteral                    // "value": attribute must equal the literal
	attrOneOf                      // ["a", "b"]: attribute must equal a member
)

type attrRequirement struct {
	kind    attrReqKind
	literal string
	oneOf   []string
}

// attrClause is one attribute-name/requirement pair. A shape error is
// carried instead of failing the whole instance, so sibling clauses still
// evaluate.
type attrClause struct {
	name string
	req  attrRequirement
	err  error
}

func newAttrRule(config any) (lint.RuleFunc, error) {
	cfg, err := configMap(config)
	if err != nil {
		return nil, err
	}

	selector := "*"
	if v, ok := cfg[SelectorKey]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be a string, got %T", SelectorKey, v)
		}
		selector = s
	}

	whitelist := false
	if v, ok := cfg[WhitelistKey]; ok {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("%s must be a boolean, got %T", WhitelistKey, v)
		}
		whitelist = b
	}

	// Every non-reserved key is an attribute clause. Keys are sorted so
	// repeated runs report in the same order.
	configured := make(map[string]bool, len(cfg))
	var clauses []attrClause
	for name, raw := range cfg {
		if name == SelectorKey || name == WhitelistKey {
			continue
		}
		configured[name] = true
		req, err := parseAttrRequirement(raw)
		clauses = append(clauses, attrClause{name: name, req: req, err: err})
	}
	sort.Slice(clauses, func(i, j int) bool { return clauses[i].name < clauses[j].name })

	return func(r *lint.Reporter, doc *svg.Document) error {
		elems, err := doc.Find(selector)
		if err != nil {
			return err
		}

		for _, c := range clauses {
			if c.err != nil {
				r.Exception(fmt.Errorf("attribute %q: %w", c.name, c.err))
			}
		}

		var exec lint.Execution
		for _, el := range elems {
			passed := true
			for _, c := range clauses {
				if c.err != nil {
					continue
				}
				if msg, failed := c.check(el); failed {
					exec.Disallowed = append(exec.Disallowed, lint.Result{Element: el, Message: msg})
					passed = false
				}
			}
			if whitelist {
				for _, name := range el.AttrNames() {
					if !configured[name] {
						exec.Disallowed = append(exec.Disallowed, lint.Result{
							Element: el,
							Message: fmt.Sprintf("Unexpected attribute '%s' on %s", name, el),
						})
						passed = false
					}
				}
			}
			if passed {
				exec.Allowed = append(exec.Allowed, lint.Result{Element: el})
			}
		}

		for _, res := range lint.Merge([]lint.Execution{exec}) {
			r.Error(res.Message, res.Element, res.Element.Node())
		}
		return nil
	}, nil
}

// check evaluates the clause against one element. It returns the failure
// message and true when the element is disallowed.
func (c attrClause) check(el *svg.Element) (string, bool) {
	val, present := el.Attr(c.name)

	switch c.req.kind {
	case attrPresent:
		if !present {
			return fmt.Sprintf("Attribute '%s' is required on %s", c.name, el), true
		}
	case attrAbsent:
		if present {
			return fmt.Sprintf("Attribute '%s' is disallowed on %s", c.name, el), true
		}
	case attrLiteral:
		if !present {
			return fmt.Sprintf("Attribute '%s' must equal %q on %s, attribute is missing", c.name, c.req.literal, el), true
		}
		if val != c.req.literal {
			return fmt.Sprintf("Attribute '%s' must equal %q on %s, found %q", c.name, c.req.literal, el, val), true
		}
	case attrOneOf:
		if !present {
			return fmt.Sprintf("Attribute '%s' must be one of %q on %s, attribute is missing", c.name, c.req.oneOf, el), true
		}
		if !slices.Contains(c.req.oneOf, val) {
			return fmt.Sprintf("Attribute '%s' must be one of %q on %s, found %q", c.name, c.req.oneOf, el, val), true
		}
	}
	return "", false
}

// parseAttrRequirement maps a raw configuration value onto the closed set
// of requirement shapes.
func parseAttrRequirement(v any) (attrRequirement, error) {
	switch val := v.(type) {
	case bool:
		if val {
			return attrRequirement{kind: attrPresent}, nil
		}
		return attrRequirement{kind: attrAbsent}, nil
	case string:
		return attrRequirement{kind: attrLiteral, literal: val}, nil
	case int, int64, float64:
		// YAML scalars like viewBox: 100 arrive as numbers; attribute
		// values are always strings in the document.
		return attrRequirement{kind: attrLiteral, literal: fmt.Sprint(val)}, nil
	case []string:
		return attrRequirement{kind: attrOneOf, oneOf: val}, nil
	case []any:
		oneOf := make([]string, 0, len(val))
		for _, item := range val {
			switch s := item.(type) {
			case string:
				oneOf = append(oneOf, s)
			case int, int64, float64:
				oneOf = append(oneOf, fmt.Sprint(s))
			default:
				return attrRequirement{}, fmt.Errorf("list values must be strings, got %T", item)
			}
		}
		return attrRequirement{kind: attrOneOf, oneOf: oneOf}, nil
	default:
		return attrRequirement{}, fmt.Errorf("unsupported requirement %v (%T)", v, v)
	}
}

// configMap normalizes a rule instance configuration. A nil configuration
// is a valid, empty instance.
func configMap(config any) (map[string]any, error) {
	if config == nil {
		return map[string]any{}, nil
	}
	cfg, ok := config.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("configuration must be a mapping, got %T", config)
	}
	return cfg, nil
}
