package lint

import (
	"fmt"
	"sort"

	"github.com/veclint/veclint/pkg/svg"
)

// Instance is one configured occurrence of a rule type, ready to run.
type Instance struct {
	// Rule is the rule type name; it becomes the RuleID on diagnostics.
	Rule string
	// Run is the evaluation function produced by the rule's factory.
	Run RuleFunc
}

// Instances turns a rules configuration block into runnable rule
// instances. The mapping goes from rule type name to either one instance
// configuration or a list of instance configurations:
//
//	rules:
//	  attr:
//	    rule::selector: "svg"
//	    viewBox: true
//	  elm:
//	    - "svg > title": true
//	    - "g#illegal": false
//
// Construction never fails as a whole: an unknown rule name or a
// configuration the factory rejects yields an instance that reports one
// exception diagnostic when run, so sibling instances are unaffected.
func Instances(rules map[string]any) []Instance {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []Instance
	for _, name := range names {
		for _, config := range instanceConfigs(rules[name]) {
			out = append(out, build(name, config))
		}
	}
	return out
}

// instanceConfigs splits a rule's configuration value into per-instance
// configurations. A list means multiple independent instances of the same
// rule type; anything else is a single instance.
func instanceConfigs(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}
	return []any{v}
}

func build(name string, config any) Instance {
	def, ok := GetRule(name)
	if !ok {
		return failed(name, fmt.Errorf("unknown rule %q", name))
	}
	fn, err := def.Factory(config)
	if err != nil {
		return failed(name, fmt.Errorf("invalid %s configuration: %w", name, err))
	}
	return Instance{Rule: name, Run: fn}
}

// failed produces an instance that reports its construction error as an
// exception diagnostic, keeping the failure scoped to this instance.
func failed(name string, err error) Instance {
	return Instance{
		Rule: name,
		Run:  func(*Reporter, *svg.Document) error { return err },
	}
}
