// Package lint provides the rule evaluation engine and lint orchestration
// for SVG documents.
//
// # Architecture
//
// The package has three layers:
//
//  1. Rule types (pkg/lint/rules/): declarative rule implementations that
//     register themselves with the global registry via init().
//  2. Clause evaluation: a rule instance evaluates zero or more
//     selector/requirement clauses, each producing an Execution with
//     allowed and disallowed element sets; Merge reconciles them with the
//     allowed-anywhere-wins policy.
//  3. Orchestration: a Process runs every configured rule instance
//     concurrently against one read-only document, accumulates their
//     diagnostics in a shared Reporter sink, and derives a single terminal
//     verdict.
//
// # Rule Registration
//
// Rule types register themselves when their package is imported:
//
//	import _ "github.com/veclint/veclint/pkg/lint/rules"
//
// # Running a lint
//
//	doc, err := svg.Parse(src)
//	...
//	p := lint.NewProcess(doc, lint.Instances(cfg.Rules))
//	state := p.Wait()
//	for _, d := range p.Diagnostics() { ... }
//
// The verdict is error if any error- or exception-severity diagnostic
// exists, warning if only warnings exist, and success otherwise. Failures
// inside a rule instance (bad configuration, invalid selectors, panics)
// degrade to one exception diagnostic scoped to that instance; they never
// crash the process or suppress other instances.
package lint
