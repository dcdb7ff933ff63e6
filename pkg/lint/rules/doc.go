// Package rules implements the built-in rule types.
//
// Importing the package registers every rule type with the lint registry:
//
//	import _ "github.com/veclint/veclint/pkg/lint/rules"
//
// Rule types:
//   - attr: requires or forbids attributes on elements matched by a
//     selector, with an optional whitelist mode.
//   - elm: requires, forbids, or counts elements matched by selectors.
package rules
