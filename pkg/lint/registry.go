package lint

import (
	"sort"
	"sync"

	"github.com/veclint/veclint/pkg/svg"
)

// RuleFunc evaluates one configured rule instance against a document.
// The reporter is scoped to the instance; the document is the shared,
// read-only query view. A returned error means the instance could not be
// evaluated and is converted to an exception diagnostic by the Process.
type RuleFunc func(r *Reporter, doc *svg.Document) error

// Factory builds an evaluation function from a rule instance's raw
// configuration (the decoded YAML value, typically map[string]any).
// Shape validation happens here, once, so invalid configurations surface
// at construction instead of per evaluation.
type Factory func(config any) (RuleFunc, error)

// RuleDef is a data-driven rule type definition.
type RuleDef struct {
	Name        string   // Rule type name used in configuration, e.g. "attr"
	Description string   // Human-readable description
	ConfigKeys  []string // Reserved/recognized configuration keys, for docs
	Factory     Factory  // Builds an evaluation function from config
}

// globalRegistry is the single global registry for all rule types.
var globalRegistry = &Registry{
	rules: make(map[string]RuleDef),
}

// Registry stores registered rule types for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]RuleDef // keyed by Name
}

// Register adds a rule type to the global registry.
// Call this from init() functions in rule packages.
func Register(def RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[def.Name] = def
}

// GetRule returns a rule type by name.
func GetRule(name string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	def, ok := globalRegistry.rules[name]
	return def, ok
}

// AllRules returns all registered rule types sorted by name.
func AllRules() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]RuleDef, 0, len(globalRegistry.rules))
	for _, def := range globalRegistry.rules {
		rules = append(rules, def)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Name < rules[j].Name })
	return rules
}

// RuleCount returns the number of registered rule types.
func RuleCount() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}
