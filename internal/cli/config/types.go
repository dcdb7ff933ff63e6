// Package config loads veclint configuration from file, environment
// variables, and command-line flags.
package config

// Config is the resolved veclint configuration.
type Config struct {
	// Rules maps rule type names to instance configurations. A value may
	// be a single mapping or a list of mappings (one instance each); the
	// shapes inside are owned by the rule implementations.
	Rules map[string]any `koanf:"rules"`

	// Ignore holds doublestar glob patterns; matching files are skipped
	// during discovery.
	Ignore []string `koanf:"ignore"`

	// Output selects the render mode: auto, text, or json.
	Output string `koanf:"output"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}
