package config

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate checks the parts of the configuration the loader owns. Rule
// instance configurations are deliberately not validated here; their
// shapes belong to the rule factories, which scope failures to one
// instance instead of rejecting the whole config.
func (c *Config) Validate() error {
	switch c.Output {
	case "", "auto", "text", "json":
	default:
		return fmt.Errorf("invalid output mode %q (want auto, text, or json)", c.Output)
	}

	for _, pattern := range c.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid ignore pattern %q", pattern)
		}
	}
	return nil
}
