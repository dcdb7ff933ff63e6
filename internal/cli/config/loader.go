package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// delimiter separates koanf key paths. Selectors used as rule
// configuration keys routinely contain dots ("circle.marker"), so the
// default "." delimiter would split them; "/" never appears in a
// selector or a config key we own.
const delimiter = "/"

// maxUpwardSearchLevels limits how far up the directory tree to search
// for config files.
const maxUpwardSearchLevels = 10

// Package-level koanf instance and config file tracking.
var (
	k              = koanf.New(delimiter)
	configFileUsed string
)

// candidateNames are the config file names searched for, in order.
var candidateNames = []string{".veclint.yaml", ".veclint.yml", "veclint.yaml"}

// findConfigFile finds the config file to use.
// Priority: explicit path > candidate names in CWD > upward search.
// Returns empty when nothing usable exists, including an explicit path
// that does not exist; Load turns that into its not-found error.
func findConfigFile(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}
	if dir, err := os.Getwd(); err == nil {
		for i := 0; i < maxUpwardSearchLevels; i++ {
			for _, name := range candidateNames {
				path := filepath.Join(dir, name)
				if _, err := os.Stat(path); err == nil {
					return path
				}
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	return ""
}

// GetConfigFileUsed returns the path of the config file that was loaded,
// or empty when configuration came from defaults/env/flags only.
func GetConfigFileUsed() string { return configFileUsed }

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(delimiter)
	configFileUsed = ""
}

// Load resolves the configuration. Precedence, lowest to highest:
// defaults, config file, VECLINT_* environment variables, CLI flags.
func Load(explicit string, flags *pflag.FlagSet) (*Config, error) {
	k = koanf.New(delimiter)
	configFileUsed = ""

	if err := k.Load(confmap.Provider(defaults(), delimiter), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(explicit); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		configFileUsed = path
	} else if explicit != "" {
		return nil, fmt.Errorf("config file not found: %s", explicit)
	}

	if err := k.Load(env.Provider("VECLINT_", delimiter, func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "VECLINT_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, delimiter, k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaults() map[string]any {
	return map[string]any{
		"output": "auto",
	}
}
