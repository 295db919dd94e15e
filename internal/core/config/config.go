package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the CLI harness configuration. The library itself takes every
// parameter explicitly per call; this only shapes one diagnostic run.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	Input   InputConfig   `koanf:"input"`
	Average AverageConfig `koanf:"average"`
}

type LogConfig struct {
	Level string `koanf:"level"` // debug | info | warn | error
}

type InputConfig struct {
	// Path points at the YAML division-set file to load.
	Path string `koanf:"path"`
}

type AverageConfig struct {
	// DivisionSize is the width of one bucket in nanoseconds.
	DivisionSize uint64 `koanf:"division_size"`

	// WindowSize is the trailing averaging span in nanoseconds.
	WindowSize uint64 `koanf:"window_size"`

	// BlockTime is the evaluation timestamp in nanoseconds; 0 means "now".
	BlockTime uint64 `koanf:"block_time"`

	// PrintDivisions logs every input division before averaging.
	PrintDivisions bool `koanf:"print_divisions"`
}

func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q (must be debug, info, warn or error)", c.Log.Level)
	}

	if strings.TrimSpace(c.Input.Path) == "" {
		return fmt.Errorf("input.path is required")
	}

	if c.Average.DivisionSize == 0 {
		return fmt.Errorf("average.division_size must be > 0")
	}
	if c.Average.WindowSize == 0 {
		return fmt.Errorf("average.window_size must be > 0")
	}

	return nil
}

// Load parses config from defaults, then the optional file, then env vars
// (TWAPBRIDGE_ prefix, "__" as the key separator), and validates the result.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"log.level":               "info",
		"input.path":              "divisions.yaml",
		"average.division_size":   uint64(60_000_000_000),    // 1m buckets
		"average.window_size":     uint64(3_600_000_000_000), // 1h trailing window
		"average.block_time":      uint64(0),
		"average.print_divisions": false,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("TWAPBRIDGE_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "TWAPBRIDGE_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
