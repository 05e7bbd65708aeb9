package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LogConfig struct {
	Level string `toml:"level"`
}

type DelaunayConfig struct {
	// Shuffle randomizes the point insertion order with a fixed seed, which
	// keeps the expected cost of point location low for sorted inputs.
	Shuffle bool   `toml:"shuffle"`
	Seed    uint64 `toml:"seed"`
}

type RetriangulatorConfig struct {
	AbsoluteTolerance float64 `toml:"absolute_tolerance"`
	RelativeTolerance float64 `toml:"relative_tolerance"`
}

type Config struct {
	Log            LogConfig            `toml:"log"`
	Delaunay       DelaunayConfig       `toml:"delaunay"`
	Retriangulator RetriangulatorConfig `toml:"retriangulator"`
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Delaunay: DelaunayConfig{
			Shuffle: true,
			Seed:    0x12345678,
		},
		Retriangulator: RetriangulatorConfig{
			AbsoluteTolerance: 1e-6,
			RelativeTolerance: 1e-6,
		},
	}
}

// LoadConfig reads a TOML file. Keys missing from the file keep their
// default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.Retriangulator.AbsoluteTolerance < 0 {
		return fmt.Errorf("%w: negative absolute tolerance", ErrInvalidConfig)
	}
	if c.Retriangulator.RelativeTolerance < 0 {
		return fmt.Errorf("%w: negative relative tolerance", ErrInvalidConfig)
	}
	return nil
}

// Marshal encodes the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
