package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Engine   EngineConfig   `toml:"engine"`
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
}

type EngineConfig struct {
	GridWidth          int `toml:"grid_width"`           // columns per player board
	MaxChainMultiplier int `toml:"max_chain_multiplier"` // cap applied to chain positions
}

type DatabaseConfig struct {
	Path         string `toml:"path"`         // canonical attack table file
	Autogenerate bool   `toml:"autogenerate"` // rebuild defaults when the table is missing or corrupt
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration, used when no config file
// exists.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Engine: EngineConfig{
			GridWidth:          6,
			MaxChainMultiplier: 10,
		},
		Database: DatabaseConfig{
			Path:         "data/attack_table.yaml",
			Autogenerate: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// BuildLogger constructs the zap logger described by the logging section.
func (lc LoggingConfig) BuildLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", lc.Level, err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
