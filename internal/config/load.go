package config

import (
	"os"
	"path/filepath"

	"github.com/livp123/advent/internal/utils/fileutil"
	"github.com/livp123/advent/internal/utils/logger"
	"github.com/livp123/advent/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the configuration used when no file is present.
// DefaultConfig 返回没有配置文件时使用的默认配置。
func DefaultConfig() *Config {
	return &Config{
		InputsDir: DefaultInputsDir,
		Workers:   4,
		Logging: logger.LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Path:    DefaultMetricsPath,
		},
		Stream: StreamConfig{
			Kind:    SplitWhitespace,
			Pattern: "",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
// Load 在默认配置之上读取 path；文件不存在不视为错误。
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("yaml", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, replacing the file atomically.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return fileutil.AtomicWriteFile(path, data, 0644)
}

// Validate checks field ranges and enumerations.
// Validate 检查字段范围与枚举值。
func (c *Config) Validate() error {
	if c.InputsDir == "" {
		return errors.NewConfigError("inputs_dir", c.InputsDir)
	}
	if c.Workers < 1 {
		return errors.NewConfigError("workers", c.Workers)
	}
	if !logger.KnownLevel(c.Logging.Level) {
		return errors.NewConfigError("logging.level", c.Logging.Level)
	}
	if c.Logging.File != "" && c.Logging.MaxSizeMB < 1 {
		return errors.NewConfigError("logging.max_size_mb", c.Logging.MaxSizeMB)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return errors.NewConfigError("metrics.path", c.Metrics.Path)
	}
	switch c.Stream.Kind {
	case SplitWhitespace:
	case SplitByte:
		if len(c.Stream.Pattern) != 1 {
			return errors.NewConfigError("stream.pattern", c.Stream.Pattern)
		}
	case SplitLiteral:
		if c.Stream.Pattern == "" {
			return errors.NewConfigError("stream.pattern", c.Stream.Pattern)
		}
	default:
		return errors.NewConfigError("stream.kind", c.Stream.Kind)
	}
	for _, e := range c.Expectations {
		if e.Year <= 0 || e.Day < 1 || e.Day > 25 {
			return errors.NewConfigError("expectations.day", e)
		}
		if e.Expr == "" {
			return errors.NewConfigError("expectations.expr", e)
		}
	}
	return nil
}
