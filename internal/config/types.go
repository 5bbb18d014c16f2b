package config

import "github.com/livp123/advent/internal/utils/logger"

// Config is the top level configuration of the advent tool.
// Config 是 advent 工具的顶层配置。
type Config struct {
	InputsDir    string               `yaml:"inputs_dir"`
	Workers      int                  `yaml:"workers"`
	Logging      logger.LoggingConfig `yaml:"logging"`
	Metrics      MetricsConfig        `yaml:"metrics"`
	Stream       StreamConfig         `yaml:"stream"`
	Expectations []Expectation        `yaml:"expectations"`
}

// MetricsConfig controls the Prometheus textfile written after a run.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// StreamConfig is the default split applied by `advent split`.
// StreamConfig 是 `advent split` 默认使用的切分方式。
type StreamConfig struct {
	// Kind: byte, literal or whitespace
	Kind string `yaml:"kind"`
	// Pattern: the byte or literal; ignored for whitespace
	Pattern string `yaml:"pattern"`
	// Trim: trim whitespace from each line before splitting
	Trim bool `yaml:"trim"`
}

// Expectation is an expr rule checked against a puzzle's answers,
// e.g. {year: 2024, day: 1, expr: "part1 == 11 && part2 == 31"}.
type Expectation struct {
	Year int    `yaml:"year"`
	Day  int    `yaml:"day"`
	Expr string `yaml:"expr"`
}
