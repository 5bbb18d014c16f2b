package logger

// LoggingConfig is the logging: section of advent.yaml.
// An empty File logs to stderr, which keeps stdout free for answers.
// LoggingConfig 对应 advent.yaml 的 logging 段；File 为空时输出到 stderr。
type LoggingConfig struct {
	// Level: debug, info, warn or error
	Level string `yaml:"level"`
	// File: rotated log file; empty means stderr
	File string `yaml:"file"`
	// MaxSizeMB: size in megabytes before File is rotated
	MaxSizeMB int `yaml:"max_size_mb"`
	// MaxBackups: rotated files kept next to File
	MaxBackups int `yaml:"max_backups"`
}
