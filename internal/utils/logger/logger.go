package logger

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type contextKey string

const LoggerKey = contextKey("logger")

var globalLogger *zap.SugaredLogger

// ParseLevel maps a config level name to a zap level, defaulting to info.
// ParseLevel 将配置中的级别名映射为 zap 级别，默认 info。
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

// KnownLevel reports whether name is a level ParseLevel understands.
// An empty name is accepted and means info.
func KnownLevel(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// Init initializes the global logger based on configuration.
// Logs go to stderr unless a file is configured, so puzzle answers on stdout
// stay machine readable.
// Init 根据配置初始化全局日志记录器。
func Init(cfg LoggingConfig) {
	writeSyncer := zapcore.AddSync(os.Stderr)

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			// 如果无法创建目录，则继续输出到 stderr
			zap.NewExample().Sugar().Warnf("[WARN]  Failed to create log directory: %v", err)
		} else {
			writeSyncer = zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
			})
		}
	}

	globalLogger = New(writeSyncer, ParseLevel(cfg.Level))
	globalLogger.Debugf("[LOG] Logging initialized (Level: %s, File: %s)", ParseLevel(cfg.Level), cfg.File)
}

// New builds a console logger writing to w at the given level.
func New(w zapcore.WriteSyncer, level zapcore.Level) *zap.SugaredLogger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	core := zapcore.NewCore(encoder, w, level)
	return zap.New(core, zap.AddCaller()).Sugar()
}

// Sync flushes any buffered log entries.
// Sync 刷新所有缓存的日志条目。
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// Get returns the logger from context or global logger
// Get 从 Context 或全局日志记录器返回 Logger。
func Get(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(LoggerKey).(*zap.SugaredLogger); ok {
			return logger
		}
	}
	if globalLogger == nil {
		// Fallback to a quiet stderr logger if not initialized
		return New(zapcore.AddSync(os.Stderr), zapcore.WarnLevel)
	}
	return globalLogger
}

// WithContext adds logger to context
// WithContext 将 Logger 添加到 Context。
func WithContext(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}
