// Package logger provides the logging contract for the application, backed
// by zap.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger interface defines the contract for all loggers
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)

	WithField(key string, value any) Logger
}

// ZapLogger implements Logger on top of a zap SugaredLogger
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// New creates a development-profile logger with the specified log level
func New(level string) *ZapLogger {
	return NewWithEnvironment("development", level)
}

// NewWithEnvironment builds the zap core for the given environment profile.
// Production logs JSON; everything else uses the console encoder.
func NewWithEnvironment(environment, level string) *ZapLogger {
	cfg := zap.NewDevelopmentConfig()
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.DisableStacktrace = true

	built, err := cfg.Build()
	if err != nil {
		built = zap.NewNop()
	}
	return &ZapLogger{sugar: built.Sugar()}
}

// NewWithWriter creates a console-encoded logger writing to w (useful for tests)
func NewWithWriter(w io.Writer, level string) *ZapLogger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		parseLevel(level),
	)
	return &ZapLogger{sugar: zap.New(core).Sugar()}
}

func parseLevel(level string) zapcore.Level {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel // Default level
	}
	return parsed
}

// Debug logs a debug message
func (l *ZapLogger) Debug(msg string, args ...any) {
	l.sugar.Debugf(msg, args...)
}

// Info logs an info message
func (l *ZapLogger) Info(msg string, args ...any) {
	l.sugar.Infof(msg, args...)
}

// Warn logs a warning message
func (l *ZapLogger) Warn(msg string, args ...any) {
	l.sugar.Warnf(msg, args...)
}

// Error logs an error message
func (l *ZapLogger) Error(msg string, args ...any) {
	l.sugar.Errorf(msg, args...)
}

// Fatal logs a fatal message and exits the program
func (l *ZapLogger) Fatal(msg string, args ...any) {
	l.sugar.Fatalf(msg, args...)
}

// WithField returns a new logger with an additional structured field
func (l *ZapLogger) WithField(key string, value any) Logger {
	return &ZapLogger{sugar: l.sugar.With(key, value)}
}

// Sync flushes any buffered log entries
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

// NullLogger is a logger that discards all messages (useful for testing)
type NullLogger struct{}

func (n *NullLogger) Debug(msg string, args ...any)          {}
func (n *NullLogger) Info(msg string, args ...any)           {}
func (n *NullLogger) Warn(msg string, args ...any)           {}
func (n *NullLogger) Error(msg string, args ...any)          {}
func (n *NullLogger) Fatal(msg string, args ...any)          {}
func (n *NullLogger) WithField(key string, value any) Logger { return n }

// NewNullLogger creates a logger that discards all output
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}
