package lotto

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogger implements Logger using standard log package.
// Output goes to stderr so it never interleaves with game output.
type DefaultLogger struct {
	l     *log.Logger
	debug bool
}

// NewDefaultLogger creates a stderr logger; debug enables Debug output.
func NewDefaultLogger(debug bool) *DefaultLogger {
	return &DefaultLogger{l: log.New(os.Stderr, "", log.LstdFlags), debug: debug}
}

func (l *DefaultLogger) out() *log.Logger {
	if l.l == nil {
		return log.Default()
	}
	return l.l
}

// Info logs an info message
func (l *DefaultLogger) Info(msg string, args ...any) {
	l.out().Printf("[INFO] "+msg, args...)
}

// Error logs an error message
func (l *DefaultLogger) Error(msg string, args ...any) {
	l.out().Printf("[ERROR] "+msg, args...)
}

// Debug logs a debug message
func (l *DefaultLogger) Debug(msg string, args ...any) {
	if l.debug {
		l.out().Printf("[DEBUG] "+msg, args...)
	}
}

// SilentLogger implements Logger interface but does not output any logs
// This is useful for testing environments where log output is not desired
type SilentLogger struct{}

// NewSilentLogger creates a new silent logger instance
func NewSilentLogger() *SilentLogger {
	return &SilentLogger{}
}

// Info does nothing (silent)
func (l *SilentLogger) Info(msg string, args ...any) {}

// Error does nothing (silent)
func (l *SilentLogger) Error(msg string, args ...any) {}

// Debug does nothing (silent)
func (l *SilentLogger) Debug(msg string, args ...any) {}

// ZapLogger adapts a zap SugaredLogger to Logger
type ZapLogger struct {
	s *zap.SugaredLogger
}

// NewZapLogger wraps an existing zap logger
func NewZapLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{s: l.Sugar()}
}

// Info logs an info message
func (l *ZapLogger) Info(msg string, args ...any) { l.s.Infof(msg, args...) }

// Error logs an error message
func (l *ZapLogger) Error(msg string, args ...any) { l.s.Errorf(msg, args...) }

// Debug logs a debug message
func (l *ZapLogger) Debug(msg string, args ...any) { l.s.Debugf(msg, args...) }

// Sync flushes buffered log entries
func (l *ZapLogger) Sync() error { return l.s.Sync() }

// NewLoggerFromConfig builds the Logger selected by cfg.Format.
func NewLoggerFromConfig(cfg *LogConfig) (Logger, error) {
	if cfg == nil {
		cfg = DefaultLogConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, ErrConfigInvalid.WithDetails(fmt.Sprintf("log level %q", cfg.Level)).WithCause(err)
	}

	switch strings.ToLower(cfg.Format) {
	case "silent":
		return NewSilentLogger(), nil
	case "", "std":
		return NewDefaultLogger(level <= zapcore.DebugLevel), nil
	case "zap":
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		zc.OutputPaths = []string{"stderr"}
		zc.ErrorOutputPaths = []string{"stderr"}
		l, err := zc.Build()
		if err != nil {
			return nil, ErrConfigInvalid.WithDetails("zap logger").WithCause(err)
		}
		return NewZapLogger(l), nil
	default:
		return nil, ErrConfigInvalid.WithDetails(fmt.Sprintf("log format %q", cfg.Format))
	}
}
