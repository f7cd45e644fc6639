package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Structured adapts a zap logger to the Logger interface. Messages are
// formatted printf-style and emitted as the zap message field.
type Structured struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewStructured wraps an existing zap logger.
func NewStructured(base *zap.Logger) *Structured {
	if base == nil {
		base = zap.NewNop()
	}
	return &Structured{base: base, sugar: base.Sugar()}
}

// NewStructuredFromLevel builds a production JSON logger writing to stderr at
// the given level.
func NewStructuredFromLevel(level LogLevel, appName, appVersion string) (*Structured, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	base, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logger: failed to build zap logger: %w", err)
	}
	return NewStructured(base), nil
}

func (s *Structured) Debug(format string, args ...interface{}) { s.sugar.Debugf(format, args...) }
func (s *Structured) Info(format string, args ...interface{})  { s.sugar.Infof(format, args...) }
func (s *Structured) Warn(format string, args ...interface{})  { s.sugar.Warnf(format, args...) }
func (s *Structured) Error(format string, args ...interface{}) { s.sugar.Errorf(format, args...) }

// Sync flushes buffered entries.
func (s *Structured) Sync() error {
	return s.base.Sync()
}

// zapLevel maps LevelNone above every zap level so nothing is written.
func zapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelNone:
		return zapcore.FatalLevel + 1
	default:
		return zapcore.InfoLevel
	}
}
