package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// Console writes leveled, optionally colored log lines to a writer
type Console struct {
	out       io.Writer
	useColors bool
	level     LogLevel
	now       func() time.Time
}

// NewConsole creates a Console logger. Verbose starts it at LevelDebug.
func NewConsole(out io.Writer, verbose bool, useColors bool) *Console {
	level := LevelInfo
	if verbose {
		level = LevelDebug
	}

	return &Console{
		out:       out,
		useColors: useColors,
		level:     level,
		now:       time.Now,
	}
}

// WithLevel sets the log level and returns the logger
func (l *Console) WithLevel(level LogLevel) *Console {
	l.level = level
	return l
}

// Level reports the current level.
func (l *Console) Level() LogLevel {
	return l.level
}

// Debug logs a debug message
func (l *Console) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, color.CyanString, format, args...)
}

// Info logs an informational message
func (l *Console) Info(format string, args ...interface{}) {
	l.log(LevelInfo, color.BlueString, format, args...)
}

// Warn logs a warning message
func (l *Console) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, color.YellowString, format, args...)
}

// Error logs an error message
func (l *Console) Error(format string, args ...interface{}) {
	l.log(LevelError, color.RedString, format, args...)
}

func (l *Console) log(level LogLevel, paint func(string, ...interface{}) string, format string, args ...interface{}) {
	if l.level > level {
		return
	}
	prefix := level.String()
	if l.useColors {
		prefix = paint(prefix)
	}
	fmt.Fprintf(l.out, "[%s %s] %s\n", l.now().Format("15:04:05.000"), prefix, fmt.Sprintf(format, args...))
}
