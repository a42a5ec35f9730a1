// Package logging provides a simple leveled logger with named components.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a log level string.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "info", "INFO":
		return LevelInfo
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// state is shared between a logger and everything derived from it via Named,
// so SetLevel and SetOutput affect the whole family.
type state struct {
	mu     sync.Mutex
	level  Level
	output io.Writer
}

// Logger is a simple leveled logger. Derived loggers created with Named
// prefix each line with a component name.
type Logger struct {
	st   *state
	name string
}

// New creates a new logger writing to stderr.
func New(level Level) *Logger {
	return &Logger{
		st: &state{
			level:  level,
			output: os.Stderr,
		},
	}
}

// Named returns a logger that tags every line with a component name.
// Nested names join with a dot.
func (l *Logger) Named(name string) *Logger {
	if l.name != "" {
		name = l.name + "." + name
	}
	return &Logger{st: l.st, name: name}
}

// SetOutput sets the log output destination for the whole logger family.
func (l *Logger) SetOutput(w io.Writer) {
	l.st.mu.Lock()
	defer l.st.mu.Unlock()
	l.st.output = w
}

// SetLevel sets the minimum log level for the whole logger family.
func (l *Logger) SetLevel(level Level) {
	l.st.mu.Lock()
	defer l.st.mu.Unlock()
	l.st.level = level
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	l.st.mu.Lock()
	defer l.st.mu.Unlock()

	if level < l.st.level {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)

	var line string
	if l.name != "" {
		line = fmt.Sprintf("%s [%s] %s: %s\n", timestamp, level.String(), l.name, msg)
	} else {
		line = fmt.Sprintf("%s [%s] %s\n", timestamp, level.String(), msg)
	}

	_, _ = l.st.output.Write([]byte(line))
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	return &Logger{
		st: &state{
			level:  LevelError + 1, // Higher than any level
			output: io.Discard,
		},
	}
}
