// File: logger.go
// Title: Core Logger Implementation
// Description: Implements a small structured logger with leveled output and
//              contextual fields. Entries are rendered as a timestamped text
//              line followed by sorted key=value pairs, which keeps diagnostic
//              output from the CLI deterministic and grep-friendly.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation with structured logging

package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Fields holds contextual key-value pairs attached to log entries
type Fields map[string]interface{}

// Logger represents a structured logger with contextual information
type Logger struct {
	level  Level
	output io.Writer
	name   string

	// Context fields that are added to all log entries
	contextFields Fields

	mutex sync.RWMutex
}

// New creates a new logger with default configuration
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		output:        os.Stderr,
		contextFields: make(Fields),
	}
}

// NewWithOutput creates a new logger writing to the given writer
func NewWithOutput(output io.Writer) *Logger {
	logger := New()
	logger.output = output
	return logger
}

// WithLevel returns a clone of the logger with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithName returns a clone of the logger with the given name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a clone of the logger with an additional context field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields returns a clone of the logger with additional context fields
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// SetLevel changes the minimum level of this logger instance
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

// GetLevel returns the current minimum level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

// IsLevelEnabled reports whether the given level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.IsEnabled(l.GetLevel())
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs a message at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// ErrorWithErr logs a message at error level with an attached error
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// log renders and writes a single entry if the level is enabled
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	if !level.IsEnabled(l.level) {
		return
	}

	merged := make(Fields, len(l.contextFields))
	for k, v := range l.contextFields {
		merged[k] = v
	}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	if err != nil {
		merged["error"] = err.Error()
	}

	var sb strings.Builder
	sb.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	sb.WriteString(" ")
	sb.WriteString(level.ShortString())
	if l.name != "" {
		sb.WriteString(" [")
		sb.WriteString(l.name)
		sb.WriteString("]")
	}
	sb.WriteString(" ")
	sb.WriteString(message)

	if len(merged) > 0 {
		keys := make([]string, 0, len(merged))
		for k := range merged {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf(" %s=%v", k, merged[k]))
		}
	}
	sb.WriteString("\n")

	_, _ = io.WriteString(l.output, sb.String())
}

// clone creates a copy of the logger for With* chaining
func (l *Logger) clone() *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	fields := make(Fields, len(l.contextFields))
	for k, v := range l.contextFields {
		fields[k] = v
	}

	return &Logger{
		level:         l.level,
		output:        l.output,
		name:          l.name,
		contextFields: fields,
	}
}

var defaultLogger = New()

// GetDefault returns the package-wide default logger
func GetDefault() *Logger {
	return defaultLogger
}
