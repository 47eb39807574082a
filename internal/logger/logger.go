// Package logger provides a small leveled logger with key=value fields.
package logger

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"
)

// Level represents log level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Logger writes one line per entry: `<RFC3339> [LEVEL] message | k=v ...`.
type Logger struct {
	out *log.Logger
	min Level
	now func() time.Time
}

// New creates a logger writing entries at or above min to w.
func New(w io.Writer, min Level) *Logger {
	return &Logger{
		out: log.New(w, "", 0),
		min: min,
		now: time.Now,
	}
}

// Discard returns a logger that drops every entry.
func Discard() *Logger {
	return New(io.Discard, LevelError+1)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value string
}

// F creates a Field, formatting value with %v.
func F(key string, value any) Field {
	return Field{Key: key, Value: fmt.Sprint(value)}
}

// Err creates an "error" Field.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: "<nil>"}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Log writes a structured log entry.
func (l *Logger) Log(level Level, message string, fields ...Field) {
	if l == nil || level < l.min {
		return
	}
	l.out.Println(formatEntry(l.now().Format(time.RFC3339), level.String(), message, fields...))
}

// Debug logs a debug message.
func (l *Logger) Debug(message string, fields ...Field) {
	l.Log(LevelDebug, message, fields...)
}

// Info logs an info message.
func (l *Logger) Info(message string, fields ...Field) {
	l.Log(LevelInfo, message, fields...)
}

// Error logs an error message.
func (l *Logger) Error(message string, fields ...Field) {
	l.Log(LevelError, message, fields...)
}

// Writer exposes the underlying output, e.g. for chi's request logger.
func (l *Logger) Writer() io.Writer {
	return l.out.Writer()
}

func formatEntry(timestamp, level, message string, fields ...Field) string {
	var b strings.Builder
	b.WriteString(timestamp)
	b.WriteString(" [")
	b.WriteString(level)
	b.WriteString("] ")
	b.WriteString(message)
	if len(fields) > 0 {
		b.WriteString(" |")
		for _, field := range fields {
			b.WriteByte(' ')
			b.WriteString(field.Key)
			b.WriteByte('=')
			if strings.ContainsAny(field.Value, " \t\"") {
				fmt.Fprintf(&b, "%q", field.Value)
			} else {
				b.WriteString(field.Value)
			}
		}
	}
	return b.String()
}
