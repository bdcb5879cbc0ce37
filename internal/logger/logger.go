package logger

import (
	"io"
	"log/slog"
	"os"
)

type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warning(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

type StructuredLogger struct {
	logger *slog.Logger
	level  LogLevel
}

func NewStructuredLogger(level LogLevel) *StructuredLogger {
	opts := &slog.HandlerOptions{
		Level: slogLevel(level),
	}

	handler := slog.NewTextHandler(os.Stdout, opts)

	return &StructuredLogger{
		logger: slog.New(handler),
		level:  level,
	}
}

func NewJSONLogger(level LogLevel, writer io.Writer) *StructuredLogger {
	opts := &slog.HandlerOptions{
		Level: slogLevel(level),
	}

	handler := slog.NewJSONHandler(writer, opts)

	return &StructuredLogger{
		logger: slog.New(handler),
		level:  level,
	}
}

func slogLevel(level LogLevel) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *StructuredLogger) Debug(msg string, fields map[string]interface{}) {
	if l.level > DebugLevel {
		return
	}
	l.logWithFields(slog.LevelDebug, msg, fields)
}

func (l *StructuredLogger) Info(msg string, fields map[string]interface{}) {
	if l.level > InfoLevel {
		return
	}
	l.logWithFields(slog.LevelInfo, msg, fields)
}

func (l *StructuredLogger) Warning(msg string, fields map[string]interface{}) {
	if l.level > WarnLevel {
		return
	}
	l.logWithFields(slog.LevelWarn, msg, fields)
}

func (l *StructuredLogger) Error(msg string, err error, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	if err != nil {
		fields["error"] = err.Error()
	}

	l.logWithFields(slog.LevelError, msg, fields)
}

func (l *StructuredLogger) logWithFields(level slog.Level, msg string, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	l.logger.Log(nil, level, msg, args...)
}

// NopLogger discards all output. Used by tests and as a safe default.
type NopLogger struct{}

func NewNopLogger() *NopLogger { return &NopLogger{} }

func (*NopLogger) Debug(string, map[string]interface{})        {}
func (*NopLogger) Info(string, map[string]interface{})         {}
func (*NopLogger) Warning(string, map[string]interface{})      {}
func (*NopLogger) Error(string, error, map[string]interface{}) {}
