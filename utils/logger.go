package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

var levelColors = map[LogLevel]string{
	DEBUG: "\033[36m", // Cyan
	INFO:  "\033[32m", // Green
	WARN:  "\033[33m", // Yellow
	ERROR: "\033[31m", // Red
	FATAL: "\033[35m", // Magenta
}

const colorReset = "\033[0m"

// String returns the upper-case level name
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel maps a level name (case-insensitive) to a LogLevel
func ParseLevel(name string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DEBUG, nil
	case "", "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "FATAL":
		return FATAL, nil
	}
	return INFO, NewError(fmt.Sprintf("unknown log level %q", name))
}

// Logger provides structured logging with a component tag and bound fields
type Logger struct {
	mu         *sync.Mutex
	level      LogLevel
	component  string
	fields     []Field
	output     io.Writer
	colorize   bool
	showCaller bool
	timeFormat string
}

// LoggerConfig configures a logger instance
type LoggerConfig struct {
	Level      LogLevel
	Component  string
	Output     io.Writer
	Colorize   bool
	ShowCaller bool
	TimeFormat string
}

// NewLogger creates a new logger with the given configuration
func NewLogger(config LoggerConfig) *Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}
	if config.TimeFormat == "" {
		config.TimeFormat = "15:04:05.000"
	}

	return &Logger{
		mu:         &sync.Mutex{},
		level:      config.Level,
		component:  config.Component,
		output:     config.Output,
		colorize:   config.Colorize,
		showCaller: config.ShowCaller,
		timeFormat: config.TimeFormat,
	}
}

// DefaultLogger creates a logger writing to stderr so command output on
// stdout stays machine readable.
func DefaultLogger(component string) *Logger {
	return NewLogger(LoggerConfig{
		Level:      INFO,
		Component:  component,
		Output:     os.Stderr,
		Colorize:   false,
		ShowCaller: false,
		TimeFormat: "15:04:05.000",
	})
}

// With returns a logger that prefixes every entry with the given fields.
// The returned logger shares the parent's output lock.
func (l *Logger) With(fields ...Field) *Logger {
	bound := make([]Field, 0, len(l.fields)+len(fields))
	bound = append(bound, l.fields...)
	bound = append(bound, fields...)

	return &Logger{
		mu:         l.mu,
		level:      l.level,
		component:  l.component,
		fields:     bound,
		output:     l.output,
		colorize:   l.colorize,
		showCaller: l.showCaller,
		timeFormat: l.timeFormat,
	}
}

// Level returns the minimum level this logger emits
func (l *Logger) Level() LogLevel {
	return l.level
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...Field) {
	l.log(DEBUG, msg, fields...)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...Field) {
	l.log(INFO, msg, fields...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...Field) {
	l.log(WARN, msg, fields...)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...Field) {
	l.log(ERROR, msg, fields...)
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(msg string, fields ...Field) {
	l.log(FATAL, msg, fields...)
	os.Exit(1)
}

func (l *Logger) log(level LogLevel, msg string, fields ...Field) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Format: [TIME] [LEVEL] [COMPONENT] message key=value key=value
	var builder strings.Builder

	if l.colorize {
		builder.WriteString(levelColors[level])
	}

	builder.WriteString("[")
	builder.WriteString(time.Now().Format(l.timeFormat))
	builder.WriteString("] ")

	builder.WriteString("[")
	builder.WriteString(fmt.Sprintf("%-5s", levelNames[level]))
	builder.WriteString("] ")

	if l.component != "" {
		builder.WriteString("[")
		builder.WriteString(l.component)
		builder.WriteString("] ")
	}

	builder.WriteString(msg)

	all := fields
	if len(l.fields) > 0 {
		all = append(append([]Field{}, l.fields...), fields...)
	}
	for _, field := range all {
		builder.WriteString(" ")
		builder.WriteString(field.Key)
		builder.WriteString("=")
		builder.WriteString(field.format())
	}

	if l.showCaller {
		_, file, line, ok := runtime.Caller(2)
		if ok {
			parts := strings.Split(file, "/")
			builder.WriteString(fmt.Sprintf(" (%s:%d)", parts[len(parts)-1], line))
		}
	}

	if l.colorize {
		builder.WriteString(colorReset)
	}

	builder.WriteString("\n")

	logLine := builder.String()
	l.output.Write([]byte(logLine))

	l.redirectLogToBridge(level, logLine)
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

func (f Field) format() string {
	switch v := f.Value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case error:
		return fmt.Sprintf("%q", v.Error())
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Helper functions for creating fields
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

var (
	globalMu     sync.RWMutex
	globalLogger = DefaultLogger("navcaps")
)

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// GlobalLogger returns the logger used by the package-level helpers
func GlobalLogger() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

func Debug(msg string, fields ...Field) {
	GlobalLogger().Debug(msg, fields...)
}

func Info(msg string, fields ...Field) {
	GlobalLogger().Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	GlobalLogger().Warn(msg, fields...)
}

func Error(msg string, fields ...Field) {
	GlobalLogger().Error(msg, fields...)
}
