package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Color codes for different log levels
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// Logger writes leveled, timestamped messages to a single destination.
type Logger struct {
	mu      sync.Mutex
	level   Level
	writer  io.Writer
	noColor bool
}

// Default logger instance
var defaultLogger = New(os.Stderr)

// New creates a logger writing to w at InfoLevel.
func New(w io.Writer) *Logger {
	return &Logger{level: InfoLevel, writer: w}
}

// SetLevel sets the global log level
func SetLevel(level Level) {
	defaultLogger.mu.Lock()
	defaultLogger.level = level
	defaultLogger.mu.Unlock()
}

// SetNoColor disables color output
func SetNoColor(noColor bool) {
	defaultLogger.mu.Lock()
	defaultLogger.noColor = noColor
	defaultLogger.mu.Unlock()
}

// Helper functions for the default logger
func Debug(args ...interface{})                 { defaultLogger.log(DebugLevel, args...) }
func Debugf(format string, args ...interface{}) { defaultLogger.logf(DebugLevel, format, args...) }
func Info(args ...interface{})                  { defaultLogger.log(InfoLevel, args...) }
func Infof(format string, args ...interface{})  { defaultLogger.logf(InfoLevel, format, args...) }
func Warn(args ...interface{})                  { defaultLogger.log(WarnLevel, args...) }
func Warnf(format string, args ...interface{})  { defaultLogger.logf(WarnLevel, format, args...) }
func Error(args ...interface{})                 { defaultLogger.log(ErrorLevel, args...) }
func Errorf(format string, args ...interface{}) { defaultLogger.logf(ErrorLevel, format, args...) }

// Success logs an info-level message marked as a successful outcome.
func Success(args ...interface{}) {
	defaultLogger.log(InfoLevel, "✓ "+fmt.Sprint(args...))
}

// Successf logs a formatted success message
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

func (l *Logger) log(level Level, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	var parts []string

	timestamp := time.Now().Format("15:04:05")
	if l.noColor {
		parts = append(parts, timestamp)
	} else {
		parts = append(parts, colorGray+timestamp+colorReset)
	}

	levelStr, levelColor := levelString(level)
	if l.noColor {
		parts = append(parts, levelStr)
	} else {
		parts = append(parts, levelColor+levelStr+colorReset)
	}

	parts = append(parts, fmt.Sprint(args...))

	_, _ = fmt.Fprintln(l.writer, strings.Join(parts, " "))
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	l.log(level, fmt.Sprintf(format, args...))
}

func levelString(level Level) (string, string) {
	switch level {
	case DebugLevel:
		return "DEBUG", colorGray
	case InfoLevel:
		return "INFO ", colorGreen
	case WarnLevel:
		return "WARN ", colorYellow
	case ErrorLevel:
		return "ERROR", colorRed
	default:
		return "UNKNOWN", colorReset
	}
}

// ParseLevel parses a string log level
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}
