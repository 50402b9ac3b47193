// Package logger is a dual console/file logger: INFO and above reach the
// console (clean, no prefix), every level always reaches the log file
// with a level tag, and DEBUG only surfaces on console in verbose mode.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/savannahghi/mentorship-xls-form/internal/model"
	"github.com/savannahghi/mentorship-xls-form/internal/scoring"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
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

// Logger handles dual-output logging (console + file)
type Logger struct {
	consoleLogger *log.Logger
	fileLogger    *log.Logger
	logFile       *os.File
	verbose       bool
	minLevel      Level
}

var globalLogger *Logger

// Init initializes the global logger
// consoleOutput: where to write INFO logs (typically os.Stdout)
// logFilePath: path to the log file for DEBUG/ERROR logs
// verbose: if true, show DEBUG logs on console as well
func Init(consoleOutput io.Writer, logFilePath string, verbose bool) error {
	// Create log directory if it doesn't exist
	logDir := filepath.Dir(logFilePath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// Open log file
	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	// Create loggers
	consoleLogger := log.New(consoleOutput, "", 0) // No prefix for clean console output
	fileLogger := log.New(logFile, "", log.LstdFlags)

	minLevel := LevelInfo
	if verbose {
		minLevel = LevelDebug
	}

	globalLogger = &Logger{
		consoleLogger: consoleLogger,
		fileLogger:    fileLogger,
		logFile:       logFile,
		verbose:       verbose,
		minLevel:      minLevel,
	}

	return nil
}

// Close closes the log file
func Close() {
	if globalLogger != nil && globalLogger.logFile != nil {
		globalLogger.logFile.Close()
	}
}

// Debug logs a debug message (file only, unless verbose)
func Debug(format string, args ...interface{}) {
	if globalLogger == nil {
		return
	}
	globalLogger.log(LevelDebug, format, args...)
}

// Info logs an info message (console + file)
func Info(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf(format+"\n", args...)
		return
	}
	globalLogger.log(LevelInfo, format, args...)
}

// Warn logs a warning message (console + file)
func Warn(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf("WARN: "+format+"\n", args...)
		return
	}
	globalLogger.log(LevelWarn, format, args...)
}

// Error logs an error message (console + file)
func Error(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf("ERROR: "+format+"\n", args...)
		return
	}
	globalLogger.log(LevelError, format, args...)
}

// log handles the actual logging logic
func (l *Logger) log(level Level, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Always log to file with timestamp and level (regardless of minLevel)
	l.fileLogger.Printf("[%s] %s", level.String(), message)

	// Only log to console if level >= minLevel
	if level < l.minLevel {
		return
	}

	// Log to console based on level
	switch level {
	case LevelDebug:
		if l.verbose {
			l.consoleLogger.Printf("[DEBUG] %s", message)
		}
	case LevelInfo:
		l.consoleLogger.Printf("%s", message) // Clean output for INFO
	case LevelWarn:
		l.consoleLogger.Printf("⚠️  %s", message)
	case LevelError:
		l.consoleLogger.Printf("❌ %s", message)
	}
}

// InfoClean logs an info message without any prefix (console only)
// Useful for progress updates that shouldn't go to log file
func InfoClean(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf(format+"\n", args...)
		return
	}
	globalLogger.consoleLogger.Printf(format, args...)
}

// LogCompileError logs a lowering/compilation failure to the log file; on
// the console it appears only in verbose mode, as a DEBUG line. It recognises the compiler's own error taxonomy —
// model.InvalidMetadataError, scoring.ExpressionSyntaxError, and
// scoring.InvalidRuleSetError — and logs each under a tag naming which
// invariant failed, keyed by the identifier the error itself names
// rather than the caller's. Any other error falls back to fallbackID
// (typically the checklist id the caller was compiling) under a generic
// tag. This keeps the console clean while preserving full diagnostic
// detail in the log file.
func LogCompileError(fallbackID string, err error) {
	if globalLogger == nil {
		return
	}

	tag, identifier := classifyCompileError(fallbackID, err)

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf("[%s] Identifier: %s, Error: %v", tag, identifier, err)
	globalLogger.fileLogger.Printf("[%s] %s", timestamp, message)

	// Also record it at DEBUG level: the console shows it only in verbose mode.
	Debug("Compile error for %s: %v", identifier, err)
}

// classifyCompileError maps a compilation error to a log tag and the
// identifier it names, falling back to fallbackID for error types the
// compiler does not itself define.
func classifyCompileError(fallbackID string, err error) (tag, identifier string) {
	var metaErr *model.InvalidMetadataError
	var syntaxErr *scoring.ExpressionSyntaxError
	var ruleSetErr *scoring.InvalidRuleSetError

	switch {
	case errors.As(err, &metaErr):
		return "INVALID_METADATA", metaErr.ID
	case errors.As(err, &syntaxErr):
		return "EXPRESSION_SYNTAX", syntaxErr.QuestionID
	case errors.As(err, &ruleSetErr):
		return "INVALID_RULE_SET", ruleSetErr.QuestionID
	default:
		return "COMPILE_ERROR", fallbackID
	}
}

// GetLogFilePath returns the path to the current log file
func GetLogFilePath() string {
	if globalLogger != nil && globalLogger.logFile != nil {
		return globalLogger.logFile.Name()
	}
	return ""
}

// IsVerbose returns whether verbose logging is enabled
func IsVerbose() bool {
	if globalLogger == nil {
		return false
	}
	return globalLogger.verbose
}
