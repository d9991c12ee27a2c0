// Package ui provides unified output formatting for the drscaffold CLI.
//
// Overview:
//   - Responsibility: Leveled console messages and step indication for scaffolding runs
//   - Key Types: OutputLevel, Message
//   - Concurrency Model: Thread-safe output operations
//   - Error Semantics: Encoding failures are reported on stderr and otherwise ignored
//   - Performance Notes: Minimal allocations, debug output skipped unless verbose
//
// Usage:
//
//	ui.Info("Scaffolding %s in %s", model, app)
//	ui.Error("Failed to patch %s: %v", path, err)
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	verbose    bool
	jsonOutput bool
	stdout     io.Writer = os.Stdout
	stderr     io.Writer = os.Stderr
	mu         sync.RWMutex
)

// OutputLevel represents the severity level of a message.
type OutputLevel string

const (
	LevelDebug   OutputLevel = "debug"
	LevelInfo    OutputLevel = "info"
	LevelWarning OutputLevel = "warning"
	LevelError   OutputLevel = "error"
	LevelSuccess OutputLevel = "success"
)

// Message represents a structured output message.
//
// Parameters:
//   - Level: Message severity level
//   - Text: Human-readable message content
//   - Timestamp: When the message was created
//
// Concurrency:
//   - Safe for concurrent access
type Message struct {
	Level     OutputLevel `json:"level"`
	Text      string      `json:"text"`
	Timestamp time.Time   `json:"timestamp"`
}

// SetVerbose enables or disables verbose output.
//
// Parameters:
//   - enabled: Whether to show debug messages
//
// Concurrency:
//   - Thread-safe
func SetVerbose(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = enabled
}

// IsVerbose reports whether debug messages are shown.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetJSONOutput enables JSON-formatted output.
//
// Parameters:
//   - enabled: Whether to output in JSON format
//
// Concurrency:
//   - Thread-safe
func SetJSONOutput(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	jsonOutput = enabled
}

// SetOutput redirects regular and error output. A nil writer keeps the current one.
//
// Parameters:
//   - out: Writer for debug, info, warning and success messages
//   - errOut: Writer for error messages
//
// Concurrency:
//   - Thread-safe
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// output writes a message to the appropriate output stream.
//
// Parameters:
//   - level: Message severity level
//   - format: Printf-style format string
//   - args: Format arguments
//
// Concurrency:
//   - Thread-safe
func output(level OutputLevel, format string, args ...interface{}) {
	mu.RLock()
	useJSON := jsonOutput
	useVerbose := verbose
	out := stdout
	errOut := stderr
	mu.RUnlock()

	if level == LevelDebug && !useVerbose {
		return
	}

	text := fmt.Sprintf(format, args...)

	if useJSON {
		encoder := json.NewEncoder(out)
		if err := encoder.Encode(Message{Level: level, Text: text, Timestamp: time.Now()}); err != nil {
			fmt.Fprintf(errOut, "Failed to encode JSON output: %v\n", err)
		}
		return
	}

	writer := out
	if level == LevelError {
		writer = errOut
	}

	var prefix string
	switch level {
	case LevelDebug:
		prefix = "🔍 DEBUG:"
	case LevelInfo:
		prefix = "ℹ️  INFO:"
	case LevelWarning:
		prefix = "⚠️  WARN:"
	case LevelError:
		prefix = "❌ ERROR:"
	case LevelSuccess:
		prefix = "✅ SUCCESS:"
	}

	fmt.Fprintf(writer, "%s %s\n", prefix, text)
}

// Debug outputs a debug message, only shown in verbose mode.
func Debug(format string, args ...interface{}) {
	output(LevelDebug, format, args...)
}

// Info outputs an informational message.
func Info(format string, args ...interface{}) {
	output(LevelInfo, format, args...)
}

// Warning outputs a warning message.
func Warning(format string, args ...interface{}) {
	output(LevelWarning, format, args...)
}

// Error outputs an error message to the error stream.
func Error(format string, args ...interface{}) {
	output(LevelError, format, args...)
}

// Success outputs a success message.
func Success(format string, args ...interface{}) {
	output(LevelSuccess, format, args...)
}

// Step outputs a step indicator with message.
//
// Parameters:
//   - step: Step number
//   - total: Total number of steps
//   - format: Printf-style format string
//   - args: Format arguments
//
// Concurrency:
//   - Thread-safe
func Step(step, total int, format string, args ...interface{}) {
	mu.RLock()
	useJSON := jsonOutput
	out := stdout
	mu.RUnlock()

	if useJSON {
		Info(format, args...)
		return
	}

	text := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "  [%d/%d] %s\n", step, total, text)
}
