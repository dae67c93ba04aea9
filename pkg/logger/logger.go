// Package logger provides logging functionality for the issue marker.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes to stdout.
type defaultLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewDefaultLogger creates a new default logger.
func NewDefaultLogger() Logger {
	return &defaultLogger{out: os.Stdout}
}

// Logf writes a formatted message to stdout with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, format+"\n", args...)
}

// ActionsLogger writes GitHub Actions workflow commands.
type ActionsLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewActionsLogger creates a logger writing workflow commands to stdout.
func NewActionsLogger() *ActionsLogger {
	return NewActionsLoggerTo(os.Stdout)
}

// NewActionsLoggerTo creates a logger writing workflow commands to out.
func NewActionsLoggerTo(out io.Writer) *ActionsLogger {
	return &ActionsLogger{out: out}
}

// Logf writes a plain log line.
func (a *ActionsLogger) Logf(format string, args ...interface{}) {
	a.write("", fmt.Sprintf(format, args...))
}

// Debugf writes a line only shown when step debug logging is enabled.
func (a *ActionsLogger) Debugf(format string, args ...interface{}) {
	a.write("::debug::", fmt.Sprintf(format, args...))
}

// Errorf writes an error annotation.
func (a *ActionsLogger) Errorf(format string, args ...interface{}) {
	a.write("::error::", fmt.Sprintf(format, args...))
}

// Group starts a collapsible log group.
func (a *ActionsLogger) Group(title string) {
	a.write("::group::", title)
}

// EndGroup closes the current log group.
func (a *ActionsLogger) EndGroup() {
	a.write("::endgroup::", "")
}

func (a *ActionsLogger) write(command, msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if command != "" {
		msg = escapeData(msg)
	}
	fmt.Fprintf(a.out, "%s%s\n", command, msg)
}

// escapeData escapes a workflow command message.
func escapeData(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}

// AsDebug returns a Logger writing every line as a debug command.
func (a *ActionsLogger) AsDebug() Logger {
	return actionsDebugLogger{actions: a}
}

type actionsDebugLogger struct {
	actions *ActionsLogger
}

func (d actionsDebugLogger) Logf(format string, args ...interface{}) {
	d.actions.Debugf(format, args...)
}
