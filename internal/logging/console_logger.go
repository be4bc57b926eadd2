package logging

import (
	"fmt"
	"io"
	"sync"
)

const (
	verbosePrefix = "[VERBOSE] "
	errorPrefix   = "[ERROR] "
)

// ConsoleLogger writes log lines to the writer given to NewConsoleLoggerTo,
// which the CLI points at stderr. Diagnostics never go to stdout so that report output
// stays machine-readable.
type ConsoleLogger struct {
	out     io.Writer
	verbose bool
	mu      sync.Mutex
}

// NewConsoleLoggerTo creates a logger writing to w.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLoggerTo(w io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{out: w, verbose: verbose}
}

// Verbose logs parser and fetch diagnostics when verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(verbosePrefix, format, args)
}

// Info logs informational messages.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(errorPrefix, format, args)
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.out, prefix+msg+"\n")
}
