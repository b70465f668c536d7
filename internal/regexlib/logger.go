package regexlib

import (
	"fmt"
	"io"
	"os"
)

// Logger traces compile stages when enabled.
type Logger struct {
	enabled bool
	out     io.Writer
}

// NewLogger creates a logger writing to stderr.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log prints a formatted message if the logger is enabled. A nil logger
// is silent.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.Enabled() {
		fmt.Fprintf(l.out, "[regexdfa] "+format+"\n", args...)
	}
}

// Section prints a section header if the logger is enabled.
func (l *Logger) Section(name string) {
	if l.Enabled() {
		fmt.Fprintf(l.out, "\n[regexdfa] === %s ===\n", name)
	}
}

func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}
