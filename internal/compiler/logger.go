package compiler

import (
	"fmt"
	"io"
	"os"

	"github.com/KromDaniel/lexgen/internal/definition"
)

const logPrefix = "[lexgen] "

// Logger reports the decisions taken for each definition while generating.
// It is silent unless enabled.
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

// SetOutput redirects the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log prints a formatted line.
func (l *Logger) Log(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(l.out, logPrefix+format+"\n", args...)
	}
}

// Section prints a section header.
func (l *Logger) Section(name string) {
	if l.enabled {
		fmt.Fprintf(l.out, "\n%s=== %s ===\n", logPrefix, name)
	}
}

// detail prints an indented "key: value" line under the last definition.
func (l *Logger) detail(key, format string, args ...any) {
	l.Log("  "+key+": "+format, args...)
}

// Definition prints the strategy, guard and patterns chosen for d:
//
//	[lexgen] #1 FN: validatedRegex
//	[lexgen]   guard: equality over 1 leading bytes [64]
//	[lexgen]   pattern: \A(?:@fn)
//	[lexgen]   validation: \A(?:@fn( |$))
func (l *Logger) Definition(d *definition.Analyzed) {
	if !l.enabled {
		return
	}

	l.Log("#%d %s: %s", d.SequenceID, d.Type, d.Strategy)
	if d.Generic {
		l.detail("guard", "none (generic, always attempted)")
	} else {
		l.detail("guard", "%s over %d leading bytes %v", guardKind(&d.LeadingBytes), d.LeadingBytes.Len(), d.LeadingBytes.Bytes())
	}

	if !d.IsRegex() {
		l.detail("literal", "%q", d.Literal)
		return
	}
	l.detail("pattern", "%s", d.Primary.Anchored)
	if d.Valid != nil {
		l.detail("validation", "%s", d.Valid.Anchored)
	}
	if d.HasNames() {
		l.detail("captures", "%v", captureNames(d))
	}
}

// Enabled reports whether the logger writes anything.
func (l *Logger) Enabled() bool {
	return l.enabled
}
