// File: settings.go
// Title: Process-Wide Settings
// Description: Holds the process-wide mutable configuration of the library:
//              the enabled prefix set, the output and color flags, and the
//              output sink. Accessors mirror the upstream API and perform no
//              synchronization.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

package gl

import (
	"io"
	"os"
)

// ANSI escape sequences used when color output is enabled
const (
	colorStart = "\033[0;31m"
	colorReset = "\033[0m"
)

var (
	// curPrefixes holds the enabled prefix set
	curPrefixes = PrefixFile | PrefixLine

	// outputEnabled gates whether anything is written at all
	outputEnabled = true

	// colorEnabled wraps emitted lines in ANSI color codes
	colorEnabled = false

	// output is the sink all lines are written to
	output io.Writer = os.Stdout
)

// GetPrefixes returns the enabled prefix set.
//
// Defaults to PrefixFile | PrefixLine.
func GetPrefixes() Prefix {
	return curPrefixes
}

// SetPrefixes sets the enabled prefix set. Alters the output of Log,
// LogArray and LogMatrix.
//
// Not synchronized: set once at startup or serialize mutations externally.
func SetPrefixes(p Prefix) {
	curPrefixes = p
}

// IsOutputEnabled returns true if output is enabled
func IsOutputEnabled() bool {
	return outputEnabled
}

// SetOutputEnabled enables or disables all output.
//
// Defaults to enabled.
func SetOutputEnabled(e bool) {
	outputEnabled = e
}

// IsColorEnabled returns true if ANSI color output is enabled
func IsColorEnabled() bool {
	return colorEnabled
}

// SetColorEnabled enables or disables ANSI color output.
//
// Defaults to disabled.
func SetColorEnabled(e bool) {
	colorEnabled = e
}

// Output returns the current output sink
func Output() io.Writer {
	return output
}

// SetOutput redirects output to w. A nil writer restores os.Stdout.
//
// This is the Go equivalent of rebinding the standard output stream; the
// library does not care where the sink points.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	output = w
}
