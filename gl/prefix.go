// File: prefix.go
// Title: Prefix Flag Definitions
// Description: Defines the bit-flag set that controls which contextual
//              prefixes are prepended to each output line, along with string
//              conversion and parsing for configuration files and CLIs.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with six prefix flags

package gl

import (
	"strings"
)

// Prefix is a bit-flag set selecting the contextual prefixes of a log line.
// Combine flags with bitwise or:
//
//	gl.SetPrefixes(gl.PrefixFile | gl.PrefixLine)
type Prefix uint32

const (
	// PrefixNone disables all prefixes
	PrefixNone Prefix = 0

	// PrefixFile prepends the file name, for example 'main.go'
	PrefixFile Prefix = 1 << 0

	// PrefixLine prepends the line number in the file, for example 'Line: 16'
	PrefixLine Prefix = 1 << 1

	// PrefixFunction prepends the function name, for example 'calculate()'
	PrefixFunction Prefix = 1 << 2

	// PrefixTime prepends the local time as hour:minute:second.millisecond,
	// for example '10:02:13.057'
	PrefixTime Prefix = 1 << 3

	// PrefixThread prepends the id of the calling goroutine, for example
	// 'TID: 12'
	PrefixThread Prefix = 1 << 4

	// PrefixTypeName inserts the word "type " before each variable name.
	// Unlike the other flags it is not part of the shared preamble.
	PrefixTypeName Prefix = 1 << 5
)

// prefixNames maps each single flag to its textual name, in rendering order.
var prefixNames = []struct {
	flag Prefix
	name string
}{
	{PrefixFile, "file"},
	{PrefixLine, "line"},
	{PrefixFunction, "function"},
	{PrefixTime, "time"},
	{PrefixThread, "thread"},
	{PrefixTypeName, "typename"},
}

// Has returns true if all flags in p are set
func (p Prefix) Has(flag Prefix) bool {
	return p&flag == flag && flag != PrefixNone
}

// String returns the string representation of the prefix set, for example
// "file|line". The empty set renders as "none".
func (p Prefix) String() string {
	if p == PrefixNone {
		return "none"
	}

	var parts []string
	for _, pn := range prefixNames {
		if p.Has(pn.flag) {
			parts = append(parts, pn.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}

// ParsePrefix parses a string like "file|line" into a prefix set. Flag names
// are case-insensitive and may be separated by '|' or ','. The name "none"
// yields the empty set.
func ParsePrefix(s string) (Prefix, error) {
	p := PrefixNone

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ','
	})
	if len(fields) == 0 {
		return PrefixNone, &ParseError{
			Input: s,
			Type:  "prefix",
		}
	}

	for _, field := range fields {
		switch strings.ToLower(strings.TrimSpace(field)) {
		case "none":
			// No flag to add
		case "file":
			p |= PrefixFile
		case "line":
			p |= PrefixLine
		case "function", "func":
			p |= PrefixFunction
		case "time":
			p |= PrefixTime
		case "thread", "tid":
			p |= PrefixThread
		case "typename", "type":
			p |= PrefixTypeName
		default:
			return PrefixNone, &ParseError{
				Input: field,
				Type:  "prefix",
			}
		}
	}

	return p, nil
}

// ParseError represents an error parsing a configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// AllPrefixes returns all single prefix flags
func AllPrefixes() []Prefix {
	return []Prefix{
		PrefixFile,
		PrefixLine,
		PrefixFunction,
		PrefixTime,
		PrefixThread,
		PrefixTypeName,
	}
}
