// File: log.go
// Title: Multi-Variable Log Operation
// Description: Implements the primary log operation: renders one line of
//              "name = value" pairs behind the composed prefix preamble,
//              with optional type tags and ANSI color wrapping.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

package gl

// Pair is one name/value expression of a log statement
type Pair struct {
	name  string
	value any
}

// P builds a Pair from an expression name and its value. Catalog shapes are
// selected by wrapping the value (Char, Slice, Map, Stack, ...); unwrapped
// values use their generic textual conversion.
func P(name string, value any) Pair {
	return Pair{name: name, value: value}
}

// Log writes one line with each pair rendered as "name = value", joined by
// ", ". Supports up to 16 pairs per call. Emits nothing when output is
// disabled.
//
//	i := 1
//	s := "s"
//	gl.Log(gl.P("i", i), gl.P("s", s))
//	// Output: log.go:12: i = 1, s = "s"
func Log(pairs ...Pair) {
	if !outputEnabled {
		return
	}
	logPairs(callSite(2), pairs)
}

// logPairs renders and writes one full line for the given call site
func logPairs(site prefixer, pairs []Pair) {
	prefixes := curPrefixes

	b := make([]byte, 0, 128)
	if colorEnabled {
		b = append(b, colorStart...)
	}
	b = site.appendTo(b, prefixes)
	for i, p := range pairs {
		if i > 0 {
			b = append(b, ", "...)
		}
		if prefixes.Has(PrefixTypeName) {
			b = append(b, "type "...)
		}
		b = append(b, p.name...)
		b = append(b, " = "...)
		b = appendAny(b, p.value)
	}
	if colorEnabled {
		b = append(b, colorReset...)
	}
	b = append(b, '\n')

	write(b)
}

// write sends a finished line to the sink, flushing in glflush builds
func write(b []byte) {
	w := output
	w.Write(b)
	if flushLine {
		switch f := w.(type) {
		case interface{ Flush() error }:
			f.Flush()
		case interface{ Sync() error }:
			f.Sync()
		}
	}
}
