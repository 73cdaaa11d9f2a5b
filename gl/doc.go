// Package gl provides lightweight name = value debug logging.
//
// Package: gl
// Title: goinglogging Debug Output Library
// Description: This package implements a small debug-print library that writes
//              "name = value" lines for one or more variables, with optional
//              contextual prefixes (file, line, function, time, goroutine id,
//              type tag) and optional ANSI coloring. Rendering is driven by a
//              closed catalog of value shapes (scalars, sequences, maps,
//              front-only stacks and queues) chosen at the call site, plus a
//              generic fallback for everything else.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation ported from the C++ header
//
// goinglogging is for debugging when a debugger is a worse alternative. It is
// not for heavy logging: there are no levels, no filtering and no async I/O.
//
// Features:
// - One-line output for up to 16 variables per call
// - Shape-aware rendering of sequences, maps, stacks and queues
// - Configurable prefixes: file, line, function, time, goroutine id, type tag
// - Optional ANSI color wrapping of each output line
// - Array and matrix printers with index annotations
// - Build-tag selectable flushing line terminator (tag "glflush")
//
// Usage:
//
//	import "github.com/msto63/goinglogging/gl"
//
//	i := 1
//	gl.Log(gl.P("i", i))
//	// Output: doc.go:34: i = 1
//
//	s := []int{0, 1, 2}
//	gl.Log(gl.P("s", gl.Slice(s)))
//	// Output: doc.go:38: s = {0, 1, 2}
//
//	gl.SetPrefixes(gl.PrefixFile | gl.PrefixLine | gl.PrefixTime)
//	gl.SetColorEnabled(true)
//
// The prefix set and the output and color flags are process-wide and not
// synchronized. Configure them once at startup before spawning goroutines, or
// serialize mutations externally.
package gl
