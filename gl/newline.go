// File: newline.go
// Title: Line Terminator (plain)
// Description: Default build-time newline mode: lines end with '\n' and the
//              sink is not flushed. Build with -tags glflush to flush after
//              every line instead.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

//go:build !glflush

package gl

const flushLine = false
