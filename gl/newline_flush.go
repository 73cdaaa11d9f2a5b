// File: newline_flush.go
// Title: Line Terminator (flushing)
// Description: Flushing build-time newline mode, selected with -tags glflush.
//              After each line the sink is flushed when it supports Flush or
//              Sync.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

//go:build glflush

package gl

const flushLine = true
