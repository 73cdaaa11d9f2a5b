// File: sep_other.go
// Title: Path Separator (non-Windows)
// Description: Build-time path separator used to strip directories from the
//              file prefix on non-Windows targets.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

//go:build !windows

package gl

const pathSeparator = '/'
