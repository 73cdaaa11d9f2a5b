// File: prefixer.go
// Title: Prefix Composer
// Description: Captures the call-site context (file, line, function) and
//              renders the enabled prefix segments into the line preamble in
//              a fixed order with a running separator.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

package gl

import (
	"bytes"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// prefixer holds the immutable call-site context of one logging statement
type prefixer struct {
	file     string
	line     int
	function string
}

// callSite captures the caller's file, line and function. skip counts stack
// frames above callSite itself, as in runtime.Caller.
func callSite(skip int) prefixer {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return prefixer{file: "unknown", function: "unknown"}
	}

	function := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		// Strip package qualifier, keep the bare function name
		if idx := strings.LastIndex(function, "."); idx != -1 {
			function = function[idx+1:]
		}
	}

	return prefixer{file: file, line: line, function: function}
}

// appendTo renders the enabled prefix segments followed by ": " when at
// least one segment was emitted. An empty prefix set appends nothing.
func (p prefixer) appendTo(dst []byte, prefixes Prefix) []byte {
	cnt := 0

	// FILE
	if prefixes.Has(PrefixFile) {
		file := p.file
		if idx := strings.LastIndexByte(file, pathSeparator); idx != -1 {
			file = file[idx+1:]
		}
		dst = append(dst, file...)
		cnt++
	}

	// LINE
	if prefixes.Has(PrefixLine) {
		if cnt == 0 {
			dst = append(dst, "Line: "...)
		} else {
			dst = append(dst, ':')
		}
		dst = strconv.AppendInt(dst, int64(p.line), 10)
		cnt++
	}

	// FUNCTION
	if prefixes.Has(PrefixFunction) {
		if cnt != 0 {
			dst = append(dst, ", "...)
		}
		dst = append(dst, p.function...)
		dst = append(dst, "()"...)
		cnt++
	}

	// TIME
	if prefixes.Has(PrefixTime) {
		if cnt != 0 {
			dst = append(dst, ", "...)
		}
		dst = time.Now().AppendFormat(dst, "15:04:05.000")
		cnt++
	}

	// THREAD
	if prefixes.Has(PrefixThread) {
		if cnt != 0 {
			dst = append(dst, ", "...)
		}
		dst = append(dst, "TID: "...)
		dst = append(dst, goroutineID()...)
		cnt++
	}

	// Final separator, if any
	if cnt != 0 {
		dst = append(dst, ": "...)
	}

	return dst
}

// goroutineID returns a stable textual identifier for the calling goroutine.
// The runtime does not expose goroutine ids, so it is read from the first
// line of the stack trace, which starts with "goroutine <id> [".
func goroutineID() string {
	var buf [32]byte
	n := runtime.Stack(buf[:], false)
	id := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	if idx := bytes.IndexByte(id, ' '); idx != -1 {
		id = id[:idx]
	}
	return string(id)
}
