// File: array.go
// Title: Array and Matrix Printers
// Description: Implements the 1-D and 2-D buffer printers. Both wrap the
//              value dispatcher: the array printer joins elements inside
//              braces, the matrix printer labels every cell with its
//              [row,col] coordinates in row-major order.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

package gl

import (
	"strconv"
)

// LogArray writes one line with the first n elements of vals rendered as
// "name = {e0, e1, ...}". A zero length renders {}. The slice is a borrowed
// view over caller-owned data; n beyond its length is a caller error.
//
//	a := []int{0, 1, 2}
//	gl.LogArray("a", a, 3)
//	// Output: array.go:9: a = {0, 1, 2}
func LogArray[T any](name string, vals []T, n int) {
	if !outputEnabled {
		return
	}
	site := callSite(2)
	prefixes := curPrefixes

	b := make([]byte, 0, 128)
	if colorEnabled {
		b = append(b, colorStart...)
	}
	b = site.appendTo(b, prefixes)
	if prefixes.Has(PrefixTypeName) {
		b = append(b, "type "...)
	}
	b = append(b, name...)
	b = append(b, " = {"...)
	for i := 0; i < n; i++ {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = appendAny(b, vals[i])
	}
	b = append(b, '}')
	if colorEnabled {
		b = append(b, colorReset...)
	}
	b = append(b, '\n')

	write(b)
}

// LogMatrix writes one line with every cell of a cols x rows buffer rendered
// as "[row,col] = value" in row-major order, joined by ", ". Either
// dimension being zero renders {}. The buffer is a borrowed view over
// caller-owned data; dimensions beyond it are a caller error.
//
//	m := [][]int{{11, 12}, {21, 22}}
//	gl.LogMatrix("m", m, 2, 2)
//	// Output: array.go:21: m: [0,0] = 11, [0,1] = 12, [1,0] = 21, [1,1] = 22
func LogMatrix[T any](name string, vals [][]T, cols, rows int) {
	if !outputEnabled {
		return
	}
	site := callSite(2)
	prefixes := curPrefixes

	b := make([]byte, 0, 256)
	if colorEnabled {
		b = append(b, colorStart...)
	}
	b = site.appendTo(b, prefixes)
	if prefixes.Has(PrefixTypeName) {
		b = append(b, "type "...)
	}
	b = append(b, name...)
	b = append(b, ": "...)
	if cols <= 0 || rows <= 0 {
		b = append(b, "{}"...)
	} else {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if r != 0 || c != 0 {
					b = append(b, ", "...)
				}
				b = appendCell(b, r, c, vals[r][c])
			}
		}
	}
	if colorEnabled {
		b = append(b, colorReset...)
	}
	b = append(b, '\n')

	write(b)
}

// appendCell renders one "[row,col] = value" matrix cell
func appendCell(dst []byte, row, col int, v any) []byte {
	dst = append(dst, '[')
	dst = strconv.AppendInt(dst, int64(row), 10)
	dst = append(dst, ',')
	dst = strconv.AppendInt(dst, int64(col), 10)
	dst = append(dst, "] = "...)
	return appendAny(dst, v)
}
