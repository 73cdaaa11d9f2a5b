// File: array_test.go
// Title: Array and Matrix Printer Tests
// Description: Tests for the array and matrix printers: element joining,
//              cell labels, empty dimensions, prefixes, type tags, and the
//              output gate shared with the log operation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

package gl

import (
	"regexp"
	"testing"
)

func TestLogArray(t *testing.T) {
	tests := []struct {
		name string
		vals []int
		n    int
		want string
	}{
		{"three", []int{0, 1, 2}, 3, "a = {0, 1, 2}\n"},
		{"partial", []int{0, 1, 2}, 2, "a = {0, 1}\n"},
		{"single", []int{7}, 1, "a = {7}\n"},
		{"empty", []int{}, 0, "a = {}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := saveState(t)
			SetPrefixes(PrefixNone)

			LogArray("a", tt.vals, tt.n)

			if got := buf.String(); got != tt.want {
				t.Errorf("LogArray() output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogArrayStrings(t *testing.T) {
	buf := saveState(t)
	SetPrefixes(PrefixNone)

	LogArray("s", []string{"a", "b"}, 2)

	want := "s = {\"a\", \"b\"}\n"
	if got := buf.String(); got != want {
		t.Errorf("LogArray() output = %q, want %q", got, want)
	}
}

func TestLogArrayPrefixes(t *testing.T) {
	buf := saveState(t)
	SetPrefixes(PrefixFile | PrefixLine)

	LogArray("a", []int{1}, 1)

	if matched, _ := regexp.MatchString(`^array_test\.go:\d+: a = \{1\}\n$`, buf.String()); !matched {
		t.Errorf("LogArray() output = %q, want 'array_test.go:<line>: a = {1}'", buf.String())
	}
}

func TestLogArrayTypeName(t *testing.T) {
	buf := saveState(t)
	SetPrefixes(PrefixTypeName)

	LogArray("a", []int{1}, 1)

	want := "type a = {1}\n"
	if got := buf.String(); got != want {
		t.Errorf("LogArray() output = %q, want %q", got, want)
	}
}

func TestLogMatrix(t *testing.T) {
	tests := []struct {
		name string
		vals [][]int
		cols int
		rows int
		want string
	}{
		{"one_by_one", [][]int{{5}}, 1, 1, "m: [0,0] = 5\n"},
		{"two_by_two", [][]int{{11, 12}, {21, 22}}, 2, 2, "m: [0,0] = 11, [0,1] = 12, [1,0] = 21, [1,1] = 22\n"},
		{"row_vector", [][]int{{1, 2, 3}}, 3, 1, "m: [0,0] = 1, [0,1] = 2, [0,2] = 3\n"},
		{"col_vector", [][]int{{1}, {2}}, 1, 2, "m: [0,0] = 1, [1,0] = 2\n"},
		{"zero_cols", [][]int{{}}, 0, 1, "m: {}\n"},
		{"zero_rows", [][]int{}, 1, 0, "m: {}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := saveState(t)
			SetPrefixes(PrefixNone)

			LogMatrix("m", tt.vals, tt.cols, tt.rows)

			if got := buf.String(); got != tt.want {
				t.Errorf("LogMatrix() output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogMatrixColor(t *testing.T) {
	buf := saveState(t)
	SetPrefixes(PrefixNone)
	SetColorEnabled(true)

	LogMatrix("m", [][]int{{5}}, 1, 1)

	want := "\033[0;31mm: [0,0] = 5\033[0m\n"
	if got := buf.String(); got != want {
		t.Errorf("LogMatrix() output = %q, want %q", got, want)
	}
}

func TestArrayAndMatrixRespectOutputGate(t *testing.T) {
	// All three print paths share the output-enabled gate
	buf := saveState(t)
	SetPrefixes(PrefixNone)
	SetOutputEnabled(false)

	Log(P("i", 1))
	LogArray("a", []int{1}, 1)
	LogMatrix("m", [][]int{{1}}, 1, 1)

	if got := buf.String(); got != "" {
		t.Errorf("output while disabled = %q, want empty", got)
	}

	SetOutputEnabled(true)
	LogArray("a", []int{1}, 1)

	if got := buf.String(); got != "a = {1}\n" {
		t.Errorf("output after re-enable = %q, want %q", got, "a = {1}\n")
	}
}
