// File: prefixer_test.go
// Title: Prefix Composer Tests
// Description: Tests for preamble composition: segment order, separator
//              placement, file basename stripping, time and goroutine id
//              formats, and call-site capture.
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
	"strings"
	"testing"
)

func TestPrefixerAppendTo(t *testing.T) {
	p := prefixer{
		file:     "/home/user/project/main.go",
		line:     16,
		function: "calculate",
	}

	tests := []struct {
		name     string
		prefixes Prefix
		want     string
	}{
		{"none", PrefixNone, ""},
		{"file", PrefixFile, "main.go: "},
		{"line", PrefixLine, "Line: 16: "},
		{"file_line", PrefixFile | PrefixLine, "main.go:16: "},
		{"function", PrefixFunction, "calculate(): "},
		{"file_function", PrefixFile | PrefixFunction, "main.go, calculate(): "},
		{"file_line_function", PrefixFile | PrefixLine | PrefixFunction, "main.go:16, calculate(): "},
		{"typename_only", PrefixTypeName, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(p.appendTo(nil, tt.prefixes))
			if got != tt.want {
				t.Errorf("appendTo(%v) = %q, want %q", tt.prefixes, got, tt.want)
			}
		})
	}
}

func TestPrefixerFileWithoutSeparator(t *testing.T) {
	p := prefixer{file: "main.go", line: 1, function: "f"}

	if got := string(p.appendTo(nil, PrefixFile)); got != "main.go: " {
		t.Errorf("appendTo(PrefixFile) = %q, want %q", got, "main.go: ")
	}
}

func TestPrefixerTimeFormat(t *testing.T) {
	p := prefixer{file: "main.go", line: 1, function: "f"}

	got := string(p.appendTo(nil, PrefixTime))
	if matched, _ := regexp.MatchString(`^\d{2}:\d{2}:\d{2}\.\d{3}: $`, got); !matched {
		t.Errorf("appendTo(PrefixTime) = %q, want HH:MM:SS.mmm followed by ': '", got)
	}
}

func TestPrefixerThreadFormat(t *testing.T) {
	p := prefixer{file: "main.go", line: 1, function: "f"}

	got := string(p.appendTo(nil, PrefixThread))
	if matched, _ := regexp.MatchString(`^TID: \d+: $`, got); !matched {
		t.Errorf("appendTo(PrefixThread) = %q, want 'TID: <id>: '", got)
	}

	// Separator before the segment when it is not first
	got = string(p.appendTo(nil, PrefixFile|PrefixThread))
	if matched, _ := regexp.MatchString(`^main\.go, TID: \d+: $`, got); !matched {
		t.Errorf("appendTo(PrefixFile|PrefixThread) = %q, want 'main.go, TID: <id>: '", got)
	}
}

func TestGoroutineID(t *testing.T) {
	id := goroutineID()
	if id == "" {
		t.Fatal("goroutineID() returned empty string")
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			t.Fatalf("goroutineID() = %q, want digits only", id)
		}
	}

	// Stable within the same goroutine
	if again := goroutineID(); again != id {
		t.Errorf("goroutineID() = %q on second call, want %q", again, id)
	}
}

func TestCallSite(t *testing.T) {
	site := callSite(1)

	if !strings.HasSuffix(site.file, "prefixer_test.go") {
		t.Errorf("callSite file = %q, want suffix prefixer_test.go", site.file)
	}
	if site.line <= 0 {
		t.Errorf("callSite line = %d, want > 0", site.line)
	}
	if site.function != "TestCallSite" {
		t.Errorf("callSite function = %q, want TestCallSite", site.function)
	}
}
