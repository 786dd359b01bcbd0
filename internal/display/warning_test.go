package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisplayWarning_TitleOnly(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{
		Title: "Wordlist is empty",
	}

	w.Display(&buf, NewTheme(true))

	output := buf.String()

	// Should contain yellow color code
	if !strings.Contains(output, "\x1b[33m") {
		t.Error("Expected yellow ANSI color code in output")
	}

	if !strings.Contains(output, "Warning: Wordlist is empty") {
		t.Error("Expected title in output")
	}

	// Should end with reset code
	if !strings.HasSuffix(output, "\x1b[0m") {
		t.Error("Expected ANSI reset code at end of output")
	}
}

func TestDisplayWarning_Plain(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{
		Title:   "No files to search",
		Message: "Everything was filtered out",
	}

	w.Display(&buf, NewTheme(false))

	output := buf.String()
	if strings.Contains(output, "\x1b[") {
		t.Errorf("Expected no escape sequences, got %q", output)
	}
	if !strings.Contains(output, "    Everything was filtered out") {
		t.Error("Expected indented message in output")
	}
}

func TestDisplayWarning_WithFiles(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		expected string
	}{
		{
			name:     "single file",
			files:    []string{"words.txt"},
			expected: "Affected file:\n      1. words.txt",
		},
		{
			name:     "multiple files",
			files:    []string{"a.txt", "b.txt"},
			expected: "Affected files:\n      1. a.txt\n      2. b.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Warning{Title: "Files", Files: tt.files}.Display(&buf, NewTheme(false))

			if !strings.Contains(buf.String(), tt.expected) {
				t.Errorf("Expected %q in output, got %q", tt.expected, buf.String())
			}
		})
	}
}

func TestDisplayWarning_WithSuggestion(t *testing.T) {
	var buf bytes.Buffer
	WarnNoFiles("/tmp/project").Display(&buf, NewTheme(false))

	output := buf.String()
	if !strings.Contains(output, "/tmp/project") {
		t.Error("Expected root in message")
	}
	if !strings.Contains(output, "    Suggestion: Check --level") {
		t.Errorf("Expected suggestion in output, got %q", output)
	}
}

func TestWarnEmptyWordlist(t *testing.T) {
	w := WarnEmptyWordlist("terms.txt")
	if w.Title != "Wordlist is empty" {
		t.Errorf("unexpected title %q", w.Title)
	}
	if len(w.Files) != 1 || w.Files[0] != "terms.txt" {
		t.Errorf("unexpected files %v", w.Files)
	}
}
