package display

import (
	"fmt"
	"io"
	"strings"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning in yellow when the theme has colors enabled.
func (w Warning) Display(out io.Writer, theme *Theme) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	// Message with 4-space indent if present
	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	// Files with proper singular/plural and indentation
	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}

		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion: ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, theme.Warn(b.String()))
}

// WarnNoFiles creates the warning shown when the filters leave nothing to search.
func WarnNoFiles(root string) Warning {
	return Warning{
		Title:      "No files to search",
		Message:    fmt.Sprintf("Every entry under %s was filtered out or the directory is empty", root),
		Suggestion: "Check --level, --exclude-ext and --hidden",
	}
}

// WarnEmptyWordlist creates the warning shown when a wordlist has no terms.
func WarnEmptyWordlist(path string) Warning {
	return Warning{
		Title:   "Wordlist is empty",
		Message: "No term can match; every file will report zero matches",
		Files:   []string{path},
	}
}
