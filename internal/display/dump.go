package display

import (
	"io"
	"strings"

	"github.com/harrison/fsearch/internal/models"
)

// DumpOptions controls full-mode output.
type DumpOptions struct {
	// Indent precedes every matching line. Defaults to four spaces.
	Indent string

	// LineNumbers prefixes each line with its 1-based number.
	LineNumbers bool
}

const defaultIndent = "    "

// WriteMatches prints, for each file, a colored header with its path followed
// by the highlighted matching lines. Files without lines are skipped.
func WriteMatches(w io.Writer, files []models.FileMatches, opts DumpOptions, theme *Theme) error {
	indent := opts.Indent
	if indent == "" {
		indent = defaultIndent
	}

	var sb strings.Builder
	for _, file := range files {
		if len(file.Lines) == 0 {
			continue
		}

		sb.WriteString(theme.Header(file.Path))
		sb.WriteString("\n")

		for _, line := range file.Lines {
			sb.WriteString(indent)
			if opts.LineNumbers {
				sb.WriteString(theme.LineNumber(line.Number))
				sb.WriteString(" ")
			}
			sb.WriteString(line.Result.Rendered)
			sb.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
