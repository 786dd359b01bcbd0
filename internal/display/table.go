package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harrison/fsearch/internal/models"
	"github.com/mattn/go-runewidth"
)

// TableOptions controls summary table layout.
type TableOptions struct {
	// Padding is the number of spaces between columns.
	Padding int

	// ShowHeader prints the column names and a rule above the rows.
	ShowHeader bool

	// ShowFooter prints the "N files scanned" line below the rows.
	ShowFooter bool
}

// DefaultTableOptions returns the layout used when no config overrides it.
func DefaultTableOptions() TableOptions {
	return TableOptions{
		Padding:    2,
		ShowHeader: true,
		ShowFooter: true,
	}
}

// column describes one table column.
type column struct {
	title string
	right bool // right-align (numbers)
	value func(models.FileStat) string
}

func summaryColumns(wordlist bool) []column {
	cols := []column{
		{title: "Path", value: func(s models.FileStat) string { return s.RelPath }},
		{title: "Lines", right: true, value: func(s models.FileStat) string { return strconv.Itoa(s.Lines) }},
		{title: "Size", right: true, value: func(s models.FileStat) string { return strconv.FormatInt(s.Size, 10) }},
		{title: "Found", right: true, value: func(s models.FileStat) string { return strconv.Itoa(s.Found) }},
	}
	if wordlist {
		cols = append(cols,
			column{title: "Matched", right: true, value: func(s models.FileStat) string { return strconv.Itoa(s.Matched) }},
			column{title: "%Matched", right: true, value: func(s models.FileStat) string { return s.PercentString() }},
		)
	}
	return cols
}

// WriteSummary prints one row per FileStat with columns Path, Lines, Size and
// Found, plus Matched and %Matched when wordlist is true. Column widths are
// measured in terminal cells so wide characters in paths stay aligned.
func WriteSummary(w io.Writer, stats []models.FileStat, wordlist bool, opts TableOptions, theme *Theme) error {
	cols := summaryColumns(wordlist)

	cells := make([][]string, len(stats))
	widths := make([]int, len(cols))
	for i, col := range cols {
		if opts.ShowHeader {
			widths[i] = runewidth.StringWidth(col.title)
		}
	}
	for r, stat := range stats {
		cells[r] = make([]string, len(cols))
		for i, col := range cols {
			v := col.value(stat)
			cells[r][i] = v
			if width := runewidth.StringWidth(v); width > widths[i] {
				widths[i] = width
			}
		}
	}

	padding := opts.Padding
	if padding < 1 {
		padding = 1
	}
	gap := strings.Repeat(" ", padding)

	var sb strings.Builder
	if opts.ShowHeader {
		titles := make([]string, len(cols))
		rules := make([]string, len(cols))
		for i, col := range cols {
			titles[i] = theme.Label(pad(col.title, widths[i], col.right))
			rules[i] = strings.Repeat("-", widths[i])
		}
		sb.WriteString(strings.TrimRight(strings.Join(titles, gap), " "))
		sb.WriteString("\n")
		sb.WriteString(strings.Join(rules, gap))
		sb.WriteString("\n")
	}

	for _, row := range cells {
		padded := make([]string, len(cols))
		for i, col := range cols {
			padded[i] = pad(row[i], widths[i], col.right)
		}
		sb.WriteString(strings.TrimRight(strings.Join(padded, gap), " "))
		sb.WriteString("\n")
	}

	if opts.ShowFooter {
		withMatches := 0
		for _, stat := range stats {
			if stat.Found > 0 {
				withMatches++
			}
		}
		sb.WriteString(fmt.Sprintf("\n%d files scanned, %d with matches\n", len(stats), withMatches))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func pad(s string, width int, right bool) string {
	if right {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}
