package models

import "fmt"

// Mode selects the shape of a SearchResult.
type Mode int

const (
	// ModeHighlight renders the line with every match wrapped in markers.
	ModeHighlight Mode = iota
	// ModeCount reports how many matches (and distinct terms) a line holds.
	ModeCount
)

// String returns the string representation of Mode.
func (m Mode) String() string {
	switch m {
	case ModeHighlight:
		return "highlight"
	case ModeCount:
		return "count"
	default:
		return "unknown"
	}
}

// MatchSpan is one occurrence of a pattern inside a line, in byte offsets.
type MatchSpan struct {
	Start  int
	Length int
}

// End returns the offset just past the span.
func (s MatchSpan) End() int {
	return s.Start + s.Length
}

// SearchResult is what the matcher produces for a line containing at least one match.
type SearchResult struct {
	Mode Mode   // Which fields below are populated
	Line string // The line that was searched

	// Highlight mode
	Rendered string      // Line with match markers inserted
	Spans    []MatchSpan // Match positions in Line, ordered by Start

	// Count mode
	Total int      // Number of matches in the line
	Terms []string // Distinct matched texts (lowercased when case-insensitive)
}

// Unique returns the number of distinct terms matched.
func (r SearchResult) Unique() int {
	return len(r.Terms)
}

// LineMatch is a highlighted line together with its 1-based line number.
type LineMatch struct {
	Number int
	Result SearchResult
}

// FileMatches holds the full-mode output for one file.
type FileMatches struct {
	Path    string
	RelPath string
	Lines   []LineMatch
}

// FileStat is the summary-mode aggregate for one scanned file.
type FileStat struct {
	Path         string // Absolute path
	RelPath      string // Path relative to the search root
	Lines        int    // Number of extracted lines
	Size         int64  // Size in bytes from filesystem metadata
	Found        int    // Total matches across all lines
	Matched      int    // Distinct wordlist terms hit (wordlist mode)
	WordlistSize int    // Number of wordlist terms, 0 outside wordlist mode
}

// AddMatches increases the match counter. Negative values are ignored so the
// counter never decreases during aggregation.
func (s *FileStat) AddMatches(n int) {
	if n > 0 {
		s.Found += n
	}
}

// HasWordlist reports whether the stat carries wordlist coverage.
func (s FileStat) HasWordlist() bool {
	return s.WordlistSize > 0
}

// Percent returns the share of wordlist terms found in the file, 0-100.
func (s FileStat) Percent() float64 {
	if s.WordlistSize == 0 {
		return 0
	}
	return float64(s.Matched) / float64(s.WordlistSize) * 100
}

// PercentString formats Percent with two decimals, e.g. "50.00%".
func (s FileStat) PercentString() string {
	return fmt.Sprintf("%.2f%%", s.Percent())
}
