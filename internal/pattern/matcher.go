// Package pattern finds regular-expression matches inside text lines and turns
// them into highlighted renderings or match counts.
//
// The package knows nothing about terminals: highlighting goes through a
// Renderer, and callers needing exact positions use Spans.
package pattern

import (
	"regexp"
	"regexp/syntax"
	"strings"
	"unicode/utf8"

	"github.com/harrison/fsearch/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Options configures a Matcher.
type Options struct {
	// CaseSensitive requests exact-case matching. The zero value ignores case.
	CaseSensitive bool

	// Renderer wraps each match in highlight mode. Defaults to DefaultMarkers.
	Renderer Renderer
}

// Matcher is a compiled search pattern.
type Matcher struct {
	expr          string
	re            *regexp.Regexp // nil never matches (empty wordlist)
	caseSensitive bool
	singleChar    bool
	renderer      Renderer
	fold          cases.Caser

	wordlist     bool
	wordlistSize int
}

// Compile compiles expr as a regular expression. A malformed expression
// returns *models.PatternError naming expr.
func Compile(expr string, opts Options) (*Matcher, error) {
	re, err := compileRegexp(expr, opts.CaseSensitive)
	if err != nil {
		return nil, err
	}

	m := newMatcher(expr, re, opts)
	m.singleChar = isSingleCharClass(expr)
	return m, nil
}

func newMatcher(expr string, re *regexp.Regexp, opts Options) *Matcher {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = DefaultMarkers
	}
	return &Matcher{
		expr:          expr,
		re:            re,
		caseSensitive: opts.CaseSensitive,
		renderer:      renderer,
		fold:          cases.Lower(language.Und),
	}
}

func compileRegexp(expr string, caseSensitive bool) (*regexp.Regexp, error) {
	source := expr
	if !caseSensitive {
		source = "(?i)" + expr
	}
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, &models.PatternError{Pattern: expr, Err: err}
	}
	return re, nil
}

// isSingleCharClass reports whether expr is written as one bracket expression
// such as "[1-5]" or "[^a-z]". Matches of such patterns are highlighted one
// character at a time regardless of the bracket text length.
func isSingleCharClass(expr string) bool {
	if len(expr) < 2 || !strings.HasPrefix(expr, "[") || !strings.HasSuffix(expr, "]") {
		return false
	}

	parsed, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return false
	}

	switch parsed.Op {
	case syntax.OpCharClass, syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		return true
	case syntax.OpLiteral:
		// "[a]" is simplified to a single-rune literal
		return len(parsed.Rune) == 1
	default:
		return false
	}
}

// String returns the pattern as given by the user (quoted alternation for wordlists).
func (m *Matcher) String() string {
	return m.expr
}

// CaseSensitive reports whether the matcher uses exact-case matching.
func (m *Matcher) CaseSensitive() bool {
	return m.caseSensitive
}

// IsWordlist reports whether the matcher was built by CompileWordlist.
func (m *Matcher) IsWordlist() bool {
	return m.wordlist
}

// Size returns the number of wordlist terms, or 0 for a plain pattern.
func (m *Matcher) Size() int {
	return m.wordlistSize
}

// Spans returns every non-overlapping, non-empty match in line ordered by
// start offset. Zero-width matches are ignored.
func (m *Matcher) Spans(line string) []models.MatchSpan {
	if m.re == nil {
		return nil
	}

	locs := m.re.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return nil
	}

	spans := make([]models.MatchSpan, 0, len(locs))
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if end <= start {
			continue
		}
		if m.singleChar {
			_, size := utf8.DecodeRuneInString(line[start:])
			end = start + size
		}
		spans = append(spans, models.MatchSpan{Start: start, Length: end - start})
	}
	return spans
}

// Match searches line and returns a result shaped by mode. It returns false
// when the pattern does not occur in line.
func (m *Matcher) Match(line string, mode models.Mode) (*models.SearchResult, bool) {
	spans := m.Spans(line)
	if len(spans) == 0 {
		return nil, false
	}

	result := &models.SearchResult{Mode: mode, Line: line}
	switch mode {
	case models.ModeCount:
		result.Total = len(spans)
		result.Terms = m.terms(line, spans)
	default:
		result.Mode = models.ModeHighlight
		result.Spans = spans
		result.Rendered = Render(line, spans, m.renderer)
	}
	return result, true
}

// Highlight returns line with every match rendered, or false when nothing matches.
func (m *Matcher) Highlight(line string) (string, bool) {
	result, ok := m.Match(line, models.ModeHighlight)
	if !ok {
		return "", false
	}
	return result.Rendered, true
}

// Count returns the number of matches in line and the distinct matched terms.
func (m *Matcher) Count(line string) (int, []string) {
	result, ok := m.Match(line, models.ModeCount)
	if !ok {
		return 0, nil
	}
	return result.Total, result.Terms
}

// Term normalizes matched text for distinct-term accounting.
func (m *Matcher) Term(text string) string {
	if m.caseSensitive {
		return text
	}
	return m.fold.String(text)
}

func (m *Matcher) terms(line string, spans []models.MatchSpan) []string {
	seen := make(map[string]bool, len(spans))
	terms := make([]string, 0, len(spans))
	for _, span := range spans {
		term := m.Term(line[span.Start:span.End()])
		if !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}
	return terms
}
