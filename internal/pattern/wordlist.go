package pattern

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/harrison/fsearch/internal/models"
)

// maxTermLength bounds a single wordlist line.
const maxTermLength = 1024 * 1024

// LoadWordlist reads newline-delimited terms from path. Trailing whitespace
// is trimmed and blank lines are skipped, so an empty file yields no terms.
func LoadWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, models.NewIOError("read", path, err)
	}
	defer f.Close()

	terms := make([]string, 0)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTermLength)
	for scanner.Scan() {
		term := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
		if term == "" {
			continue
		}
		terms = append(terms, term)
	}
	if err := scanner.Err(); err != nil {
		return nil, models.NewIOError("read", path, err)
	}

	return terms, nil
}

// CompileWordlist builds one matcher for all terms. Terms are literal text:
// each is quoted and the results are joined into a single alternation.
// Duplicates (case-folded unless opts.CaseSensitive) count once toward Size.
// An empty list yields a matcher that never matches.
func CompileWordlist(terms []string, opts Options) (*Matcher, error) {
	probe := newMatcher("", nil, opts)

	seen := make(map[string]bool, len(terms))
	quoted := make([]string, 0, len(terms))
	for _, term := range terms {
		key := probe.Term(term)
		if term == "" || seen[key] {
			continue
		}
		seen[key] = true
		quoted = append(quoted, regexp.QuoteMeta(term))
	}

	expr := strings.Join(quoted, "|")
	if len(quoted) == 0 {
		probe.wordlist = true
		return probe, nil
	}

	re, err := compileRegexp(expr, opts.CaseSensitive)
	if err != nil {
		return nil, err
	}

	m := newMatcher(expr, re, opts)
	m.wordlist = true
	m.wordlistSize = len(quoted)
	return m, nil
}
