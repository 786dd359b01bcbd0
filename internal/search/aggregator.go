// Package search ties enumeration, text extraction and matching together.
//
// An Aggregator processes one file at a time: enumerate, stat, scan every
// line, accumulate, move on. The only state shared between files is the
// result slice being built.
package search

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/fsearch/internal/fileutil"
	"github.com/harrison/fsearch/internal/models"
	"github.com/harrison/fsearch/internal/pattern"
)

// Logger receives progress messages from the aggregator.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
}

// nopLogger discards all messages.
type nopLogger struct{}

func (nopLogger) LogDebug(string) {}
func (nopLogger) LogInfo(string)  {}

// Progress is notified as files are scanned.
type Progress interface {
	Start(total int)
	Step(path string)
	Complete()
}

// Mode selects what the aggregator collects.
type Mode string

const (
	// ModeSummary collects one FileStat per file.
	ModeSummary Mode = "simple"
	// ModeFull collects highlighted matching lines.
	ModeFull Mode = "full"
)

// ParseMode validates a mode name.
func ParseMode(name string) (Mode, error) {
	switch Mode(name) {
	case ModeSummary, ModeFull:
		return Mode(name), nil
	default:
		return "", models.NewArgumentError("mode", fmt.Sprintf("invalid choice %q (choose from simple, full)", name))
	}
}

// Report is the outcome of a Run. Exactly one of Stats or Matches is set,
// depending on Mode.
type Report struct {
	Mode     Mode
	Root     string // Absolute search root
	Files    int    // Number of files scanned
	Wordlist bool   // Stats carry Matched and %Matched
	Stats    []models.FileStat
	Matches  []models.FileMatches
}

// Aggregator runs a compiled matcher over a set of files.
type Aggregator struct {
	matcher  *pattern.Matcher
	logger   Logger
	progress Progress
}

// NewAggregator creates an Aggregator. A nil logger discards messages.
func NewAggregator(matcher *pattern.Matcher, logger Logger) *Aggregator {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Aggregator{
		matcher: matcher,
		logger:  logger,
	}
}

// WithProgress makes Run report each file to p. A nil p disables reporting.
func (a *Aggregator) WithProgress(p Progress) *Aggregator {
	a.progress = p
	return a
}

// step records that path is about to be scanned.
func (a *Aggregator) step(root, path string) {
	a.logger.LogDebug(fmt.Sprintf("Scanning %s", path))
	if a.progress != nil {
		a.progress.Step(relativePath(root, path))
	}
}

// Run enumerates cfg.Root and aggregates the files in the given mode.
func (a *Aggregator) Run(cfg models.FilterConfig, mode Mode) (*Report, error) {
	paths, err := fileutil.Enumerate(cfg)
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, models.NewIOError("resolve", cfg.Root, err)
	}
	a.logger.LogInfo(fmt.Sprintf("Enumerated %d file(s) under %s", len(paths), root))

	report := &Report{
		Mode:     mode,
		Root:     root,
		Files:    len(paths),
		Wordlist: a.matcher.IsWordlist(),
	}

	if a.progress != nil {
		a.progress.Start(len(paths))
	}

	switch mode {
	case ModeFull:
		report.Matches, err = a.Full(root, paths)
	default:
		report.Mode = ModeSummary
		report.Stats, err = a.Summary(root, paths)
	}
	if err != nil {
		return nil, err
	}

	if a.progress != nil {
		a.progress.Complete()
	}
	return report, nil
}

// Full extracts every file and keeps the highlighted lines of files with at
// least one match. The first unreadable file aborts the run.
func (a *Aggregator) Full(root string, paths []string) ([]models.FileMatches, error) {
	results := make([]models.FileMatches, 0)

	for _, path := range paths {
		a.step(root, path)

		lines, err := fileutil.ExtractLines(path)
		if err != nil {
			return nil, err
		}

		file := models.FileMatches{Path: path, RelPath: relativePath(root, path)}
		for i, line := range lines {
			result, ok := a.matcher.Match(line, models.ModeHighlight)
			if !ok {
				continue
			}
			file.Lines = append(file.Lines, models.LineMatch{Number: i + 1, Result: *result})
		}

		if len(file.Lines) > 0 {
			a.logger.LogDebug(fmt.Sprintf("%d matching line(s) in %s", len(file.Lines), path))
			results = append(results, file)
		}
	}

	return results, nil
}

// Summary computes a FileStat for every path, including files without matches.
// The first unreadable file aborts the run.
func (a *Aggregator) Summary(root string, paths []string) ([]models.FileStat, error) {
	stats := make([]models.FileStat, 0, len(paths))

	for _, path := range paths {
		a.step(root, path)

		stat, err := a.summarize(root, path)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, nil
}

func (a *Aggregator) summarize(root, path string) (models.FileStat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.FileStat{}, models.NewIOError("stat", path, err)
	}

	lines, err := fileutil.ExtractLines(path)
	if err != nil {
		return models.FileStat{}, err
	}

	stat := models.FileStat{
		Path:    path,
		RelPath: relativePath(root, path),
		Lines:   len(lines),
		Size:    info.Size(),
	}

	matched := make(map[string]bool)
	for _, line := range lines {
		result, ok := a.matcher.Match(line, models.ModeCount)
		if !ok {
			continue
		}
		stat.AddMatches(result.Total)
		for _, term := range result.Terms {
			matched[term] = true
		}
	}

	if a.matcher.IsWordlist() {
		stat.WordlistSize = a.matcher.Size()
		stat.Matched = len(matched)
	}
	return stat, nil
}

// relativePath returns path relative to root, or its base name when root is
// the file itself.
func relativePath(root, path string) string {
	if root == path {
		return filepath.Base(path)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
