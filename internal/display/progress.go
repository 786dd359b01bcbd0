package display

import (
	"fmt"
	"io"
)

// ProgressIndicator reports per-file scan progress, one line per file:
// "  [N/Total] path". It is meant for stderr so stdout keeps only results.
type ProgressIndicator struct {
	writer     io.Writer
	theme      *Theme
	totalFiles int
	current    int
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer, theme *Theme) *ProgressIndicator {
	if theme == nil {
		theme = NewTheme(false)
	}
	return &ProgressIndicator{
		writer: w,
		theme:  theme,
	}
}

// Start displays the header message and resets the counter.
func (p *ProgressIndicator) Start(total int) {
	p.totalFiles = total
	p.current = 0
	fmt.Fprintf(p.writer, "Scanning %d file(s):\n", total)
}

// Step displays progress for the next file: [N/Total] path (cyan counter)
func (p *ProgressIndicator) Step(path string) {
	p.current++
	counter := p.theme.lineNo.Sprintf("[%d/%d]", p.current, p.totalFiles)
	fmt.Fprintf(p.writer, "  %s %s\n", counter, path)
}

// Complete displays the final count.
func (p *ProgressIndicator) Complete() {
	fmt.Fprintf(p.writer, "Scanned %d of %d file(s)\n", p.current, p.totalFiles)
}
