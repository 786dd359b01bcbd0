package pattern

import (
	"strings"

	"github.com/harrison/fsearch/internal/models"
)

// Renderer decorates the text of a single match.
type Renderer interface {
	Render(match string) string
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(match string) string

// Render calls f(match).
func (f RendererFunc) Render(match string) string {
	return f(match)
}

// Markers wraps matches in fixed open and close strings.
type Markers struct {
	Open  string
	Close string
}

// Render implements Renderer.
func (m Markers) Render(match string) string {
	return m.Open + match + m.Close
}

// DefaultMarkers is used when no renderer is configured.
var DefaultMarkers = Markers{Open: "[[", Close: "]]"}

// NoMarkers leaves matches undecorated.
var NoMarkers = Markers{}

// Render rebuilds line with each span passed through r. Text outside spans is
// copied verbatim. Spans must be ordered and non-overlapping.
func Render(line string, spans []models.MatchSpan, r Renderer) string {
	if len(spans) == 0 {
		return line
	}

	var b strings.Builder
	last := 0
	for _, span := range spans {
		b.WriteString(line[last:span.Start])
		b.WriteString(r.Render(line[span.Start:span.End()]))
		last = span.End()
	}
	b.WriteString(line[last:])
	return b.String()
}
