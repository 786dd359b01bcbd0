package display

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/fsearch/internal/pattern"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by ResolveColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ValidColorMode reports whether mode is one of auto, always or never.
func ValidColorMode(mode string) bool {
	switch strings.ToLower(mode) {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// ResolveColor decides whether output written to f should carry ANSI colors.
// In auto mode colors are used only for terminals and never when NO_COLOR is set.
func ResolveColor(mode string, f *os.File) bool {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if f == nil || color.NoColor {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Theme holds the colors used for search output.
// Red: matches
// Green: file headers
// Cyan: line numbers
type Theme struct {
	enabled bool
	match   *color.Color
	header  *color.Color
	lineNo  *color.Color
	label   *color.Color
	warn    *color.Color
}

// NewTheme creates the standard theme. When enabled is false every method
// returns its input unchanged.
func NewTheme(enabled bool) *Theme {
	t := &Theme{
		enabled: enabled,
		match:   color.New(color.FgHiRed),
		header:  color.New(color.FgGreen, color.Bold),
		lineNo:  color.New(color.FgCyan),
		label:   color.New(color.Bold),
		warn:    color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{t.match, t.header, t.lineNo, t.label, t.warn} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return t
}

// Enabled reports whether the theme emits escape sequences.
func (t *Theme) Enabled() bool {
	return t.enabled
}

// Highlighter returns the renderer used for matches: red foreground when
// colors are enabled, undecorated text otherwise.
func (t *Theme) Highlighter() pattern.Renderer {
	if !t.enabled {
		return pattern.NoMarkers
	}
	return pattern.RendererFunc(func(match string) string {
		return t.match.Sprint(match)
	})
}

// Header colors a file header.
func (t *Theme) Header(path string) string {
	return t.header.Sprint(path)
}

// LineNumber colors a line number prefix.
func (t *Theme) LineNumber(n int) string {
	return t.lineNo.Sprint(fmt.Sprintf("%d:", n))
}

// Label colors a table heading.
func (t *Theme) Label(s string) string {
	return t.label.Sprint(s)
}

// Warn colors warning text.
func (t *Theme) Warn(s string) string {
	return t.warn.Sprint(s)
}
