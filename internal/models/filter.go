package models

import "strings"

// UnlimitedDepth disables the recursion limit in FilterConfig.MaxDepth.
const UnlimitedDepth = -1

// FilterConfig controls which files the enumerator returns.
type FilterConfig struct {
	// Root is the directory (or single file) to search.
	Root string

	// IncludeHidden keeps entries whose path (below Root) has a component starting with ".".
	IncludeHidden bool

	// Extensions lists suffixes to EXCLUDE from the result. Despite the flag
	// history ("search for extensions") the list has always filtered out matches.
	Extensions []string

	// MaxDepth is the deepest directory level searched; files directly in Root
	// are depth 0. UnlimitedDepth (-1) searches everything.
	MaxDepth int
}

// DefaultFilterConfig returns a config searching the current directory without limits.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		Root:     ".",
		MaxDepth: UnlimitedDepth,
	}
}

// NormalizedExtensions returns the extension list with a leading dot on every
// entry and empty entries removed.
func (c FilterConfig) NormalizedExtensions() []string {
	exts := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return exts
}

// DepthAllowed reports whether a file at the given depth passes MaxDepth.
func (c FilterConfig) DepthAllowed(depth int) bool {
	return c.MaxDepth == UnlimitedDepth || depth <= c.MaxDepth
}
