// Package display renders search results for the terminal.
//
// It is the only package that knows about ANSI escape sequences. The search
// core hands it plain data (models.FileStat, models.FileMatches) and receives
// a pattern.Renderer for highlighting in return.
//
// # Colors
//
// Theme wraps github.com/fatih/color. ResolveColor maps the --color flag to a
// boolean, using go-isatty in auto mode:
//
//	theme := display.NewTheme(display.ResolveColor("auto", os.Stdout))
//	matcher, _ := pattern.Compile(expr, pattern.Options{Renderer: theme.Highlighter()})
//
// Matches are red (ESC[91m ... ESC[0m), file headers green and bold, line
// numbers cyan.
//
// # Summary table
//
// WriteSummary prints Path, Lines, Size, Found and, for wordlist searches,
// Matched and %Matched. Layout comes from an explicit TableOptions value:
//
//	display.WriteSummary(os.Stdout, stats, true, display.DefaultTableOptions(), theme)
//
// # Full output
//
// WriteMatches prints a header per file followed by its matching lines,
// indented and highlighted.
//
// # Warnings and progress
//
// Warning formats non-fatal notices (empty wordlist, nothing to search).
// ProgressIndicator prints one "[N/Total] path" line per scanned file. Both
// go to stderr so stdout carries only results.
package display
