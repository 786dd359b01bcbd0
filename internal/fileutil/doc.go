// Package fileutil provides the filesystem side of fsearch: enumerating the
// files to search and reducing their content to printable text lines.
//
// # Enumeration
//
// Enumerate walks a root with filepath.WalkDir and applies three filters,
// configured by models.FilterConfig:
//
//   - Depth: files directly inside the root are depth 0, files one
//     subdirectory down are depth 1, and so on. MaxDepth -1 is unlimited.
//   - Hidden entries: any path component below the root starting with "."
//     excludes the file unless IncludeHidden is set.
//   - Extensions: every listed suffix is EXCLUDED, compared case-sensitively
//     after adding a leading dot where missing.
//
// A root naming a regular file is returned as-is and skips all filters.
// Results are absolute, deduplicated and sorted. Any walk error is fatal.
//
//	files, err := fileutil.Enumerate(models.FilterConfig{
//	    Root:     "./docs",
//	    MaxDepth: 1,
//	})
//
// # Text extraction
//
// ExtractLines reads a file as raw bytes, splits it on '\n' and keeps only
// printable characters of each line, decoding every byte on its own as
// ISO-8859-1. Binary files therefore never fail to decode; their control bytes
// simply disappear. The number of lines returned always equals the number of
// '\n'-terminated records (plus a final unterminated one).
//
//	lines, err := fileutil.ExtractLines("/var/log/app.bin")
package fileutil
