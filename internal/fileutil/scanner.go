package fileutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harrison/fsearch/internal/models"
)

// Enumerate returns the absolute paths of all files under cfg.Root that pass
// the depth, hidden and extension filters.
//
// A Root naming a regular file is returned as the only element and bypasses
// every filter. Any error while walking is fatal and returned as *models.IOError.
func Enumerate(cfg models.FilterConfig) ([]string, error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, models.NewIOError("resolve", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, models.NewIOError("stat", absRoot, err)
	}
	if !info.IsDir() {
		return []string{absRoot}, nil
	}

	exts := cfg.NormalizedExtensions()
	seen := make(map[string]bool)
	files := make([]string, 0)

	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return models.NewIOError("walk", path, err)
		}

		// Skip the root directory itself
		if path == absRoot {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return models.NewIOError("resolve", path, err)
		}

		if d.IsDir() {
			if !cfg.IncludeHidden && IsHidden(d.Name()) {
				return filepath.SkipDir
			}
			// Files inside this directory sit one level below it
			if !cfg.DepthAllowed(Depth(rel) + 1) {
				return filepath.SkipDir
			}
			return nil
		}

		if !isSearchable(path, d) {
			return nil
		}

		if !cfg.DepthAllowed(Depth(rel)) {
			return nil
		}
		if !cfg.IncludeHidden && IsHiddenPath(rel) {
			return nil
		}
		if hasAnySuffix(path, exts) {
			return nil
		}

		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		var ioErr *models.IOError
		if errors.As(err, &ioErr) {
			return nil, ioErr
		}
		return nil, models.NewIOError("walk", absRoot, err)
	}

	sort.Strings(files)
	return files, nil
}

// Depth returns the number of directories between the root and the entry
// named by rel (a path relative to the root). A file directly inside the root
// has depth 0.
func Depth(rel string) int {
	rel = filepath.Clean(rel)
	if rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator))
}

// IsHidden reports whether a single path component is hidden.
func IsHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// IsHiddenPath reports whether any component of rel is hidden.
func IsHiddenPath(rel string) bool {
	for _, part := range strings.Split(filepath.Clean(rel), string(filepath.Separator)) {
		if part == "." || part == ".." {
			continue
		}
		if IsHidden(part) {
			return true
		}
	}
	return false
}

// isSearchable accepts regular files and symlinks to non-directories.
// Devices, sockets and named pipes are skipped since reading them can block.
func isSearchable(path string, d fs.DirEntry) bool {
	mode := d.Type()
	if mode.IsRegular() {
		return true
	}
	if mode&fs.ModeSymlink != 0 {
		target, err := os.Stat(path)
		return err == nil && target.Mode().IsRegular()
	}
	return false
}

func hasAnySuffix(path string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
