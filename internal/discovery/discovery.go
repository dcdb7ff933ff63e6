// Package discovery resolves lint targets from file paths, directories,
// and doublestar glob patterns.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover expands the given arguments into a sorted, de-duplicated list
// of SVG files. An argument may be a file, a directory (searched
// recursively for *.svg), or a glob pattern. Files matching any ignore
// pattern are dropped.
func Discover(args []string, ignore []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		path = filepath.Clean(path)
		if seen[path] || ignored(path, ignore) {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && info.IsDir():
			matches, err := doublestar.FilepathGlob(filepath.Join(arg, "**", "*.svg"))
			if err != nil {
				return nil, fmt.Errorf("failed to search %s: %w", arg, err)
			}
			for _, m := range matches {
				add(m)
			}

		case err == nil:
			add(arg)

		case isPattern(arg):
			matches, err := doublestar.FilepathGlob(arg)
			if err != nil {
				return nil, fmt.Errorf("invalid glob pattern %q: %w", arg, err)
			}
			for _, m := range matches {
				add(m)
			}

		default:
			return nil, fmt.Errorf("no such file or directory: %s", arg)
		}
	}

	sort.Strings(files)
	return files, nil
}

// isPattern reports whether the argument contains glob metacharacters.
func isPattern(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// ignored reports whether the path matches any ignore pattern. Patterns
// use slash separators regardless of platform.
func ignored(path string, patterns []string) bool {
	slashed := filepath.ToSlash(path)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, slashed); err == nil && ok {
			return true
		}
	}
	return false
}
