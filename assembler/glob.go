package assembler

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExcludePrefix marks a pattern whose matches are removed from the result.
const ExcludePrefix = "!"

// Expand returns the files matching any of patterns, sorted and without
// duplicates. Patterns follow doublestar syntax, where "**" matches any
// number of directories. A pattern whose base directory does not exist
// matches nothing. Patterns prefixed with ExcludePrefix remove matching
// files regardless of their position in the list; they are compared by
// absolute path, so a relative exclusion also removes files found through
// an absolute pattern.
func Expand(patterns []string) ([]string, error) {
	var include, exclude []string
	for _, p := range patterns {
		if rest, ok := strings.CutPrefix(p, ExcludePrefix); ok {
			if !doublestar.ValidatePathPattern(filepath.FromSlash(rest)) {
				return nil, doublestar.ErrBadPattern
			}
			abs, err := filepath.Abs(filepath.FromSlash(rest))
			if err != nil {
				return nil, err
			}
			exclude = append(exclude, abs)
			continue
		}
		include = append(include, p)
	}

	seen := make(map[string]bool)
	var out []string
	for _, p := range include {
		matches, err := doublestar.FilepathGlob(filepath.FromSlash(p), doublestar.WithFilesOnly())
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if seen[m] || excluded(exclude, m) {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	slices.Sort(out)
	return out, nil
}

// excluded reports whether file matches one of the absolute patterns.
func excluded(patterns []string, file string) bool {
	if len(patterns) == 0 {
		return false
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		return false
	}
	for _, p := range patterns {
		if ok, _ := doublestar.PathMatch(p, abs); ok {
			return true
		}
	}
	return false
}
