// Package routes maps the Go files of an API folder to route paths.
package routes

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/erraggy/routedoc/oaserrors"
)

// trailingSegments are file names that denote the folder's own route.
var trailingSegments = map[string]bool{
	"index": true,
	"route": true,
}

// Discover walks apiFolder for route handler files and returns a map from
// route path to source file path.
//
// Route paths are relative to the parent of apiFolder, so "api/pets.go"
// serves "/api/pets". A trailing index or route segment is dropped, and
// bracketed segments become path parameters: "[id]" and "[...slug]" map to
// "{id}" and "{slug}". Test files, testdata and hidden directories are
// skipped.
func Discover(apiFolder string) (map[string]string, error) {
	root, err := filepath.Abs(apiFolder)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "apiFolder", Value: apiFolder, Message: "cannot resolve folder", Cause: err}
	}
	parent := filepath.Dir(root)

	out := make(map[string]string)
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (name == "testdata" || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(name) != ".go" || strings.HasSuffix(name, "_test.go") {
			return nil
		}

		rel, err := filepath.Rel(parent, path)
		if err != nil {
			return err
		}
		inFolder, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		route := RoutePath(rel)
		source := filepath.Join(apiFolder, inFolder)
		if prev, dup := out[route]; dup {
			return &oaserrors.ConfigError{
				Option:  "apiFolder",
				Value:   apiFolder,
				Message: fmt.Sprintf("route %s is served by both %s and %s", route, prev, source),
			}
		}
		out[route] = source
		return nil
	})
	if err != nil {
		var cfgErr *oaserrors.ConfigError
		if errors.As(err, &cfgErr) {
			return nil, cfgErr
		}
		return nil, &oaserrors.ConfigError{Option: "apiFolder", Value: apiFolder, Message: "cannot read folder", Cause: err}
	}
	return out, nil
}

// RoutePath converts a file path relative to the API folder's parent into a
// route path.
func RoutePath(rel string) string {
	rel = strings.TrimPrefix(filepath.ToSlash(rel), "/")
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))

	segments := strings.Split(rel, "/")
	if n := len(segments); n > 1 && trailingSegments[segments[n-1]] {
		segments = segments[:n-1]
	}
	for i, s := range segments {
		segments[i] = paramSegment(s)
	}
	return "/" + strings.Join(segments, "/")
}

// paramSegment rewrites [name], [...name] and [[...name]] as {name}.
func paramSegment(s string) string {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return s
	}
	name := strings.Trim(s, "[]")
	name = strings.TrimPrefix(name, "...")
	if name == "" {
		return s
	}
	return "{" + name + "}"
}
