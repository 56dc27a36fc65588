// Package cliutil holds the output helpers shared by the routedoc commands
// and the MCP server.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/routedoc/internal/fileutil"
	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// Structured output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdoutPath is the special output path used to write to stdout.
const StdoutPath = "-"

// FormatForPath picks yaml for .yaml and .yml files and json otherwise.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Marshal renders data as indented JSON or YAML.
func Marshal(data any, format string) ([]byte, error) {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return out, nil
}

// WriteOutput writes data to path, creating parent directories as needed.
// The file is readable by its owner only. StdoutPath writes to stdout.
func WriteOutput(stdout io.Writer, path string, data []byte) error {
	if path == StdoutPath {
		_, err := stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, fileutil.DirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// Writef writes formatted text to w. Write failures are reported on stderr
// since the commands have nowhere else to send them.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "routedoc: write failed: %v\n", err)
	}
}
