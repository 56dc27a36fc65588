// Package commands provides CLI command handlers for routedoc.
package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/erraggy/routedoc/internal/cliutil"
	"github.com/erraggy/routedoc/parser"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = cliutil.FormatJSON
	FormatYAML = cliutil.FormatYAML
)

// StdoutPath is the special output path used to write to stdout.
const StdoutPath = cliutil.StdoutPath

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string, allowText bool) error {
	switch format {
	case FormatJSON, FormatYAML:
		return nil
	case FormatText:
		if allowText {
			return nil
		}
	}
	if allowText {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
}

// NewLogger returns a text logger writing to w. Debug output is only
// enabled when debug is set.
func NewLogger(w io.Writer, debug bool) parser.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return parser.NewSlogAdapter(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
