package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/routedoc/builder"
	"github.com/erraggy/routedoc/internal/cliutil"
	"github.com/erraggy/routedoc/internal/routes"
)

// CheckFlags contains flags for the check command
type CheckFlags struct {
	Route  string
	Format string
	Debug  bool
}

// SetupCheckFlags creates and configures a FlagSet for the check command.
func SetupCheckFlags() (*flag.FlagSet, *CheckFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &CheckFlags{}

	fs.StringVar(&flags.Route, "route", "", "route path of the file (default: derived from the file path)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Debug, "debug", false, "log skipped comments to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: routedoc check [flags] <file.go>\n\n")
		cliutil.Writef(fs.Output(), "Validate every @route fragment of a Go file.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  routedoc check api/pets.go\n")
		cliutil.Writef(fs.Output(), "  routedoc check --route /api/pets/{id} --format json api/pets/[id].go\n")
	}

	return fs, flags
}

// HandleCheck executes the check command.
func HandleCheck(args []string) error {
	return runCheck(args, os.Stdout, os.Stderr)
}

func runCheck(args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupCheckFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("check command requires exactly one Go file")
	}
	if err := ValidateOutputFormat(flags.Format, true); err != nil {
		return err
	}

	file := fs.Arg(0)
	route := flags.Route
	if route == "" {
		route = routes.RoutePath(filepath.Clean(file))
	}

	reports, err := builder.Check(file, nil, route, builder.WithLogger(NewLogger(stderr, flags.Debug)))
	if err != nil {
		return err
	}

	if flags.Format == FormatText {
		printReports(stdout, file, route, reports)
	} else {
		data, err := cliutil.Marshal(reports, flags.Format)
		if err != nil {
			return err
		}
		if _, err := stdout.Write(data); err != nil {
			return err
		}
	}

	invalid := 0
	for _, r := range reports {
		if !r.Valid() {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d fragments in %s are invalid", invalid, len(reports), file)
	}
	return nil
}

func printReports(w io.Writer, file, route string, reports []builder.FragmentReport) {
	cliutil.Writef(w, "%s (route %s): %d fragment(s)\n", file, route, len(reports))
	for _, r := range reports {
		if r.Valid() {
			cliutil.Writef(w, "  line %d: %s %s [%s]\n", r.Line, r.Family, r.Version, strings.Join(r.Operations, ", "))
		} else {
			cliutil.Writef(w, "  line %d: INVALID: %s\n", r.Line, r.Error)
		}
	}
}
