package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/routedoc/builder"
	"github.com/erraggy/routedoc/internal/cliutil"
	"github.com/erraggy/routedoc/internal/config"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output      string
	Format      string
	BasePath    string
	Concurrency int
	Quiet       bool
	Debug       bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file, or - for stdout (default: outputFile from the config)")
	fs.StringVar(&flags.Output, "output", "", "output file, or - for stdout (default: outputFile from the config)")
	fs.StringVar(&flags.Format, "f", "", "output format: json or yaml (default: from the output file extension)")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: from the output file extension)")
	fs.StringVar(&flags.BasePath, "base-path", "", "deployment base path advertised under servers (overrides "+config.EnvBasePath+")")
	fs.IntVar(&flags.Concurrency, "concurrency", 0, "maximum route files processed at once (0 = unlimited)")
	fs.BoolVar(&flags.Quiet, "q", false, "suppress the summary line")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress the summary line")
	fs.BoolVar(&flags.Debug, "debug", false, "log debug output to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: routedoc generate [flags] <config.json|config.yaml>\n\n")
		cliutil.Writef(fs.Output(), "Generate a specification from the @route comments of an API folder.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  routedoc generate routedoc.json\n")
		cliutil.Writef(fs.Output(), "  routedoc generate -o public/openapi.yaml routedoc.yaml\n")
		cliutil.Writef(fs.Output(), "  routedoc generate -o - -f yaml --base-path /v1 routedoc.json\n")
		cliutil.Writef(fs.Output(), "\nEnvironment:\n")
		cliutil.Writef(fs.Output(), "  %s, %s and %s override the config file.\n",
			config.EnvBasePath, config.EnvOutputFile, config.EnvAPIFolder)
	}

	return fs, flags
}

// HandleGenerate executes the generate command.
func HandleGenerate(ctx context.Context, args []string) error {
	return runGenerate(ctx, args, os.Stdout, os.Stderr)
}

func runGenerate(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupGenerateFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one config file")
	}

	cfg, err := config.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	if flags.Output != "" {
		cfg.OutputFile = flags.Output
	}
	if flags.BasePath != "" {
		cfg.BasePath = flags.BasePath
	}

	format := flags.Format
	if format == "" {
		format = cliutil.FormatForPath(cfg.OutputFile)
	}
	if err := ValidateOutputFormat(format, false); err != nil {
		return err
	}

	start := time.Now()
	spec, err := builder.BuildFromFolder(ctx, cfg,
		builder.WithLogger(NewLogger(stderr, flags.Debug)),
		builder.WithConcurrency(flags.Concurrency),
	)
	if err != nil {
		return err
	}

	data, err := cliutil.Marshal(spec, format)
	if err != nil {
		return err
	}
	if err := cliutil.WriteOutput(stdout, cfg.OutputFile, data); err != nil {
		return err
	}

	if !flags.Quiet && cfg.OutputFile != StdoutPath {
		paths, _ := spec["paths"].(map[string]any)
		cliutil.Writef(stderr, "Generated %s: %d paths in %v\n", cfg.OutputFile, len(paths), time.Since(start).Round(time.Millisecond))
	}
	return nil
}
