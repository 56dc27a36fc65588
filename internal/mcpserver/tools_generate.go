package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/erraggy/routedoc/assembler"
	"github.com/erraggy/routedoc/builder"
	"github.com/erraggy/routedoc/internal/cliutil"
	"github.com/erraggy/routedoc/internal/config"
	"github.com/erraggy/routedoc/internal/maputil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type generateInput struct {
	ConfigPath string            `json:"config_path,omitempty" jsonschema:"Path to a routedoc JSON or YAML config file"`
	APIFolder  string            `json:"api_folder,omitempty"  jsonschema:"Folder of route files; routes are derived from file paths"`
	Routes     map[string]string `json:"routes,omitempty"      jsonschema:"Explicit map of route path to Go source file"`
	Definition map[string]any    `json:"definition,omitempty"  jsonschema:"Base definition (openapi or swagger, info, ...). Overrides the config's definition."`
	Globs      []string          `json:"globs,omitempty"       jsonschema:"Files scanned for shared documents; supports **"`
	BasePath   string            `json:"base_path,omitempty"   jsonschema:"Deployment base path advertised under servers"`
	Output     string            `json:"output,omitempty"      jsonschema:"Write the specification to this file instead of returning it inline"`
	Format     string            `json:"format,omitempty"      jsonschema:"Output file format: json or yaml (default: from the output extension)"`
}

type generateOutput struct {
	Family    string         `json:"family"`
	PathCount int            `json:"path_count"`
	Paths     []string       `json:"paths,omitempty"`
	WrittenTo string         `json:"written_to,omitempty"`
	Spec      map[string]any `json:"spec,omitempty"`
}

func handleGenerate(ctx context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if input.Output == cliutil.StdoutPath {
		return errResult(errors.New("output must be a file path")), generateOutput{}, nil
	}

	spec, err := generate(ctx, input)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	paths, _ := spec["paths"].(map[string]any)
	output := generateOutput{
		PathCount: len(paths),
		Paths:     maputil.SortedKeys(paths),
	}
	if family, err := assembler.Family(spec); err == nil {
		output.Family = family.String()
	}

	if input.Output != "" {
		format := input.Format
		if format == "" {
			format = cliutil.FormatForPath(input.Output)
		}
		data, err := cliutil.Marshal(spec, format)
		if err != nil {
			return errResult(err), generateOutput{}, nil
		}
		if err := cliutil.WriteOutput(nil, input.Output, data); err != nil {
			return errResult(err), generateOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else if cfg.InlineSpec {
		output.Spec = spec
	}
	return nil, output, nil
}

func generate(ctx context.Context, input generateInput) (map[string]any, error) {
	opts := []builder.Option{builder.WithConcurrency(cfg.Concurrency)}
	if input.BasePath != "" {
		opts = append(opts, builder.WithBasePath(input.BasePath))
	}

	switch {
	case len(input.Routes) > 0:
		if input.Definition == nil {
			return nil, errors.New("definition is required with routes")
		}
		files, err := builder.ReadRouteFiles(input.Routes)
		if err != nil {
			return nil, err
		}
		return builder.BuildFiles(ctx, files, input.Definition, input.Globs, opts...)

	case input.ConfigPath != "" || input.APIFolder != "":
		c := config.Default()
		if input.ConfigPath != "" {
			loaded, err := config.Load(input.ConfigPath)
			if err != nil {
				return nil, err
			}
			c = loaded
		}
		if input.APIFolder != "" {
			c.APIFolder = input.APIFolder
		}
		if input.Definition != nil {
			c.Definition = input.Definition
		}
		if len(input.Globs) > 0 {
			c.APIs = input.Globs
		}
		return builder.BuildFromFolder(ctx, c, opts...)

	default:
		return nil, fmt.Errorf("one of config_path, api_folder or routes is required")
	}
}
