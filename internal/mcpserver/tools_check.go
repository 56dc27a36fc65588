package mcpserver

import (
	"context"
	"errors"

	"github.com/erraggy/routedoc/builder"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type checkFragmentInput struct {
	Content string `json:"content,omitempty" jsonschema:"Go source text"`
	File    string `json:"file,omitempty"    jsonschema:"Path to a Go source file (used when content is empty)"`
	Route   string `json:"route"             jsonschema:"Route path the file serves, e.g. /api/pets/{id}"`
}

type fragmentSummary struct {
	Source     string   `json:"source"`
	Line       int      `json:"line"`
	Family     string   `json:"family,omitempty"`
	Version    string   `json:"version,omitempty"`
	Operations []string `json:"operations,omitempty"`
	Error      string   `json:"error,omitempty"`
}

type checkFragmentOutput struct {
	Valid        bool              `json:"valid"`
	Count        int               `json:"count"`
	InvalidCount int               `json:"invalid_count"`
	Fragments    []fragmentSummary `json:"fragments,omitempty"`
}

func handleCheckFragment(_ context.Context, _ *mcp.CallToolRequest, input checkFragmentInput) (*mcp.CallToolResult, checkFragmentOutput, error) {
	if input.Route == "" {
		return errResult(errors.New("route is required")), checkFragmentOutput{}, nil
	}

	var src any
	filename := input.File
	switch {
	case input.Content != "":
		src = input.Content
		if filename == "" {
			filename = "content.go"
		}
	case input.File == "":
		return errResult(errors.New("content or file is required")), checkFragmentOutput{}, nil
	}

	reports, err := builder.Check(filename, src, input.Route)
	if err != nil {
		return errResult(err), checkFragmentOutput{}, nil
	}

	output := checkFragmentOutput{Count: len(reports), Fragments: makeSlice[fragmentSummary](len(reports))}
	for _, r := range reports {
		if !r.Valid() {
			output.InvalidCount++
		}
		output.Fragments = append(output.Fragments, fragmentSummary{
			Source:     r.Source,
			Line:       r.Line,
			Family:     r.Family,
			Version:    r.Version,
			Operations: r.Operations,
			Error:      sanitizeError(r.Err),
		})
	}
	output.Valid = output.InvalidCount == 0
	return nil, output, nil
}
