// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes routedoc generation and fragment checks as MCP tools over
// stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/routedoc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `routedoc MCP server: generates OpenAPI/Swagger specifications from @route block comments in Go API folders, and checks individual fragments.

Configuration: defaults are configurable via ROUTEDOC_MCP_* environment variables set in your MCP client config.

Key settings:
- ROUTEDOC_MCP_CONCURRENCY (default: 0, unlimited) - route files processed at once by generate
- ROUTEDOC_MCP_INLINE_SPEC (default: true) - return the generated specification inline
- ROUTEDOC_BASE_PATH - deployment base path advertised under servers`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "routedoc", Version: routedoc.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate an OpenAPI 3.0 or Swagger 2.0 specification from the @route comments of a Go API folder. Provide config_path (a routedoc JSON/YAML config), or api_folder plus definition, or an explicit routes map (route path to Go file) plus definition. The definition wins over annotations on conflicting entries. Use output to write the specification to a file instead of returning it inline.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_fragment",
		Description: "Validate every @route fragment in one Go source file without merging. Provide the Go source as content or a file path, plus the route path the file serves. Returns the schema family, version and operations of each fragment, or the validation error.",
	}, handleCheckFragment)
}

// pathPattern matches absolute paths under the usual filesystem roots,
// including route parameter brackets.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/\[\]{}-]*)`)

// sanitizeError renders err with absolute filesystem paths replaced by
// <path>, so MCP clients never see the server's directory layout.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
