package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/routedoc"
	"github.com/erraggy/routedoc/cmd/routedoc/commands"
	"github.com/erraggy/routedoc/internal/cliutil"
	"github.com/erraggy/routedoc/internal/mcpserver"
)

var commandNames = []string{"generate", "check", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch command := os.Args[1]; command {
	case "version", "-v", "--version":
		fmt.Printf("routedoc v%s\n%s\n", routedoc.Version(), routedoc.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		err = commands.HandleGenerate(ctx, os.Args[2:])
	case "check":
		err = commands.HandleCheck(os.Args[2:])
	case "mcp":
		err = mcpserver.Run(ctx)
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			cliutil.Writef(os.Stderr, "Did you mean: %s?\n", s)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		stop()
		os.Exit(1)
	}
	if err != nil {
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func printUsage() {
	cliutil.Writef(os.Stdout, `routedoc - OpenAPI specifications from @route comments

Usage:
  routedoc <command> [flags] [args]

Commands:
  generate   Generate the specification for an API folder
  check      Validate the @route fragments of one Go file
  mcp        Serve routedoc tools over MCP (stdio)
  version    Show version information
  help       Show this help

Run 'routedoc <command> --help' for more information on a command.
`)
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
