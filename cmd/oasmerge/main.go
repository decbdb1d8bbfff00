package main

import (
	"context"
	"fmt"
	"os"

	"github.com/erraggy/oasmerge"
	"github.com/erraggy/oasmerge/cmd/oasmerge/commands"
	"github.com/erraggy/oasmerge/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasmerge v%s\n", oasmerge.Version())
	case "help", "-h", "--help":
		printUsage()
	case "merge":
		if err := commands.HandleMerge(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "parse":
		if err := commands.HandleParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

var knownCommands = []string{"merge", "parse", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`oasmerge - OpenAPI Specification Merger

Usage:
  oasmerge <command> [options]

Commands:
  merge       Merge multiple OpenAPI specification files into one
  parse       Parse and display an OpenAPI specification file or URL
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oasmerge merge -o merged.yaml users.yaml billing.yaml
  oasmerge merge --sanitize-titles -o api.json spec1.json spec2.json spec3.json
  oasmerge parse https://example.com/api/swagger.yaml

Run 'oasmerge <command> --help' for more information on a command.`)
}
