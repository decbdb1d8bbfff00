// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasmerge capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/oasmerge"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oasmerge MCP server — merges multiple Swagger 2.x / OpenAPI 3.x documents into one.

Configuration: All defaults are configurable via OASMERGE_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- OASMERGE_MAX_MERGE_SPECS (default: 20) — maximum number of specs per merge call
- OASMERGE_MAX_INLINE_SIZE (default: 4194304) — maximum inline content size in bytes
- OASMERGE_SANITIZE_TITLES (default: false) — sanitize document titles before using them as rename prefixes
- OASMERGE_ALWAYS_RENAME (default: false) — namespace every later-document schema, not just colliding ones

Merging is fail-fast: the first version mismatch, conflicting security definition, unresolvable schema collision, or duplicate path aborts the merge with the offending document's title in the error.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasmerge", Version: oasmerge.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge",
		Description: "Merge multiple Swagger 2.x or OpenAPI 3.x documents into a single document. Requires at least 2 specs via the specs array; documents are folded left to right. Colliding schema definitions from later documents are renamed to <title>_<name> and every $ref to them is rewritten. Paths are prefixed with each document's basePath; a document's global security is injected into its operations. Behavior defaults are configurable via OASMERGE_SANITIZE_TITLES and OASMERGE_ALWAYS_RENAME env vars.",
	}, handleMerge)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse a Swagger 2.x or OpenAPI 3.x document. Returns a structural summary: title, declared version, version family, and path/definition/tag counts. Useful to inspect documents before merging them.",
	}, handleParse)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
