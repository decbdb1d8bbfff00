// Package oasmerge provides tools for merging multiple OpenAPI Specification
// (OAS) documents into a single coherent document.
//
// oasmerge combines independently-authored Swagger 2.0 and OpenAPI 3.x
// documents, resolving the naming collisions and cross-document references
// that arise when specs are written without knowledge of each other.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - parser: Load OAS documents from files, URLs, or raw bytes (YAML or JSON)
//   - merger: Merge an ordered sequence of documents into one
//
// Typed errors for all merge failure modes live in the oaserrors package.
//
// # Quick Start
//
// Load and merge two specifications:
//
//	import (
//		"github.com/erraggy/oasmerge/merger"
//		"github.com/erraggy/oasmerge/parser"
//	)
//
//	users, err := parser.Parse(ctx, "users-api.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	billing, err := parser.Parse(ctx, "billing-api.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	merged, err := merger.Merge([]*parser.Document{users.Document, billing.Document})
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = merger.WriteDocument(merged, users.SourceFormat, "merged.yaml")
//
// # Merge Semantics
//
// Documents are folded left to right. Each fold step checks version
// compatibility, unions tags and security definitions, merges schema
// definitions (renaming colliding schemas by document title and rewriting
// every $ref that points at a renamed schema), and finally merges paths with
// basePath prefixing and global-security injection.
//
// All failures abort the merge immediately and carry the contributing
// document's title in the error message. See the merger and oaserrors
// package documentation for details.
//
// # Command-Line Interface
//
// The oasmerge command wraps the library:
//
//	oasmerge merge -o merged.yaml users-api.yaml billing-api.yaml
//
// It also exposes the merge engine as an MCP tool over stdio:
//
//	oasmerge mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/oasmerge/cmd/oasmerge@latest
package oasmerge
