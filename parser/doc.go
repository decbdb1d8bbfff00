// Package parser provides the document model and loading for oasmerge.
//
// Import path: github.com/erraggy/oasmerge/parser
//
// The package loads OpenAPI Specification documents from local files, URLs,
// or raw bytes in YAML or JSON format, and exposes them as [Document] values:
// typed top-level fields for everything the merge engine inspects, with
// JSON-compatible map[string]any content below that (path items, schema
// objects, security schemes) that the merger treats as opaque except for
// $ref rewriting.
//
// # Loading Documents
//
//	result, err := parser.Parse(ctx, "api.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s declares %s\n", result.Document.Info.Title, result.Version)
//
// File paths and URLs are both accepted; loading goes through a single
// abstract storage service (viant/afs), so anything afs can address works.
//
// # Format Detection
//
// The source format is detected from the file extension (.json, .yaml, .yml)
// and falls back to content sniffing: data starting with '{' or '[' is
// treated as JSON. JSON input is decoded through the YAML path (JSON is a
// YAML subset), so both formats share one decode pipeline.
//
// # Version Families
//
// A Document declares at most one of the swagger (2.x) or openapi (3.x)
// version tags. [Document.VersionFamily] reports which family a document
// belongs to; documents that declare neither report [FamilyNone] and are
// accepted loosely by the merger.
package parser
