// Package merger merges an ordered sequence of OpenAPI Specification
// documents into a single document.
//
// Documents are folded left to right into an accumulator initialized from
// the first document. Each fold step runs, in order:
//
//  1. Version check: documents declaring different version tags within the
//     same family cannot be merged. An accumulator that declares no version
//     accepts any candidate; this looseness is deliberate and preserved.
//  2. Tags: the candidate's tag names are unioned onto the accumulator's,
//     deduplicated, first-occurrence order preserved.
//  3. Security definitions: named schemes are unioned. Identical duplicates
//     are tolerated; conflicting ones abort the merge.
//  4. Definitions: named schemas are unioned. A colliding name whose schema
//     is structurally identical to the existing one is deduplicated. A
//     genuine conflict is renamed to "<title>_<name>" using the candidate
//     document's title, and every $ref in the candidate that points at the
//     renamed schema is rewritten before paths are merged.
//  5. Paths: the candidate's path templates, prefixed by its basePath, are
//     added to the accumulator. Exact collisions abort the merge. The
//     candidate's global security requirement is injected into each of its
//     operations that does not declare its own.
//
// # Quick Start
//
//	merged, err := merger.Merge(docs)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = merger.WriteDocument(merged, parser.SourceFormatYAML, "merged.yaml")
//
// Each sub-operation (MergeTags, MergeSecurityDefinitions, MergeDefinitions,
// MergePaths, RewriteRefs) is exported for direct use.
//
// # Renaming Policy
//
// Schemas are renamed only on genuine collision, keeping merged output
// stable and reference rewriting minimal. The alternative policy of
// prefixing every schema from every later document is available behind
// Config.AlwaysRename for callers that want fully namespaced output.
//
// # Failure Modes
//
// Every failure aborts the merge immediately with a typed error from the
// oaserrors package; there is no partial result and no skip-and-continue.
// Error messages name the contributing document's title where applicable.
//
// # Concurrency
//
// A merge invocation builds and returns new structures and keeps no state
// between calls. Separate calls are safe to run concurrently as long as
// callers do not mutate input documents mid-call.
package merger
