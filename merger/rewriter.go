package merger

import (
	"github.com/erraggy/oasmerge/internal/pathutil"
	"github.com/erraggy/oasmerge/parser"
)

// RewriteRefs rewrites every local schema $ref in an arbitrary JSON-compatible
// value through the rename table, returning a rebuilt value. The input is not
// modified. With an empty table the input is returned unchanged.
//
// Only string values under a key literally named "$ref" are considered, and
// only when they point into a local schema namespace ("#/definitions/" or
// "#/components/schemas/"). The first path segment after the prefix is the
// schema name; when it appears in the table, just that segment is replaced
// and any nested member path is kept intact. Refs that do not match the
// pattern pass through untouched, never as an error.
func RewriteRefs(value any, renames RenameTable) any {
	if len(renames) == 0 {
		return value
	}
	return rewriteValue(value, renames)
}

// RewriteDocument returns a copy of the document with RewriteRefs applied to
// every region that can contain schema pointers. The input document is not
// modified. With an empty table the input is returned as-is.
func RewriteDocument(doc *parser.Document, renames RenameTable) *parser.Document {
	if len(renames) == 0 {
		return doc
	}
	rewritten := doc.Clone()
	rewritten.SecurityDefinitions = rewriteSchemaMap(doc.SecurityDefinitions, renames)
	rewritten.Definitions = rewriteSchemaMap(doc.Definitions, renames)
	rewritten.Components = rewriteSchemaMap(doc.Components, renames)
	rewritten.Paths = rewriteSchemaMap(doc.Paths, renames)
	rewritten.Extra = rewriteSchemaMap(doc.Extra, renames)
	return rewritten
}

// rewriteSchemaMap runs a named-object map through RewriteRefs, preserving
// nil-ness for absent maps.
func rewriteSchemaMap(m map[string]any, renames RenameTable) map[string]any {
	if m == nil || len(renames) == 0 {
		return m
	}
	rewritten, ok := rewriteValue(m, renames).(map[string]any)
	if !ok {
		return m
	}
	return rewritten
}

func rewriteValue(value any, renames RenameTable) any {
	switch v := value.(type) {
	case map[string]any:
		rebuilt := make(map[string]any, len(v))
		for key, element := range v {
			if key == "$ref" {
				if ref, ok := element.(string); ok {
					rebuilt[key] = rewriteRef(ref, renames)
					continue
				}
			}
			rebuilt[key] = rewriteValue(element, renames)
		}
		return rebuilt
	case []any:
		rebuilt := make([]any, len(v))
		for i, element := range v {
			rebuilt[i] = rewriteValue(element, renames)
		}
		return rebuilt
	default:
		// Scalars pass through unchanged.
		return value
	}
}

func rewriteRef(ref string, renames RenameTable) string {
	prefix, name, rest, ok := pathutil.SplitSchemaRef(ref)
	if !ok {
		return ref
	}
	renamed, found := renames[name]
	if !found {
		return ref
	}
	return prefix + renamed + rest
}
