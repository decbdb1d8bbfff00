package merger

import (
	"maps"

	"github.com/erraggy/oasmerge/oaserrors"
	"github.com/erraggy/oasmerge/parser"
)

// RenameTable maps original schema names to their namespaced replacements.
// It is produced by one definition merge, consumed by one round of reference
// rewriting, and then discarded; it never spans fold steps.
type RenameTable map[string]string

// MergeDefinitions unions the two documents' named schema maps and returns
// the merged map together with the rename table for entries that had to be
// namespaced.
//
// A name free in the left map is inserted as-is. A colliding name whose
// schemas are structurally identical is deduplicated onto the left-hand
// entry. A genuine conflict is inserted under "<right title>_<name>"; if
// that name is itself taken the merge fails with DuplicateDefinitionError.
func MergeDefinitions(left, right *parser.Document) (map[string]any, RenameTable, error) {
	return mergeDefinitions(left, right, func(title string) string { return title }, false)
}

// mergeDefinitions is MergeDefinitions with a configurable title-to-prefix
// derivation and rename policy. With alwaysRename set, every right-hand
// schema is namespaced, not just the colliding ones.
func mergeDefinitions(left, right *parser.Document, prefix func(string) string, alwaysRename bool) (map[string]any, RenameTable, error) {
	leftDefs := left.SchemaDefinitions()
	rightDefs := right.SchemaDefinitions()

	result := make(map[string]any, len(leftDefs)+len(rightDefs))
	maps.Copy(result, leftDefs)
	renames := make(RenameTable)

	for _, name := range sortedKeys(rightDefs) {
		schema := rightDefs[name]

		if alwaysRename {
			renamed := prefix(right.Info.Title) + "_" + name
			if existing, clash := result[renamed]; clash && !DeepEqual(existing, schema) {
				return nil, nil, &oaserrors.DuplicateDefinitionError{
					Name:    name,
					Renamed: renamed,
					Title:   right.Info.Title,
				}
			}
			result[renamed] = schema
			renames[name] = renamed
			continue
		}

		existing, taken := result[name]
		if !taken {
			result[name] = schema
			continue
		}
		if DeepEqual(existing, schema) {
			// Identical schema already present: reuse it, pointers to this
			// name stay valid as-is.
			continue
		}

		renamed := prefix(right.Info.Title) + "_" + name
		if _, clash := result[renamed]; clash {
			return nil, nil, &oaserrors.DuplicateDefinitionError{
				Name:    name,
				Renamed: renamed,
				Title:   right.Info.Title,
			}
		}
		result[renamed] = schema
		renames[name] = renamed
	}

	return result, renames, nil
}
