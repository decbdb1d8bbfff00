package merger

import (
	"maps"

	"github.com/erraggy/oasmerge/oaserrors"
	"github.com/erraggy/oasmerge/parser"
)

// MergeSecurityDefinitions unions the two documents' named security scheme
// maps. A scheme name present in both documents is tolerated when the scheme
// objects are structurally identical (the left-hand entry is kept);
// conflicting objects fail with DuplicateSecurityDefinitionError naming the
// scheme and the right document's title.
func MergeSecurityDefinitions(left, right *parser.Document) (map[string]any, error) {
	leftSchemes := left.SecuritySchemes()
	rightSchemes := right.SecuritySchemes()

	result := make(map[string]any, len(leftSchemes)+len(rightSchemes))
	maps.Copy(result, leftSchemes)

	for _, name := range sortedKeys(rightSchemes) {
		scheme := rightSchemes[name]
		existing, taken := result[name]
		if !taken {
			result[name] = scheme
			continue
		}
		if !DeepEqual(existing, scheme) {
			return nil, &oaserrors.DuplicateSecurityDefinitionError{
				Scheme: name,
				Title:  right.Info.Title,
			}
		}
	}

	return result, nil
}
