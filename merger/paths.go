package merger

import (
	"maps"

	"github.com/erraggy/oasmerge/oaserrors"
	"github.com/erraggy/oasmerge/parser"
)

// httpMethods are the path-item keys that receive security injection.
// Any other key on a path item is left untouched.
var httpMethods = map[string]bool{
	"get":     true,
	"post":    true,
	"put":     true,
	"delete":  true,
	"options": true,
	"head":    true,
	"patch":   true,
}

// MergePaths unions the two documents' path maps. Each of right's path
// templates is prefixed by right's basePath; an exact collision with an
// existing final path fails with DuplicatePathError naming the path and the
// right document's title.
//
// If right declares a document-global security requirement, it is injected
// into every HTTP-method operation of right's paths that does not declare
// its own. The injected requirement is the same shared object across all
// qualifying operations, not a deep clone; callers must not mutate it in
// place afterward.
func MergePaths(left, right *parser.Document) (map[string]any, error) {
	result := make(map[string]any, len(left.Paths)+len(right.Paths))
	maps.Copy(result, left.Paths)

	for _, template := range sortedKeys(right.Paths) {
		finalPath := right.BasePath + template
		if _, taken := result[finalPath]; taken {
			return nil, &oaserrors.DuplicatePathError{
				Path:  finalPath,
				Title: right.Info.Title,
			}
		}
		result[finalPath] = injectSecurity(right.Paths[template], right.Security)
	}

	return result, nil
}

// injectSecurity applies a document-global security requirement to each
// HTTP-method operation in a path item that lacks its own. The containing
// maps are rebuilt so the input document is never mutated; the security
// value itself is shared.
func injectSecurity(item any, security map[string][]string) any {
	if security == nil {
		return item
	}
	pathItem, ok := item.(map[string]any)
	if !ok {
		return item
	}

	rebuilt := make(map[string]any, len(pathItem))
	for key, value := range pathItem {
		if !httpMethods[key] {
			rebuilt[key] = value
			continue
		}
		op, ok := value.(map[string]any)
		if !ok {
			rebuilt[key] = value
			continue
		}
		if _, declared := op["security"]; declared {
			rebuilt[key] = value
			continue
		}
		withSecurity := make(map[string]any, len(op)+1)
		maps.Copy(withSecurity, op)
		withSecurity["security"] = security
		rebuilt[key] = withSecurity
	}
	return rebuilt
}
