// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import "strings"

// OAS 2.0 reference prefixes
const (
	RefPrefixDefinitions         = "#/definitions/"
	RefPrefixSecurityDefinitions = "#/securityDefinitions/"
)

// OAS 3.x reference prefixes
const (
	RefPrefixSchemas         = "#/components/schemas/"
	RefPrefixSecuritySchemes = "#/components/securitySchemes/"
)

// SchemaRef builds "#/components/schemas/{name}" (OAS 3.x).
func SchemaRef(name string) string {
	return RefPrefixSchemas + name
}

// DefinitionRef builds "#/definitions/{name}" (OAS 2.0).
func DefinitionRef(name string) string {
	return RefPrefixDefinitions + name
}

// SecuritySchemeRef builds the appropriate security scheme ref.
// If oas2 is true, returns "#/securityDefinitions/{name}", otherwise
// "#/components/securitySchemes/{name}".
func SecuritySchemeRef(name string, oas2 bool) string {
	if oas2 {
		return RefPrefixSecurityDefinitions + name
	}
	return RefPrefixSecuritySchemes + name
}

// SplitSchemaRef decomposes a local schema reference into prefix, schema
// name, and remaining member path. The name is the first path segment after
// the prefix; rest carries everything after it, leading slash included.
//
// Returns ok=false for refs that do not point into a local schema namespace
// (external refs, component refs, malformed strings, or an empty name).
func SplitSchemaRef(ref string) (prefix, name, rest string, ok bool) {
	for _, p := range []string{RefPrefixDefinitions, RefPrefixSchemas} {
		tail, found := strings.CutPrefix(ref, p)
		if !found {
			continue
		}
		if i := strings.IndexByte(tail, '/'); i >= 0 {
			name, rest = tail[:i], tail[i:]
		} else {
			name = tail
		}
		if name == "" {
			return "", "", "", false
		}
		return p, name, rest, true
	}
	return "", "", "", false
}
