package parser

import "encoding/json"

// Info carries the identifying metadata of a document. Title doubles as the
// namespace prefix when the merger renames colliding schemas.
type Info struct {
	Title       string         `yaml:"title" json:"title"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string         `yaml:"version,omitempty" json:"version,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// ToMap returns the JSON-compatible representation of the info object,
// including any passthrough fields.
func (i Info) ToMap() map[string]any {
	m := make(map[string]any, len(i.Extra)+3)
	for k, v := range i.Extra {
		m[k] = v
	}
	m["title"] = i.Title
	if i.Description != "" {
		m["description"] = i.Description
	}
	if i.Version != "" {
		m["version"] = i.Version
	}
	return m
}

// Document is one OpenAPI Specification document.
//
// Top-level fields the merge engine inspects are typed; everything below
// them (path items, schema objects, security schemes) is plain
// JSON-compatible data. Fields this model does not name are preserved in
// Extra and passed through a merge untouched.
//
// Absence is modeled directly: a nil map or empty string means the document
// does not declare that field.
type Document struct {
	// Swagger is the 2.x version tag ("2.0"); empty if not declared
	Swagger string `yaml:"swagger,omitempty" json:"swagger,omitempty"`
	// OpenAPI is the 3.x version tag (e.g. "3.0.3"); empty if not declared
	OpenAPI string `yaml:"openapi,omitempty" json:"openapi,omitempty"`
	Info    Info   `yaml:"info" json:"info"`
	Host    string `yaml:"host,omitempty" json:"host,omitempty"`
	// BasePath is prefixed to every path template during a merge (2.x only)
	BasePath string `yaml:"basePath,omitempty" json:"basePath,omitempty"`
	// Tags is the ordered list of tag names
	Tags []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	// Security is the document-global security requirement:
	// scheme name to required scopes
	Security map[string][]string `yaml:"security,omitempty" json:"security,omitempty"`
	// SecurityDefinitions maps scheme names to scheme objects (2.x)
	SecurityDefinitions map[string]any `yaml:"securityDefinitions,omitempty" json:"securityDefinitions,omitempty"`
	// Definitions maps schema names to schema objects (2.x)
	Definitions map[string]any `yaml:"definitions,omitempty" json:"definitions,omitempty"`
	// Components is the 3.x container; schemas and securitySchemes live here
	Components map[string]any `yaml:"components,omitempty" json:"components,omitempty"`
	// Paths maps path templates to path-item objects
	Paths map[string]any `yaml:"paths,omitempty" json:"paths,omitempty"`
	// Extra preserves top-level fields the model does not name
	Extra map[string]any `yaml:",inline" json:"-"`
}

// SchemaDefinitions returns the document's schema map: definitions for 2.x
// documents, components.schemas for 3.x. Returns nil if the document
// declares neither.
func (d *Document) SchemaDefinitions() map[string]any {
	if d.Definitions != nil {
		return d.Definitions
	}
	if schemas, ok := d.Components["schemas"].(map[string]any); ok {
		return schemas
	}
	return nil
}

// SetSchemaDefinitions replaces the document's schema map in whichever
// location the document uses. Documents in the 3.x family (or that already
// carry a components object) store schemas under components.schemas;
// everything else uses definitions.
func (d *Document) SetSchemaDefinitions(defs map[string]any) {
	if d.Definitions == nil && (d.OpenAPI != "" || d.Components != nil) {
		if d.Components == nil {
			d.Components = make(map[string]any)
		}
		d.Components["schemas"] = defs
		return
	}
	d.Definitions = defs
}

// SecuritySchemes returns the document's named security scheme map:
// securityDefinitions for 2.x documents, components.securitySchemes for 3.x.
// Returns nil if the document declares neither.
func (d *Document) SecuritySchemes() map[string]any {
	if d.SecurityDefinitions != nil {
		return d.SecurityDefinitions
	}
	if schemes, ok := d.Components["securitySchemes"].(map[string]any); ok {
		return schemes
	}
	return nil
}

// SetSecuritySchemes replaces the document's security scheme map in
// whichever location the document uses.
func (d *Document) SetSecuritySchemes(schemes map[string]any) {
	if d.SecurityDefinitions == nil && (d.OpenAPI != "" || d.Components != nil) {
		if d.Components == nil {
			d.Components = make(map[string]any)
		}
		d.Components["securitySchemes"] = schemes
		return
	}
	d.SecurityDefinitions = schemes
}

// Clone returns a copy of the document with fresh top-level maps and slices.
// Nested values (individual path items, schema objects) are shared with the
// original; the merge engine only ever replaces them wholesale, never
// mutates them in place.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	copied := *d
	copied.Info.Extra = cloneMap(d.Info.Extra)
	copied.Tags = cloneSlice(d.Tags)
	copied.SecurityDefinitions = cloneMap(d.SecurityDefinitions)
	copied.Definitions = cloneMap(d.Definitions)
	copied.Components = cloneMap(d.Components)
	copied.Paths = cloneMap(d.Paths)
	copied.Extra = cloneMap(d.Extra)
	if d.Security != nil {
		copied.Security = make(map[string][]string, len(d.Security))
		for name, scopes := range d.Security {
			copied.Security[name] = cloneSlice(scopes)
		}
	}
	return &copied
}

// ToMap returns the JSON-compatible representation of the whole document,
// including passthrough fields. Declared-absent fields are omitted.
func (d *Document) ToMap() map[string]any {
	m := make(map[string]any, len(d.Extra)+8)
	for k, v := range d.Extra {
		m[k] = v
	}
	if d.Swagger != "" {
		m["swagger"] = d.Swagger
	}
	if d.OpenAPI != "" {
		m["openapi"] = d.OpenAPI
	}
	m["info"] = d.Info.ToMap()
	if d.Host != "" {
		m["host"] = d.Host
	}
	if d.BasePath != "" {
		m["basePath"] = d.BasePath
	}
	if d.Tags != nil {
		m["tags"] = d.Tags
	}
	if d.Security != nil {
		m["security"] = d.Security
	}
	if d.SecurityDefinitions != nil {
		m["securityDefinitions"] = d.SecurityDefinitions
	}
	if d.Definitions != nil {
		m["definitions"] = d.Definitions
	}
	if d.Components != nil {
		m["components"] = d.Components
	}
	if d.Paths != nil {
		m["paths"] = d.Paths
	}
	return m
}

// MarshalJSON marshals through ToMap so passthrough fields survive JSON
// round-trips.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToMap())
}

func cloneMap[V any](m map[string]V) map[string]V {
	if m == nil {
		return nil
	}
	copied := make(map[string]V, len(m))
	for k, v := range m {
		copied[k] = v
	}
	return copied
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	copied := make([]T, len(s))
	copy(copied, s)
	return copied
}
