package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaDefinitions_OAS2(t *testing.T) {
	doc := &Document{
		Swagger:     "2.0",
		Definitions: map[string]any{"Pet": map[string]any{"type": "object"}},
	}

	defs := doc.SchemaDefinitions()
	require.NotNil(t, defs)
	assert.Contains(t, defs, "Pet")

	doc.SetSchemaDefinitions(map[string]any{"Pet": map[string]any{"type": "string"}})
	assert.Equal(t, map[string]any{"type": "string"}, doc.Definitions["Pet"])
	assert.Nil(t, doc.Components)
}

func TestSchemaDefinitions_OAS3(t *testing.T) {
	doc := &Document{
		OpenAPI: "3.0.3",
		Components: map[string]any{
			"schemas": map[string]any{"Pet": map[string]any{"type": "object"}},
		},
	}

	defs := doc.SchemaDefinitions()
	require.NotNil(t, defs)
	assert.Contains(t, defs, "Pet")

	doc.SetSchemaDefinitions(map[string]any{"Cat": map[string]any{}})
	schemas, ok := doc.Components["schemas"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, schemas, "Cat")
	assert.Nil(t, doc.Definitions, "3.x documents must not grow a definitions field")
}

func TestSchemaDefinitions_Absent(t *testing.T) {
	doc := &Document{Swagger: "2.0"}
	assert.Nil(t, doc.SchemaDefinitions())
}

func TestSetSchemaDefinitions_UndeclaredFamilyDefaultsToDefinitions(t *testing.T) {
	doc := &Document{}
	doc.SetSchemaDefinitions(map[string]any{"Pet": map[string]any{}})
	assert.NotNil(t, doc.Definitions)
	assert.Nil(t, doc.Components)
}

func TestSecuritySchemes(t *testing.T) {
	oas2 := &Document{
		Swagger:             "2.0",
		SecurityDefinitions: map[string]any{"basic": map[string]any{"type": "basic"}},
	}
	assert.Contains(t, oas2.SecuritySchemes(), "basic")

	oas3 := &Document{
		OpenAPI: "3.0.0",
		Components: map[string]any{
			"securitySchemes": map[string]any{"bearer": map[string]any{"type": "http"}},
		},
	}
	assert.Contains(t, oas3.SecuritySchemes(), "bearer")

	oas3.SetSecuritySchemes(map[string]any{"apiKey": map[string]any{}})
	schemes, ok := oas3.Components["securitySchemes"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, schemes, "apiKey")
}

func TestClone_TopLevelMapsAreIndependent(t *testing.T) {
	doc := &Document{
		Swagger:     "2.0",
		Info:        Info{Title: "petstore"},
		Tags:        []string{"pets"},
		Security:    map[string][]string{"basic": {"read"}},
		Definitions: map[string]any{"Pet": map[string]any{"type": "object"}},
		Paths:       map[string]any{"/pets": map[string]any{}},
		Extra:       map[string]any{"x-internal": true},
	}

	clone := doc.Clone()
	clone.Tags = append(clone.Tags, "extra")
	clone.Definitions["Cat"] = map[string]any{}
	clone.Paths["/cats"] = map[string]any{}
	clone.Security["basic"] = append(clone.Security["basic"], "write")

	assert.Equal(t, []string{"pets"}, doc.Tags)
	assert.NotContains(t, doc.Definitions, "Cat")
	assert.NotContains(t, doc.Paths, "/cats")
	assert.Equal(t, []string{"read"}, doc.Security["basic"])
}

func TestClone_Nil(t *testing.T) {
	var doc *Document
	assert.Nil(t, doc.Clone())
}

func TestToMap_OmitsAbsentFields(t *testing.T) {
	doc := &Document{
		Swagger: "2.0",
		Info:    Info{Title: "petstore"},
		Paths:   map[string]any{"/pets": map[string]any{}},
	}

	m := doc.ToMap()
	assert.Contains(t, m, "swagger")
	assert.Contains(t, m, "info")
	assert.Contains(t, m, "paths")
	assert.NotContains(t, m, "openapi")
	assert.NotContains(t, m, "basePath")
	assert.NotContains(t, m, "definitions")
	assert.NotContains(t, m, "tags")
}

func TestMarshalJSON_PreservesExtraFields(t *testing.T) {
	doc := &Document{
		Swagger: "2.0",
		Info:    Info{Title: "petstore", Extra: map[string]any{"x-team": "platform"}},
		Paths:   map[string]any{},
		Extra:   map[string]any{"x-audience": "internal"},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "internal", decoded["x-audience"])
	info, ok := decoded["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "platform", info["x-team"])
}
