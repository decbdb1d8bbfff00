package merger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasmerge/parser"
)

// TestRewriteRefs_EmptyTableIsIdentity verifies the identity fast path: an
// empty rename table returns the input value itself, whatever its shape.
func TestRewriteRefs_EmptyTableIsIdentity(t *testing.T) {
	inputs := []any{
		nil,
		"just a string",
		42,
		map[string]any{"$ref": "#/definitions/Foo", "nested": []any{1, 2}},
		[]any{map[string]any{"$ref": "#/definitions/Bar"}},
	}

	for _, input := range inputs {
		assert.Equal(t, input, RewriteRefs(input, nil))
		assert.Equal(t, input, RewriteRefs(input, RenameTable{}))
	}
}

// TestRewriteRefs_TargetsOnlyRefLeaves exercises the canonical mixed-shape
// case: refs anywhere in the structure are renamed, nested member paths are
// kept intact, and everything else passes through untouched.
func TestRewriteRefs_TargetsOnlyRefLeaves(t *testing.T) {
	renames := RenameTable{"Foo": "foo_Foo", "Bar": "bar_Bar", "Fizz": "bar_Fizz"}
	input := map[string]any{
		"$ref": "#/definitions/Foo",
		"arr": []any{
			map[string]any{"$ref": "#/definitions/Bar"},
			"string",
			[]any{map[string]any{"$ref": "#/definitions/Fizz/Buzz"}},
		},
		"skip": true,
	}

	got := RewriteRefs(input, renames)
	assert.Equal(t, map[string]any{
		"$ref": "#/definitions/foo_Foo",
		"arr": []any{
			map[string]any{"$ref": "#/definitions/bar_Bar"},
			"string",
			[]any{map[string]any{"$ref": "#/definitions/bar_Fizz/Buzz"}},
		},
		"skip": true,
	}, got)

	// The input itself is untouched.
	assert.Equal(t, "#/definitions/Foo", input["$ref"])
}

func TestRewriteRefs_ComponentsSchemasNamespace(t *testing.T) {
	renames := RenameTable{"User": "billing_User"}
	input := map[string]any{"$ref": "#/components/schemas/User"}

	got := RewriteRefs(input, renames)
	assert.Equal(t, map[string]any{"$ref": "#/components/schemas/billing_User"}, got)
}

func TestRewriteRefs_UnmatchedRefsPassThrough(t *testing.T) {
	renames := RenameTable{"Foo": "foo_Foo"}
	input := map[string]any{
		"external":    map[string]any{"$ref": "other.yaml#/definitions/Foo"},
		"otherSpace":  map[string]any{"$ref": "#/parameters/Foo"},
		"notInTable":  map[string]any{"$ref": "#/definitions/Bar"},
		"notAString":  map[string]any{"$ref": 7},
		"justAString": "#/definitions/Foo",
	}

	got, ok := RewriteRefs(input, renames).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, input, got)
}

func TestRewriteDocument(t *testing.T) {
	doc := &parser.Document{
		Swagger: "2.0",
		Info:    parser.Info{Title: "petstore"},
		Definitions: map[string]any{
			"Pets": map[string]any{
				"type":  "array",
				"items": map[string]any{"$ref": "#/definitions/Pet"},
			},
		},
		Paths: map[string]any{
			"/pets": map[string]any{
				"get": map[string]any{
					"responses": map[string]any{
						"200": map[string]any{"schema": map[string]any{"$ref": "#/definitions/Pet"}},
					},
				},
			},
		},
	}

	rewritten := RewriteDocument(doc, RenameTable{"Pet": "petstore_Pet"})

	items := rewritten.Definitions["Pets"].(map[string]any)["items"].(map[string]any)
	assert.Equal(t, "#/definitions/petstore_Pet", items["$ref"])

	schema := rewritten.Paths["/pets"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)["200"].(map[string]any)["schema"].(map[string]any)
	assert.Equal(t, "#/definitions/petstore_Pet", schema["$ref"])

	// Original document untouched.
	origItems := doc.Definitions["Pets"].(map[string]any)["items"].(map[string]any)
	assert.Equal(t, "#/definitions/Pet", origItems["$ref"])
}

func TestRewriteDocument_EmptyTableReturnsSameDocument(t *testing.T) {
	doc := &parser.Document{Swagger: "2.0"}
	assert.Same(t, doc, RewriteDocument(doc, nil))
}
