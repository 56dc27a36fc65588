package joiner

import (
	"testing"

	"github.com/erraggy/routedoc/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, route, text string) *parser.Document {
	t.Helper()
	doc, err := parser.Parse(route, "test.go:1", text)
	require.NoError(t, err)
	return doc
}

const header = "openapi: 3.0.0\ninfo: {title: t, version: \"1\"}\npaths: {}\n"

func TestNewAggregate(t *testing.T) {
	agg := NewAggregate()
	for _, name := range StructuralSections() {
		assert.NotNil(t, agg.Section(name), name)
	}
	assert.Equal(t, []any{}, agg.Section("consumes"))
	assert.Equal(t, map[string]any{}, agg.Section("components"))
	assert.Empty(t, agg.Tags())
	assert.Empty(t, agg.Webhooks())
	assert.Empty(t, agg.Paths())
}

func TestAggregate_MethodUnion(t *testing.T) {
	agg := NewAggregate()
	agg.AddDocument(mustParse(t, "/api/pets", header+"get: {summary: list}\n"))
	agg.AddDocument(mustParse(t, "/api/pets", header+"post: {summary: create}\n"))

	route, ok := agg.Paths()["/api/pets"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{
		"get":  map[string]any{"summary": "list"},
		"post": map[string]any{"summary": "create"},
	}, route)
}

func TestAggregate_SameMethodDeepMerges(t *testing.T) {
	agg := NewAggregate()
	agg.AddDocument(mustParse(t, "/api/pets", header+"get: {summary: list, description: first}\n"))
	agg.AddDocument(mustParse(t, "/api/pets", header+"get: {summary: ~, operationId: listPets}\n"))

	get := agg.Paths()["/api/pets"].(map[string]any)["get"].(map[string]any)
	assert.Equal(t, "list", get["summary"], "null must not erase the earlier summary")
	assert.Equal(t, "first", get["description"])
	assert.Equal(t, "listPets", get["operationId"])
}

func TestAggregate_TagDeduplication(t *testing.T) {
	agg := NewAggregate()
	agg.OrganizeAll(map[string]any{"tags": []any{map[string]any{"name": "pets", "description": "first"}}})
	agg.OrganizeAll(map[string]any{"tags": map[string]any{"name": "pets", "description": "second"}})
	agg.OrganizeAll(map[string]any{"tags": []any{map[string]any{"name": "stores"}}})

	assert.Equal(t, []any{
		map[string]any{"name": "pets", "description": "first"},
		map[string]any{"name": "stores"},
	}, agg.Tags())
	assert.Empty(t, agg.Warnings())
}

func TestAggregate_TagShapeWarnings(t *testing.T) {
	agg := NewAggregate()
	agg.OrganizeAll(map[string]any{"tags": []any{"pets", map[string]any{"name": "ok"}}})
	agg.OrganizeAll(map[string]any{"tags": "pets"})

	assert.Equal(t, []any{map[string]any{"name": "ok"}}, agg.Tags())
	assert.Len(t, agg.Warnings().ByCategory(WarnTagShape), 2)
}

func TestAggregate_StructuralSiblingsUntouched(t *testing.T) {
	agg := NewAggregate()
	agg.OrganizeAll(map[string]any{"components": map[string]any{
		"schemas": map[string]any{"Pet": map[string]any{"type": "object"}},
	}})
	agg.OrganizeAll(map[string]any{"components": map[string]any{
		"securitySchemes": map[string]any{"key": map[string]any{"type": "apiKey"}},
	}})
	agg.OrganizeAll(map[string]any{"components": map[string]any{
		"schemas": map[string]any{"Store": map[string]any{"type": "object"}},
	}})

	components := agg.Section("components").(map[string]any)
	assert.Equal(t, map[string]any{
		"Pet":   map[string]any{"type": "object"},
		"Store": map[string]any{"type": "object"},
	}, components["schemas"])
	assert.Contains(t, components, "securitySchemes")
}

func TestAggregate_ListSectionsMergeByPosition(t *testing.T) {
	agg := NewAggregate()
	agg.OrganizeAll(map[string]any{"consumes": []any{"application/json"}})
	agg.OrganizeAll(map[string]any{"consumes": []any{nil, "application/xml"}})

	assert.Equal(t, []any{"application/json", "application/xml"}, agg.Section("consumes"))
}

func TestAggregate_SectionShapeMismatch(t *testing.T) {
	agg := NewAggregate()
	agg.OrganizeAll(map[string]any{"consumes": map[string]any{"a": 1}})
	agg.OrganizeAll(map[string]any{"definitions": []any{"x"}})
	agg.OrganizeAll(map[string]any{"schemas": "scalar"})
	agg.OrganizeAll(map[string]any{"responses": nil})

	assert.Len(t, agg.Warnings().ByCategory(WarnSectionShape), 3)
	assert.Equal(t, []any{}, agg.Section("consumes"))
	assert.Equal(t, map[string]any{}, agg.Section("definitions"))
	assert.Equal(t, map[string]any{}, agg.Section("responses"))
}

func TestAggregate_NullEntriesBecomeEmptyMappings(t *testing.T) {
	agg := NewAggregate()
	agg.OrganizeAll(map[string]any{
		"/foo":       nil,
		"components": map[string]any{"schemas": nil},
	})
	assert.Equal(t, map[string]any{"/foo": map[string]any{}}, agg.Paths())
	assert.Equal(t, map[string]any{"schemas": map[string]any{}}, agg.Section("components"))

	// a later null keeps what is already there
	agg.OrganizeAll(map[string]any{"/foo": map[string]any{"get": map[string]any{"summary": "foo"}}})
	agg.OrganizeAll(map[string]any{"/foo": nil})
	assert.Equal(t, map[string]any{"get": map[string]any{"summary": "foo"}}, agg.Paths()["/foo"])
}

func TestAggregate_VendorExtensions(t *testing.T) {
	agg := NewAggregate()
	agg.OrganizeAll(map[string]any{
		"x-webhooks": map[string]any{"newPet": map[string]any{"post": map[string]any{"summary": "a"}}},
		"x-internal": true,
	})
	agg.OrganizeAll(map[string]any{
		"x-webhooks": map[string]any{"newPet": map[string]any{"post": map[string]any{"description": "b"}}},
	})

	assert.Equal(t, map[string]any{
		"newPet": map[string]any{"post": map[string]any{"summary": "a", "description": "b"}},
	}, agg.Webhooks())
	assert.NotContains(t, agg.Map(), "x-internal")
}

func TestAggregate_EmptyFragmentIsNoOp(t *testing.T) {
	agg := NewAggregate()
	agg.AddDocument(mustParse(t, "/api/pets", header+"get: {summary: list}\n"))
	before := DeepMerge(nil, agg.Map())

	agg.AddDocument(mustParse(t, "/api/pets", header))
	agg.OrganizeAll(map[string]any{})
	agg.Organize(map[string]any{}, "paths")

	assert.Equal(t, before, agg.Map())
}

func TestAggregate_Idempotent(t *testing.T) {
	doc := mustParse(t, "/api/pets", header+`
get:
  summary: list
  parameters:
    - {name: limit, in: query}
components:
  schemas:
    Pet: {type: object}
tags:
  - name: pets
x-webhooks:
  petAdded: {post: {summary: hook}}
`)
	agg := NewAggregate()
	agg.AddDocument(doc)
	once := DeepMerge(nil, agg.Map())

	agg.AddDocument(doc)
	assert.Equal(t, once, agg.Map())
}

func TestAggregate_DoesNotAliasFragments(t *testing.T) {
	fragment := map[string]any{
		"/api/pets": map[string]any{"get": map[string]any{"summary": "list"}},
		"tags":      []any{map[string]any{"name": "pets"}},
	}
	agg := NewAggregate()
	agg.OrganizeAll(fragment)

	agg.Paths()["/api/pets"].(map[string]any)["get"].(map[string]any)["summary"] = "changed"
	agg.Tags()[0].(map[string]any)["name"] = "changed"

	assert.Equal(t, "list", fragment["/api/pets"].(map[string]any)["get"].(map[string]any)["summary"])
	assert.Equal(t, "pets", fragment["tags"].([]any)[0].(map[string]any)["name"])
}

func TestWrap(t *testing.T) {
	doc := map[string]any{"openapi": "3.0.0"}
	agg := Wrap(doc)
	Organize(agg, map[string]any{"/a": map[string]any{"get": map[string]any{}}}, "/a")
	OrganizeAll(agg, map[string]any{"definitions": map[string]any{"A": map[string]any{}}})

	assert.Contains(t, doc, "paths")
	assert.Contains(t, doc, "definitions")
	assert.NotContains(t, doc, "components", "Wrap does not pre-create sections")

	assert.NotNil(t, Wrap(nil).Map())
}

func TestMergeTags(t *testing.T) {
	existing := []any{map[string]any{"name": "a"}}

	got, warnings := MergeTags(existing, []any{
		map[string]any{"name": "a", "description": "dup"},
		map[string]any{"name": "b"},
		map[string]any{"name": "b"},
	})
	assert.Empty(t, warnings)
	assert.Equal(t, []any{map[string]any{"name": "a"}, map[string]any{"name": "b"}}, got)
	assert.Len(t, existing, 1, "existing must not be modified")

	got, _ = MergeTags(existing, nil)
	assert.Equal(t, existing, got)

	_, warnings = MergeTags(nil, 42)
	assert.Len(t, warnings, 1)
}
