package assembler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/routedoc/internal/maputil"
	"github.com/erraggy/routedoc/oaserrors"
	"github.com/erraggy/routedoc/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openAPIDefinition() map[string]any {
	return map[string]any{
		"openapi": "3.0.0",
		"info":    map[string]any{"title": "Pets", "version": "1.0"},
		"paths": map[string]any{
			"/api/pets": map[string]any{"get": map[string]any{"summary": "list"}},
		},
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
}

func TestAssemble_DefinitionOnly(t *testing.T) {
	def := openAPIDefinition()
	spec, err := Assemble(context.Background(), def, nil)
	require.NoError(t, err)

	assert.Equal(t, "3.0.0", spec["openapi"])
	assert.Contains(t, spec, "paths")
	assert.NotContains(t, spec, "components", "empty sections are removed")
	assert.NotContains(t, spec, "tags", "empty tags are removed")

	// the definition is not modified
	assert.NotContains(t, def, "components")
	spec["paths"].(map[string]any)["/api/pets"].(map[string]any)["get"].(map[string]any)["summary"] = "x"
	assert.Equal(t, "list", def["paths"].(map[string]any)["/api/pets"].(map[string]any)["get"].(map[string]any)["summary"])
}

func TestAssemble_EmptyPathsKept(t *testing.T) {
	spec, err := Assemble(context.Background(), map[string]any{
		"swagger": "2.0",
		"info":    map[string]any{"title": "t", "version": "1"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, spec["paths"])
	for _, name := range []string{"definitions", "parameters", "responses", "securityDefinitions", "tags"} {
		assert.NotContains(t, spec, name)
	}
}

func TestAssemble_Files(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "public/pets.swagger.yaml", `
components:
  schemas:
    Pet: {type: object}
tags:
  - name: pets
---
/api/stores:
  get: {summary: stores}
`)
	writeFile(t, dir, "models/error.json", `{"components": {"schemas": {"Error": {"type": "object"}}}}`)
	writeFile(t, dir, "models/pet.go", `package models

/**
 * @openapi
 * components:
 *   schemas:
 *     Toy: {type: object}
 */
type Toy struct{}

/* @swagger
tags:
  - name: pets
    description: duplicate
  - name: toys
*/
var _ = 0

/* @route
get: {summary: ignored here}
*/
var _ = 1
`)

	root := filepath.ToSlash(dir)
	spec, err := Assemble(context.Background(), openAPIDefinition(), []string{
		root + "/public/**/*.swagger.yaml",
		root + "/models/**/*.json",
		root + "/models/**/*.go",
	})
	require.NoError(t, err)

	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	assert.Contains(t, schemas, "Pet")
	assert.Contains(t, schemas, "Error")
	assert.Contains(t, schemas, "Toy")

	// models/pet.go sorts before public/, so its pets tag is kept
	assert.Equal(t, []any{
		map[string]any{"name": "pets", "description": "duplicate"},
		map[string]any{"name": "toys"},
	}, spec["tags"])

	paths := spec["paths"].(map[string]any)
	assert.Contains(t, paths, "/api/pets")
	assert.Contains(t, paths, "/api/stores")
	assert.Equal(t, "list", paths["/api/pets"].(map[string]any)["get"].(map[string]any)["summary"])
}

func TestAssemble_DefinitionErrors(t *testing.T) {
	tests := []struct {
		name string
		def  map[string]any
		msg  string
	}{
		{"no family", map[string]any{"info": map[string]any{}}, "must declare openapi or swagger"},
		{"empty family", map[string]any{"openapi": "", "info": map[string]any{}}, "must declare openapi or swagger"},
		{"no info", map[string]any{"openapi": "3.0.0"}, "must have an info object"},
		{"nil definition", nil, "must declare openapi or swagger"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble(context.Background(), tt.def, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrConfig))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestAssemble_FileErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.json", `{"components":`)
	writeFile(t, dir, "bad.yaml", "a: [1\n")
	writeFile(t, dir, "bad.go", "package bad\nfunc {")
	writeFile(t, dir, "badcomment.go", "package x\n\n/* @openapi\nfoo: [1\n*/\nvar _ = 0\n")

	for _, name := range []string{"bad.json", "bad.yaml", "bad.go", "badcomment.go"} {
		t.Run(name, func(t *testing.T) {
			_, err := Assemble(context.Background(), openAPIDefinition(), []string{filepath.Join(dir, name)})
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrParse))
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestAssemble_Canceled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "tags: [{name: a}]\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Assemble(ctx, openAPIDefinition(), []string{filepath.Join(dir, "a.yaml")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFamily(t *testing.T) {
	f, err := Family(map[string]any{"swagger": "2.0", "info": map[string]any{}})
	require.NoError(t, err)
	assert.Equal(t, parser.FamilySwagger2, f)

	f, err = Family(openAPIDefinition())
	require.NoError(t, err)
	assert.Equal(t, parser.FamilyOpenAPI3, f)
}

func TestWithTags(t *testing.T) {
	a := New(WithTags("api"), WithLogger(parser.NopLogger{}))
	assert.Equal(t, []string{"api"}, a.Tags)
	assert.Equal(t, DefaultTags, New().Tags)
}

func TestAssemble_PreviousOutputHeaderIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "public/swagger.json", `{
  "openapi": "3.0.0",
  "info": {"title": "old", "version": "0"},
  "servers": [{"url": "/v1", "description": "deployment base path"}],
  "security": [{"key": []}],
  "externalDocs": {"url": "https://example.com"},
  "paths": {"/api/pets": {"get": {"summary": "old summary"}}},
  "components": {"schemas": {"Pet": {"type": "object"}}}
}`)
	writeFile(t, dir, "public/legacy.swagger.yaml", `
swagger: "2.0"
host: api.example.com
basePath: /v2
schemes: [https]
info: {title: legacy, version: "1"}
/api/legacy:
  get: {summary: legacy}
`)

	root := filepath.ToSlash(dir)
	spec, err := Assemble(context.Background(), openAPIDefinition(), []string{
		root + "/public/**/*.json",
		root + "/public/**/*.swagger.yaml",
	})
	require.NoError(t, err)

	paths := spec["paths"].(map[string]any)
	assert.Equal(t, []string{"/api/legacy", "/api/pets"}, maputil.SortedKeys(paths))
	assert.Equal(t, map[string]any{"title": "Pets", "version": "1.0"}, spec["info"])
	assert.Equal(t, "3.0.0", spec["openapi"])
	for _, key := range []string{"servers", "security", "externalDocs", "swagger", "host", "basePath", "schemes"} {
		assert.NotContains(t, spec, key)
	}
	assert.Contains(t, spec["components"].(map[string]any)["schemas"], "Pet")
}
