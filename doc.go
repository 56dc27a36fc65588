// Package routedoc generates a single OpenAPI 3.0 or Swagger 2.0 document
// from @route fragments written in block comments of Go route handlers.
//
// Each route file carries one or more comments like this:
//
//	/**
//	 * @route
//	 * openapi: 3.0.0
//	 * info: {title: Pets, version: "1.0.0"}
//	 * paths: {}
//	 * get:
//	 *   summary: List pets
//	 */
//	func ListPets(w http.ResponseWriter, r *http.Request) {}
//
// Every fragment is a complete, valid document of its own. Its top-level
// HTTP method keys are lifted under paths[route] and everything else is
// merged with the fragments of all other routes. The result is layered under
// a base definition, which always wins, and handed to the assembler to fold
// in shared component documents.
//
// # Packages
//
//   - extractor: find @route block comments in Go source
//   - parser: decode and validate fragments, lift operations onto the route
//   - joiner: section classification, deep merge and tag deduplication
//   - builder: concurrent, fail-fast orchestration of a whole run
//   - assembler: fold shared JSON, YAML and annotated Go files into the result
//   - oaserrors: structured error types shared by all of the above
//
// # Quick Start
//
// Build takes the Go source text of every route:
//
//	spec, err := builder.Build(ctx,
//	    map[string]string{"/api/pets": petsSource},
//	    map[string]any{
//	        "openapi": "3.0.0",
//	        "info":    map[string]any{"title": "Pets", "version": "1.0.0"},
//	    },
//	    []string{"models/**/*.yaml"},
//	)
//
// The routedoc command derives routes from the layout of an API folder
// instead, reading its settings from a JSON or YAML config file.
//
// # Command-Line Interface
//
//	routedoc generate -o public/swagger.json routedoc.yaml
//	routedoc check --route /api/pets api/pets.go
//	routedoc mcp
//
// Set ROUTEDOC_BASE_PATH to advertise a deployment base path under servers.
package routedoc
