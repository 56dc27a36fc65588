// Package builder generates an OpenAPI or Swagger specification from the
// @route comments of a Go API folder.
//
// Import path: github.com/erraggy/routedoc/builder
//
// # Overview
//
// Each route file is a Go source file whose block comments may carry a
// @route tag followed by a YAML fragment:
//
//	/**
//	 * @route
//	 * openapi: 3.0.0
//	 * info: {title: Pets, version: "1.0"}
//	 * paths: {}
//	 * get:
//	 *   summary: List pets
//	 */
//	func List(w http.ResponseWriter, r *http.Request) { ... }
//
// The fragment's top-level operations are filed under the route path of
// the file. [Build] takes the source text of every route; [BuildFiles] also
// names each source so errors point at "api/pets.go:12". Both run these
// steps:
//
//  1. Extract and validate the fragments of every file concurrently. The
//     first invalid fragment fails the whole build.
//  2. Merge the fragments in route order, so several fragments for the same
//     route combine their methods.
//  3. Layer the result under the base definition. The definition wins on
//     conflicting entries.
//  4. Add a servers entry for the deployment base path when the definition
//     has none.
//  5. Hand everything to the assembler, which also scans the glob list.
//
// # Configuration
//
// [BuildFromFolder] takes an internal config, discovers routes and reads
// them with [ReadRouteFiles]: "api/pets/[id].go" serves "/api/pets/{id}".
// The configured output file is never scanned by the assembler.
//
// Optional Prometheus metrics are enabled with [WithMetrics]:
//
//	m, err := builder.NewMetrics(prometheus.DefaultRegisterer)
//	spec, err := builder.Build(ctx, routes, def, globs, builder.WithMetrics(m))
package builder
