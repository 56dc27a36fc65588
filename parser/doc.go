// Package parser parses and validates @route documentation fragments.
//
// A fragment is the YAML payload of one @route comment tag. Parsing decodes
// the YAML, decides the schema family from the top-level keys, validates the
// required fields and declared versions, and lifts every top-level HTTP
// method key under the route path the fragment is attached to.
//
// # Schema families
//
// A fragment with a non-empty swagger key is Swagger 2.0 and must declare
// swagger: "2.0", info and paths. Any other fragment is OpenAPI 3.x and must
// declare openapi, info and paths, with openapi one of 3.0.0, 3.0.1, 3.0.2
// or 3.0.3. Version fields written as YAML numbers are rejected with a
// dedicated message, as is a numeric info.version.
//
// # Quick Start
//
//	doc, err := parser.Parse("/api/pets", "api/pets.go:12", `
//	openapi: "3.0.0"
//	info: {title: Pets, version: "1.0.0"}
//	paths: {}
//	get:
//	  summary: List pets
//	`)
//	if err != nil {
//		var vErr *oaserrors.ValidationError
//		if errors.As(err, &vErr) {
//			log.Fatalf("%s: %s", vErr.Rule, vErr.Message)
//		}
//		log.Fatal(err)
//	}
//	fmt.Println(doc.Path) // map[/api/pets:map[get:map[summary:List pets]]]
//
// # Asynchronous use
//
// [Parser.ParseAsync] runs a parse on its own goroutine and delivers a single
// [Result], so many fragments can be in flight at once.
//
// # Related Packages
//
//   - [github.com/erraggy/routedoc/extractor] - Find @route fragments in Go source
//   - [github.com/erraggy/routedoc/joiner] - Merge parsed documents into an aggregate
//   - [github.com/erraggy/routedoc/builder] - Run the whole pipeline
package parser
