// Package extractor finds @route documentation fragments in Go source.
//
// A fragment lives in a block comment attached to any syntax node of a
// route-handler file:
//
//	/**
//	 * @route
//	 *   openapi: 3.0.0
//	 *   info: {title: Pets, version: "1.0.0"}
//	 *   paths: {}
//	 *   get:
//	 *     summary: List pets
//	 */
//	func Handler(w http.ResponseWriter, r *http.Request) { ... }
//
// The comment gutter is removed and the tag body dedented, so the payload
// reaches the parser as plain YAML. Line comments, block comments without a
// @route tag and empty @route tags are ignored.
//
// [ParseTags] is exported for other comment-driven tags such as @openapi.
package extractor
