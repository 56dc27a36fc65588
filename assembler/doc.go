// Package assembler produces the final specification from a base definition
// and a list of file globs.
//
// Import path: github.com/erraggy/routedoc/assembler
//
// The assembler starts from a deep copy of the definition, then merges, in
// file name order:
//
//   - every document of each matched .yaml or .yml file
//   - each matched .json document
//   - the @openapi and @swagger block comments of each matched .go file
//
// Every top-level property goes through the same organization rules as
// route fragments (see the joiner package). Empty sections other than paths
// are removed from the result.
//
// Globs support "**" for any number of directories:
//
//	spec, err := assembler.Assemble(ctx, definition, []string{
//	    "api/**/*.go",
//	    "public/**/*.swagger.yaml",
//	})
package assembler
