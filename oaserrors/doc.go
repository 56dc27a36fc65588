// Package oaserrors provides structured error types for routedoc.
//
// Import path: github.com/erraggy/routedoc/oaserrors
//
// Every fatal condition of a generation run surfaces as one of these types,
// so callers can tell a malformed fragment apart from a bad configuration
// with [errors.Is] and [errors.As].
//
// # Error Types
//
//   - [ParseError]: a fragment is not valid YAML, is not a mapping, or the
//     Go source file holding it does not parse
//   - [ValidationError]: a fragment is not a valid Swagger 2.0 or OpenAPI 3.0.x
//     document; [ValidationError.Rule] names the violated rule
//   - [ConfigError]: invalid configuration or base definition
//
// A comment without a @route tag, or with an empty one, is not an error and
// never produces one of these types.
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	spec, err := builder.Build(ctx, routes, definition, globs)
//	if errors.Is(err, oaserrors.ErrValidation) {
//	    // a fragment declared a bad version or missed a required field
//	}
//
//	var vErr *oaserrors.ValidationError
//	if errors.As(err, &vErr) {
//	    fmt.Printf("%s: %s (%s)\n", vErr.Source, vErr.Message, vErr.Rule)
//	}
package oaserrors
