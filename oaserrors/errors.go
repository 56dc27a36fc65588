package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates a fragment or source file could not be parsed.
	ErrParse = errors.New("parse error")

	// ErrValidation indicates a fragment failed schema-family validation.
	ErrValidation = errors.New("validation error")

	// ErrConfig indicates an invalid configuration or base definition.
	ErrConfig = errors.New("configuration error")
)

// Rule identifies which validation rule a fragment violated.
type Rule string

const (
	// RuleSwaggerRequired means a Swagger 2.0 fragment lacks swagger, info or paths.
	RuleSwaggerRequired Rule = "swagger-required-fields"
	// RuleSwaggerVersionType means the swagger field was written as a number.
	RuleSwaggerVersionType Rule = "swagger-version-type"
	// RuleSwaggerVersion means the swagger field is not "2.0".
	RuleSwaggerVersion Rule = "swagger-version"
	// RuleOpenAPIRequired means an OpenAPI 3.x fragment lacks openapi, info or paths.
	RuleOpenAPIRequired Rule = "openapi-required-fields"
	// RuleOpenAPIVersionType means the openapi field was written as a number.
	RuleOpenAPIVersionType Rule = "openapi-version-type"
	// RuleOpenAPIVersion means the openapi field names an unsupported version.
	RuleOpenAPIVersion Rule = "openapi-version"
	// RuleInfoVersionType means info.version was written as a number.
	RuleInfoVersionType Rule = "info-version-type"
)

// ParseError represents a fragment whose text is not valid YAML, a fragment
// that is not a mapping, or a source file that is not valid Go.
type ParseError struct {
	// Source is the file path, optionally suffixed with ":line"
	Source string
	// Route is the route path the fragment belongs to (may be empty)
	Route string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Route != "" {
		msg += " (route " + e.Route + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ValidationError represents a fragment that is not a valid Swagger 2.0 or
// OpenAPI 3.0.x document.
type ValidationError struct {
	// Source is the file path, optionally suffixed with ":line"
	Source string
	// Route is the route path the fragment belongs to
	Route string
	// Rule is the violated rule
	Rule Rule
	// Value is the offending value (may be nil)
	Value any
	// Message describes the validation failure
	Message string
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Route != "" {
		msg += " (route " + e.Route + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
