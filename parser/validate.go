package parser

import (
	"fmt"
	"strings"

	"github.com/erraggy/routedoc/oaserrors"
)

// validateSwagger2 checks a fragment that declared a swagger key. The
// checks run in a fixed order and the first failure is returned.
func validateSwagger2(data map[string]any, name string) *oaserrors.ValidationError {
	if !hasKeys(data, "swagger", "info", "paths") {
		return &oaserrors.ValidationError{
			Rule:    oaserrors.RuleSwaggerRequired,
			Message: fmt.Sprintf("%s is not a valid Swagger API definition", name),
		}
	}

	swagger := data["swagger"]
	if isNumber(swagger) {
		return &oaserrors.ValidationError{
			Rule:    oaserrors.RuleSwaggerVersionType,
			Value:   swagger,
			Message: `Swagger version number must be a string (e.g. "2.0") not a number.`,
		}
	}
	if err := validateInfoVersion(data); err != nil {
		return err
	}
	if s, ok := swagger.(string); !ok || s != SwaggerVersion {
		return &oaserrors.ValidationError{
			Rule:    oaserrors.RuleSwaggerVersion,
			Value:   swagger,
			Message: fmt.Sprintf("Unrecognized Swagger version: %v. Expected %s", swagger, SwaggerVersion),
		}
	}
	return nil
}

// validateOpenAPI3 checks a fragment without a swagger key, which is
// treated as OpenAPI 3.x.
func validateOpenAPI3(data map[string]any, name string) *oaserrors.ValidationError {
	if !hasKeys(data, "openapi", "info", "paths") {
		return &oaserrors.ValidationError{
			Rule:    oaserrors.RuleOpenAPIRequired,
			Message: fmt.Sprintf("%s is not a valid OpenAPI API definition", name),
		}
	}

	openapi := data["openapi"]
	if isNumber(openapi) {
		return &oaserrors.ValidationError{
			Rule:    oaserrors.RuleOpenAPIVersionType,
			Value:   openapi,
			Message: `OpenAPI version number must be a string (e.g. "3.0.0") not a number.`,
		}
	}
	if err := validateInfoVersion(data); err != nil {
		return err
	}
	if s, ok := openapi.(string); !ok || !IsSupportedOpenAPIVersion(s) {
		return &oaserrors.ValidationError{
			Rule:  oaserrors.RuleOpenAPIVersion,
			Value: openapi,
			Message: fmt.Sprintf("Unsupported OpenAPI version: %v. Only versions %s are supported",
				openapi, strings.Join(supportedOpenAPIVersions, ", ")),
		}
	}
	return nil
}

// validateInfoVersion rejects an info.version written as a number, the
// most common authoring mistake in fragments.
func validateInfoVersion(data map[string]any) *oaserrors.ValidationError {
	info, ok := data["info"].(map[string]any)
	if !ok {
		return nil
	}
	if v := info["version"]; isNumber(v) {
		return &oaserrors.ValidationError{
			Rule:    oaserrors.RuleInfoVersionType,
			Value:   v,
			Message: `API version number must be a string (e.g. "1.0.0") not a number.`,
		}
	}
	return nil
}

// hasKeys reports whether every key is present. A key explicitly set to
// null counts as present.
func hasKeys(data map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := data[k]; !ok {
			return false
		}
	}
	return true
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	default:
		return false
	}
}
