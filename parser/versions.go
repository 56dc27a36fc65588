package parser

import "slices"

// Family is the schema family a fragment declares itself to belong to.
type Family string

const (
	// FamilySwagger2 is Swagger 2.0, declared with a top-level swagger key.
	FamilySwagger2 Family = "swagger2"
	// FamilyOpenAPI3 is OpenAPI 3.0.x, assumed whenever no swagger key is set.
	FamilyOpenAPI3 Family = "openapi3"
)

func (f Family) String() string {
	return string(f)
}

// SwaggerVersion is the only accepted value of the swagger field.
const SwaggerVersion = "2.0"

var supportedOpenAPIVersions = []string{"3.0.0", "3.0.1", "3.0.2", "3.0.3"}

// SupportedOpenAPIVersions returns the accepted values of the openapi field.
func SupportedOpenAPIVersions() []string {
	return slices.Clone(supportedOpenAPIVersions)
}

// IsSupportedOpenAPIVersion reports whether v is an accepted openapi version.
func IsSupportedOpenAPIVersion(v string) bool {
	return slices.Contains(supportedOpenAPIVersions, v)
}

// httpMethods are the operation keys lifted under the owning route path,
// in the order OpenAPI lists them on a Path Item.
var httpMethods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// HTTPMethods returns the recognized operation keys.
func HTTPMethods() []string {
	return slices.Clone(httpMethods)
}

// IsHTTPMethod reports whether key is a recognized operation key.
func IsHTTPMethod(key string) bool {
	return slices.Contains(httpMethods, key)
}
