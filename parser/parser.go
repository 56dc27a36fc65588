package parser

import (
	"context"
	"fmt"

	"github.com/erraggy/routedoc/internal/maputil"
	"github.com/erraggy/routedoc/oaserrors"
	"go.yaml.in/yaml/v4"
)

// headerKeys identify the fragment's own document and are never merged.
var headerKeys = map[string]bool{
	"swagger": true,
	"openapi": true,
	"info":    true,
	"path":    true,
}

// Parser parses and validates @route fragments.
//
// A Parser holds no per-fragment state and is safe for concurrent use.
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New(opts ...Option) *Parser {
	cfg := applyOptions(opts...)
	return &Parser{Logger: cfg.logger}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// Document is a fragment that parsed as YAML and passed schema-family
// validation.
type Document struct {
	// Route is the route path the fragment was attached to
	Route string
	// Source identifies where the fragment came from (usually "file:line")
	Source string
	// Family is the declared schema family
	Family Family
	// Version is the declared swagger or openapi version string
	Version string
	// Operations maps HTTP method to operation object for every method
	// key present at the top level of the fragment
	Operations map[string]any
	// Path is {Route: Operations}, or empty when the fragment has no
	// top-level operations
	Path map[string]any
	// Data is the decoded fragment. Path is also stored here under the
	// "path" key.
	Data map[string]any
}

// Contribution is one top-level property of a Document that takes part in
// merging.
type Contribution struct {
	Key   string
	Value any
}

// Contributions returns the properties of d that a merge should apply, in
// a stable order: every top-level key except the document header (swagger,
// openapi, info), the operation keys and the computed path entry, sorted by
// key, followed by a "paths" contribution carrying the route's operations.
func (d *Document) Contributions() []Contribution {
	var out []Contribution
	for _, key := range maputil.SortedKeys(d.Data) {
		if headerKeys[key] || IsHTTPMethod(key) {
			continue
		}
		out = append(out, Contribution{Key: key, Value: d.Data[key]})
	}
	if len(d.Path) > 0 {
		out = append(out, Contribution{Key: "paths", Value: d.Path})
	}
	return out
}

// Parse decodes text as YAML, validates it as a Swagger 2.0 or OpenAPI 3.0.x
// document and lifts its top-level operations under routePath.
//
// source is used only in error messages and logs. Errors are
// *oaserrors.ParseError for YAML failures and *oaserrors.ValidationError for
// schema-family violations.
func (p *Parser) Parse(routePath, source, text string) (*Document, error) {
	var raw any
	if err := yaml.Unmarshal([]byte(text), &raw); err != nil {
		return nil, &oaserrors.ParseError{
			Source:  source,
			Route:   routePath,
			Message: "fragment is not valid YAML",
			Cause:   err,
		}
	}

	data, ok := maputil.Normalize(raw).(map[string]any)
	if !ok {
		return nil, &oaserrors.ParseError{
			Source:  source,
			Route:   routePath,
			Message: fmt.Sprintf("fragment must be a YAML mapping, got %s", describe(raw)),
		}
	}

	ops := make(map[string]any)
	for _, method := range httpMethods {
		if op, ok := data[method]; ok && truthy(op) {
			ops[method] = op
		}
	}
	path := make(map[string]any)
	if len(ops) > 0 {
		path[routePath] = ops
	}
	data["path"] = path

	doc := &Document{
		Route:      routePath,
		Source:     source,
		Operations: ops,
		Path:       path,
		Data:       data,
	}

	var vErr *oaserrors.ValidationError
	if truthy(data["swagger"]) {
		doc.Family = FamilySwagger2
		vErr = validateSwagger2(data, label(source, routePath))
	} else {
		doc.Family = FamilyOpenAPI3
		vErr = validateOpenAPI3(data, label(source, routePath))
	}
	if vErr != nil {
		vErr.Source = source
		vErr.Route = routePath
		p.log().Debug("parser: fragment rejected", "route", routePath, "source", source, "rule", string(vErr.Rule))
		return nil, vErr
	}

	if doc.Family == FamilySwagger2 {
		doc.Version, _ = data["swagger"].(string)
	} else {
		doc.Version, _ = data["openapi"].(string)
	}

	p.log().Debug("parser: fragment parsed",
		"route", routePath,
		"source", source,
		"family", doc.Family.String(),
		"version", doc.Version,
		"operations", len(ops))
	return doc, nil
}

// Result is the settled outcome of an asynchronous parse.
type Result struct {
	Document *Document
	Err      error
}

// ParseAsync runs Parse on its own goroutine. The returned channel delivers
// exactly one Result and is then closed. If ctx is already done, the Result
// carries ctx.Err() and no parsing happens.
func (p *Parser) ParseAsync(ctx context.Context, routePath, source, text string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		if err := ctx.Err(); err != nil {
			ch <- Result{Err: err}
			return
		}
		doc, err := p.Parse(routePath, source, text)
		ch <- Result{Document: doc, Err: err}
	}()
	return ch
}

// Parse parses a fragment with a Parser configured by opts.
//
// Example:
//
//	doc, err := parser.Parse("/api/pets", "api/pets.go:12", text,
//	    parser.WithLogger(parser.NewSlogAdapter(nil)),
//	)
func Parse(routePath, source, text string, opts ...Option) (*Document, error) {
	return New(opts...).Parse(routePath, source, text)
}

// label names the fragment in "not a valid ... definition" messages.
func label(source, routePath string) string {
	if source != "" {
		return source
	}
	if routePath != "" {
		return routePath
	}
	return "fragment"
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "an empty document"
	case []any:
		return "a sequence"
	default:
		return "a scalar"
	}
}

// truthy mirrors the loose presence test authors expect from annotation
// tooling: empty strings, zero numbers, false and null count as absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}
