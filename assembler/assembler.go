package assembler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/erraggy/routedoc/extractor"
	"github.com/erraggy/routedoc/internal/maputil"
	"github.com/erraggy/routedoc/joiner"
	"github.com/erraggy/routedoc/oaserrors"
	"github.com/erraggy/routedoc/parser"
	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// Assembler turns a base definition and a set of file globs into the final
// specification.
type Assembler interface {
	Assemble(ctx context.Context, definition map[string]any, globs []string) (map[string]any, error)
}

// DefaultTags are the comment tags a Go file contributes documents under.
var DefaultTags = []string{"openapi", "swagger"}

// headerKeys describe a whole document rather than its contents. A shared
// file carrying them (such as a previous output) keeps only its contents.
var headerKeys = map[string]bool{
	"openapi":      true,
	"swagger":      true,
	"info":         true,
	"servers":      true,
	"security":     true,
	"externalDocs": true,
	"host":         true,
	"basePath":     true,
	"schemes":      true,
}

// SpecAssembler is the default Assembler. It scans every file matched by
// the globs for documentation and merges it into a copy of the definition.
type SpecAssembler struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger
	// Tags are the comment tags read from Go files
	Tags []string
}

// New creates a SpecAssembler.
func New(opts ...Option) *SpecAssembler {
	cfg := applyOptions(opts...)
	return &SpecAssembler{Logger: cfg.logger, Tags: cfg.tags}
}

func (a *SpecAssembler) log() parser.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return parser.NopLogger{}
}

// sectionsFor lists the sections a fresh specification starts with.
func sectionsFor(family parser.Family) []string {
	if family == parser.FamilySwagger2 {
		return []string{"definitions", "parameters", "responses", "securityDefinitions", "paths"}
	}
	return []string{"components", "paths"}
}

// Family reports the schema family a definition declares. It fails with a
// *oaserrors.ConfigError when the definition declares neither swagger nor
// openapi, or has no info object.
func Family(definition map[string]any) (parser.Family, error) {
	var family parser.Family
	switch {
	case definition["swagger"] != nil && definition["swagger"] != "":
		family = parser.FamilySwagger2
	case definition["openapi"] != nil && definition["openapi"] != "":
		family = parser.FamilyOpenAPI3
	default:
		return "", &oaserrors.ConfigError{Option: "definition", Message: "definition must declare openapi or swagger"}
	}
	if _, ok := definition["info"].(map[string]any); !ok {
		return "", &oaserrors.ConfigError{Option: "definition", Message: "definition must have an info object"}
	}
	return family, nil
}

// Assemble merges the documentation found in the files matched by globs
// into a copy of definition and returns the finalized specification.
func (a *SpecAssembler) Assemble(ctx context.Context, definition map[string]any, globs []string) (map[string]any, error) {
	family, err := Family(definition)
	if err != nil {
		return nil, err
	}

	spec, _ := maputil.DeepCopy(definition).(map[string]any)
	for _, name := range sectionsFor(family) {
		if _, ok := spec[name]; !ok {
			spec[name] = map[string]any{}
		}
	}
	if _, ok := spec["tags"]; !ok {
		spec["tags"] = []any{}
	}

	files, err := Expand(globs)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "apis", Value: globs, Message: "invalid glob", Cause: err}
	}

	agg := joiner.Wrap(spec)
	agg.Logger = a.Logger
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		docs, err := a.load(file)
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			agg.OrganizeAll(withoutHeader(doc))
		}
		a.log().Debug("assembler: file merged", "file", file, "documents", len(docs))
	}

	finalize(spec)
	return spec, nil
}

// load returns the documents a file contributes.
func (a *SpecAssembler) load(file string) ([]map[string]any, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("assembler: reading %s: %w", file, err)
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".go":
		return a.loadGo(file, data)
	case ".json":
		return loadJSON(file, data)
	case ".yaml", ".yml":
		return loadYAML(file, data)
	default:
		a.log().Debug("assembler: unsupported file skipped", "file", file)
		return nil, nil
	}
}

func (a *SpecAssembler) loadGo(file string, data []byte) ([]map[string]any, error) {
	var frags []extractor.Fragment
	for _, tag := range a.Tags {
		e := extractor.New()
		e.Tag = tag
		e.Logger = a.Logger
		found, err := e.ExtractSource(file, data, "")
		if err != nil {
			return nil, err
		}
		frags = append(frags, found...)
	}
	slices.SortStableFunc(frags, func(x, y extractor.Fragment) int {
		return x.Line - y.Line
	})

	var out []map[string]any
	for _, f := range frags {
		docs, err := loadYAML(f.Source(), []byte(f.Text))
		if err != nil {
			return nil, err
		}
		out = append(out, docs...)
	}
	return out, nil
}

func loadJSON(source string, data []byte) ([]map[string]any, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &oaserrors.ParseError{Source: source, Message: "document is not valid JSON", Cause: err}
	}
	m, ok := maputil.Normalize(raw).(map[string]any)
	if !ok {
		return nil, nil
	}
	return []map[string]any{m}, nil
}

// loadYAML decodes every document of a YAML stream. Documents that are not
// mappings contribute nothing.
func loadYAML(source string, data []byte) ([]map[string]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []map[string]any
	for {
		var raw any
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, &oaserrors.ParseError{Source: source, Message: "document is not valid YAML", Cause: err}
		}
		if m, ok := maputil.Normalize(raw).(map[string]any); ok {
			out = append(out, m)
		}
	}
}

// withoutHeader returns doc without its document header keys.
func withoutHeader(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if !headerKeys[k] {
			out[k] = v
		}
	}
	return out
}

// finalize removes empty sections. paths is always kept.
func finalize(spec map[string]any) {
	for _, name := range joiner.StructuralSections() {
		if name == "paths" {
			continue
		}
		if isEmpty(spec[name]) {
			delete(spec, name)
		}
	}
	if isEmpty(spec["tags"]) {
		delete(spec, "tags")
	}
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	default:
		return false
	}
}

// Assemble runs a default SpecAssembler.
func Assemble(ctx context.Context, definition map[string]any, globs []string, opts ...Option) (map[string]any, error) {
	return New(opts...).Assemble(ctx, definition, globs)
}
