package builder

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/routedoc/assembler"
	"github.com/erraggy/routedoc/extractor"
	"github.com/erraggy/routedoc/internal/config"
	"github.com/erraggy/routedoc/internal/maputil"
	"github.com/erraggy/routedoc/joiner"
	"github.com/erraggy/routedoc/parser"
	"golang.org/x/sync/errgroup"
)

// EnvBasePath is the environment variable read when no base path option is
// given.
const EnvBasePath = config.EnvBasePath

// ServersDescription describes the servers entry added for the base path.
const ServersDescription = "deployment base path"

// Builder generates a specification from the @route comments of a set of
// route files.
//
// A Builder is safe for concurrent use; every Build call works on its own
// aggregate.
type Builder struct {
	logger      parser.Logger
	parser      *parser.Parser
	extractor   *extractor.Extractor
	assembler   assembler.Assembler
	basePath    string
	metrics     *Metrics
	concurrency int
}

// New creates a Builder.
func New(opts ...Option) *Builder {
	cfg := applyOptions(opts...)

	logger := cfg.logger
	if logger == nil {
		logger = parser.NopLogger{}
	}
	basePath := cfg.basePath
	if !cfg.basePathSet {
		basePath = os.Getenv(EnvBasePath)
	}
	asm := cfg.assembler
	if asm == nil {
		asm = assembler.New(assembler.WithLogger(logger))
	}

	ext := extractor.New()
	ext.Logger = logger
	return &Builder{
		logger:      logger,
		parser:      parser.New(parser.WithLogger(logger)),
		extractor:   ext,
		assembler:   asm,
		basePath:    basePath,
		metrics:     cfg.metrics,
		concurrency: cfg.concurrency,
	}
}

// RouteFile is the Go source serving one route.
type RouteFile struct {
	// Name identifies the source in fragment locations and errors,
	// usually its file path
	Name string
	// Source is the Go source text
	Source string
}

// Build generates the specification for routes, a map from route path to
// the Go source text serving it. Fragments are located by route path, as
// in "/api/pets:12"; use BuildFiles to name the sources.
func (b *Builder) Build(ctx context.Context, routes map[string]string, definition map[string]any, globs []string) (map[string]any, error) {
	files := make(map[string]RouteFile, len(routes))
	for route, src := range routes {
		files[route] = RouteFile{Name: route, Source: src}
	}
	return b.BuildFiles(ctx, files, definition, globs)
}

// BuildFiles generates the specification for files, keyed by route path.
//
// Every file is parsed on its own goroutine and every fragment is
// validated. The first failure cancels the remaining work and is returned
// without partial output. The validated fragments are then merged in route
// order and layered under definition, whose entries win on conflict. The
// result and globs go to the assembler.
func (b *Builder) BuildFiles(ctx context.Context, files map[string]RouteFile, definition map[string]any, globs []string) (spec map[string]any, err error) {
	start := time.Now()
	defer func() {
		b.metrics.observe(start, err)
	}()

	docs, err := b.collect(ctx, files)
	if err != nil {
		return nil, err
	}

	agg := joiner.NewAggregate()
	agg.Logger = b.logger
	fragments := 0
	for _, fileDocs := range docs {
		for _, doc := range fileDocs {
			agg.AddDocument(doc)
			fragments++
		}
	}

	layered := Layer(definition, agg)
	if b.basePath != "" {
		if _, ok := layered["servers"]; !ok {
			layered["servers"] = []any{
				map[string]any{"url": b.basePath, "description": ServersDescription},
			}
		}
	}

	b.logger.Info("builder: fragments merged",
		"routes", len(files),
		"fragments", fragments,
		"warnings", len(agg.Warnings()))

	spec, err = b.assembler.Assemble(ctx, layered, globs)
	if err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}
	return spec, nil
}

// collect parses every route file concurrently. The result is ordered by
// route path, then by position in the file.
func (b *Builder) collect(ctx context.Context, files map[string]RouteFile) ([][]*parser.Document, error) {
	paths := maputil.SortedKeys(files)
	results := make([][]*parser.Document, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if b.concurrency > 0 {
		g.SetLimit(b.concurrency)
	}
	for i, route := range paths {
		file := files[route]
		g.Go(func() error {
			docs, err := b.processFile(gctx, route, file)
			if err != nil {
				return err
			}
			results[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}
	return results, nil
}

// processFile extracts the fragments of one route file and validates them.
// Fragments are parsed concurrently; results are read back in source order.
func (b *Builder) processFile(ctx context.Context, route string, file RouteFile) ([]*parser.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := file.Name
	if name == "" {
		name = route
	}
	frags, err := b.extractor.ExtractSource(name, []byte(file.Source), route)
	if err != nil {
		return nil, err
	}

	pending := make([]<-chan parser.Result, len(frags))
	for i, f := range frags {
		pending[i] = b.parser.ParseAsync(ctx, route, f.Source(), f.Text)
	}
	docs := make([]*parser.Document, 0, len(frags))
	for _, ch := range pending {
		res := <-ch
		if res.Err != nil {
			return nil, res.Err
		}
		docs = append(docs, res.Document)
	}

	b.metrics.fileProcessed(len(docs))
	b.logger.Debug("builder: route processed", "route", route, "source", name, "fragments", len(docs))
	return docs, nil
}

// Build runs a Builder configured by opts.
//
// Example:
//
//	spec, err := builder.Build(ctx,
//	    map[string]string{"/api/pets": petsSource},
//	    map[string]any{"openapi": "3.0.0", "info": map[string]any{"title": "Pets", "version": "1.0"}},
//	    []string{"api/**/*.go"},
//	    builder.WithBasePath("/v1"),
//	)
func Build(ctx context.Context, routes map[string]string, definition map[string]any, globs []string, opts ...Option) (map[string]any, error) {
	return New(opts...).Build(ctx, routes, definition, globs)
}

// BuildFiles runs Builder.BuildFiles with a Builder configured by opts.
func BuildFiles(ctx context.Context, files map[string]RouteFile, definition map[string]any, globs []string, opts ...Option) (map[string]any, error) {
	return New(opts...).BuildFiles(ctx, files, definition, globs)
}

// ReadRouteFiles reads the Go file of every route in paths, a map from
// route path to file path.
func ReadRouteFiles(paths map[string]string) (map[string]RouteFile, error) {
	files := make(map[string]RouteFile, len(paths))
	for _, route := range maputil.SortedKeys(paths) {
		name := paths[route]
		src, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s for route %s: %w", name, route, err)
		}
		files[route] = RouteFile{Name: name, Source: string(src)}
	}
	return files, nil
}
