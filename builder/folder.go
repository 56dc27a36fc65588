package builder

import (
	"context"

	"github.com/erraggy/routedoc/internal/config"
	"github.com/erraggy/routedoc/internal/routes"
)

// BuildFromFolder discovers and reads the route files of cfg.APIFolder and
// builds the specification with cfg's definition and globs. A base path in
// cfg takes effect unless opts set one.
func BuildFromFolder(ctx context.Context, cfg *config.Config, opts ...Option) (map[string]any, error) {
	discovered, err := routes.Discover(cfg.APIFolder)
	if err != nil {
		return nil, err
	}
	files, err := ReadRouteFiles(discovered)
	if err != nil {
		return nil, err
	}
	definition, err := cfg.ResolveDefinition()
	if err != nil {
		return nil, err
	}
	if cfg.BasePath != "" {
		opts = append([]Option{WithBasePath(cfg.BasePath)}, opts...)
	}
	return New(opts...).BuildFiles(ctx, files, definition, cfg.Globs())
}
