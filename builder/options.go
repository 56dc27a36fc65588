package builder

import (
	"github.com/erraggy/routedoc/assembler"
	"github.com/erraggy/routedoc/parser"
)

// Option configures a Builder.
type Option func(*buildConfig)

type buildConfig struct {
	logger      parser.Logger
	assembler   assembler.Assembler
	basePath    string
	basePathSet bool
	metrics     *Metrics
	concurrency int
}

func applyOptions(opts ...Option) *buildConfig {
	cfg := &buildConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger sets the logger used by the builder and the parser, extractor
// and merge engine it drives.
func WithLogger(l parser.Logger) Option {
	return func(cfg *buildConfig) {
		cfg.logger = l
	}
}

// WithAssembler replaces the default assembler.SpecAssembler.
func WithAssembler(a assembler.Assembler) Option {
	return func(cfg *buildConfig) {
		cfg.assembler = a
	}
}

// WithBasePath sets the deployment base path advertised under servers.
// Without this option the ROUTEDOC_BASE_PATH environment variable is used.
// An empty path disables the servers entry.
func WithBasePath(path string) Option {
	return func(cfg *buildConfig) {
		cfg.basePath = path
		cfg.basePathSet = true
	}
}

// WithMetrics records build metrics. See NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(cfg *buildConfig) {
		cfg.metrics = m
	}
}

// WithConcurrency caps the number of route files processed at once.
// Zero or a negative value means no limit (default).
func WithConcurrency(n int) Option {
	return func(cfg *buildConfig) {
		cfg.concurrency = n
	}
}
