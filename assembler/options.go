package assembler

import "github.com/erraggy/routedoc/parser"

// Option configures a SpecAssembler.
type Option func(*assembleConfig)

type assembleConfig struct {
	logger parser.Logger
	tags   []string
}

func applyOptions(opts ...Option) *assembleConfig {
	cfg := &assembleConfig{tags: DefaultTags}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger sets the logger for debug output.
func WithLogger(l parser.Logger) Option {
	return func(cfg *assembleConfig) {
		cfg.logger = l
	}
}

// WithTags sets the comment tags read from Go files. The default is
// DefaultTags.
func WithTags(tags ...string) Option {
	return func(cfg *assembleConfig) {
		cfg.tags = tags
	}
}
