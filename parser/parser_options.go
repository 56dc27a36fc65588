package parser

// Option is a function that configures a Parser
type Option func(*parseConfig)

// parseConfig holds configuration for a Parser
type parseConfig struct {
	logger Logger
}

// applyOptions applies option functions over the defaults
func applyOptions(opts ...Option) *parseConfig {
	cfg := &parseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger sets the structured logger for debug output.
// A nil logger disables logging.
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) {
		cfg.logger = l
	}
}
