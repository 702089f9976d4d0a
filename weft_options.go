package weft

import (
	"github.com/rs/zerolog"

	"github.com/weft-lang/weft/parser"
)

// Option describes a function used to configure a Weft compilation.
type Option func(*config)

type config struct {
	filename    string
	logger      zerolog.Logger
	withoutBind bool
}

func newConfig(options ...Option) *config {
	cfg := &config{logger: zerolog.Nop()}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

func (c *config) parserOpts() []parser.Option {
	var opts []parser.Option
	if c.filename != "" {
		opts = append(opts, parser.WithFilename(c.filename))
	}
	return opts
}

// WithFilename sets the filename for the source code being compiled.
// This is used for error messages and debug logs.
func WithFilename(filename string) Option {
	return func(cfg *config) {
		cfg.filename = filename
	}
}

// WithLogger sets the logger that receives the desugar pass's before
// and after debug dumps. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithoutBind skips the component existence-check stage. Useful for
// inspecting the rewrite output on its own, where check calls would be
// noise.
func WithoutBind() Option {
	return func(cfg *config) {
		cfg.withoutBind = true
	}
}
