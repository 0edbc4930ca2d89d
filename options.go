package memo

import "github.com/rs/zerolog"

// Option mutates Config when constructing a memoizer.
type Option func(Config) Config

// WithName sets the name reported to observers and logs.
func WithName(name string) Option {
	return func(cfg Config) Config {
		cfg.Name = name
		return cfg
	}
}

// WithObserver attaches an observer to receive operation events.
func WithObserver(o Observer) Option {
	return func(cfg Config) Config {
		cfg.Observer = o
		return cfg
	}
}

// WithLogger sets the zerolog logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg Config) Config {
		cfg.Logger = &logger
		return cfg
	}
}

func buildConfig(opts []Option) Config {
	var cfg Config
	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}
	return cfg.withDefaults()
}
