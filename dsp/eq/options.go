package eq

import (
	"io"
	"log/slog"
)

// PoolConfig holds the construction settings of a Pool.
type PoolConfig struct {
	// CapacityHint is the number of states the storage reserves room for
	// when it is (re)built.
	CapacityHint int

	// MaxHandles caps the number of distinct states. Zero means unlimited.
	MaxHandles int

	// Logger receives debug records for storage lifecycle events.
	Logger *slog.Logger
}

// PoolOption mutates a PoolConfig.
type PoolOption func(*PoolConfig)

// DefaultPoolConfig returns the settings used when no options are given.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		CapacityHint: 8,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithCapacityHint sets the initial storage capacity.
func WithCapacityHint(n int) PoolOption {
	return func(cfg *PoolConfig) {
		if n > 0 {
			cfg.CapacityHint = n
		}
	}
}

// WithMaxHandles limits how many states the pool may allocate. Acquire
// returns ErrPoolExhausted beyond that.
func WithMaxHandles(n int) PoolOption {
	return func(cfg *PoolConfig) {
		if n >= 0 {
			cfg.MaxHandles = n
		}
	}
}

// WithLogger routes lifecycle debug records to l.
func WithLogger(l *slog.Logger) PoolOption {
	return func(cfg *PoolConfig) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// ApplyPoolOptions applies zero or more options to the default config.
func ApplyPoolOptions(opts ...PoolOption) PoolConfig {
	cfg := DefaultPoolConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
