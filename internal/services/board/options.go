package board

import "log/slog"

// Option is a functional option for configuring the board service
type Option func(*serviceConfig)

// serviceConfig holds the configuration for service initialization
type serviceConfig struct {
	logger *slog.Logger
	newID  func() string
	strict bool
}

// WithLogger sets the logger used for persistence diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *serviceConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithIDGenerator replaces the UUID generator used for new cards
func WithIDGenerator(fn func() string) Option {
	return func(cfg *serviceConfig) {
		if fn != nil {
			cfg.newID = fn
		}
	}
}

// WithStrictPersistence makes storage failures returned to the caller
// instead of logged and ignored. The CLI uses this; the TUI does not.
func WithStrictPersistence() Option {
	return func(cfg *serviceConfig) {
		cfg.strict = true
	}
}
