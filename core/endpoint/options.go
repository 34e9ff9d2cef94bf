package endpoint

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/intraproc/core/buffer"
)

type settings struct {
	logger      *slog.Logger
	deactivated bool
	bufCfg      *buffer.Config
}

func defaultSettings() settings {
	return settings{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures an Endpoint at construction.
type Option func(*settings)

// WithLogger configures structured logging for the endpoint.
// Logging is disabled by default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDeactivated constructs the endpoint with its lifecycle gate closed.
// Use for lifecycle-managed subscriptions that are activated explicitly.
func WithDeactivated() Option {
	return func(s *settings) {
		s.deactivated = true
	}
}

// WithBufferConfig bypasses the QoS-derived buffer configuration and uses
// an explicit one instead. The configuration is validated by the buffer.
func WithBufferConfig(cfg buffer.Config) Option {
	return func(s *settings) {
		s.bufCfg = &cfg
	}
}
