package store

import (
	"log/slog"

	"github.com/aretw0/lattice/internal/logging"
	"github.com/aretw0/lattice/pkg/domain"
)

type options struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// Option configures a Store.
type Option func(*options)

// WithLogger sets the diagnostic sink.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

func defaultOptions() options {
	return options{
		logger: logging.NewNop(),
	}
}
