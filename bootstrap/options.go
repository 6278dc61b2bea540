package bootstrap

import (
	"time"

	"github.com/kbukum/unic/logger"
)

// Option configures the App during creation.
// Options are non-generic so they can be used with any config type.
type Option func(*appOptions)

// appOptions collects all option values before applying to App.
type appOptions struct {
	name            string
	version         string
	logger          *logger.Logger
	correlationID   string
	gracefulTimeout *time.Duration
}

// resolveOptions applies all options and returns the collected values.
func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithName sets the application name used in logs.
func WithName(name string) Option {
	return func(o *appOptions) {
		o.name = name
	}
}

// WithVersion sets the version reported at startup.
func WithVersion(v string) Option {
	return func(o *appOptions) {
		o.version = v
	}
}

// WithLogger sets a custom logger for the application.
// If not set, the logger is initialized from the config's logging section.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) {
		o.logger = l
	}
}

// WithCorrelationID fixes the invocation id instead of generating one.
func WithCorrelationID(id string) Option {
	return func(o *appOptions) {
		o.correlationID = id
	}
}

// WithGracefulTimeout sets the maximum duration for shutdown.
func WithGracefulTimeout(d time.Duration) Option {
	return func(o *appOptions) {
		o.gracefulTimeout = &d
	}
}
