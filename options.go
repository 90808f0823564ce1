package observability

import (
	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules          []fx.Option
	LogLevel         string
	ServiceName      string
	ExclusiveConsole bool

	serviceNameSet bool
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithServiceName sets the service name and wires the observability module
// into the application. Empty or whitespace-only names fall back to
// emitter.FallbackServiceName. Do not combine with a ModuleFromSettings
// module: the container rejects a second identity registration.
func WithServiceName(name string) Option {
	return func(opts *Options) {
		opts.ServiceName = name
		opts.serviceNameSet = true
	}
}

// WithExclusiveConsole makes the JSON console the sole logging output by
// registering it through logging.UseJSONConsole instead of
// logging.AddJSONConsole.
func WithExclusiveConsole() Option {
	return func(opts *Options) {
		opts.ExclusiveConsole = true
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}
