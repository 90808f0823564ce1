package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.uber.org/multierr"
)

// ErrNilRegistry is returned when a nil registry is passed to a registration call.
var ErrNilRegistry = errors.New("registry must not be nil")

// Provider constructs a slog.Handler writing to w with the given config.
type Provider interface {
	NewHandler(w io.Writer, config LoggerConfig) slog.Handler
}

// Registry is an ordered collection of logging providers. Records written
// through its logger are delivered to every registered provider in order.
type Registry struct {
	providers []Provider
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{providers: nil}
}

// Add appends a provider. Duplicates are accepted: registering the same
// provider twice makes every record emit twice.
func (r *Registry) Add(provider Provider) {
	r.providers = append(r.providers, provider)
}

// Clear removes all registered providers.
func (r *Registry) Clear() {
	r.providers = nil
}

// Len returns the number of registered providers.
func (r *Registry) Len() int {
	return len(r.providers)
}

// Providers returns a copy of the registered providers in registration order.
func (r *Registry) Providers() []Provider {
	result := make([]Provider, len(r.providers))
	copy(result, r.providers)

	return result
}

// Handler builds a handler fanning records out to every registered provider.
// With no providers registered it discards all records.
func (r *Registry) Handler(w io.Writer, config LoggerConfig) slog.Handler {
	handlers := make([]slog.Handler, 0, len(r.providers))

	for _, provider := range r.providers {
		handlers = append(handlers, provider.NewHandler(w, config))
	}

	switch len(handlers) {
	case 0:
		return slog.DiscardHandler
	case 1:
		return handlers[0]
	default:
		return fanoutHandler(handlers)
	}
}

// Logger builds a slog.Logger over Handler.
func (r *Registry) Logger(w io.Writer, config LoggerConfig) *slog.Logger {
	return slog.New(r.Handler(w, config))
}

// AddJSONConsole registers the JSON console provider, preserving any
// providers already registered. Returns the registry for chaining.
func AddJSONConsole(registry *Registry) (*Registry, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}

	registry.Add(NewJSONConsoleProvider())

	return registry, nil
}

// UseJSONConsole clears all registered providers, then registers the JSON
// console provider as the sole output. Returns the registry for chaining.
func UseJSONConsole(registry *Registry) (*Registry, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}

	registry.Clear()
	registry.Add(NewJSONConsoleProvider())

	return registry, nil
}

// fanoutHandler delivers each record to every underlying handler.
type fanoutHandler []slog.Handler

func (h fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h {
		if handler.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (h fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var err error

	for _, handler := range h {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}

		err = multierr.Append(err, handler.Handle(ctx, record.Clone()))
	}

	return err
}

func (h fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make(fanoutHandler, len(h))

	for i, handler := range h {
		handlers[i] = handler.WithAttrs(attrs)
	}

	return handlers
}

func (h fanoutHandler) WithGroup(name string) slog.Handler {
	handlers := make(fanoutHandler, len(h))

	for i, handler := range h {
		handlers[i] = handler.WithGroup(name)
	}

	return handlers
}
