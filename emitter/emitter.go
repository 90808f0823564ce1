package emitter

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"sync"
)

// Standard field names for emitted event records.
const (
	ServiceKey  = "service"
	InstanceKey = "instance"
	EventKey    = "event"
	EventIDKey  = "event_id"
	DataKey     = "data"
)

// ErrNilLogger is returned when a nil logger is passed to NewFactory.
var ErrNilLogger = errors.New("logger must not be nil")

// Factory hands out emitters bound to a service identity.
// Emitters are memoized per payload type: requesting the same type twice
// yields the same instance, distinct types yield distinct instances.
type Factory struct {
	identity Context
	logger   *slog.Logger

	mu       sync.Mutex
	emitters map[reflect.Type]any
}

// NewFactory creates a Factory emitting through the given logger with the
// given service identity. The logger is required.
func NewFactory(identity Context, logger *slog.Logger) (*Factory, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}

	return &Factory{
		identity: identity,
		logger: logger.With(
			slog.String(ServiceKey, identity.ServiceName),
			slog.String(InstanceKey, identity.InstanceID.String()),
		),
		mu:       sync.Mutex{},
		emitters: make(map[reflect.Type]any),
	}, nil
}

// Identity returns the service identity the factory was built with.
func (f *Factory) Identity() Context {
	return f.identity
}

// Emitter forwards typed payloads into the structured logging pipeline.
// Obtain instances via For; the zero value is not usable.
type Emitter[T any] struct {
	logger    *slog.Logger
	eventName string
}

// For returns the singleton emitter for payload type T, creating it on first
// use. Safe for concurrent use.
func For[T any](f *Factory) *Emitter[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()

	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.emitters[key]
	if ok {
		return existing.(*Emitter[T]) //nolint:forcetypeassert // map is keyed by T
	}

	created := &Emitter[T]{
		logger:    f.logger,
		eventName: eventName(key),
	}
	f.emitters[key] = created

	return created
}

// Emit logs the payload as a structured event at Info level.
func (e *Emitter[T]) Emit(ctx context.Context, msg string, payload T) {
	e.EmitLevel(ctx, slog.LevelInfo, msg, payload)
}

// EmitLevel logs the payload as a structured event at the given level.
// Every record carries the event type name, a fresh event ID, and the payload
// under the "data" key, on top of the factory's service identity fields.
func (e *Emitter[T]) EmitLevel(ctx context.Context, level slog.Level, msg string, payload T) {
	e.logger.Log(ctx, level, msg,
		slog.String(EventKey, e.eventName),
		slog.String(EventIDKey, NewULID().String()),
		slog.Any(DataKey, payload),
	)
}

// eventName derives the event type name from the payload type.
// Named types use their short name; anonymous types fall back to the full
// type string.
func eventName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}

	return t.String()
}
