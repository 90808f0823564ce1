package logging

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// TimestampFormat is the fixed layout used for console record timestamps.
const TimestampFormat = "2006-01-02 15:04:05"

// JSONConsoleOptions are the fixed options applied when the JSON console
// provider is registered. They are not retained as queryable state afterward.
type JSONConsoleOptions struct {
	IncludeScopes   bool
	TimestampFormat string
}

// DefaultJSONConsoleOptions returns the options applied by AddJSONConsole and
// UseJSONConsole: scope enrichment on, fixed timestamp layout.
func DefaultJSONConsoleOptions() JSONConsoleOptions {
	return JSONConsoleOptions{
		IncludeScopes:   true,
		TimestampFormat: TimestampFormat,
	}
}

// JSONConsoleProvider constructs JSON handlers for console output.
type JSONConsoleProvider struct {
	options JSONConsoleOptions
}

// NewJSONConsoleProvider creates a provider with the default options.
func NewJSONConsoleProvider() *JSONConsoleProvider {
	return &JSONConsoleProvider{options: DefaultJSONConsoleOptions()}
}

// NewHandler creates a JSON handler writing to w at the configured level.
// Timestamps are rendered in the provider's fixed layout. With scopes
// enabled, the handler appends correlation attributes from the record context.
func (p *JSONConsoleProvider) NewHandler(w io.Writer, config LoggerConfig) slog.Handler {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       parseLevel(config.Level),
		ReplaceAttr: p.replaceAttr,
	})

	if p.options.IncludeScopes {
		return &scopeHandler{Handler: handler}
	}

	return handler
}

func (p *JSONConsoleProvider) replaceAttr(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) == 0 && attr.Key == slog.TimeKey {
		value, ok := attr.Value.Any().(time.Time)
		if ok {
			attr.Value = slog.StringValue(value.Format(p.options.TimestampFormat))
		}
	}

	return attr
}

// scopeHandler appends scope attributes carried in the record context to
// every record it handles.
type scopeHandler struct {
	slog.Handler
}

func (h *scopeHandler) Handle(ctx context.Context, record slog.Record) error {
	if attrs := ScopeAttrs(ctx); len(attrs) > 0 {
		record = record.Clone()
		record.AddAttrs(attrs...)
	}

	return h.Handler.Handle(ctx, record) //nolint:wrapcheck
}

func (h *scopeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &scopeHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *scopeHandler) WithGroup(name string) slog.Handler {
	return &scopeHandler{Handler: h.Handler.WithGroup(name)}
}
