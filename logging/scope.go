package logging

import (
	"context"
	"log/slog"
)

type scopeKeyType struct{}

var scopeKey = scopeKeyType{} //nolint:gochecknoglobals

// WithScope returns a context carrying the given attributes as a logging
// scope. Scopes nest: attributes from outer scopes are preserved and appear
// before inner ones. Scope attributes are appended to every record written
// through a scope-enabled handler with this context.
func WithScope(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}

	existing := ScopeAttrs(ctx)

	merged := make([]slog.Attr, 0, len(existing)+len(attrs))
	merged = append(merged, existing...)
	merged = append(merged, attrs...)

	return context.WithValue(ctx, scopeKey, merged)
}

// ScopeAttrs returns the scope attributes carried by the context, or nil.
func ScopeAttrs(ctx context.Context) []slog.Attr {
	attrs, ok := ctx.Value(scopeKey).([]slog.Attr)
	if !ok {
		return nil
	}

	return attrs
}
