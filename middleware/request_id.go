package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/0xalexb/hjarta-observability/emitter"
	"github.com/0xalexb/hjarta-observability/logging"
)

const (
	// RequestIDHeader is the HTTP header used for request IDs.
	RequestIDHeader = "X-Request-ID"

	// maxRequestIDLength is the maximum allowed length for an externally-provided request ID.
	maxRequestIDLength = 256
)

type requestIDKeyType struct{}

var requestIDKey = requestIDKeyType{} //nolint:gochecknoglobals

// GetRequestID retrieves the request ID from the context.
func GetRequestID(ctx context.Context) string {
	val, ok := ctx.Value(requestIDKey).(string)
	if !ok {
		return ""
	}

	return val
}

// isPrintableASCII reports whether s contains only printable ASCII characters (0x20-0x7E).
func isPrintableASCII(s string) bool {
	for i := range len(s) {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}

	return true
}

// RequestID is a middleware that assigns a unique ULID request ID to each request.
// If the X-Request-ID header is already present and well-formed, it reuses
// that value. The ID is stored in the request context, registered as a logging
// scope attribute (so scope-enabled handlers stamp it on every record written
// while handling the request), and set as the X-Request-ID response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLength || !isPrintableASCII(id) {
				id = emitter.NewULID().String()
			}

			r.Header.Set(RequestIDHeader, id)
			w.Header().Set(RequestIDHeader, id)

			ctx := context.WithValue(r.Context(), requestIDKey, id)
			ctx = logging.WithScope(ctx, slog.String("request_id", id))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
