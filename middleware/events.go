package middleware

import (
	"bufio"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/0xalexb/hjarta-observability/emitter"
)

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter

	status   int
	written  bool
	hijacked bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.written {
		w.status = code
		w.written = true

		w.ResponseWriter.WriteHeader(code)
	}
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.status = http.StatusOK
		w.written = true
	}

	return w.ResponseWriter.Write(b) //nolint:wrapcheck
}

// Hijack implements http.Hijacker by delegating to the underlying ResponseWriter
// via http.ResponseController. This allows WebSocket upgrades and other connection
// hijacking to work through the event middleware, including code that performs
// direct w.(http.Hijacker) type assertions.
func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	rc := http.NewResponseController(w.ResponseWriter)

	conn, buf, err := rc.Hijack()
	if err == nil {
		w.hijacked = true
	}

	return conn, buf, err //nolint:wrapcheck
}

// Flush delegates to the underlying ResponseWriter via http.ResponseController,
// allowing streaming responses to work through the event middleware.
func (w *statusWriter) Flush() {
	rc := http.NewResponseController(w.ResponseWriter)
	err := rc.Flush()

	if err == nil && !w.written {
		w.status = http.StatusOK
		w.written = true
	}
}

// Unwrap returns the underlying ResponseWriter, allowing http.ResponseController
// to access interfaces like http.Flusher and http.Hijacker through the wrapper chain.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// RequestCompleted is the event payload emitted for every completed HTTP request.
type RequestCompleted struct {
	Method    string        `json:"method"`
	Path      string        `json:"path"`
	Status    int           `json:"status"`
	Duration  time.Duration `json:"duration"`
	RequestID string        `json:"request_id,omitempty"`
}

// RequestEvents returns a middleware that emits a RequestCompleted event for
// each handled request through the factory's emitter. The event level is Info
// for 2xx/3xx, Warn for 4xx, Error for 5xx.
func RequestEvents(factory *emitter.Factory) func(http.Handler) http.Handler {
	requests := emitter.For[RequestCompleted](factory)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			sw := &statusWriter{ResponseWriter: w}

			next.ServeHTTP(sw, r)

			if sw.status == 0 {
				if sw.hijacked {
					sw.status = http.StatusSwitchingProtocols
				} else {
					sw.status = http.StatusOK
				}
			}

			payload := RequestCompleted{
				Method:    r.Method,
				Path:      r.URL.Path,
				Status:    sw.status,
				Duration:  time.Since(start),
				RequestID: GetRequestID(r.Context()),
			}

			var level slog.Level

			switch {
			case sw.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case sw.status >= http.StatusBadRequest:
				level = slog.LevelWarn
			default:
				level = slog.LevelInfo
			}

			requests.EmitLevel(r.Context(), level, "http request", payload)
		})
	}
}
