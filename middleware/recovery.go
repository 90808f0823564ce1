package middleware

import (
	"bufio"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"

	"github.com/0xalexb/hjarta-observability/emitter"
)

// recoveryWriter wraps http.ResponseWriter to track whether headers have been sent.
type recoveryWriter struct {
	http.ResponseWriter

	written bool
}

func (w *recoveryWriter) WriteHeader(code int) {
	if code == http.StatusSwitchingProtocols || code >= http.StatusOK {
		w.written = true
	}

	w.ResponseWriter.WriteHeader(code)
}

func (w *recoveryWriter) Write(b []byte) (int, error) {
	w.written = true

	return w.ResponseWriter.Write(b) //nolint:wrapcheck
}

// Flush implements http.Flusher by using http.ResponseController to traverse
// the full wrapper chain. This ensures flushing works even when intermediate
// wrappers (e.g. statusWriter) only expose Unwrap.
func (w *recoveryWriter) Flush() {
	rc := http.NewResponseController(w.ResponseWriter)

	err := rc.Flush()
	if err == nil {
		w.written = true
	}
}

// Hijack implements http.Hijacker by using http.ResponseController to traverse
// the full wrapper chain. This ensures hijacking works even when intermediate
// wrappers only expose Unwrap.
func (w *recoveryWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	rc := http.NewResponseController(w.ResponseWriter)

	conn, buf, err := rc.Hijack()
	if err == nil {
		w.written = true
	}

	return conn, buf, err //nolint:wrapcheck
}

// Unwrap returns the underlying ResponseWriter, allowing http.ResponseController
// to access interfaces like http.Flusher and http.Hijacker through the wrapper chain.
func (w *recoveryWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// PanicRecovered is the event payload emitted when a downstream handler panics.
type PanicRecovered struct {
	Panic           string `json:"panic"`
	Stack           string `json:"stack"`
	Method          string `json:"method"`
	Path            string `json:"path"`
	RequestID       string `json:"request_id,omitempty"`
	ResponseWritten bool   `json:"response_written,omitempty"`
}

// Recovery returns a middleware that recovers from panics in downstream handlers.
// It emits a PanicRecovered event at Error level through the factory's emitter
// and responds with 500 Internal Server Error. If the response has already been
// partially written, the event records that instead of attempting to write a
// 500 status. http.ErrAbortHandler panics are re-raised untouched.
func Recovery(factory *emitter.Factory) func(http.Handler) http.Handler {
	panics := emitter.For[PanicRecovered](factory)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recWriter := &recoveryWriter{ResponseWriter: w}

			defer func() { //nolint:contextcheck
				if rec := recover(); rec != nil {
					err, ok := rec.(error)
					if ok && err == http.ErrAbortHandler { //nolint:errorlint,err113
						panic(rec)
					}

					payload := PanicRecovered{
						Panic:           fmt.Sprintf("%v", rec),
						Stack:           string(debug.Stack()),
						Method:          r.Method,
						Path:            r.URL.Path,
						RequestID:       GetRequestID(r.Context()),
						ResponseWritten: recWriter.written,
					}

					if recWriter.written {
						panics.EmitLevel(r.Context(), slog.LevelError,
							"panic recovered after response was already written", payload)

						return
					}

					panics.EmitLevel(r.Context(), slog.LevelError, "panic recovered", payload)

					http.Error(recWriter, "Internal Server Error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(recWriter, r)
		})
	}
}
