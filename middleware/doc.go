// Package middleware provides HTTP middleware that feeds the observability
// pipeline: request ID correlation scopes, typed request-completion events,
// and panic recovery events. The event middlewares take an *emitter.Factory
// and emit structured payloads through it; the request ID middleware attaches
// a logging scope so every record written while handling the request carries
// the correlation ID.
package middleware
