// Package logging configures JSON console log output for the application.
//
// Output is assembled from a Registry of providers, each of which constructs
// a log/slog handler. AddJSONConsole appends the JSON console provider to a
// registry without touching existing providers; UseJSONConsole clears the
// registry first so the JSON console is the sole output. Repeated Add calls
// are deliberately additive: each registered provider writes its own copy of
// every record.
//
// The JSON console provider renders timestamps in a fixed layout and, with
// scope enrichment enabled, appends correlation attributes carried in the
// request context (see WithScope).
package logging
