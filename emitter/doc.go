// Package emitter provides typed structured-logging emitters bound to a
// service identity. A Factory hands out one Emitter per payload type; every
// emitted record carries the service name, the app instance ID, and a fresh
// event ID, so log events from unrelated call sites correlate to the same
// running service.
//
// The service identity is an explicit Context value constructed once at
// startup and injected into the Factory, not a hidden process global. Tests
// can therefore build isolated factories without cross-test leakage.
package emitter
