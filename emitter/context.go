package emitter

import (
	"crypto/rand"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
)

// FallbackServiceName is used when no usable service name is supplied.
const FallbackServiceName = "UnknownService"

// Context is the service identity attached to every emitted event.
// It is constructed once at startup and injected into the Factory.
type Context struct {
	ServiceName string
	InstanceID  ulid.ULID
}

// NewContext creates a Context with the normalized service name and a fresh
// instance ID. Empty or whitespace-only names fall back to FallbackServiceName.
func NewContext(serviceName string) Context {
	return Context{
		ServiceName: NormalizeServiceName(serviceName),
		InstanceID:  NewULID(),
	}
}

// NormalizeServiceName returns the name unchanged when it contains any
// non-whitespace character, and FallbackServiceName otherwise.
func NormalizeServiceName(name string) string {
	if strings.TrimSpace(name) == "" {
		return FallbackServiceName
	}

	return name
}

//nolint:gochecknoglobals // single process-wide monotonic entropy source.
var generateULID = monotonicGenerator()

// monotonicGenerator returns a function that generates ULIDs in strictly
// increasing order. The returned function is safe for concurrent use.
func monotonicGenerator() func() ulid.ULID {
	var mu sync.Mutex

	entropy := ulid.Monotonic(rand.Reader, 0)

	return func() ulid.ULID {
		mu.Lock()
		defer mu.Unlock()

		return ulid.MustNew(ulid.Now(), entropy)
	}
}

// NewULID generates a unique, lexicographically sortable ID.
// Used for instance, event, and request identifiers.
func NewULID() ulid.ULID {
	return generateULID()
}
