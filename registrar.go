package observability

import (
	"errors"

	"github.com/0xalexb/hjarta-observability/emitter"

	"go.uber.org/fx"
)

// ErrNilSelector is returned when a nil settings selector is passed to ModuleFromSettings.
var ErrNilSelector = errors.New("settings selector must not be nil")

const moduleName = "observability"

// Module returns an Fx module that supplies the service identity and provides
// the emitter factory as a container singleton. Components obtain per-payload-type
// emitters from the factory via emitter.For; the factory itself is constructed
// once and shared.
//
// The service name is normalized on registration: empty or whitespace-only
// input falls back to emitter.FallbackServiceName. The identity affects every
// emitter created from the factory afterward, including ones requested from
// unrelated call sites.
func Module(serviceName string) fx.Option {
	return fx.Module(moduleName,
		fx.Supply(emitter.NewContext(serviceName)),
		fx.Provide(emitter.NewFactory),
	)
}

// ModuleFromSettings returns an Fx module that resolves a typed settings
// object *T from the container, extracts the service name with selector, and
// registers the same identity and emitter factory as Module. The settings
// object must be provided elsewhere, e.g. by config.Provider or the env
// binder; missing keys leave it at its defaults, and a selector returning an
// empty or whitespace-only name falls back to emitter.FallbackServiceName.
//
// A nil selector fails the application at startup.
func ModuleFromSettings[T any](selector func(*T) string) fx.Option {
	if selector == nil {
		return fx.Error(ErrNilSelector)
	}

	return fx.Module(moduleName,
		fx.Provide(func(settings *T) emitter.Context {
			return emitter.NewContext(selector(settings))
		}),
		fx.Provide(emitter.NewFactory),
	)
}
