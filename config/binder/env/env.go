package env

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-observability/config"

	"github.com/kelseyhightower/envconfig"
)

// Provider returns a constructor function that binds environment variables
// with the given prefix onto a new settings value of type T. Variables that
// are not set leave the corresponding fields at their zero values; defaults
// and validation then run via the config.Defaulter and config.Validator
// contracts, mirroring config.Provider.
func Provider[T any](prefix string) func() (*T, error) {
	return func() (*T, error) {
		target := new(T)

		err := envconfig.Process(prefix, target)
		if err != nil {
			return nil, fmt.Errorf("binding environment with prefix %q: %w", prefix, err)
		}

		targetDefaulter, isDefaulter := any(target).(config.Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("prefix", prefix))
			}
		}

		targetValidatable, isValidatable := any(target).(config.Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
