// Package env provides an environment-variable settings binder for the config package.
//
// It binds a typed settings struct from prefixed environment variables using
// github.com/kelseyhightower/envconfig, then applies the same Defaulter and
// Validator contracts as config.Provider. The constructor-returning shape is
// Fx-friendly: register the result of Provider with fx.Provide and the
// container controls when binding happens.
//
// Usage:
//
//	type Settings struct {
//	    ServiceName string `envconfig:"SERVICE_NAME"`
//	}
//
//	fx.Provide(env.Provider[Settings]("MYAPP"))
package env
