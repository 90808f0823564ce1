package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-observability/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is a configured starting point for an application using Fx, with JSON
// console logging and the emitter factory pre-wired.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *Options) *fx.App {
	registry := newConsoleRegistry(options.ExclusiveConsole)
	logger := registry.Logger(os.Stderr, logging.LoggerConfig{Level: options.LogLevel})
	slog.SetDefault(logger)

	appOptions := []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logging.LoggerConfig{Level: options.LogLevel}),
		fx.Supply(logger),
	}

	if options.serviceNameSet {
		appOptions = append(appOptions, Module(options.ServiceName))
	}

	appOptions = append(appOptions, fx.Options(options.Modules...))

	return fx.New(appOptions...)
}

func newConsoleRegistry(exclusive bool) *logging.Registry {
	registry := logging.NewRegistry()

	// the registry is freshly constructed, so neither call can fail
	if exclusive {
		registry, _ = logging.UseJSONConsole(registry)
	} else {
		registry, _ = logging.AddJSONConsole(registry)
	}

	return registry
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
