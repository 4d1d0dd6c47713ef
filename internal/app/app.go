// Package app wires configuration, logging, the emitter and the Lua host
// together for the nsemit command.
package app

import (
	"context"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dshills/nsemit/internal/config"
	"github.com/dshills/nsemit/internal/event"
	"github.com/dshills/nsemit/internal/logging"
	"github.com/dshills/nsemit/internal/script"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty means the XDG default.
	ConfigPath string

	// Verbosity raises the configured log level, one step per count.
	Verbosity int

	// LogFormat overrides the configured log format when non-empty.
	LogFormat string

	// Scripts are loaded after the configured script paths.
	Scripts []string

	// Output receives Lua print output. Defaults to os.Stdout.
	Output io.Writer

	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer
}

// Application holds one emitter and the Lua host bound to it.
type Application struct {
	config  config.Config
	logger  zerolog.Logger
	runID   string
	emitter *event.Emitter[any]
	host    *script.Host
	opts    Options
	closed  bool
}

// New creates an Application. Scripts are not run until LoadScripts.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:  opts,
		runID: uuid.NewString(),
	}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if app.opts.LogFormat != "" {
		cfg.Log.Format = app.opts.LogFormat
	}
	cfg.Log.Level = logging.LevelForVerbosity(cfg.Log.Level, app.opts.Verbosity)
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.config = cfg

	// 2. Logger
	logger := logging.Setup(logging.Options{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.Format == config.FormatJSON,
		Out:   app.opts.LogOutput,
	})
	app.logger = logger.With().Str("run", app.runID).Logger()

	// 3. Emitter
	app.emitter = event.New[any](event.WithLogger(app.logger))

	// 4. Lua host
	timeout, _ := cfg.ScriptTimeout()
	out := app.opts.Output
	if out == nil {
		out = os.Stdout
	}
	app.host = script.NewHost(app.emitter,
		script.WithTimeout(timeout),
		script.WithOutput(out),
		script.WithLogger(app.logger),
	)

	app.logger.Debug().Str("config", app.opts.ConfigPath).Msg("application initialized")
	return nil
}

// Config returns the resolved configuration.
func (app *Application) Config() config.Config {
	return app.config
}

// Emitter returns the application's emitter.
func (app *Application) Emitter() *event.Emitter[any] {
	return app.emitter
}

// Logger returns the application's logger.
func (app *Application) Logger() zerolog.Logger {
	return app.logger
}

// RunID identifies this application instance in logs.
func (app *Application) RunID() string {
	return app.runID
}

// ScriptPaths returns the configured scripts followed by Options.Scripts.
func (app *Application) ScriptPaths() []string {
	paths := make([]string, 0, len(app.config.Script.Paths)+len(app.opts.Scripts))
	paths = append(paths, app.config.Script.Paths...)
	paths = append(paths, app.opts.Scripts...)
	return paths
}

// LoadScripts runs every path from ScriptPaths.
func (app *Application) LoadScripts(ctx context.Context) error {
	return app.RunScripts(ctx, app.ScriptPaths()...)
}

// RunScripts runs the given Lua files in order, stopping at the first error.
func (app *Application) RunScripts(ctx context.Context, paths ...string) error {
	if app.closed {
		return ErrShutdown
	}

	for _, path := range paths {
		app.logger.Info().Str("script", path).Msg("running script")
		if err := app.host.RunFile(ctx, path); err != nil {
			return NewOperationError("run", path, err)
		}
	}
	return nil
}

// Trigger dispatches name with args and reports the outcome.
func (app *Application) Trigger(ctx context.Context, name string, args []any) (Report, error) {
	if app.closed {
		return Report{}, ErrShutdown
	}

	report := app.newReport(name)
	result, fired, err := app.host.Trigger(ctx, name, args...)
	if err != nil {
		return report, NewOperationError("trigger", name, err)
	}

	report.Fired = fired
	report.Result = result

	app.logger.Info().
		Str("name", name).
		Bool("fired", fired).
		Int("callbacks", report.Callbacks).
		Msg("triggered")

	return report, nil
}

// Shutdown releases the Lua host. It is safe to call more than once.
func (app *Application) Shutdown() {
	if app.closed {
		return
	}
	app.closed = true

	stats := app.emitter.Stats()
	app.logger.Debug().
		Uint64("triggers", stats.Triggers).
		Uint64("callbacks", stats.CallbacksInvoked).
		Uint64("errors", stats.CallbackErrors).
		Msg("shutting down")

	_ = app.host.Close()
}
