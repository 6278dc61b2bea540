package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/unic/component"
	"github.com/kbukum/unic/logger"
)

// App represents one application invocation with uniform lifecycle management.
// The type parameter C is the config type, which must satisfy the Config interface.
//
// Example:
//
//	app, err := bootstrap.NewApp(cfg)
//	app.OnStop(shutdownTelemetry)
//	app.RunTask(ctx, func(ctx context.Context) error {
//	    return process(ctx, app.Cfg)
//	})
type App[C Config] struct {
	Name          string
	Version       string
	Cfg           C
	Components    *component.Registry
	Logger        *logger.Logger
	CorrelationID string

	gracefulTimeout time.Duration

	onStart []Hook
	onStop  []Hook
}

// NewApp creates a new application instance from a typed config.
// It applies defaults, validates the config, and initializes the logger.
// A validation failure is returned unwrapped.
func NewApp[C Config](cfg C, opts ...Option) (*App[C], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := resolveOptions(opts)
	app := &App[C]{
		Name:            o.name,
		Version:         o.version,
		Cfg:             cfg,
		CorrelationID:   o.correlationID,
		gracefulTimeout: 15 * time.Second,
	}
	if app.Name == "" {
		app.Name = "app"
	}
	if app.CorrelationID == "" {
		app.CorrelationID = uuid.NewString()
	}
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}

	// Logger: use custom if provided, otherwise init from config.
	if o.logger != nil {
		logger.SetGlobalLogger(o.logger)
	} else {
		logger.Init(cfg.LoggingConfig())
	}
	// Named loggers cached before this point derive from the old global.
	logger.Reset()
	app.Logger = logger.GetGlobalLogger().WithCorrelationID(app.CorrelationID)
	logger.Register(app.Name, app.Logger)

	// Created after the logger so the registry logs through it.
	app.Components = component.NewRegistry()
	return app, nil
}

// RegisterComponent adds a component to the application's registry.
// Components start in registration order.
func (a *App[C]) RegisterComponent(c component.Component) error {
	return a.Components.Register(c)
}

// ReadyCheck verifies that all registered components are healthy.
func (a *App[C]) ReadyCheck(ctx context.Context) error {
	results := a.Components.HealthAll(ctx)
	var unhealthy []string
	for _, h := range results {
		if h.Status != component.StatusHealthy {
			detail := h.Name + "=" + string(h.Status)
			if h.Message != "" {
				detail += "(" + h.Message + ")"
			}
			unhealthy = append(unhealthy, detail)
		}
	}
	if len(unhealthy) > 0 {
		return fmt.Errorf("unhealthy components: %v", unhealthy)
	}
	return nil
}

// RunTask executes a finite task with the full bootstrap lifecycle:
// start components → OnStart hooks → task → stop components → OnStop hooks.
//
// The task context carries the correlation id and is canceled on SIGINT or
// SIGTERM. Components that started are always stopped, even when startup
// fails. The first error wins: a startup error, then the task error, then
// any shutdown error.
func (a *App[C]) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	ctx = logger.ContextWithCorrelationID(ctx, a.CorrelationID)

	if err := a.startup(ctx); err != nil {
		if stopErr := a.stop(); stopErr != nil {
			a.Logger.Debug("Stop after failed startup reported errors", logger.ErrorFields("stop", stopErr))
		}
		return err
	}

	// Set up signal-based cancellation for the task
	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			a.Logger.Info("Received signal, canceling task", map[string]interface{}{
				"signal": sig.String(),
			})
			cancel()
		case <-taskCtx.Done():
		}
	}()

	taskErr := task(taskCtx)

	if stopErr := a.stop(); stopErr != nil && taskErr == nil {
		return stopErr
	}
	return taskErr
}

// startup starts components and runs OnStart hooks.
func (a *App[C]) startup(ctx context.Context) error {
	start := time.Now()

	a.Logger.Debug("Starting application", map[string]interface{}{
		"name":    a.Name,
		"version": a.Version,
	})

	if err := a.Components.StartAll(ctx); err != nil {
		return err
	}

	if err := runHooks(ctx, a.onStart); err != nil {
		return fmt.Errorf("onStart hook failed: %w", err)
	}

	if err := a.ReadyCheck(ctx); err != nil {
		a.Logger.Warn("Ready check reported issues", logger.ErrorFields("ready check", err))
	}

	a.Logger.Debug("Application started", logger.DurationFields("startup", time.Since(start)))
	return nil
}

// Shutdown stops components and runs OnStop hooks. Use when managing your
// own lifecycle instead of RunTask.
func (a *App[C]) Shutdown(_ context.Context) error {
	return a.stop()
}

// stop shuts down within the graceful timeout. Components are stopped
// first so a sink can flush; every OnStop hook still runs if that fails.
func (a *App[C]) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()

	var shutdownErr error

	if err := a.Components.StopAll(ctx); err != nil {
		a.Logger.Debug("Components stopped with errors", logger.ErrorFields("stop", err))
		shutdownErr = err
	}

	if err := runHooks(ctx, a.onStop); err != nil {
		a.Logger.Debug("OnStop hook error", logger.ErrorFields("stop hook", err))
		if shutdownErr == nil {
			shutdownErr = fmt.Errorf("onStop hook failed: %w", err)
		}
	}

	a.Logger.Debug("Application shutdown complete")
	return shutdownErr
}
