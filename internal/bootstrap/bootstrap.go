// Package bootstrap provides application lifecycle helpers.
package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// DefaultShutdownTimeout bounds the time given to shutdown hooks.
const DefaultShutdownTimeout = 10 * time.Second

// App manages application lifecycle with graceful shutdown support.
type App struct {
	mu              sync.Mutex
	hooks           []func(ctx context.Context) error
	shutdownTimeout time.Duration
}

// New creates a new App. A non-positive timeout uses DefaultShutdownTimeout.
func New(shutdownTimeout time.Duration) *App {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	return &App{shutdownTimeout: shutdownTimeout}
}

// AddShutdownHook registers a function to call during graceful shutdown.
// Hooks run in reverse order (LIFO). Thread-safe.
func (a *App) AddShutdownHook(fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, fn)
}

// Run executes run until it returns or the process receives SIGINT or SIGTERM.
// Shutdown hooks run in both cases. On a signal, Run then waits for run to
// return until the shutdown timeout expires.
// The result joins the error of run and the errors of the hooks.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	var runErr error
	finished := false
	select {
	case <-ctx.Done():
		slog.Default().Info("shutting down", "cause", context.Cause(ctx))
	case runErr = <-errCh:
		finished = true
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.WithoutCancel(ctx), a.shutdownTimeout)
	defer cancelShutdown()
	shutdownErr := a.shutdown(shutdownCtx)

	if !finished {
		select {
		case runErr = <-errCh:
		case <-shutdownCtx.Done():
			runErr = errors.New("timed out waiting for the application to stop")
		}
	}
	return errors.Join(runErr, shutdownErr)
}

func (a *App) shutdown(ctx context.Context) error {
	a.mu.Lock()
	hooks := append([]func(ctx context.Context) error(nil), a.hooks...)
	a.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
