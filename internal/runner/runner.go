// Package runner ties HTTP servers to an errgroup so they start
// together and shut down gracefully when the group context is
// cancelled.
package runner

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// RunFiber serves the fiber app on addr and shuts it down when ctx is
// cancelled.
func RunFiber(ctx context.Context, group *errgroup.Group, app *fiber.App, addr string) {
	group.Go(func() error {
		if err := app.Listen(addr); err != nil {
			return fmt.Errorf("fiber server on %s failed: %w", addr, err)
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("fiber server shutdown failed: %w", err)
		}
		return nil
	})
}

// RunHandler serves a plain http.Handler on addr and shuts it down when
// ctx is cancelled.
func RunHandler(ctx context.Context, group *errgroup.Group, handler http.Handler, addr string) {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	group.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server on %s failed: %w", addr, err)
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		return nil
	})
}
