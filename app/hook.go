package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// shutdown drains the HTTP server and then closes the event bus and database.
func (app *App) shutdown(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("server forced to shutdown: %w", err))
	}
	if err := app.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		app.Obs.Logger.Info("Application shut down gracefully")
	}
	return errors.Join(errs...)
}
