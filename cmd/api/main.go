package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dog-profiles/internal/adapters/sheets"
	"dog-profiles/internal/adapters/storage/memory"
	"dog-profiles/internal/config"
	"dog-profiles/internal/platform/logger"
	"dog-profiles/internal/ports/rows"
	"dog-profiles/internal/router"
)

// @title        Dog Profiles API
// @version      1.0
// @description  API de sólo lectura sobre los perfiles de perros cargados en la planilla del formulario.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Sin SPREADSHEET_ID (o con valores inválidos) no arrancamos.
		if rows.IsFatal(err) {
			log.Fatalf("config error (%s): %v", rows.KindOf(err), err)
		}
		log.Fatalf("startup error: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		App:    cfg.Log.App,
	})
	defer func() { _ = lg.Sync() }()

	source := sheets.NewClient(sheets.Config{
		SpreadsheetID:   cfg.SpreadsheetID,
		CredentialsJSON: cfg.ServiceKeyJSON,
		Timeout:         cfg.SheetsTimeout,
	}, lg)

	cached := memory.NewRowCache(source, cfg.CacheTTL, memory.WithLogger(lg.With(map[string]any{"component": "rows_cache"})))

	r := router.NewRouter(router.Options{
		Source: cached,
		Logger: lg,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		// Un fetch a Sheets son dos requests (metadata + values) acotados por SheetsTimeout.
		WriteTimeout: 2*cfg.SheetsTimeout + 5*time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		lg.Info("starting server", map[string]any{
			"addr":      cfg.Addr(),
			"cache_ttl": cfg.CacheTTL.String(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			lg.Error("server error", map[string]any{"error": err})
			_ = lg.Sync()
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	lg.Info("shutting down", nil)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("shutdown error", map[string]any{"error": err})
	}
}
