// ABOUTME: CLI command for running the HTTP server: JSON API, HTML pages and metrics.
// ABOUTME: Shuts down gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/api"
	"github.com/harperreed/lifedash/internal/calendar"
	"github.com/harperreed/lifedash/internal/logging"
)

const shutdownTimeout = 10 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web dashboard and JSON API",
	Long: `Run the HTTP server.

ROUTES:

  /                   Today page (also /history, /reminders, /settings)
  /api/...            JSON API; POST, PUT and DELETE need X-API-Key
  /api/calendar/...   Google Calendar proxy (needs GOOGLE_CLIENT_ID/SECRET)
  /health             Liveness check
  /metrics            Prometheus metrics

CONFIGURATION:

  LIFEDASH_API_KEY       shared secret for writes (default dev-secret-key)
  LIFEDASH_LISTEN_ADDR   listen address (default :8000)
  LIFEDASH_RATE_LIMIT    write requests per minute per IP, 0 disables (default 60)
  LIFEDASH_CORS_ORIGINS  comma-separated allowed origins (default any)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.GetListenAddr()
		if serveAddr != "" {
			addr = serveAddr
		}
		if cfg.UsesDefaultAPIKey() {
			logging.Warn().Msg("using the default API key, set LIFEDASH_API_KEY before exposing this server")
		}

		cal := calendar.New(cfg.Calendar())
		handler := api.New(db, cal, api.Options{
			APIKey:      cfg.GetAPIKey(),
			CORSOrigins: cfg.CORSOrigins,
			RateLimit:   cfg.GetRateLimit(),
			Location:    time.Local,
		}).Handler()

		srv := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       120 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logging.Info().Str("addr", addr).Str("db", db.Path()).Msg("lifedash listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err, ok := <-errCh:
			if ok {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		logging.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
