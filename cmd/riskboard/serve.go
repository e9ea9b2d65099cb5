package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskboard/riskboard/internal/backend"
	"github.com/riskboard/riskboard/internal/config"
	httpapp "github.com/riskboard/riskboard/internal/http"
	"github.com/riskboard/riskboard/internal/logging"
	"github.com/riskboard/riskboard/internal/metrics"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:         "serve",
	Short:       "Run the dashboard HTTP server.",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationStructuredLog: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.BootstrapFromEnv(logging.BootstrapOptions{Command: "riskboard serve"})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := backend.New(cfg.BackendURL, backend.Identity{
		TenantID: cfg.TenantID,
		UserID:   cfg.UserID,
		Role:     cfg.UserRole,
	}, cfg.BackendTimeout)
	if err != nil {
		return err
	}

	srv, err := httpapp.NewEchoServer(cfg, client, logger)
	if err != nil {
		return err
	}

	// A nil error channel (metrics disabled) just never fires in the select.
	_, metricsErrCh := metrics.StartServer(ctx, cfg.MetricsAddr)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr, "backend", cfg.BackendURL)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-metricsErrCh:
		return err
	}
}
