package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskboard/riskboard/internal/backend"
	"github.com/riskboard/riskboard/internal/config"
	"github.com/riskboard/riskboard/internal/dashboard"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Fetch the dashboard and render it in the terminal.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
}

func runStatus(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dash, _, err := buildDashboard(cfg, cmd)
	if err != nil {
		return err
	}

	if err := dash.RefreshAll(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return &exitError{code: 130, err: err, silent: true}
		}
		return errors.New(dashboard.UserMessage(err))
	}
	return nil
}

// buildDashboard wires a backend client and a terminal view for one CLI
// invocation.
func buildDashboard(cfg config.Config, cmd *cobra.Command) (*dashboard.Dashboard, *terminalView, error) {
	client, err := backend.New(cfg.BackendURL, backend.Identity{
		TenantID: cfg.TenantID,
		UserID:   cfg.UserID,
		Role:     cfg.UserRole,
	}, cfg.BackendTimeout)
	if err != nil {
		return nil, nil, err
	}
	view := newTerminalView(cmd.OutOrStdout())
	return dashboard.New(client, view, nil), view, nil
}
