package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskboard/riskboard/internal/config"
	"github.com/riskboard/riskboard/internal/dashboard"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Trigger sync runs on the risk platform.",
}

var syncRunCmd = &cobra.Command{
	Use:   "run <connector-id>",
	Short: "Start an incremental sync for one connector.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSyncCommand(cmd, args[0], false)
	},
}

var syncRetryCmd = &cobra.Command{
	Use:   "retry <connector-id>",
	Short: "Queue another sync run after a failure.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSyncCommand(cmd, args[0], true)
	},
}

func init() {
	syncCmd.AddCommand(syncRunCmd, syncRetryCmd)
}

func runSyncCommand(cmd *cobra.Command, connectorID string, retry bool) error {
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

	if retry {
		_, err = dash.RetrySync(ctx, connectorID)
	} else {
		_, err = dash.RunSync(ctx, connectorID)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return &exitError{code: 130, err: err, silent: true}
		}
		return errors.New(dashboard.UserMessage(err))
	}
	return nil
}
