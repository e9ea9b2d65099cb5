package main

import (
	"bufio"
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/riskboard/riskboard/internal/config"
	"github.com/riskboard/riskboard/internal/credstore"
	"github.com/riskboard/riskboard/internal/dashboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var connectorsCmd = &cobra.Command{
	Use:   "connectors",
	Short: "Manage supplier connectors on the risk platform.",
}

var connectorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered connectors.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConnectorsList(cmd)
	},
}

var (
	addSupplierName string
	addAPIKey       string
	addAPIKeyStdin  bool
	addVaultPath    string
)

var connectorsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register an API-key connector for a supplier.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConnectorsAdd(cmd)
	},
}

func init() {
	connectorsAddCmd.Flags().StringVar(&addSupplierName, "supplier", "", "supplier name (required)")
	connectorsAddCmd.Flags().StringVar(&addAPIKey, "api-key", "", "supplier API key")
	connectorsAddCmd.Flags().BoolVar(&addAPIKeyStdin, "api-key-stdin", false, "read the API key from stdin")
	connectorsAddCmd.Flags().StringVar(&addVaultPath, "vault-path", "", "read the API key from this Vault KV v2 path")
	connectorsCmd.AddCommand(connectorsListCmd, connectorsAddCmd)
}

func runConnectorsList(cmd *cobra.Command) error {
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
	if err := dash.LoadConnectors(ctx); err != nil {
		return errors.New(dashboard.UserMessage(err))
	}
	return nil
}

func runConnectorsAdd(cmd *cobra.Command) error {
	supplier := strings.TrimSpace(addSupplierName)
	if supplier == "" {
		return errors.New("--supplier is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	apiKey, err := resolveAPIKey(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	dash, _, err := buildDashboard(cfg, cmd)
	if err != nil {
		return err
	}
	if err := dash.RegisterConnector(ctx, supplier, apiKey); err != nil {
		return errors.New(dashboard.UserMessage(err))
	}
	cmd.Printf("connector registered for %s (poll every %d minutes)\n", supplier, dashboard.DefaultPollIntervalMinutes)
	return nil
}

// resolveAPIKey picks the credential source: Vault path, flag, stdin, or an
// interactive prompt when attached to a terminal.
func resolveAPIKey(ctx context.Context, cmd *cobra.Command, cfg config.Config) (string, error) {
	if path := strings.TrimSpace(addVaultPath); path != "" {
		store, err := credstore.NewVaultStore(credstore.Options{
			Address: cfg.VaultAddr,
			Token:   cfg.VaultToken,
			KVMount: cfg.VaultKVMount,
		})
		if err != nil {
			return "", err
		}
		return store.SupplierAPIKey(ctx, path)
	}

	if addAPIKeyStdin {
		return readAPIKeyStdin()
	}

	if addAPIKey != "" {
		return addAPIKey, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("no API key provided (use --api-key, --api-key-stdin, or --vault-path)")
	}

	cmd.Print("API key: ")
	key, err := term.ReadPassword(int(os.Stdin.Fd()))
	cmd.Println()
	if err != nil {
		return "", err
	}
	if len(key) == 0 {
		return "", errors.New("API key is empty")
	}
	return string(key), nil
}

func readAPIKeyStdin() (string, error) {
	in, err := os.Stdin.Stat()
	if err != nil {
		return "", err
	}
	if in.Mode()&os.ModeCharDevice != 0 {
		return "", errors.New("stdin is a terminal; use --api-key or omit to prompt")
	}

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", errors.New("API key is empty")
	}
	key := strings.TrimSpace(scanner.Text())
	if key == "" {
		return "", errors.New("API key is empty")
	}
	return key, nil
}
