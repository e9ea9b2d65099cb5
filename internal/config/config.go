package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr       = ":8080"
	defaultBackendTimeout = 30 * time.Second

	defaultTenantID = "demo-tenant"
	defaultUserID   = "demo-user"
	defaultUserRole = "owner"

	defaultVaultKVMount = "secret"
)

// Config holds everything the dashboard needs to reach the risk platform
// backend and to serve its own UI.
type Config struct {
	BackendURL     string
	HTTPAddr       string
	MetricsAddr    string
	BackendTimeout time.Duration

	TenantID string
	UserID   string
	UserRole string

	VaultAddr    string
	VaultToken   string
	VaultKVMount string
}

type LoadOptions struct {
	RequireBackendURL bool
}

func Load() (Config, error) {
	return LoadWithOptions(LoadOptions{RequireBackendURL: true})
}

func LoadWithOptions(opts LoadOptions) (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, err
		}
	}

	cfg := Config{
		BackendURL:     strings.TrimRight(strings.TrimSpace(os.Getenv("BACKEND_URL")), "/"),
		HTTPAddr:       getenvDefault("HTTP_ADDR", defaultHTTPAddr),
		MetricsAddr:    strings.TrimSpace(os.Getenv("METRICS_ADDR")),
		BackendTimeout: defaultBackendTimeout,
		TenantID:       getenvDefault("TENANT_ID", defaultTenantID),
		UserID:         getenvDefault("USER_ID", defaultUserID),
		UserRole:       getenvDefault("USER_ROLE", defaultUserRole),
		VaultAddr:      strings.TrimSpace(os.Getenv("VAULT_ADDR")),
		VaultToken:     strings.TrimSpace(os.Getenv("VAULT_TOKEN")),
		VaultKVMount:   getenvDefault("VAULT_KV_MOUNT", defaultVaultKVMount),
	}

	if v := os.Getenv("BACKEND_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.BackendTimeout = d
		}
	}

	if opts.RequireBackendURL && cfg.BackendURL == "" {
		return cfg, errors.New("BACKEND_URL is required")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
