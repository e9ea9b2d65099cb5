// Package credstore resolves supplier API keys from an external secret
// store so operators do not have to paste credentials on the command line.
package credstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	vaultapi "github.com/hashicorp/vault/api"
)

const defaultKVMount = "secret"

// Options configures the Vault-backed store.
type Options struct {
	Address string
	Token   string
	KVMount string
}

// VaultStore reads supplier API keys from a Vault KV v2 mount.
type VaultStore struct {
	client *vaultapi.Client
	mount  string
}

// NewVaultStore creates a store for the given Vault server. Address and
// token are required.
func NewVaultStore(opts Options) (*VaultStore, error) {
	address := strings.TrimSpace(opts.Address)
	token := strings.TrimSpace(opts.Token)
	mount := strings.Trim(strings.TrimSpace(opts.KVMount), "/")

	if address == "" {
		return nil, errors.New("vault address is required")
	}
	if token == "" {
		return nil, errors.New("vault token is required")
	}
	if mount == "" {
		mount = defaultKVMount
	}

	cfg := vaultapi.DefaultConfig()
	cfg.Address = address
	client, err := vaultapi.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	client.SetToken(token)

	return &VaultStore{client: client, mount: mount}, nil
}

// SupplierAPIKey reads the secret at path and returns its apiKey field.
func (s *VaultStore) SupplierAPIKey(ctx context.Context, path string) (string, error) {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return "", errors.New("vault secret path is required")
	}

	secret, err := s.client.KVv2(s.mount).Get(ctx, path)
	if err != nil {
		return "", fmt.Errorf("read %s/%s: %w", s.mount, path, err)
	}

	raw, ok := secret.Data["apiKey"]
	if !ok {
		return "", fmt.Errorf("secret %s/%s has no apiKey field", s.mount, path)
	}
	key, ok := raw.(string)
	if !ok || strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("secret %s/%s apiKey is empty", s.mount, path)
	}
	return key, nil
}
