package secrets

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
	"go.uber.org/zap"

	"github.com/Yvelin-officiel/Quanban/internal/config"
)

// Client reads secrets from an Azure Key Vault. Uses managed identity when
// deployed, local credentials during development.
type Client struct {
	secrets *azsecrets.Client
}

func NewClient(vaultName string) (*Client, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build credential: %w", err)
	}

	vaultURL := fmt.Sprintf("https://%s.vault.azure.net", vaultName)
	sc, err := azsecrets.NewClient(vaultURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create key vault client: %w", err)
	}
	return &Client{secrets: sc}, nil
}

func (c *Client) GetSecret(ctx context.Context, name string) (string, error) {
	resp, err := c.secrets.GetSecret(ctx, name, "", nil)
	if err != nil {
		return "", fmt.Errorf("failed to get secret %q: %w", name, err)
	}
	if resp.Value == nil {
		return "", fmt.Errorf("secret %q has no value", name)
	}
	return *resp.Value, nil
}

// ResolveDBPassword returns the database password, preferring the vault when
// one is configured. Any vault failure falls back to the env value; callers
// deal with a wrong or empty password at connection time.
func ResolveDBPassword(ctx context.Context, cfg *config.Config, logger *zap.Logger) string {
	if cfg.KeyVaultName == "" {
		return cfg.DBPassword
	}

	client, err := NewClient(cfg.KeyVaultName)
	if err != nil {
		logger.Warn("key vault unavailable, using env password", zap.Error(err))
		return cfg.DBPassword
	}

	value, err := client.GetSecret(ctx, cfg.DBPasswordSecretName)
	if err != nil {
		logger.Warn("secret lookup failed, using env password",
			zap.String("secret", cfg.DBPasswordSecretName), zap.Error(err))
		return cfg.DBPassword
	}
	return value
}
