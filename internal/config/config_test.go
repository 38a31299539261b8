package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DanielPopoola/plural-checkout/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("CHECKOUT_GATEWAY__CLIENT_ID", "client-1")
	t.Setenv("CHECKOUT_GATEWAY__CLIENT_SECRET", "secret-1")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, config.EnvDevelopment, cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, config.GatewayEnvUAT, cfg.Gateway.Environment)
	assert.Equal(t, config.UATGatewayURL, cfg.Gateway.ResolvedBaseURL())
	assert.True(t, cfg.Callback.Strict)
	assert.False(t, cfg.Callback.VerifyWithGateway)
	assert.Equal(t, "http://localhost:8080", cfg.CallbackBaseURL())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("CHECKOUT_SERVER__PORT", "3000")
	t.Setenv("CHECKOUT_GATEWAY__ENVIRONMENT", "PROD")
	t.Setenv("CHECKOUT_GATEWAY__TIMEOUT", "10s")
	t.Setenv("CHECKOUT_CALLBACK__STRICT", "false")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.CallbackBaseURL())
	assert.Equal(t, config.ProdGatewayURL, cfg.Gateway.ResolvedBaseURL())
	assert.Equal(t, 10*time.Second, cfg.Gateway.Timeout)
	assert.False(t, cfg.Callback.Strict)
}

func TestLoadConfig_MissingCredentials(t *testing.T) {
	t.Setenv("CHECKOUT_GATEWAY__CLIENT_ID", "")
	t.Setenv("CHECKOUT_GATEWAY__CLIENT_SECRET", "")

	_, err := config.LoadConfig()

	require.Error(t, err)
}

func TestLoadConfig_ProductionNeedsPublicURL(t *testing.T) {
	setRequired(t)
	t.Setenv("CHECKOUT_PRIMARY__ENV", "production")

	_, err := config.LoadConfig()
	require.Error(t, err)

	t.Setenv("CHECKOUT_SERVER__PUBLIC_BASE_URL", "https://shop.example/")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example", cfg.CallbackBaseURL())
}

func TestLoadConfig_File(t *testing.T) {
	setRequired(t)

	path := filepath.Join(t.TempDir(), "checkout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gateway:\n  merchant_id: m-42\n  base_url: http://gateway.local/api/\n"), 0o600))
	t.Setenv("CHECKOUT_CONFIG_FILE", path)

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "m-42", cfg.Gateway.MerchantID)
	assert.Equal(t, "http://gateway.local/api", cfg.Gateway.ResolvedBaseURL())
}
