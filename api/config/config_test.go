package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbeaudouin05/stripe-facade/api/services/stripe/app"
)

// isolate runs the test from an empty temp dir so no stray .env is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, k := range []string{"STRIPE_SECRET_KEY", "CUSTOMER_DESCRIPTION", "FIXED_PLAN_ID", "RESTRICTED_UPDATES", "INTEGRATION_BASE_URL", "PORT", "GRPC_PORT"} {
		t.Setenv(k, "")
	}
	return dir
}

func TestLoadConfig_MissingSecretKey(t *testing.T) {
	isolate(t)
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Stripe Secret Key")
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "sk_test_123", cfg.StripeSecretKey)
	assert.Equal(t, app.DefaultCustomerDescription, cfg.CustomerDescription)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "50051", cfg.GRPCPort)
	assert.False(t, cfg.RestrictedUpdates)
	assert.Len(t, cfg.ServiceOptions(), 1)
}

func TestLoadConfig_Overrides(t *testing.T) {
	isolate(t)
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("FIXED_PLAN_ID", "plan_pro")
	t.Setenv("RESTRICTED_UPDATES", "true")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "plan_pro", cfg.FixedPlanID)
	assert.True(t, cfg.RestrictedUpdates)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Len(t, cfg.ServiceOptions(), 3)
}

func TestLoadConfig_InvalidBool(t *testing.T) {
	isolate(t)
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("RESTRICTED_UPDATES", "sometimes")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_ReadsDotEnvFromParent(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.Unsetenv("STRIPE_SECRET_KEY"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STRIPE_SECRET_KEY=sk_test_env\n"), 0o600))
	child := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(child, 0o755))
	require.NoError(t, os.Chdir(child))
	t.Cleanup(func() { _ = os.Unsetenv("STRIPE_SECRET_KEY") })

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "sk_test_env", cfg.StripeSecretKey)
}
