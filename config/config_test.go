package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/shahrazad-assistant/internal/domain/constants"
)

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ALLOW_EMPTY_SECRETS", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("LOW_STOCK_THRESHOLD", "")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("SEED_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, float64(constants.DefaultLowStockThreshold), cfg.LowStockThreshold)
	assert.Equal(t, constants.DefaultMaxContextSize, cfg.MaxContextSize)
	assert.Empty(t, cfg.PostgresDSN)
}

func TestLoadAllowEmptySecrets(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ALLOW_EMPTY_SECRETS", "true")
	t.Setenv("LOW_STOCK_THRESHOLD", "7.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.AllowEmptySecrets)
	assert.Equal(t, 7.5, cfg.LowStockThreshold)
}

func TestPostgresDSNFromParts(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "shop")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "records")
	t.Setenv("DB_SSLMODE", "")

	dsn := postgresDSNFromEnv()
	assert.Equal(t, "host=db.internal port=5432 user=shop password=secret dbname=records sslmode=disable", dsn)

	t.Setenv("POSTGRES_DSN", "postgres://x:y@z/db")
	assert.Equal(t, "postgres://x:y@z/db", postgresDSNFromEnv())
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("FLAG", "yes")
	assert.True(t, getEnvBool("FLAG", false))

	t.Setenv("FLAG", "off")
	assert.False(t, getEnvBool("FLAG", true))

	t.Setenv("FLAG", "nonsense")
	assert.True(t, getEnvBool("FLAG", true))
}
