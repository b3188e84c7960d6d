package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("AES_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_MAX_RETRIES", "2")
	t.Setenv("LOG_MAX_SIZE_MB", "10")
	t.Setenv("BOOKING_DELAY", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 2, cfg.Database.MaxRetries)
	assert.Equal(t, 5*time.Second, cfg.Database.RetryInterval)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, 250*time.Millisecond, cfg.BookingDelay)
	assert.Equal(t, 12, cfg.CatalogPageLimit)
	assert.Empty(t, cfg.Redis.URL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadRejectsShortAESKey(t *testing.T) {
	t.Setenv("AES_KEY", "short")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load()
	assert.ErrorContains(t, err, "AES_KEY must be 32 bytes long")
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("AES_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := Load()
	assert.Error(t, err)
}
