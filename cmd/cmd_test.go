package cmd

import (
	"context"
	"testing"

	"evdealer/config"
	"evdealer/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["seed"])

	require.NotNil(t, ServeCmd.Flags().Lookup("addr"))
	require.NotNil(t, ServeCmd.Flags().Lookup("migrate"))
}

func TestOpenStoresWithoutRedis(t *testing.T) {
	bookingLog, sessions, closeFn, err := openStores(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &store.Memory{}, bookingLog)
	assert.Same(t, bookingLog, sessions)
}

func TestOpenStoresRejectsBadURL(t *testing.T) {
	_, _, _, err := openStores(context.Background(), config.RedisConfig{URL: "http://not-redis"})
	assert.Error(t, err)
}

func TestBuildHandler(t *testing.T) {
	mem := store.NewMemory()
	cfg := &config.Config{AESKey: "0123456789abcdef0123456789abcdef", JWTSecret: "s", CatalogPageLimit: 12}

	h, tokens, err := buildHandler(cfg, nil, mem, mem)
	require.NoError(t, err)
	assert.NotNil(t, tokens)
	assert.NotNil(t, h.Vehicles)
	assert.NotNil(t, h.Auth)

	cfg.AESKey = "short"
	_, _, err = buildHandler(cfg, nil, mem, mem)
	assert.Error(t, err)
}
