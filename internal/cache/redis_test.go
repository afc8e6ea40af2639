package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gronskott/happyplants/internal/config"
	"github.com/gronskott/happyplants/internal/models"
)

func setupTestCache(t *testing.T) *Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache
}

func TestSetAndGet(t *testing.T) {
	cache := setupTestCache(t)

	expected := []models.Plant{
		{PlantID: "42", CommonName: "Aloe", ScientificName: "Aloe vera"},
		{PlantID: "43", CommonName: "Ficus"},
	}
	err := cache.Set("search:aloe:commonName", expected, time.Hour)
	require.NoError(t, err)

	var actual []models.Plant
	found, err := cache.Get("search:aloe:commonName", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGetNotFound(t *testing.T) {
	cache := setupTestCache(t)

	var out []models.Plant
	found, err := cache.Get("no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache := setupTestCache(t)

	require.NoError(t, cache.Set("key", "value", time.Hour))
	require.NoError(t, cache.Invalidate("key"))

	var out string
	found, err := cache.Get("key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}
