package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	// Test connection
	ctx := context.Background()
	err = client.Ping(ctx).Err()
	require.NoError(t, err)

	return client, mr
}

func TestRedisStore(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()

	store := NewRedisStore(client, "")
	defer store.Close()

	exerciseKV(t, store)
}

func TestRedisStore_KeyPrefixAndNoTTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()

	store := NewRedisStore(client, "hub:")
	defer store.Close()

	require.NoError(t, store.Set(context.Background(), "s_hub_projects", "[]"))

	raw, err := mr.Get("hub:s_hub_projects")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
	assert.Zero(t, mr.TTL("hub:s_hub_projects"))
	assert.False(t, mr.Exists("s_hub_projects"))
}

func TestRedisStore_ServerDown(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewRedisStore(client, "")
	defer store.Close()

	mr.Close()

	_, err := store.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Error(t, store.Ping(context.Background()))
}
