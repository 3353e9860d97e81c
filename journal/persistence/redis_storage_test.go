package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/solid-specifications-go/journal/persistence"
	"github.com/AntonStoeckl/solid-specifications-go/testutil/config"
)

func Test_RedisStorage_Key(t *testing.T) {
	storage := persistence.NewRedisStorage(nil, persistence.WithKeyPrefix("journal:"))

	assert.Equal(t, "journal:2024-01-01", storage.Key("2024-01-01"))
}

func Test_RedisStorage_Save_WithoutClient(t *testing.T) {
	err := persistence.NewRedisStorage(nil).Save(context.Background(), "journal-1", "content")

	assert.ErrorIs(t, err, persistence.ErrSavingFailed)
	assert.ErrorIs(t, err, persistence.ErrNilStorage)
}

func Test_RedisStorage_Save_EmptyDestination(t *testing.T) {
	err := persistence.NewRedisStorage(nil).Save(context.Background(), "", "content")

	assert.ErrorIs(t, err, persistence.ErrEmptyDestination)
}

func Test_RedisStorage_Save_Integration(t *testing.T) {
	// arrange
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: config.RedisAddr(t)})
	t.Cleanup(func() { _ = client.Close() })

	prefix := "solid-test:" + uuid.NewString() + ":"
	storage := persistence.NewRedisStorage(client, persistence.WithKeyPrefix(prefix), persistence.WithTTL(time.Minute))
	pm, err := persistence.NewPersistenceManager(storage, persistence.WithFormat(persistence.FormatJSON))
	require.NoError(t, err)
	t.Cleanup(func() { client.Del(context.Background(), storage.Key("journal")) })

	// act
	err = pm.Save(ctx, fixtureJournal(), "journal")

	// assert
	require.NoError(t, err)
	stored, getErr := client.Get(ctx, storage.Key("journal")).Result()
	require.NoError(t, getErr)
	assert.JSONEq(t, `{"entries":[{"number":1,"text":"I cried today."}]}`, stored)

	ttl, ttlErr := client.TTL(ctx, storage.Key("journal")).Result()
	require.NoError(t, ttlErr)
	assert.Greater(t, ttl, time.Duration(0))
}
