package ratelimiter_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nino/pkg/ratelimiter"
)

// redisClient connects to REDIS_TEST_URL or skips the test.
func redisClient(t *testing.T) *redis.Client {
	t.Helper()

	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestRedisStore(t *testing.T) {
	t.Parallel()

	client := redisClient(t)
	clock := newFakeClock()
	store := ratelimiter.NewRedisStore(client,
		ratelimiter.WithKeyPrefix("test:"+uuid.NewString()+":"),
		ratelimiter.WithRedisClock(clock.Now),
	)
	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
		Capacity:       2,
		RefillRate:     1,
		RefillInterval: time.Second,
	})
	require.NoError(t, err)

	ctx := context.Background()
	for want := 1; want >= 0; want-- {
		res, err := bucket.Allow(ctx, "192.0.2.1")
		require.NoError(t, err)
		assert.Equal(t, want, res.Remaining)
	}

	res, err := bucket.Allow(ctx, "192.0.2.1")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, time.Second, res.RetryAfter(clock.Now()))

	// denied requests leave the bucket empty rather than negative
	clock.Advance(time.Second)
	res, err = bucket.Allow(ctx, "192.0.2.1")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)

	other, err := bucket.Allow(ctx, "192.0.2.2")
	require.NoError(t, err)
	assert.Equal(t, 1, other.Remaining)

	require.NoError(t, bucket.Reset(ctx, "192.0.2.1"))
	res, err = bucket.Allow(ctx, "192.0.2.1")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Remaining)
}

func TestRedisStore_Unavailable(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	bucket, err := ratelimiter.NewBucket(ratelimiter.NewRedisStore(client), ratelimiter.Config{
		Capacity:       1,
		RefillRate:     1,
		RefillInterval: time.Second,
	})
	require.NoError(t, err)

	_, err = bucket.Allow(context.Background(), "192.0.2.1")
	assert.ErrorIs(t, err, ratelimiter.ErrStoreUnavailable)

	err = bucket.Reset(context.Background(), "192.0.2.1")
	assert.ErrorIs(t, err, ratelimiter.ErrStoreUnavailable)
}
