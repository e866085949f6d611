package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow_PerMinute(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := Config{
		AttemptsPerMinute: 5,
		AttemptsPerHour:   0,
	}

	key := "login:10.0.0.1"

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(key, config)
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(key, config)
	require.NoError(t, err)
	assert.False(t, allowed, "attempt over the limit should be rejected")
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := Config{AttemptsPerMinute: 1}
	key := "login:10.0.0.2"

	allowed, err := limiter.Allow(key, config)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(key, config)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset(key))

	allowed, err = limiter.Allow(key, config)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestNoopRateLimiter(t *testing.T) {
	limiter := NewNoopRateLimiter()

	for i := 0; i < 100; i++ {
		allowed, err := limiter.Allow("login:any", Config{AttemptsPerMinute: 1})
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	remaining, err := limiter.GetRemaining("login:any", time.Minute)
	require.NoError(t, err)
	assert.Zero(t, remaining)
	assert.NoError(t, limiter.Reset("login:any"))
}
