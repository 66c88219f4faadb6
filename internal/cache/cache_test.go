package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCacheUnset(t *testing.T) {
	c := &FakeCache{}
	ctx := context.Background()
	require.PanicsWithValue(t, "unexpected Get", func() { c.Get(ctx, "dashboard") })
	require.PanicsWithValue(t, "unexpected Set", func() { c.Set(ctx, "dashboard", "{}", time.Second) })
	require.PanicsWithValue(t, "unexpected Ping", func() { c.Ping(ctx) })
	require.NoError(t, c.Close())
}

func TestFakeCacheDelegates(t *testing.T) {
	ctx := context.Background()
	var setTTL time.Duration
	c := &FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		},
		SetFn: func(_ context.Context, _ string, _ any, ttl time.Duration) *redis.StatusCmd {
			setTTL = ttl
			return redis.NewStatusResult("OK", nil)
		},
		PingFn:  func(context.Context) *redis.StatusCmd { return redis.NewStatusResult("PONG", nil) },
		CloseFn: func() error { return errors.New("close") },
	}

	_, err := c.Get(ctx, "dashboard:2025-03-15").Result()
	require.True(t, IsMiss(err))
	require.Equal(t, "OK", c.Set(ctx, "k", "v", 30*time.Second).Val())
	require.Equal(t, 30*time.Second, setTTL)
	require.Equal(t, "PONG", c.Ping(ctx).Val())
	require.EqualError(t, c.Close(), "close")
}

func TestIsMiss(t *testing.T) {
	require.True(t, IsMiss(redis.Nil))
	require.False(t, IsMiss(nil))
	require.False(t, IsMiss(errors.New("connection refused")))
}
