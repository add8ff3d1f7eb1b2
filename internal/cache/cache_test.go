package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	ctx := context.Background()
	c := &FakeCache{}
	require.Panics(t, func() { c.Get(ctx, "k") })
	require.Panics(t, func() { c.Set(ctx, "k", 1, 0) })
	require.Panics(t, func() { c.Incr(ctx, "k") })
	require.NoError(t, c.Close())

	var keys []string
	c.GetFn = func(_ context.Context, key string) *redis.StringCmd {
		keys = append(keys, "get:"+key)
		return redis.NewStringResult("v", nil)
	}
	c.SetFn = func(_ context.Context, key string, _ any, exp time.Duration) *redis.StatusCmd {
		keys = append(keys, "set:"+key)
		require.Equal(t, time.Minute, exp)
		return redis.NewStatusResult("OK", nil)
	}
	c.IncrFn = func(_ context.Context, key string) *redis.IntCmd {
		keys = append(keys, "incr:"+key)
		return redis.NewIntResult(2, nil)
	}
	c.CloseFn = func() error { return errors.New("close") }

	require.Equal(t, "v", c.Get(ctx, "a").Val())
	require.Equal(t, "OK", c.Set(ctx, "b", 1, time.Minute).Val())
	require.EqualValues(t, 2, c.Incr(ctx, "c").Val())
	require.EqualError(t, c.Close(), "close")
	require.Equal(t, []string{"get:a", "set:b", "incr:c"}, keys)
}
