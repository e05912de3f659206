package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// unreachable points at a port nothing listens on, so every call fails fast.
func unreachable() *Client {
	return NewFromRedis(redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	}))
}

func TestClient_FailsSafeWhenRedisDown(t *testing.T) {
	ctx := context.Background()
	c := unreachable()
	defer c.Close()

	assert.Error(t, c.Ping(ctx))

	data, err := c.Get(ctx, "user:1")
	assert.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, c.Set(ctx, "user:1", []byte("{}"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "user:1"))

	var dst map[string]any
	assert.False(t, c.GetJSON(ctx, "user:1", &dst))
}

func TestClient_NilIsEmpty(t *testing.T) {
	ctx := context.Background()
	var c *Client

	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Second))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.Error(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
	c.SetJSON(ctx, "k", map[string]string{"a": "b"}, time.Second)
}
