package redis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/nagrapoonam/Book-Alchemy/internal/platform/redis"
	"github.com/nagrapoonam/Book-Alchemy/internal/testutil"
)

func TestOptions(t *testing.T) {
	options, err := redisstore.Options("redis://:secret@cache.internal:6380/2")
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6380", options.Addr)
	assert.Equal(t, "secret", options.Password)
	assert.Equal(t, 2, options.DB)
	assert.Equal(t, 10, options.PoolSize)
}

func TestOptions_InvalidURL(t *testing.T) {
	_, err := redisstore.Options("http://not-redis")
	assert.ErrorContains(t, err, "redis: invalid URL")
}

func TestNewClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := redisstore.NewClient(ctx, "redis://127.0.0.1:1/0", testutil.Logger())
	assert.ErrorContains(t, err, "redis: ping failed")
}
