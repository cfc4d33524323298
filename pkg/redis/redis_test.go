package redis

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Ping_Set_Get(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rdb := NewClient(Config{Addr: addr}, logger)

	if err := Ping(ctx, rdb); err != nil {
		t.Skipf("redis not reachable at %s: %v", addr, err)
	}

	key := "courses:test:foo"

	err := rdb.Set(ctx, key, "bar", 5*time.Second).Err()

	require.NoErrorf(t, err, `rdb.Set returned an error: %v`, err)

	val, err := rdb.Get(ctx, key).Result()
	require.NoError(t, err)

	assert.Equal(t, "bar", val)

	_ = rdb.Del(ctx, key).Err()
}

func TestNewClient_NotNil(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rdb := NewClient(Config{Addr: "localhost:6379"}, logger)

	assert.NotNil(t, rdb)
}
