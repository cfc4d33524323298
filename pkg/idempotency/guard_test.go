package idempotency

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 2 * time.Second,
		ReadTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not reachable at %s: %v", addr, err)
	}

	return rdb
}

func TestGuard_BeginAndRelease(t *testing.T) {
	rdb := newTestRedisClient(t)
	guard := NewGuard(rdb, "idemtest:", 30*time.Second)

	ctx := context.Background()
	key := "order-" + t.Name()

	release, err := guard.Begin(ctx, key)
	require.NoError(t, err)

	// second claim while held must be rejected
	_, err = guard.Begin(ctx, key)
	assert.ErrorIs(t, err, ErrInFlight)

	release()

	// released key can be claimed again
	release2, err := guard.Begin(ctx, key)
	require.NoError(t, err)
	release2()
}

func TestGuard_FailOpenWhenRedisDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "localhost:1", // nothing listens here
		DialTimeout: 200 * time.Millisecond,
		ReadTimeout: 200 * time.Millisecond,
	})

	guard := NewGuard(rdb, "", 0)

	release, err := guard.Begin(context.Background(), "any")

	require.NoError(t, err, "guard must fail open when redis is unreachable")
	release()
}

func TestNewGuard_Defaults(t *testing.T) {
	guard := NewGuard(nil, "", 0)

	assert.Equal(t, defaultPrefix, guard.prefix)
	assert.Equal(t, defaultTTL, guard.ttl)
}
