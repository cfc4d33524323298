// Package idempotency guards against concurrent duplicate work keyed
// by a caller-supplied id, backed by redis SETNX.
package idempotency

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrInFlight = errors.New("operation already in progress")

const (
	defaultTTL    = 2 * time.Minute
	defaultPrefix = "idem:"
)

type Guard struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewGuard(rdb *redis.Client, prefix string, ttl time.Duration) *Guard {
	if prefix == "" {
		prefix = defaultPrefix
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Guard{
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Begin claims the key. Returns ErrInFlight when another request holds
// it. If redis is unreachable the claim is granted (fail-open); the
// provider's own request-id dedup is the backstop.
func (g *Guard) Begin(ctx context.Context, key string) (release func(), err error) {
	fullKey := g.prefix + key

	ok, err := g.rdb.SetNX(ctx, fullKey, "1", g.ttl).Result()
	if err != nil {
		// redis down: allow the call
		return func() {}, nil
	}
	if !ok {
		return nil, ErrInFlight
	}

	return func() {
		_ = g.rdb.Del(context.WithoutCancel(ctx), fullKey).Err()
	}, nil
}
