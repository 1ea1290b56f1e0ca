// Package redis keeps idempotency keys of order creation in Redis.
package redis

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix    = "idempotency:order:"
	pendingValue = "pending"
)

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

// IdempotencyStore holds one string per key: "pending" while the first
// request runs, then the id of the order it created.
type IdempotencyStore struct {
	client redis.Cmdable
}

// NewIdempotencyStore keeps reservations in client.
func NewIdempotencyStore(client redis.Cmdable) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// NewClient connects to addr and checks the connection.
func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (s *IdempotencyStore) Reserve(ctx context.Context, key string, ttl time.Duration) (*kernel.UUID, bool, error) {
	// A key may expire between SETNX and GET; the second round claims it.
	for range 2 {
		ok, err := s.client.SetNX(ctx, keyPrefix+key, pendingValue, ttl).Result()
		if err != nil {
			return nil, false, err
		}
		if ok {
			return nil, true, nil
		}

		value, err := s.client.Get(ctx, keyPrefix+key).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, false, err
		}
		if value == pendingValue {
			return nil, false, nil
		}

		id, err := kernel.UUIDFromString(value)
		if err != nil {
			return nil, false, err
		}
		return &id, false, nil
	}
	return nil, false, nil
}

func (s *IdempotencyStore) Complete(ctx context.Context, key string, orderID kernel.UUID, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+key, orderID.String(), ttl).Err()
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}
