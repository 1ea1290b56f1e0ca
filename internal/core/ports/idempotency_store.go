package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// IdempotencyStore remembers which order a client-supplied idempotency key
// produced so that retried creations return the same order.
//
// Lifecycle of a key: Reserve, then Complete on success or Release on failure.
type IdempotencyStore interface {
	// Reserve claims key for ttl. When the key is already taken it returns
	// reserved=false together with the order id it completed with, if any.
	Reserve(ctx context.Context, key string, ttl time.Duration) (orderID *kernel.UUID, reserved bool, err error)

	// Complete binds a reserved key to the order it created.
	Complete(ctx context.Context, key string, orderID kernel.UUID, ttl time.Duration) error

	// Release frees a reserved key so the request can be retried.
	Release(ctx context.Context, key string) error
}
