package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained after Begin share its transaction; repositories
// obtained without one run each call on its own.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and then hands the events
	// recorded by tracked orders to the event publisher.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction.
	// Returns error if no active transaction exists.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	CustomerRepository() CustomerRepository
	RestaurantRepository() RestaurantRepository
	ProductRepository() ProductRepository
}
