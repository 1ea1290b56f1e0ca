package memory

import (
	"context"
	"errors"

	"marketplace/internal/adapters/out/events"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/rs/zerolog"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside a transaction.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store     *Store
	publisher ports.OrderEventPublisher
	logger    zerolog.Logger
}

var _ ports.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)

// NewUnitOfWorkFactory creates the factory. A nil publisher drops events.
func NewUnitOfWorkFactory(store *Store, publisher ports.OrderEventPublisher, logger zerolog.Logger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		store:     store,
		publisher: publisher,
		logger:    logger.With().Str("component", "memory-uow").Logger(),
	}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:     f.store,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// UnitOfWork is a serialized transaction over a Store.
type UnitOfWork struct {
	store     *Store
	tx        *state
	tracked   []*order.Order
	publisher ports.OrderEventPublisher
	logger    zerolog.Logger
}

// Begin locks the store until Commit or Rollback. Calling it again inside
// a transaction is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.tx != nil {
		return nil
	}
	uow.store.mu.Lock()
	uow.tx = uow.store.data.clone()
	return nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}
	uow.store.data = uow.tx
	uow.tx = nil
	uow.store.mu.Unlock()

	tracked := uow.tracked
	uow.tracked = nil
	events.Drain(ctx, uow.publisher, uow.logger, tracked)
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}
	uow.tx = nil
	uow.tracked = nil
	uow.store.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &CustomerRepository{uow: uow}
}

func (uow *UnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return &RestaurantRepository{uow: uow}
}

func (uow *UnitOfWork) ProductRepository() ports.ProductRepository {
	return &ProductRepository{uow: uow}
}

// run executes fn on the transaction copy, or on the live data under the
// store lock when no transaction is open.
func (uow *UnitOfWork) run(fn func(s *state) error) error {
	if uow.tx != nil {
		return fn(uow.tx)
	}
	uow.store.mu.Lock()
	defer uow.store.mu.Unlock()
	return fn(uow.store.data)
}

// track remembers orders whose events are drained after commit. Outside a
// transaction the events are drained at once.
func (uow *UnitOfWork) track(ctx context.Context, o *order.Order) {
	if uow.tx != nil {
		uow.tracked = append(uow.tracked, o)
		return
	}
	events.Drain(ctx, uow.publisher, uow.logger, []*order.Order{o})
}
