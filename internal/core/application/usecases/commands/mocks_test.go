package commands_test

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/restaurant"
	"marketplace/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Find(ctx context.Context, c order.Criteria) ([]*order.Order, error) {
	args := m.Called(ctx, c)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
	ports.CustomerRepository
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockRestaurantRepository struct {
	mock.Mock
	ports.RestaurantRepository
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockOrderUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockIdempotencyStore struct{ mock.Mock }

func (m *MockIdempotencyStore) Reserve(ctx context.Context, key string, ttl time.Duration) (*kernel.UUID, bool, error) {
	args := m.Called(ctx, key, ttl)
	id, _ := args.Get(0).(*kernel.UUID)
	return id, args.Bool(1), args.Error(2)
}

func (m *MockIdempotencyStore) Complete(ctx context.Context, key string, orderID kernel.UUID, ttl time.Duration) error {
	args := m.Called(ctx, key, orderID, ttl)
	return args.Error(0)
}

func (m *MockIdempotencyStore) Release(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// memoryFactories adapts one in-memory unit of work factory to the narrow
// factories the handlers ask for.
type memoryFactories struct {
	uows ports.UnitOfWorkFactory
}

func newMemoryFactories() memoryFactories {
	return memoryFactories{uows: memory.NewUnitOfWorkFactory(memory.NewStore(), nil, zerolog.Nop())}
}

type orderUoWFactory struct{ ports.UnitOfWorkFactory }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.UnitOfWorkFactory.Create() }

type customerUoWFactory struct{ ports.UnitOfWorkFactory }

func (f customerUoWFactory) Create() commands.CustomerUoW { return f.UnitOfWorkFactory.Create() }

type restaurantUoWFactory struct{ ports.UnitOfWorkFactory }

func (f restaurantUoWFactory) Create() commands.RestaurantUoW { return f.UnitOfWorkFactory.Create() }

type productUoWFactory struct{ ports.UnitOfWorkFactory }

func (f productUoWFactory) Create() commands.ProductUoW { return f.UnitOfWorkFactory.Create() }

func (m memoryFactories) orders() commands.OrderUoWFactory {
	return orderUoWFactory{m.uows}
}

func (m memoryFactories) customers() commands.CustomerUoWFactory {
	return customerUoWFactory{m.uows}
}

func (m memoryFactories) restaurants() commands.RestaurantUoWFactory {
	return restaurantUoWFactory{m.uows}
}

func (m memoryFactories) products() commands.ProductUoWFactory {
	return productUoWFactory{m.uows}
}

