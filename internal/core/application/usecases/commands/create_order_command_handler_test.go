package commands_test

import (
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/restaurant"
	"marketplace/internal/pkg/errs"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const idempotencyTTL = time.Hour

type createOrderFixture struct {
	customer    *customer.Customer
	restaurant  *restaurant.Restaurant
	orders      *MockOrderRepository
	customers   *MockCustomerRepository
	restaurants *MockRestaurantRepository
	uow         *MockOrderUoW
	factory     *MockOrderUoWFactory
}

func newCreateOrderFixture(t *testing.T) createOrderFixture {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Paula Reis", "paula@example.com", "11999998888", "", time.Now())
	require.NoError(t, err)
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), restaurant.Details{Name: "Forno Bom", Category: "Pizza", Address: "Rua H"})
	require.NoError(t, err)

	return createOrderFixture{
		customer:    c,
		restaurant:  r,
		orders:      new(MockOrderRepository),
		customers:   new(MockCustomerRepository),
		restaurants: new(MockRestaurantRepository),
		uow:         new(MockOrderUoW),
		factory:     new(MockOrderUoWFactory),
	}
}

func (f createOrderFixture) command(t *testing.T, key string) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(f.customer.ID(), f.restaurant.ID(),
		kernel.MustParseMoney("100.00"), "Rua A, 10", "", key)
	require.NoError(t, err)
	return cmd
}

func (f createOrderFixture) assertExpectations(t *testing.T) {
	f.orders.AssertExpectations(t)
	f.customers.AssertExpectations(t)
	f.restaurants.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)
	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("CustomerRepository").Return(f.customers).Once(),
		f.uow.On("RestaurantRepository").Return(f.restaurants).Once(),
		f.customers.On("Get", ctx, f.customer.ID()).Return(f.customer, nil).Once(),
		f.restaurants.On("Get", ctx, f.restaurant.ID()).Return(f.restaurant, nil).Once(),
		f.uow.On("OrderRepository").Return(f.orders).Once(),
		f.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(f.factory, nil, idempotencyTTL, zerolog.Nop())
	result, err := h.Handle(ctx, f.command(t, ""))

	require.NoError(t, err)
	assert.False(t, result.Replayed)
	assert.Equal(t, order.Pending, result.Order.Status())
	assert.False(t, result.Order.CreatedAt().IsZero())
	assert.Equal(t, result.Order.CreatedAt(), result.Order.CreatedAt().Truncate(time.Microsecond))
	assert.Nil(t, result.Order.DeliveredAt())
	assert.True(t, result.Order.CustomerID().IsEqual(f.customer.ID()))
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)
	notFound := errs.NewObjectNotFoundError("customer", f.customer.ID())
	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("CustomerRepository").Return(f.customers).Once(),
		f.uow.On("RestaurantRepository").Return(f.restaurants).Once(),
		f.customers.On("Get", ctx, f.customer.ID()).Return(nil, notFound).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(f.factory, nil, idempotencyTTL, zerolog.Nop())
	_, err := h.Handle(ctx, f.command(t, ""))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownRestaurant(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)
	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("CustomerRepository").Return(f.customers).Once(),
		f.uow.On("RestaurantRepository").Return(f.restaurants).Once(),
		f.customers.On("Get", ctx, f.customer.ID()).Return(f.customer, nil).Once(),
		f.restaurants.On("Get", ctx, f.restaurant.ID()).
			Return(nil, errs.NewObjectNotFoundError("restaurant", f.restaurant.ID())).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(f.factory, nil, idempotencyTTL, zerolog.Nop())
	_, err := h.Handle(ctx, f.command(t, ""))

	require.True(t, errs.IsNotFound(err))
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, nil, idempotencyTTL, zerolog.Nop())

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)
	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(f.factory, nil, idempotencyTTL, zerolog.Nop())
	_, err := h.Handle(ctx, f.command(t, ""))

	require.EqualError(t, err, "begin error")
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)
	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("CustomerRepository").Return(f.customers).Once(),
		f.uow.On("RestaurantRepository").Return(f.restaurants).Once(),
		f.customers.On("Get", ctx, f.customer.ID()).Return(f.customer, nil).Once(),
		f.restaurants.On("Get", ctx, f.restaurant.ID()).Return(f.restaurant, nil).Once(),
		f.uow.On("OrderRepository").Return(f.orders).Once(),
		f.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(f.factory, nil, idempotencyTTL, zerolog.Nop())
	_, err := h.Handle(ctx, f.command(t, ""))

	require.EqualError(t, err, "commit error")
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_Idempotency(t *testing.T) {
	t.Run("should complete a fresh key with the new order", func(t *testing.T) {
		ctx := t.Context()
		f := newCreateOrderFixture(t)
		store := new(MockIdempotencyStore)
		store.On("Reserve", ctx, "key-1", idempotencyTTL).Return(nil, true, nil).Once()
		f.factory.On("Create").Return(f.uow).Once()
		f.uow.On("Begin", ctx).Return(nil).Once()
		f.uow.On("CustomerRepository").Return(f.customers).Once()
		f.uow.On("RestaurantRepository").Return(f.restaurants).Once()
		f.customers.On("Get", ctx, f.customer.ID()).Return(f.customer, nil).Once()
		f.restaurants.On("Get", ctx, f.restaurant.ID()).Return(f.restaurant, nil).Once()
		f.uow.On("OrderRepository").Return(f.orders).Once()
		f.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()
		store.On("Complete", ctx, "key-1", mock.AnythingOfType("kernel.UUID"), idempotencyTTL).Return(nil).Once()

		h := commands.NewCreateOrderCommandHandler(f.factory, store, idempotencyTTL, zerolog.Nop())
		result, err := h.Handle(ctx, f.command(t, "key-1"))

		require.NoError(t, err)
		assert.False(t, result.Replayed)
		store.AssertExpectations(t)
		f.assertExpectations(t)
	})

	t.Run("should replay the order of a completed key", func(t *testing.T) {
		ctx := t.Context()
		f := newCreateOrderFixture(t)
		existing, err := order.NewOrder(kernel.NewUUID(), f.customer.ID(), f.restaurant.ID(),
			kernel.MustParseMoney("100.00"), "Rua A, 10", "", time.Now())
		require.NoError(t, err)
		existingID := existing.ID()

		store := new(MockIdempotencyStore)
		store.On("Reserve", ctx, "key-1", idempotencyTTL).Return(&existingID, false, nil).Once()
		f.factory.On("Create").Return(f.uow).Once()
		f.uow.On("OrderRepository").Return(f.orders).Once()
		f.orders.On("Get", ctx, existingID).Return(existing, nil).Once()

		h := commands.NewCreateOrderCommandHandler(f.factory, store, idempotencyTTL, zerolog.Nop())
		result, err := h.Handle(ctx, f.command(t, "key-1"))

		require.NoError(t, err)
		assert.True(t, result.Replayed)
		assert.Same(t, existing, result.Order)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
		store.AssertExpectations(t)
	})

	t.Run("should reject a key still in progress", func(t *testing.T) {
		ctx := t.Context()
		f := newCreateOrderFixture(t)
		store := new(MockIdempotencyStore)
		store.On("Reserve", ctx, "key-1", idempotencyTTL).Return(nil, false, nil).Once()

		h := commands.NewCreateOrderCommandHandler(f.factory, store, idempotencyTTL, zerolog.Nop())
		_, err := h.Handle(ctx, f.command(t, "key-1"))

		require.ErrorIs(t, err, errs.ErrInvalidState)
		f.factory.AssertNotCalled(t, "Create")
	})

	t.Run("should release the key when creation fails", func(t *testing.T) {
		ctx := t.Context()
		f := newCreateOrderFixture(t)
		store := new(MockIdempotencyStore)
		store.On("Reserve", ctx, "key-1", idempotencyTTL).Return(nil, true, nil).Once()
		store.On("Release", ctx, "key-1").Return(nil).Once()
		f.factory.On("Create").Return(f.uow).Once()
		f.uow.On("Begin", ctx).Return(errors.New("db down")).Once()

		h := commands.NewCreateOrderCommandHandler(f.factory, store, idempotencyTTL, zerolog.Nop())
		_, err := h.Handle(ctx, f.command(t, "key-1"))

		require.EqualError(t, err, "db down")
		store.AssertExpectations(t)
	})

	t.Run("should ignore keys without a store", func(t *testing.T) {
		ctx := t.Context()
		f := newCreateOrderFixture(t)
		f.factory.On("Create").Return(f.uow).Once()
		f.uow.On("Begin", ctx).Return(errors.New("stop here")).Once()

		h := commands.NewCreateOrderCommandHandler(f.factory, nil, idempotencyTTL, zerolog.Nop())
		_, err := h.Handle(ctx, f.command(t, "key-1"))

		require.EqualError(t, err, "stop here")
	})
}
