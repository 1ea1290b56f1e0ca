package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/restaurant"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCustomer(t *testing.T, f memoryFactories, name, email string) *customer.Customer {
	t.Helper()
	h := commands.NewCreateCustomerCommandHandler(f.customers())
	c, err := h.Handle(t.Context(), commands.NewCreateCustomerCommand(name, email, "11944443333", "Rua M"))
	require.NoError(t, err)
	return c
}

func updateCustomer(t *testing.T, f memoryFactories, id kernel.UUID, patch customer.Patch) (*customer.Customer, error) {
	t.Helper()
	cmd, err := commands.NewUpdateCustomerCommand(id, patch)
	require.NoError(t, err)
	h := commands.NewUpdateCustomerCommandHandler(f.customers())
	return h.Handle(t.Context(), cmd)
}

func TestCustomerCommands_EmailUniqueness(t *testing.T) {
	t.Run("should reject creating a second customer with the same email", func(t *testing.T) {
		f := newMemoryFactories()
		createCustomer(t, f, "Lucas Melo", "lucas@example.com")

		h := commands.NewCreateCustomerCommandHandler(f.customers())
		_, err := h.Handle(t.Context(), commands.NewCreateCustomerCommand("Lucas Two", " LUCAS@example.com ", "11944443333", ""))

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject taking another customer's email", func(t *testing.T) {
		f := newMemoryFactories()
		createCustomer(t, f, "Lucas Melo", "lucas@example.com")
		other := createCustomer(t, f, "Marina Melo", "marina@example.com")

		_, err := updateCustomer(t, f, other.ID(), customer.Patch{Email: kernel.Some("lucas@example.com")})

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should accept keeping one's own email", func(t *testing.T) {
		f := newMemoryFactories()
		c := createCustomer(t, f, "Lucas Melo", "lucas@example.com")

		updated, err := updateCustomer(t, f, c.ID(), customer.Patch{
			Email: kernel.Some("lucas@example.com"),
			Name:  kernel.Some("Lucas M. Melo"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Lucas M. Melo", updated.Name())
	})
}

func TestCustomerCommands_PartialUpdateKeepsFlags(t *testing.T) {
	f := newMemoryFactories()
	c := createCustomer(t, f, "Lucas Melo", "lucas@example.com")

	_, err := updateCustomer(t, f, c.ID(), customer.Patch{Active: kernel.Some(false)})
	require.NoError(t, err)
	updated, err := updateCustomer(t, f, c.ID(), customer.Patch{Phone: kernel.Some("11900001111")})
	require.NoError(t, err)

	assert.False(t, updated.IsActive())
	assert.Equal(t, "11900001111", updated.Phone())
	assert.Equal(t, c.RegisteredAt(), updated.RegisteredAt())
}

func TestCustomerCommands_NotFound(t *testing.T) {
	f := newMemoryFactories()

	_, err := updateCustomer(t, f, kernel.NewUUID(), customer.Patch{})
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	cmd, err := commands.NewDeleteCustomerCommand(kernel.NewUUID())
	require.NoError(t, err)
	h := commands.NewDeleteCustomerCommandHandler(f.customers())
	require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrObjectNotFound)
}

func TestCustomerCommands_Delete(t *testing.T) {
	f := newMemoryFactories()
	c := createCustomer(t, f, "Lucas Melo", "lucas@example.com")
	cmd, err := commands.NewDeleteCustomerCommand(c.ID())
	require.NoError(t, err)

	h := commands.NewDeleteCustomerCommandHandler(f.customers())
	require.NoError(t, h.Handle(t.Context(), cmd))

	_, err = f.uows.Create().CustomerRepository().Get(t.Context(), c.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRestaurantCommands(t *testing.T) {
	ctx := t.Context()
	f := newMemoryFactories()

	create := commands.NewCreateRestaurantCommandHandler(f.restaurants())
	r, err := create.Handle(ctx, commands.NewCreateRestaurantCommand(restaurant.Details{
		Name: "Bistro Azul", Category: "Francesa", Address: "Rua N",
	}))
	require.NoError(t, err)

	updateCmd, err := commands.NewUpdateRestaurantCommand(r.ID(), restaurant.Patch{Rating: kernel.Some(4.7)})
	require.NoError(t, err)
	update := commands.NewUpdateRestaurantCommandHandler(f.restaurants())
	updated, err := update.Handle(ctx, updateCmd)
	require.NoError(t, err)
	rating, ok := updated.Rating()
	assert.True(t, ok)
	assert.InDelta(t, 4.7, rating, 0.0001)
	assert.True(t, updated.IsActive())

	badCmd, err := commands.NewUpdateRestaurantCommand(r.ID(), restaurant.Patch{Rating: kernel.Some(9.0)})
	require.NoError(t, err)
	_, err = update.Handle(ctx, badCmd)
	require.True(t, errs.IsValidationFailure(err))

	deleteCmd, err := commands.NewDeleteRestaurantCommand(r.ID())
	require.NoError(t, err)
	del := commands.NewDeleteRestaurantCommandHandler(f.restaurants())
	require.NoError(t, del.Handle(ctx, deleteCmd))
	require.ErrorIs(t, del.Handle(ctx, deleteCmd), errs.ErrObjectNotFound)
}

func TestProductCommands(t *testing.T) {
	ctx := t.Context()
	f := newMemoryFactories()
	create := commands.NewCreateProductCommandHandler(f.products())
	details := product.Details{Name: "Quiche", Price: kernel.MustParseMoney("28.00"), Category: "Tortas"}

	t.Run("should require an existing restaurant", func(t *testing.T) {
		cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), details)
		require.NoError(t, err)

		_, err = create.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should create update and delete", func(t *testing.T) {
		createRestaurant := commands.NewCreateRestaurantCommandHandler(f.restaurants())
		r, err := createRestaurant.Handle(ctx, commands.NewCreateRestaurantCommand(restaurant.Details{
			Name: "Bistro Azul", Category: "Francesa", Address: "Rua N",
		}))
		require.NoError(t, err)

		cmd, err := commands.NewCreateProductCommand(r.ID(), details)
		require.NoError(t, err)
		p, err := create.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.True(t, p.IsAvailable())

		updateCmd, err := commands.NewUpdateProductCommand(p.ID(), product.Patch{Available: kernel.Some(false)})
		require.NoError(t, err)
		update := commands.NewUpdateProductCommandHandler(f.products())
		updated, err := update.Handle(ctx, updateCmd)
		require.NoError(t, err)
		assert.False(t, updated.IsAvailable())
		assert.True(t, updated.RestaurantID().IsEqual(r.ID()))

		deleteCmd, err := commands.NewDeleteProductCommand(p.ID())
		require.NoError(t, err)
		del := commands.NewDeleteProductCommandHandler(f.products())
		require.NoError(t, del.Handle(ctx, deleteCmd))
	})

	t.Run("should reject a missing restaurant id", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand(kernel.UUID{}, details)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
