package product_test

import (
	"strings"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, restaurantID kernel.UUID, name, price, category string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), restaurantID, product.Details{
		Name:     name,
		Price:    kernel.MustParseMoney(price),
		Category: category,
	})
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("should create available product", func(t *testing.T) {
		restaurantID := kernel.NewUUID()

		p, err := product.NewProduct(kernel.NewUUID(), restaurantID, product.Details{
			Name:        "Margherita",
			Description: "tomato, mozzarella, basil",
			Price:       kernel.MustParseMoney("42.90"),
			Category:    "Pizza",
		})

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.IsAvailable())
		assert.True(t, p.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, "42.90", p.Price().String())
	})

	t.Run("should reject zero price", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), product.Details{
			Name: "Margherita", Price: kernel.ZeroMoney(), Category: "Pizza",
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject long description", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), product.Details{
			Name: "Margherita", Description: strings.Repeat("x", 501), Price: kernel.MustParseMoney("1.00"), Category: "Pizza",
		})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should require restaurant", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.UUID{}, product.Details{
			Name: "Margherita", Price: kernel.MustParseMoney("1.00"), Category: "Pizza",
		})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestProduct_Apply(t *testing.T) {
	p := newProduct(t, kernel.NewUUID(), "Calabresa", "39.90", "Pizza")

	require.NoError(t, p.Apply(product.Patch{Available: kernel.Some(false)}))
	assert.False(t, p.IsAvailable())
	assert.Equal(t, "39.90", p.Price().String())

	err := p.Apply(product.Patch{Name: kernel.Some("Calabresa Especial"), Price: kernel.Some(kernel.ZeroMoney())})
	require.Error(t, err)
	assert.Equal(t, "Calabresa", p.Name())
}

func TestCriteria_Apply(t *testing.T) {
	restaurantID := kernel.NewUUID()
	cheap := newProduct(t, restaurantID, "Refrigerante", "6.00", "Bebidas")
	mid := newProduct(t, restaurantID, "Calzone", "35.00", "Pizza")
	pricey := newProduct(t, kernel.NewUUID(), "Pizza Grande", "70.00", "Pizza")
	off := newProduct(t, restaurantID, "Suco", "9.00", "Bebidas")
	require.NoError(t, off.Apply(product.Patch{Available: kernel.Some(false)}))
	all := []*product.Product{pricey, mid, off, cheap}

	t.Run("should list available in inclusive price range ascending", func(t *testing.T) {
		minPrice, maxPrice := kernel.MustParseMoney("6.00"), kernel.MustParseMoney("70.00")

		got := product.Criteria{AvailableOnly: true, MinPrice: &minPrice, MaxPrice: &maxPrice}.Apply(all)

		require.Len(t, got, 3)
		assert.Same(t, cheap, got[0])
		assert.Same(t, mid, got[1])
		assert.Same(t, pricey, got[2])
	})

	t.Run("should filter by restaurant", func(t *testing.T) {
		got := product.Criteria{RestaurantID: &restaurantID}.Apply(all)

		require.Len(t, got, 3)
		assert.Same(t, mid, got[0])
	})

	t.Run("should list available categories", func(t *testing.T) {
		assert.Equal(t, []string{"Bebidas", "Pizza"}, product.Categories(all))
	})
}
