package cart_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/jungleyourself/internal/cart"
	"github.com/example/jungleyourself/internal/catalog"
	"github.com/example/jungleyourself/internal/database"
)

func newCart(t *testing.T, db *gorm.DB) *cart.Store {
	t.Helper()
	store, err := catalog.Default()
	require.NoError(t, err)
	c, err := cart.NewStore(store, db)
	require.NoError(t, err)
	return c
}

func TestCartOperations(t *testing.T) {
	t.Parallel()

	t.Run("add merges lines", func(t *testing.T) {
		c := newCart(t, nil)
		require.NoError(t, c.AddItem("kit-starter-small", 1))
		require.NoError(t, c.AddItem("kit-starter-small", 2))

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
		assert.Equal(t, 3, c.ItemCount())
	})

	t.Run("unknown product rejected", func(t *testing.T) {
		c := newCart(t, nil)
		assert.ErrorIs(t, c.AddItem("no-such-product", 1), cart.ErrUnknownProduct)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		c := newCart(t, nil)
		assert.ErrorIs(t, c.AddItem("kit-starter-small", 0), cart.ErrInvalidQuantity)
	})

	t.Run("update to zero removes like RemoveItem", func(t *testing.T) {
		c := newCart(t, nil)
		require.NoError(t, c.AddItem("kit-starter-small", 2))
		require.NoError(t, c.UpdateQuantity("kit-starter-small", 0))
		assert.Empty(t, c.Items())

		// Removing an absent line is a no-op either way.
		assert.NoError(t, c.RemoveItem("kit-starter-small"))
		assert.NoError(t, c.UpdateQuantity("kit-starter-small", -1))
	})

	t.Run("update sets quantity", func(t *testing.T) {
		c := newCart(t, nil)
		require.NoError(t, c.AddItem("substrate-universal", 4))
		require.NoError(t, c.UpdateQuantity("substrate-universal", 2))
		assert.Equal(t, 2, c.Items()[0].Quantity)
	})

	t.Run("update of missing line fails", func(t *testing.T) {
		c := newCart(t, nil)
		assert.ErrorIs(t, c.UpdateQuantity("substrate-universal", 2), cart.ErrUnknownProduct)
	})

	t.Run("clear", func(t *testing.T) {
		c := newCart(t, nil)
		require.NoError(t, c.AddItem("kit-starter-small", 1))
		require.NoError(t, c.Clear())
		assert.Empty(t, c.Items())
		assert.Zero(t, c.Total())
	})
}

func TestCartTotals(t *testing.T) {
	t.Parallel()

	c := newCart(t, nil)
	require.NoError(t, c.AddItem("kit-starter-small", 1))

	assert.Equal(t, 189.0, c.Total())

	estimate := c.ShippingEstimate()
	assert.Equal(t, 45.0, estimate.Weight)
	assert.Equal(t, 34.95, estimate.Cost)
}

func TestCostForWeight(t *testing.T) {
	t.Parallel()

	cases := []struct {
		weight float64
		cost   float64
	}{
		{0, 9.95},
		{5, 9.95},
		{5.01, 19.95},
		{20, 19.95},
		{20.5, 34.95},
		{50, 34.95},
		{51, 64.95},
		{75, 64.95},
		{76, 79.95},
		{100, 79.95},
		{101, 94.95},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.cost, cart.CostForWeight(tc.weight), 1e-9, "weight %v", tc.weight)
	}
}

func TestCartPersistence(t *testing.T) {
	t.Parallel()

	db, err := database.Connect(filepath.Join(t.TempDir(), "cart.db"))
	require.NoError(t, err)

	c := newCart(t, db)
	require.NoError(t, c.AddItem("kit-starter-small", 2))
	require.NoError(t, c.AddItem("edging-aluminium", 4))

	// A fresh store over the same cache restores the lines.
	restored := newCart(t, db)
	items := restored.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "kit-starter-small", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "edging-aluminium", items[1].ProductID)

	t.Run("garbage document discarded", func(t *testing.T) {
		require.NoError(t, database.Set(db, "jungle-yourself-cart", "not json"))
		fresh := newCart(t, db)
		assert.Empty(t, fresh.Items())
	})

	t.Run("schema version mismatch discarded", func(t *testing.T) {
		require.NoError(t, database.Set(db, "jungle-yourself-cart", `{"schema_version":99,"items":[{"product_id":"kit-starter-small","quantity":1}]}`))
		fresh := newCart(t, db)
		assert.Empty(t, fresh.Items())
	})
}
