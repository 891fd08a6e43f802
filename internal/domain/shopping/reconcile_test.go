package shopping

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	catalog := NewCatalog([]Product{
		{ID: "1", Name: "Ball", Category: "Balls", Price: decimal.NewFromInt(50000)},
		{ID: "2", Name: "Shirt", Category: "Apparel", Price: decimal.NewFromInt(30000)},
	})

	t.Run("prices lines and sums subtotal", func(t *testing.T) {
		state := NewState()
		require.NoError(t, state.Add("1", 2))
		require.NoError(t, state.Add("2", 1))
		state.ChangeQuantity("1", -1)

		result := Join(state, catalog)
		require.Len(t, result.Lines, 2)
		assert.Equal(t, 0, result.OrphanCount)
		assert.True(t, result.Subtotal.Equal(decimal.NewFromInt(80000)),
			"subtotal = %s", result.Subtotal)

		first := result.Lines[0]
		assert.Equal(t, "1", first.ProductID)
		assert.Equal(t, "Ball", first.Name)
		assert.Equal(t, "Balls", first.Category)
		assert.Equal(t, 1, first.Quantity)
		assert.True(t, first.LineTotal.Equal(decimal.NewFromInt(50000)))
	})

	t.Run("orphan lines are excluded and counted", func(t *testing.T) {
		state := NewState()
		require.NoError(t, state.Add("1", 1))
		require.NoError(t, state.Add("99", 3))

		result := Join(state, catalog)
		assert.Equal(t, 1, result.OrphanCount)
		require.Len(t, result.Lines, 1)
		assert.Equal(t, "1", result.Lines[0].ProductID)
		assert.True(t, result.Subtotal.Equal(decimal.NewFromInt(50000)))
	})

	t.Run("line order follows cart insertion order", func(t *testing.T) {
		state := NewState()
		require.NoError(t, state.Add("2", 1))
		require.NoError(t, state.Add("1", 1))

		result := Join(state, catalog)
		require.Len(t, result.Lines, 2)
		assert.Equal(t, "2", result.Lines[0].ProductID)
		assert.Equal(t, "1", result.Lines[1].ProductID)
	})

	t.Run("identical inputs yield identical results", func(t *testing.T) {
		state := NewState()
		require.NoError(t, state.Add("1", 2))
		require.NoError(t, state.Add("99", 1))

		a := Join(state, catalog)
		b := Join(state, catalog)
		assert.Equal(t, a.Lines, b.Lines)
		assert.True(t, a.Subtotal.Equal(b.Subtotal))
		assert.Equal(t, a.OrphanCount, b.OrphanCount)
	})

	t.Run("empty cart yields empty result", func(t *testing.T) {
		result := Join(NewState(), catalog)
		assert.Empty(t, result.Lines)
		assert.True(t, result.Subtotal.IsZero())
		assert.Equal(t, 0, result.OrphanCount)
	})

	t.Run("nil catalog orphans every line", func(t *testing.T) {
		state := NewState()
		require.NoError(t, state.Add("1", 1))

		result := Join(state, nil)
		assert.Empty(t, result.Lines)
		assert.Equal(t, 1, result.OrphanCount)
		assert.True(t, result.Subtotal.IsZero())
	})
}
