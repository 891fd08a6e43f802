package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("BAL-001", "Soccer Ball", "Balls", decimal.NewFromInt(50000))
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "BAL-001", product.Code)
		assert.Equal(t, "Soccer Ball", product.Name)
		assert.Equal(t, "Balls", product.Category)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(50000)))
		assert.Equal(t, 0, product.Stock)
		assert.NotEmpty(t, product.ID)
		assert.Equal(t, 1, product.GetVersion())
	})

	t.Run("converts code to uppercase", func(t *testing.T) {
		product, err := NewProduct("bal-001", "Soccer Ball", "Balls", decimal.Zero)
		require.NoError(t, err)
		assert.Equal(t, "BAL-001", product.Code)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		_, err := NewProduct("", "Soccer Ball", "Balls", decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "code cannot be empty")
	})

	t.Run("fails with invalid code characters", func(t *testing.T) {
		_, err := NewProduct("BAL 001!", "Soccer Ball", "Balls", decimal.Zero)
		require.Error(t, err)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct("BAL-001", "", "Balls", decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with empty category", func(t *testing.T) {
		_, err := NewProduct("BAL-001", "Soccer Ball", "", decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Category cannot be empty")
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewProduct("BAL-001", "Soccer Ball", "Balls", decimal.NewFromInt(-1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})
}

func TestProductUpdate(t *testing.T) {
	product, err := NewProduct("BAL-001", "Soccer Ball", "Balls", decimal.NewFromInt(50000))
	require.NoError(t, err)

	t.Run("updates basic info and bumps version", func(t *testing.T) {
		before := product.GetVersion()
		err := product.Update("Pro Soccer Ball", "Match quality", "Balls")
		require.NoError(t, err)
		assert.Equal(t, "Pro Soccer Ball", product.Name)
		assert.Equal(t, "Match quality", product.Description)
		assert.Equal(t, before+1, product.GetVersion())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		err := product.Update("", "desc", "Balls")
		require.Error(t, err)
	})
}

func TestProductStock(t *testing.T) {
	product, err := NewProduct("BAL-001", "Soccer Ball", "Balls", decimal.NewFromInt(50000))
	require.NoError(t, err)

	t.Run("sets stock", func(t *testing.T) {
		require.NoError(t, product.SetStock(10))
		assert.Equal(t, 10, product.Stock)
		assert.True(t, product.InStock())
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		err := product.SetStock(-1)
		require.Error(t, err)
	})

	t.Run("adjusts stock", func(t *testing.T) {
		require.NoError(t, product.SetStock(5))
		require.NoError(t, product.AdjustStock(-3))
		assert.Equal(t, 2, product.Stock)
	})

	t.Run("rejects adjustment below zero", func(t *testing.T) {
		require.NoError(t, product.SetStock(1))
		err := product.AdjustStock(-2)
		require.Error(t, err)
		assert.Equal(t, 1, product.Stock)
	})
}

func TestProductImages(t *testing.T) {
	product, err := NewProduct("BAL-001", "Soccer Ball", "Balls", decimal.NewFromInt(50000))
	require.NoError(t, err)

	t.Run("stores extra images as ordered list", func(t *testing.T) {
		product.SetImages("main.jpg", []string{"a.jpg", " b.jpg ", ""})
		assert.Equal(t, "main.jpg", product.ImageURL)
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, product.ExtraImageList())
	})

	t.Run("empty extra images yields nil list", func(t *testing.T) {
		product.SetImages("main.jpg", nil)
		assert.Nil(t, product.ExtraImageList())
	})
}

func TestProductSetPrice(t *testing.T) {
	product, err := NewProduct("BAL-001", "Soccer Ball", "Balls", decimal.NewFromInt(50000))
	require.NoError(t, err)

	require.NoError(t, product.SetPrice(decimal.NewFromInt(45000)))
	assert.True(t, product.Price.Equal(decimal.NewFromInt(45000)))

	err = product.SetPrice(decimal.NewFromInt(-5))
	require.Error(t, err)
}
