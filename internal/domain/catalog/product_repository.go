package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/supertienda/storefront/internal/domain/shared"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByCode finds a product by its code (SKU)
	FindByCode(ctx context.Context, code string) (*Product, error)

	// ExistsByCode checks if a product with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// FindByCategory finds all products with the given category label
	FindByCategory(ctx context.Context, category string, filter shared.Filter) ([]Product, error)

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete removes a product by ID
	Delete(ctx context.Context, id uuid.UUID) error
}
