package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/supertienda/storefront/internal/domain/catalog"
)

// CreateProductRequest is the application-level request to create a product
type CreateProductRequest struct {
	Code        string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
	ImageURL    string
	ExtraImages []string
}

// UpdateProductRequest is the application-level request to update a product.
// Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string
	Description *string
	Category    *string
	Price       *decimal.Decimal
	Stock       *int
	ImageURL    *string
	ExtraImages []string
}

// ProductResponse is the full product representation returned to callers
type ProductResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url,omitempty"`
	ExtraImages []string        `json:"extra_images,omitempty"`
	Version     int             `json:"version"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ListFilter narrows and paginates product listings
type ListFilter struct {
	Category string
	Search   string
	Page     int
	PageSize int
}

// ToProductResponse maps a product aggregate to its response representation
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		ExtraImages: p.ExtraImageList(),
		Version:     p.GetVersion(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
