package dto

import (
	"github.com/shopspring/decimal"

	catalogapp "github.com/supertienda/storefront/internal/application/catalog"
)

// CreateProductRequest is the payload for creating a product
type CreateProductRequest struct {
	Code        string          `json:"code" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" binding:"omitempty,min=0"`
	ImageURL    string          `json:"image_url"`
	ExtraImages []string        `json:"extra_images"`
}

// UpdateProductRequest is the payload for updating a product.
// Omitted fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" binding:"omitempty,min=0"`
	ImageURL    *string          `json:"image_url"`
	ExtraImages []string         `json:"extra_images"`
}

// AdjustStockRequest is the payload for a relative stock adjustment
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// LegacyProduct is the catalog entry shape served on the public endpoint.
// Existing storefront clients depend on these exact field names.
type LegacyProduct struct {
	ID          string   `json:"id"`
	Name        string   `json:"nombre"`
	Category    string   `json:"categoria"`
	Price       float64  `json:"precio"`
	Stock       int      `json:"stock"`
	ImageURL    string   `json:"imagenUrl"`
	Description string   `json:"descripcion,omitempty"`
	ExtraImages []string `json:"imagenesAdicionales,omitempty"`
}

// ToLegacyProduct maps a product response to the public catalog shape
func ToLegacyProduct(p catalogapp.ProductResponse) LegacyProduct {
	return LegacyProduct{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price.InexactFloat64(),
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		ExtraImages: p.ExtraImages,
	}
}
