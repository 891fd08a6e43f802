package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/supertienda/storefront/internal/domain/shared"
)

// Product represents a sellable item in the storefront catalog.
// It is the aggregate root for catalog operations.
type Product struct {
	shared.BaseAggregateRoot
	Code        string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Category    string          `gorm:"type:varchar(100);not null;index"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Stock       int             `gorm:"not null;default:0"`
	ImageURL    string          `gorm:"type:text"`
	// ExtraImages holds additional image URLs as a comma-separated list,
	// matching how the legacy data was stored.
	ExtraImages string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(code, name, category string, price decimal.Decimal) (*Product, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Category:          category,
		Price:             price,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description, category string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateCategory(category); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Category = category
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetPrice updates the selling price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	p.Price = price
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetStock replaces the stock count
func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	p.Stock = stock
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// AdjustStock applies a relative stock change
func (p *Product) AdjustStock(delta int) error {
	if p.Stock+delta < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot go below zero")
	}

	p.Stock += delta
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetImages sets the primary image and any additional image URLs
func (p *Product) SetImages(imageURL string, extraImages []string) {
	p.ImageURL = imageURL
	cleaned := make([]string, 0, len(extraImages))
	for _, img := range extraImages {
		if trimmed := strings.TrimSpace(img); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	p.ExtraImages = strings.Join(cleaned, ",")
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// ExtraImageList returns the additional image URLs as an ordered slice
func (p *Product) ExtraImageList() []string {
	if p.ExtraImages == "" {
		return nil
	}
	parts := strings.Split(p.ExtraImages, ",")
	images := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			images = append(images, trimmed)
		}
	}
	return images
}

// InStock returns true if at least one unit is available
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// validateCode validates the product code (SKU)
func validateCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Product code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

// validateName validates the product name
func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

// validateCategory validates the category label
func validateCategory(category string) error {
	if category == "" {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}
	if len(category) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot exceed 100 characters")
	}
	return nil
}
