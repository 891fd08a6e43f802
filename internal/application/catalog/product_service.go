package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/supertienda/storefront/internal/domain/catalog"
	"github.com/supertienda/storefront/internal/domain/shared"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	// Check if code already exists
	exists, err := s.productRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this code already exists")
	}

	product, err := catalog.NewProduct(req.Code, req.Name, req.Category, req.Price)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := product.Update(req.Name, req.Description, req.Category); err != nil {
			return nil, err
		}
	}

	if req.Stock != 0 {
		if err := product.SetStock(req.Stock); err != nil {
			return nil, err
		}
	}

	if req.ImageURL != "" || len(req.ExtraImages) > 0 {
		product.SetImages(req.ImageURL, req.ExtraImages)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Update updates an existing product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := product.Description
	if req.Description != nil {
		description = *req.Description
	}
	category := product.Category
	if req.Category != nil {
		category = *req.Category
	}
	if err := product.Update(name, description, category); err != nil {
		return nil, err
	}

	if req.Price != nil {
		if err := product.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}

	if req.Stock != nil {
		if err := product.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}

	if req.ImageURL != nil || req.ExtraImages != nil {
		imageURL := product.ImageURL
		if req.ImageURL != nil {
			imageURL = *req.ImageURL
		}
		extras := product.ExtraImageList()
		if req.ExtraImages != nil {
			extras = req.ExtraImages
		}
		product.SetImages(imageURL, extras)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Get retrieves a product by ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByCode retrieves a product by its code (SKU)
func (s *ProductService) GetByCode(ctx context.Context, code string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// List retrieves products matching the filter with a total count
func (s *ProductService) List(ctx context.Context, filter ListFilter) ([]ProductResponse, int64, error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search

	var (
		products []catalog.Product
		err      error
	)
	if filter.Category != "" {
		products, err = s.productRepo.FindByCategory(ctx, filter.Category, f)
	} else {
		products, err = s.productRepo.FindAll(ctx, f)
	}
	if err != nil {
		return nil, 0, err
	}

	countFilter := f
	if filter.Category != "" {
		countFilter.Filters = map[string]interface{}{"category": filter.Category}
	}
	total, err := s.productRepo.Count(ctx, countFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return responses, total, nil
}

// AdjustStock applies a relative stock change to a product
func (s *ProductService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.AdjustStock(delta); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
