package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/supertienda/storefront/internal/application/catalog"
	"github.com/supertienda/storefront/internal/interfaces/http/dto"
)

// legacyPageSize bounds the public catalog listing. Legacy clients
// expect the whole catalog in a single array response.
const legacyPageSize = 1000

// ProductHandler handles product HTTP requests
type ProductHandler struct {
	BaseHandler
	service *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(service *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Register wires the product routes. The public catalog endpoint stays
// open; everything that mutates the catalog goes through auth.
func (h *ProductHandler) Register(api *gin.RouterGroup, auth gin.HandlerFunc) {
	api.GET("/products", h.ListLegacy)

	admin := api.Group("/admin", auth)
	admin.GET("/products", h.List)
	admin.GET("/products/:id", h.Get)
	admin.POST("/products", h.Create)
	admin.PUT("/products/:id", h.Update)
	admin.PATCH("/products/:id/stock", h.AdjustStock)
	admin.DELETE("/products/:id", h.Delete)
}

// ListLegacy serves the public catalog as a bare JSON array in the
// field layout the existing storefront frontends consume.
func (h *ProductHandler) ListLegacy(c *gin.Context) {
	products, _, err := h.service.List(c.Request.Context(), catalogapp.ListFilter{
		Category: c.Query("categoria"),
		Page:     1,
		PageSize: legacyPageSize,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	out := make([]dto.LegacyProduct, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToLegacyProduct(p))
	}
	c.JSON(http.StatusOK, out)
}

// List returns a paginated product listing
func (h *ProductHandler) List(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	products, total, err := h.service.List(c.Request.Context(), catalogapp.ListFilter{
		Category: req.Category,
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, products, total, req.Page, req.PageSize)
}

// Get returns a single product by ID
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	product, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// Create creates a new product
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.service.Create(c.Request.Context(), catalogapp.CreateProductRequest{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		ExtraImages: req.ExtraImages,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, product)
}

// Update updates an existing product
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.service.Update(c.Request.Context(), id, catalogapp.UpdateProductRequest{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		ExtraImages: req.ExtraImages,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// AdjustStock applies a relative stock change
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.service.AdjustStock(c.Request.Context(), id, req.Delta)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete removes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *ProductHandler) bindID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "invalid product id")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "invalid product id")
		return uuid.Nil, false
	}
	return id, true
}
