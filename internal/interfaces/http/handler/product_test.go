package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	catalogapp "github.com/supertienda/storefront/internal/application/catalog"
	"github.com/supertienda/storefront/internal/domain/catalog"
	"github.com/supertienda/storefront/internal/infrastructure/persistence"
	"github.com/supertienda/storefront/internal/interfaces/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupProductAPI wires the handler against an in-memory database with a
// pass-through auth middleware.
func setupProductAPI(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalog.Product{}))

	repo := persistence.NewGormProductRepository(db)
	service := catalogapp.NewProductService(repo)
	h := NewProductHandler(service)

	engine := gin.New()
	api := engine.Group("/api")
	h.Register(api, func(c *gin.Context) { c.Next() })
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func createProduct(t *testing.T, engine *gin.Engine, code, name, category string, price float64, stock int) string {
	t.Helper()

	w := doJSON(t, engine, http.MethodPost, "/api/admin/products", gin.H{
		"code":     code,
		"name":     name,
		"category": category,
		"price":    price,
		"stock":    stock,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decodeEnvelope(t, w)
	data := resp.Data.(map[string]any)
	return data["id"].(string)
}

func TestProductHandler_CreateAndGet(t *testing.T) {
	engine := setupProductAPI(t)

	id := createProduct(t, engine, "BAL-001", "Soccer Ball", "sports", 25000, 5)

	w := doJSON(t, engine, http.MethodGet, "/api/admin/products/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "BAL-001", data["code"])
	assert.Equal(t, "Soccer Ball", data["name"])
	assert.Equal(t, float64(5), data["stock"])
}

func TestProductHandler_Create_MissingName(t *testing.T) {
	engine := setupProductAPI(t)

	w := doJSON(t, engine, http.MethodPost, "/api/admin/products", gin.H{
		"code":     "BAL-001",
		"category": "sports",
		"price":    25000,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
}

func TestProductHandler_Create_DuplicateCode(t *testing.T) {
	engine := setupProductAPI(t)

	createProduct(t, engine, "BAL-001", "Soccer Ball", "sports", 25000, 5)

	w := doJSON(t, engine, http.MethodPost, "/api/admin/products", gin.H{
		"code":     "BAL-001",
		"name":     "Another Ball",
		"category": "sports",
		"price":    10000,
	})
	require.Equal(t, http.StatusConflict, w.Code)

	resp := decodeEnvelope(t, w)
	assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
}

func TestProductHandler_ListLegacy(t *testing.T) {
	engine := setupProductAPI(t)

	createProduct(t, engine, "BAL-001", "Soccer Ball", "sports", 25000, 5)
	createProduct(t, engine, "CAM-001", "Team Jersey", "clothing", 48000, 3)

	w := doJSON(t, engine, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []dto.LegacyProduct
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 2)

	byName := map[string]dto.LegacyProduct{}
	for _, p := range products {
		byName[p.Name] = p
	}
	ball := byName["Soccer Ball"]
	assert.NotEmpty(t, ball.ID)
	assert.Equal(t, "sports", ball.Category)
	assert.Equal(t, float64(25000), ball.Price)
	assert.Equal(t, 5, ball.Stock)
}

func TestProductHandler_ListLegacy_CategoryFilter(t *testing.T) {
	engine := setupProductAPI(t)

	createProduct(t, engine, "BAL-001", "Soccer Ball", "sports", 25000, 5)
	createProduct(t, engine, "CAM-001", "Team Jersey", "clothing", 48000, 3)

	w := doJSON(t, engine, http.MethodGet, "/api/products?categoria=clothing", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []dto.LegacyProduct
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Team Jersey", products[0].Name)
}

func TestProductHandler_ListLegacy_Empty(t *testing.T) {
	engine := setupProductAPI(t)

	w := doJSON(t, engine, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestProductHandler_List_Paginated(t *testing.T) {
	engine := setupProductAPI(t)

	for i := 1; i <= 5; i++ {
		createProduct(t, engine, fmt.Sprintf("SKU-%03d", i), fmt.Sprintf("Product %d", i), "sports", 1000, 1)
	}

	w := doJSON(t, engine, http.MethodGet, "/api/admin/products?page=1&page_size=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(5), resp.Meta.Total)
	assert.Equal(t, 1, resp.Meta.Page)
	assert.Equal(t, 2, resp.Meta.PageSize)
	assert.Equal(t, 3, resp.Meta.TotalPages)
	assert.Len(t, resp.Data.([]any), 2)
}

func TestProductHandler_Update(t *testing.T) {
	engine := setupProductAPI(t)

	id := createProduct(t, engine, "BAL-001", "Soccer Ball", "sports", 25000, 5)

	w := doJSON(t, engine, http.MethodPut, "/api/admin/products/"+id, gin.H{
		"name":  "Pro Soccer Ball",
		"price": 32000,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeEnvelope(t, w)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "Pro Soccer Ball", data["name"])
	assert.Equal(t, "32000", data["price"])
	assert.Equal(t, "sports", data["category"])
}

func TestProductHandler_Update_NotFound(t *testing.T) {
	engine := setupProductAPI(t)

	w := doJSON(t, engine, http.MethodPut, "/api/admin/products/9f9e6f3e-0c65-4f2f-8f18-0a4f5d6e7a8b", gin.H{
		"name": "Ghost",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductHandler_AdjustStock(t *testing.T) {
	engine := setupProductAPI(t)

	id := createProduct(t, engine, "BAL-001", "Soccer Ball", "sports", 25000, 5)

	w := doJSON(t, engine, http.MethodPatch, "/api/admin/products/"+id+"/stock", gin.H{"delta": -3})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeEnvelope(t, w)
	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(2), data["stock"])
}

func TestProductHandler_AdjustStock_BelowZero(t *testing.T) {
	engine := setupProductAPI(t)

	id := createProduct(t, engine, "BAL-001", "Soccer Ball", "sports", 25000, 1)

	w := doJSON(t, engine, http.MethodPatch, "/api/admin/products/"+id+"/stock", gin.H{"delta": -5})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeEnvelope(t, w)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
}

func TestProductHandler_Delete(t *testing.T) {
	engine := setupProductAPI(t)

	id := createProduct(t, engine, "BAL-001", "Soccer Ball", "sports", 25000, 5)

	w := doJSON(t, engine, http.MethodDelete, "/api/admin/products/"+id, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/admin/products/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductHandler_Get_InvalidID(t *testing.T) {
	engine := setupProductAPI(t)

	w := doJSON(t, engine, http.MethodGet, "/api/admin/products/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeEnvelope(t, w)
	assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
}
