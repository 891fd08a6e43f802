package catalogclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/supertienda/storefront/internal/domain/shopping"
	"github.com/supertienda/storefront/internal/infrastructure/config"
)

// maxResponseSize is the maximum allowed catalog response size (10MB)
const maxResponseSize = 10 * 1024 * 1024

// Client fetches the product catalog from the storefront backend over HTTP.
// It implements shopping.CatalogFetcher.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a catalog client for the given endpoint
func New(cfg config.CatalogConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint: cfg.Endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("catalogclient"),
	}
}

// Fetch retrieves the full product list from the remote endpoint.
// Transport failures, non-2xx statuses, and malformed payloads are all
// reported as a shopping.NetworkError.
func (c *Client) Fetch(ctx context.Context) ([]shopping.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, shopping.NewNetworkError(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("catalog request failed", zap.Error(err))
		return nil, shopping.NewNetworkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, shopping.NewNetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("catalog request returned error status",
			zap.Int("status", resp.StatusCode))
		return nil, shopping.NewNetworkError(fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	var wire []wireProduct
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, shopping.NewNetworkError(fmt.Errorf("decoding catalog: %w", err))
	}

	products := make([]shopping.Product, 0, len(wire))
	for _, w := range wire {
		products = append(products, w.toProduct())
	}

	c.logger.Debug("catalog fetched", zap.Int("products", len(products)))
	return products, nil
}

// wireProduct mirrors the JSON shape served by the catalog endpoint.
// Field names follow the legacy API contract.
type wireProduct struct {
	ID          flexibleID      `json:"id"`
	Name        string          `json:"nombre"`
	Category    string          `json:"categoria"`
	Price       decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"imagenUrl"`
	Description string          `json:"descripcion"`
	ExtraImages imageList       `json:"imagenesAdicionales"`
}

func (w wireProduct) toProduct() shopping.Product {
	return shopping.Product{
		ID:          string(w.ID),
		Name:        w.Name,
		Category:    w.Category,
		Price:       w.Price,
		Stock:       w.Stock,
		ImageURL:    w.ImageURL,
		Description: w.Description,
		ExtraImages: []string(w.ExtraImages),
	}
}

var _ shopping.CatalogFetcher = (*Client)(nil)
