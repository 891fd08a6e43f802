package shopping

import (
	"github.com/shopspring/decimal"

	"github.com/supertienda/storefront/internal/domain/shopping"
)

// relatedProductLimit caps the related-products strip on the detail view
const relatedProductLimit = 4

// ProductCardView is the data behind one product card in the grid
type ProductCardView struct {
	ID       string
	Name     string
	Category string
	Price    decimal.Decimal
	ImageURL string
	InStock  bool
}

// ProductDetailView is the data behind the product detail page
type ProductDetailView struct {
	ProductCardView
	Description string
	Stock       int
	ExtraImages []string
	Related     []ProductCardView
}

// CartLineView is one reconciled cart row plus the image the cart page shows
type CartLineView struct {
	ProductID string
	Name      string
	Category  string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
	ImageURL  string
}

// CartView is the full cart page model
type CartView struct {
	Lines       []CartLineView
	Subtotal    decimal.Decimal
	OrphanCount int
	ItemCount   int
	Empty       bool
}

// GridView is the product listing page model
type GridView struct {
	Products   []ProductCardView
	Categories []string
	// Degraded is set when no catalog snapshot is available (failed or
	// pending load); rendering code shows the error state instead.
	Degraded bool
}

// ViewProjector derives plain view-models from the catalog cache and cart
// store. It performs no side effects and never writes to either source.
type ViewProjector struct {
	catalog *CatalogCache
	cart    *CartStore
}

// NewViewProjector creates a projector over the session's catalog and cart
func NewViewProjector(catalog *CatalogCache, cart *CartStore) *ViewProjector {
	return &ViewProjector{catalog: catalog, cart: cart}
}

// ProductGrid projects the visible product list for a query and category
func (p *ViewProjector) ProductGrid(query, category string) GridView {
	snapshot, ok := p.catalog.Snapshot()
	if !ok {
		return GridView{Degraded: true}
	}
	products := snapshot.Filter(query, category)
	cards := make([]ProductCardView, 0, len(products))
	for _, prod := range products {
		cards = append(cards, toCard(prod))
	}
	return GridView{Products: cards, Categories: snapshot.Categories()}
}

// ProductDetail projects the detail page for one product, including up to
// four related products from the same category.
func (p *ViewProjector) ProductDetail(productID string) (ProductDetailView, bool) {
	snapshot, ok := p.catalog.Snapshot()
	if !ok {
		return ProductDetailView{}, false
	}
	product, ok := snapshot.Get(productID)
	if !ok {
		return ProductDetailView{}, false
	}

	related := make([]ProductCardView, 0, relatedProductLimit)
	for _, candidate := range snapshot.ListByCategory(product.Category) {
		if candidate.ID == product.ID {
			continue
		}
		related = append(related, toCard(candidate))
		if len(related) == relatedProductLimit {
			break
		}
	}

	return ProductDetailView{
		ProductCardView: toCard(product),
		Description:     product.Description,
		Stock:           product.Stock,
		ExtraImages:     product.ExtraImages,
		Related:         related,
	}, true
}

// CartView projects the cart page: reconciled lines, subtotal, orphan and
// item counts. With no catalog snapshot every line is an orphan, which
// matches the degraded cart page.
func (p *ViewProjector) CartView() CartView {
	snapshot, _ := p.catalog.Snapshot()
	state := p.cart.Snapshot()
	result := shopping.Join(state, snapshot)

	lines := make([]CartLineView, 0, len(result.Lines))
	for _, ln := range result.Lines {
		view := CartLineView{
			ProductID: ln.ProductID,
			Name:      ln.Name,
			Category:  ln.Category,
			UnitPrice: ln.UnitPrice,
			Quantity:  ln.Quantity,
			LineTotal: ln.LineTotal,
		}
		if product, ok := snapshot.Get(ln.ProductID); ok {
			view.ImageURL = product.ImageURL
		}
		lines = append(lines, view)
	}

	return CartView{
		Lines:       lines,
		Subtotal:    result.Subtotal,
		OrphanCount: result.OrphanCount,
		ItemCount:   state.TotalItemCount(),
		Empty:       len(lines) == 0,
	}
}

// BadgeCount projects the cart badge counter
func (p *ViewProjector) BadgeCount() int {
	return p.cart.TotalItemCount()
}

// Checkout reconciles the current cart and composes the handoff message and
// URL. Fails with the empty-cart error when no line resolves against the
// catalog.
func (p *ViewProjector) Checkout(endpoint, recipient, referenceURL string) (message, handoff string, err error) {
	snapshot, _ := p.catalog.Snapshot()
	result := shopping.Join(p.cart.Snapshot(), snapshot)

	message, err = shopping.Compose(result.Lines, result.Subtotal, referenceURL)
	if err != nil {
		return "", "", err
	}
	return message, shopping.HandoffURL(endpoint, recipient, message), nil
}

func toCard(p shopping.Product) ProductCardView {
	return ProductCardView{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		InStock:  p.Stock > 0,
	}
}
