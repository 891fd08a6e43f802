// Package shopping holds the session-side model of the storefront: the
// catalog snapshot a shopper browses, the cart they assemble against it,
// and the pure logic that joins the two.
package shopping

import (
	"sort"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CategoryAll selects every category when listing or filtering
const CategoryAll = "all"

// Product is a catalog entry as seen by a browsing session. Identifiers are
// opaque stable keys assigned by the catalog service; the session never
// mutates products.
type Product struct {
	ID          string
	Name        string
	Category    string
	Price       decimal.Decimal
	Stock       int
	ImageURL    string
	Description string
	ExtraImages []string
}

// Catalog is an immutable snapshot of the product set for one session.
// A full reload replaces the snapshot atomically; there is no incremental
// refresh.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// NewCatalog builds a snapshot from the fetched product set. Later
// duplicates of the same ID are dropped so lookups stay unambiguous.
func NewCatalog(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if _, exists := c.byID[p.ID]; exists {
			continue
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c
}

// Len returns the number of products in the snapshot
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Get looks up a product by its identifier
func (c *Catalog) Get(id string) (Product, bool) {
	if c == nil {
		return Product{}, false
	}
	idx, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[idx], true
}

// Products returns every product in snapshot order
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns the distinct category labels observed in the snapshot,
// case-sensitive, in lexicographic order.
func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(c.products))
	categories := make([]string, 0)
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}

// ListByCategory returns the products with the given category label.
// CategoryAll returns every product.
func (c *Catalog) ListByCategory(category string) []Product {
	if c == nil {
		return nil
	}
	if category == CategoryAll {
		return c.Products()
	}
	out := make([]Product, 0)
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Filter returns the products whose name contains the query (case- and
// accent-insensitive) and that match the category; both predicates are
// ANDed. An empty query matches every name.
func (c *Catalog) Filter(query, category string) []Product {
	if c == nil {
		return nil
	}
	needle := foldText(query)
	out := make([]Product, 0)
	for _, p := range c.products {
		if category != CategoryAll && p.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(foldText(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// foldTransformer decomposes to NFD and strips combining marks, so that
// "Balón" and "balon" compare equal.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldText canonicalizes text for accent- and case-insensitive comparison
func foldText(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}
