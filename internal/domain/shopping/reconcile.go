package shopping

import "github.com/shopspring/decimal"

// ReconciledLine is a cart line joined with its catalog product, priced and
// totaled. Produced fresh on every reconciliation; never persisted.
type ReconciledLine struct {
	ProductID string
	Name      string
	Category  string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

// Reconciliation is the result of joining a cart against a catalog snapshot.
// Orphan lines (cart entries whose product no longer resolves in the
// snapshot) are excluded from Lines and Subtotal and counted separately.
type Reconciliation struct {
	Lines       []ReconciledLine
	Subtotal    decimal.Decimal
	OrphanCount int
}

// Join reconciles cart lines against a catalog snapshot. It is pure and
// deterministic: line order follows cart insertion order, and identical
// inputs always produce an identical result. A nil catalog treats every
// line as an orphan.
func Join(state *State, catalog *Catalog) Reconciliation {
	result := Reconciliation{
		Lines:    make([]ReconciledLine, 0, state.Len()),
		Subtotal: decimal.Zero,
	}
	for _, ln := range state.Lines() {
		product, ok := catalog.Get(ln.ProductID)
		if !ok {
			result.OrphanCount++
			continue
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(ln.Quantity)))
		result.Lines = append(result.Lines, ReconciledLine{
			ProductID: ln.ProductID,
			Name:      product.Name,
			Category:  product.Category,
			UnitPrice: product.Price,
			Quantity:  ln.Quantity,
			LineTotal: lineTotal,
		})
		result.Subtotal = result.Subtotal.Add(lineTotal)
	}
	return result
}
