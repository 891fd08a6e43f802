package shopping

import (
	"fmt"

	"github.com/supertienda/storefront/internal/domain/shared"
)

// Session-level errors. Catalog and checkout errors are reported outward;
// storage errors are absorbed at the cart store boundary.
var (
	// ErrEmptyCart is returned when checkout is attempted with no valid lines
	ErrEmptyCart = shared.NewDomainError("EMPTY_CART", "Cart has no valid lines to check out")

	// ErrInvalidQuantity is returned when an add is called with a non-positive quantity
	ErrInvalidQuantity = shared.NewDomainError("INVALID_ARGUMENT", "Quantity must be at least 1")
)

// NetworkError indicates that the catalog could not be fetched. The session
// surfaces a degraded view and never retries automatically.
type NetworkError struct {
	Cause error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("catalog fetch failed: %v", e.Cause)
}

// Unwrap exposes the underlying cause
func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// NewNetworkError wraps a fetch failure
func NewNetworkError(cause error) *NetworkError {
	return &NetworkError{Cause: cause}
}
