package shopping

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// Compose builds the deterministic checkout summary handed to the external
// messaging channel: a greeting, one line per reconciled cart line with
// name, quantity and line total, the grand total, and the reference URL.
// Checkout is disallowed on an empty or fully-orphaned cart.
func Compose(lines []ReconciledLine, subtotal decimal.Decimal, referenceURL string) (string, error) {
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}

	var b strings.Builder
	b.WriteString("Hello! I am interested in the following products:\n\n")
	for _, ln := range lines {
		fmt.Fprintf(&b, "- %s - Quantity: %d - $%s\n", ln.Name, ln.Quantity, ln.LineTotal.String())
	}
	fmt.Fprintf(&b, "\nTotal: $%s\n", subtotal.String())
	fmt.Fprintf(&b, "\nCart link: %s", referenceURL)

	return b.String(), nil
}

// HandoffURL builds the messaging handoff link. Opening it is the host's
// responsibility; the session only constructs it.
func HandoffURL(endpoint, recipient, message string) string {
	return fmt.Sprintf("%s/%s?text=%s",
		strings.TrimRight(endpoint, "/"),
		recipient,
		url.QueryEscape(message),
	)
}
