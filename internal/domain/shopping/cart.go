package shopping

import (
	"encoding/json"
	"fmt"
)

// Line is a single cart entry: a product identifier and how many units the
// shopper wants. A stored line always has quantity >= 1.
type Line struct {
	ProductID string
	Quantity  int
}

// State is the shopper's cart: at most one line per product identifier,
// kept in insertion order for stable display.
type State struct {
	lines []Line
	index map[string]int
}

// NewState creates an empty cart state
func NewState() *State {
	return &State{index: make(map[string]int)}
}

// Len returns the number of lines
func (s *State) Len() int {
	return len(s.lines)
}

// Lines returns the cart lines in insertion order
func (s *State) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Get returns the line for a product identifier, if present
func (s *State) Get(productID string) (Line, bool) {
	idx, ok := s.index[productID]
	if !ok {
		return Line{}, false
	}
	return s.lines[idx], true
}

// TotalItemCount returns the sum of quantities across all lines
func (s *State) TotalItemCount() int {
	total := 0
	for _, ln := range s.lines {
		total += ln.Quantity
	}
	return total
}

// Add merges quantity into an existing line or appends a new one.
// Quantity must be >= 1; violating that is a caller error.
func (s *State) Add(productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if idx, ok := s.index[productID]; ok {
		s.lines[idx].Quantity += quantity
		return nil
	}
	s.index[productID] = len(s.lines)
	s.lines = append(s.lines, Line{ProductID: productID, Quantity: quantity})
	return nil
}

// Remove deletes the line if present. Returns false (not an error) when the
// product is absent.
func (s *State) Remove(productID string) bool {
	idx, ok := s.index[productID]
	if !ok {
		return false
	}
	s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	delete(s.index, productID)
	for i := idx; i < len(s.lines); i++ {
		s.index[s.lines[i].ProductID] = i
	}
	return true
}

// ChangeQuantity applies a relative quantity change. A resulting quantity
// of zero or less removes the line entirely; a line is never stored with
// quantity below 1. Returns false when the product is absent.
func (s *State) ChangeQuantity(productID string, delta int) bool {
	idx, ok := s.index[productID]
	if !ok {
		return false
	}
	next := s.lines[idx].Quantity + delta
	if next < 1 {
		s.Remove(productID)
		return true
	}
	s.lines[idx].Quantity = next
	return true
}

// Clone returns an independent copy of the state
func (s *State) Clone() *State {
	clone := NewState()
	for _, ln := range s.lines {
		clone.index[ln.ProductID] = len(clone.lines)
		clone.lines = append(clone.lines, ln)
	}
	return clone
}

// cartLineJSON is the stored slot shape. The field names predate this
// implementation and are kept for compatibility with existing stored carts.
type cartLineJSON struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"cantidad"`
}

// MarshalJSON serializes the state as the stored line array
func (s *State) MarshalJSON() ([]byte, error) {
	wire := make([]cartLineJSON, 0, len(s.lines))
	for _, ln := range s.lines {
		wire = append(wire, cartLineJSON{ProductID: ln.ProductID, Quantity: ln.Quantity})
	}
	return json.Marshal(wire)
}

// UnmarshalJSON deserializes a stored line array. Lines violating the
// quantity or uniqueness invariants make the whole blob invalid; the caller
// decides how to recover (the cart store resets to an empty cart).
func (s *State) UnmarshalJSON(data []byte) error {
	var wire []cartLineJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	next := NewState()
	for _, ln := range wire {
		if ln.ProductID == "" {
			return fmt.Errorf("cart line with empty product id")
		}
		if ln.Quantity < 1 {
			return fmt.Errorf("cart line %q with quantity %d", ln.ProductID, ln.Quantity)
		}
		if _, dup := next.index[ln.ProductID]; dup {
			return fmt.Errorf("duplicate cart line for product %q", ln.ProductID)
		}
		next.index[ln.ProductID] = len(next.lines)
		next.lines = append(next.lines, Line{ProductID: ln.ProductID, Quantity: ln.Quantity})
	}
	*s = *next
	return nil
}
