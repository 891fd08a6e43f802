package shopping

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/supertienda/storefront/internal/domain/shopping"
)

// Listener receives the new cart state after every successful mutation
type Listener func(state *shopping.State)

// CartStore owns the persisted cart for a session. Every mutation is
// written through to the storage slot before subscribers are notified.
// Storage failures are absorbed here: a corrupt blob on construction resets
// to an empty cart, and a failed write keeps the in-memory mutation for the
// rest of the session (it will not survive a reload).
type CartStore struct {
	slot   shopping.Slot
	logger *zap.Logger

	mu        sync.Mutex
	state     *shopping.State
	listeners map[int]Listener
	nextSub   int
}

// NewCartStore constructs a cart store, eagerly loading the persisted cart.
// Missing or unreadable stored data yields an empty cart, never an error.
func NewCartStore(ctx context.Context, slot shopping.Slot, logger *zap.Logger) *CartStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &CartStore{
		slot:      slot,
		logger:    logger,
		state:     shopping.NewState(),
		listeners: make(map[int]Listener),
	}

	data, found, err := slot.Read(ctx)
	if err != nil {
		s.logger.Warn("cart slot unreadable, starting with empty cart", zap.Error(err))
		return s
	}
	if !found {
		return s
	}

	restored := shopping.NewState()
	if err := json.Unmarshal(data, restored); err != nil {
		s.logger.Warn("stored cart is corrupt, resetting to empty cart", zap.Error(err))
		return s
	}
	s.state = restored
	return s
}

// Snapshot returns a read-only copy of the cart state
func (s *CartStore) Snapshot() *shopping.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// TotalItemCount returns the sum of quantities across all lines
func (s *CartStore) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TotalItemCount()
}

// Add merges quantity into the line for productID, creating it if absent.
// Quantity must be >= 1.
func (s *CartStore) Add(ctx context.Context, productID string, quantity int) error {
	s.mu.Lock()
	if err := s.state.Add(productID, quantity); err != nil {
		s.mu.Unlock()
		return err
	}
	s.commitLocked(ctx)
	return nil
}

// Remove deletes the line for productID; a no-op if absent
func (s *CartStore) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	if !s.state.Remove(productID) {
		s.mu.Unlock()
		return
	}
	s.commitLocked(ctx)
}

// ChangeQuantity applies a +1/-1 style delta. Reaching zero removes the
// line. A no-op if the product is absent.
func (s *CartStore) ChangeQuantity(ctx context.Context, productID string, delta int) {
	s.mu.Lock()
	if !s.state.ChangeQuantity(productID, delta) {
		s.mu.Unlock()
		return
	}
	s.commitLocked(ctx)
}

// Subscribe registers a listener invoked synchronously after every
// successful mutation with the new snapshot. The returned handle removes
// the subscription.
func (s *CartStore) Subscribe(listener Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = listener
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// commitLocked persists the state and notifies subscribers. Called with the
// mutex held; releases it before invoking listeners so they can read the
// store.
func (s *CartStore) commitLocked(ctx context.Context) {
	data, err := json.Marshal(s.state)
	if err == nil {
		if werr := s.slot.Write(ctx, data); werr != nil {
			// in-memory state stands; the change is lost on reload
			s.logger.Warn("cart write failed, changes will not survive reload", zap.Error(werr))
		}
	} else {
		s.logger.Warn("cart serialization failed", zap.Error(err))
	}

	snapshot := s.state.Clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot.Clone())
	}
}
