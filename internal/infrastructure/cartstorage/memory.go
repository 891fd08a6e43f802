package cartstorage

import (
	"context"
	"sync"

	"github.com/supertienda/storefront/internal/domain/shopping"
)

// MemorySlot holds the cart blob in memory. Useful for tests and for
// running without any persistence configured.
type MemorySlot struct {
	mu    sync.RWMutex
	data  []byte
	found bool
}

// NewMemorySlot creates an empty in-memory cart slot
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// Read returns the stored cart blob
func (s *MemorySlot) Read(ctx context.Context) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.found {
		return nil, false, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, true, nil
}

// Write replaces the stored cart blob
func (s *MemorySlot) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.found = true
	return nil
}

var _ shopping.Slot = (*MemorySlot)(nil)
