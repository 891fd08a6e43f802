package cartstorage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/supertienda/storefront/internal/domain/shopping"
)

// FileSlot persists the cart blob as a single file on disk.
// Writes go through a temp file and rename so a crash mid-write
// never leaves a truncated cart behind.
type FileSlot struct {
	path string
}

// NewFileSlot creates a file-backed cart slot at the given path
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// Read returns the stored cart blob. A missing file is not an error,
// it just means no cart has been saved yet.
func (s *FileSlot) Read(ctx context.Context) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading cart file: %w", err)
	}
	return data, true, nil
}

// Write replaces the stored cart blob
func (s *FileSlot) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".cart-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp cart file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing cart file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing cart file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing cart file: %w", err)
	}
	return nil
}

var _ shopping.Slot = (*FileSlot)(nil)
