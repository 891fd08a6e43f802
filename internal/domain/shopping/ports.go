package shopping

import "context"

// CatalogFetcher retrieves the full product set from the catalog service.
// Implementations live at the infrastructure boundary.
type CatalogFetcher interface {
	Fetch(ctx context.Context) ([]Product, error)
}

// Slot is the single named durable storage slot holding the serialized
// cart. Read reports found=false when nothing has been stored yet.
// Multiple sessions may share a slot without coordination; concurrent
// writes are last-writer-wins.
type Slot interface {
	Read(ctx context.Context) (data []byte, found bool, err error)
	Write(ctx context.Context, data []byte) error
}
