package labelstore

import (
	"context"
	"io"
)

// Store keeps the uploaded label images in a single flat keyspace addressed
// by original filename. Saving an existing name silently overwrites it.
type Store interface {
	// Save stores the image under name, replacing any previous content.
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	// Fetch returns a local filesystem path for the stored image so it can
	// be attached to an outbound mail. ok is false when no image exists
	// under that name.
	Fetch(ctx context.Context, name string) (path string, ok bool, err error)
}
