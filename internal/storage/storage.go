package storage

import (
	"context"
	"time"
)

// BlobStore abstracts uploaded-file storage. The import pipeline only needs
// Store/Fetch; attachment handling also uses Delete/SignedDownloadURL.
type BlobStore interface {
	Store(ctx context.Context, key string, data []byte, contentType string) error
	Fetch(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	SignedDownloadURL(key string, ttl time.Duration) (string, error)
}
