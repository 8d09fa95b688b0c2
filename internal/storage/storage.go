package storage

import (
	"context"
	"io"
)

// ObjectStore is the publishing surface: overwrite-semantics puts keyed by
// caller-chosen object names. Putting the same key twice replaces the content
// and returns the same public URL, which is what makes redeploys idempotent.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) (publicURL string, err error)
	Get(ctx context.Context, key string) ([]byte, error)
}
