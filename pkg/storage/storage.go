// Package storage defines the file store used for uploaded documents,
// STL models, invoices and mold photos.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain"
)

// ErrObjectNotFound is returned when a key does not exist.
var ErrObjectNotFound = fmt.Errorf("file %w", domain.ErrNotFound)

// ErrInvalidKey is returned for keys that escape the store or are empty.
var ErrInvalidKey = fmt.Errorf("invalid storage key: %w", domain.ErrValidation)

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// PutResult is returned by Put.
type PutResult struct {
	Key      string
	Size     int64
	Checksum string
}

// FileStore is implemented by every storage backend.
type FileStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (*PutResult, error)
	// Get opens the object for reading. Callers close the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Stat(ctx context.Context, key string) (*ObjectInfo, error)
}

// Presigner is implemented by backends that can hand out time-limited
// download URLs.
type Presigner interface {
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
