// Package storage provides the file store backends.
package storage

import (
	"context"
	"fmt"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/storage"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// New selects the backend named by cfg.Driver.
func New(ctx context.Context, cfg *config.Storage) (storage.FileStore, error) {
	switch cfg.Driver {
	case "", DriverLocal:
		path := "./uploads"
		if cfg.Local != nil && cfg.Local.Path != "" {
			path = cfg.Local.Path
		}
		return NewLocal(path)
	case DriverS3:
		return NewS3(ctx, cfg.S3)
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
