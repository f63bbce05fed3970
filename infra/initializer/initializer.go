// Package initializer builds the infrastructure the services run on.
package initializer

import (
	"context"
	"fmt"
	"os"

	"github.com/benaja-bendo/Le-creuset-backend/infra"
	"github.com/benaja-bendo/Le-creuset-backend/infra/mail"
	infra_repository "github.com/benaja-bendo/Le-creuset-backend/infra/repository"
	infra_storage "github.com/benaja-bendo/Le-creuset-backend/infra/storage"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/app"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
)

// InitializeDependencies initializes all the application dependencies. The
// returned cleanup closes the database pool.
func InitializeDependencies(ctx context.Context, cfg *config.App) (
	deps *app.Deps,
	cleanup func(),
	err error,
) {
	deps = &app.Deps{}
	logger := SetupLogger(cfg.Log, os.Stdout)
	deps.Logger = logger

	// Initialize database
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	cleanup = func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("Failed to close database", "error", err)
		}
	}
	if err = infra.Migrate(db, cfg.DB, logger); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize unit of work
	deps.Uow = infra_repository.NewUoW(db)

	// Initialize file store
	deps.Store, err = infra_storage.New(ctx, cfg.Storage)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to initialize file store: %w", err)
	}
	logger.Info("File store ready", "driver", cfg.Storage.Driver)

	// Initialize notifier
	deps.Notifier = mail.New(cfg.Mail, logger)

	return deps, cleanup, nil
}
