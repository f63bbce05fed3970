package infra

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/benaja-bendo/Le-creuset-backend/infra/migrations"
	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/model"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	migrate "github.com/golang-migrate/migrate/v4"
	// Registers the postgres database driver for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date. With DATABASE_MIGRATIONS=true the
// embedded SQL migrations run through golang-migrate; otherwise GORM
// AutoMigrate derives the schema from the models.
func Migrate(db *gorm.DB, cnf *config.DB, logger *slog.Logger) error {
	if cnf.Migrations {
		if IsSQLite(cnf.Url) {
			return errors.New("sql migrations require a postgres DATABASE_URL")
		}
		logger.Info("Running SQL migrations")
		return runSQLMigrations(cnf.Url)
	}
	logger.Info("Running GORM AutoMigrate")
	if err := model.AutoMigrate(db); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func runSQLMigrations(dsn string) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
