package infra

import (
	"errors"
	"strings"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sqlitePrefix = "sqlite:"

// NewDBConnection opens the database named by cnf.Url. Postgres URLs use the
// pgx driver; "sqlite:<path>" opens a local SQLite file for development.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	connection, err := gorm.Open(dialector(cnf.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	if IsSQLite(cnf.Url) {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
	}
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}

// IsSQLite reports whether url selects the SQLite driver.
func IsSQLite(url string) bool {
	return strings.HasPrefix(url, sqlitePrefix)
}

func dialector(url string) gorm.Dialector {
	if IsSQLite(url) {
		path := strings.TrimPrefix(url, sqlitePrefix)
		if !strings.Contains(path, "?") {
			path += "?_foreign_keys=1"
		}
		return sqlite.Open(path)
	}
	return postgres.Open(url)
}
