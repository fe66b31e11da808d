// Package sqlite provides a file or in-memory SQLite connection for local development and tests.
package sqlite

import (
	"log/slog"
	"strings"

	"novelhub/config"
	"novelhub/internal/errors"
	"novelhub/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultPath = "file:novelhub.db"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured SQLite database and applies the shared session defaults.
func New(params Params) (*gorm.DB, error) {
	path := defaultPath
	if params.Config.SQLite != nil && params.Config.SQLite.Path != "" {
		path = params.Config.SQLite.Path
	}

	db, err := Open(path)
	if err != nil {
		return nil, err
	}

	return postgres.Configure(db, params.Lifecycle, params.Logger, params.Config, "SQLite")
}

// Open connects to dsn with foreign keys enforced. SQLite serialises writers, so
// the pool is limited to a single connection.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormsqlite.Open(withForeignKeys(dsn)), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// OpenInMemory opens a private in-memory database named name.
func OpenInMemory(name string) (*gorm.DB, error) {
	return Open("file:" + name + "?mode=memory&cache=shared")
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}

	return dsn + "?_foreign_keys=on"
}
