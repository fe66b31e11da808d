// Package persistence selects the SQL backend and seeds demo data.
package persistence

import (
	"novelhub/internal/domain/constants"
	"novelhub/internal/errors"
	"novelhub/internal/infra/persistence/postgres"
	"novelhub/internal/infra/persistence/sqlite"

	"gorm.io/gorm"
)

// NewDatabase opens the backend selected by database.driver.
func NewDatabase(params postgres.Params) (*gorm.DB, error) {
	switch params.Config.Database.Driver {
	case constants.DatabaseDriverPostgres:
		return postgres.New(params)
	case constants.DatabaseDriverSQLite:
		return sqlite.New(sqlite.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
	default:
		return nil, errors.Errorf("unknown database driver: %s", params.Config.Database.Driver)
	}
}
