package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fuelcost/internal/dbx"
	"github.com/dmitrijs2005/fuelcost/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/fuelcost/internal/server/repositories/vehicles"
)

// RepositoryManager vends repositories bound to a DB handle, usually the
// transaction of the current operation.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Vehicles(db dbx.DBTX) vehicles.Repository
}
