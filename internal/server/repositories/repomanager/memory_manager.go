package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fuelcost/internal/dbx"
	"github.com/dmitrijs2005/fuelcost/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/fuelcost/internal/server/repositories/memory"
	"github.com/dmitrijs2005/fuelcost/internal/server/repositories/vehicles"
)

// MemoryRepositoryManager serves every handle from one in-memory store.
// It pairs with dbx.NopTransactor.
type MemoryRepositoryManager struct {
	store *memory.Store
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{store: memory.NewStore()}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *MemoryRepositoryManager) Accounts(dbx.DBTX) accounts.Repository {
	return m.store.Accounts()
}

func (m *MemoryRepositoryManager) Vehicles(dbx.DBTX) vehicles.Repository {
	return m.store.Vehicles()
}
