// Package accounts persists account rows.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/fuelcost/internal/server/models"
	"github.com/dmitrijs2005/fuelcost/internal/server/repositories/outcome"
)

// Repository is the account table. A nil expected version makes a write
// unconditional.
type Repository interface {
	Insert(ctx context.Context) (*models.Account, error)
	Get(ctx context.Context, id int64) (*models.Account, error)
	// LockForKeyShare fails with common.ErrNotFound when the account is absent
	// and otherwise keeps it from being deleted until the transaction ends.
	LockForKeyShare(ctx context.Context, id int64) error
	Update(ctx context.Context, id int64, expected *int64) (outcome.Result[*models.Account], error)
	Delete(ctx context.Context, id int64, expected *int64) (outcome.Result[struct{}], error)
	// List returns at most limit accounts with id > afterID in id order.
	List(ctx context.Context, afterID int64, limit int) ([]*models.Account, error)
}
