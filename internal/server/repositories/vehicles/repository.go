// Package vehicles persists vehicle rows, each owned by one account.
package vehicles

import (
	"context"

	"github.com/dmitrijs2005/fuelcost/internal/server/models"
	"github.com/dmitrijs2005/fuelcost/internal/server/repositories/outcome"
)

// Repository is the vehicle table. A nil expected version makes a write
// unconditional.
type Repository interface {
	// Insert fails with common.ErrNotFound when the account does not exist.
	Insert(ctx context.Context, accountID int64, displayName *string) (*models.Vehicle, error)
	Get(ctx context.Context, accountID, vehicleID int64) (*models.Vehicle, error)
	// Update replaces the attributes of v, which must carry its keys.
	Update(ctx context.Context, v *models.Vehicle, expected *int64) (outcome.Result[*models.Vehicle], error)
	Delete(ctx context.Context, accountID, vehicleID int64, expected *int64) (outcome.Result[struct{}], error)
	// List returns at most limit vehicles of the account with id > afterID in id order.
	List(ctx context.Context, accountID, afterID int64, limit int) ([]*models.Vehicle, error)
}
