package models

import (
	"time"

	"github.com/dmitrijs2005/fuelcost/internal/server/names"
)

// Vehicle is a row of the vehicle table. DisplayName is nil when unset.
type Vehicle struct {
	AccountID   int64
	ID          int64
	Version     int64
	CreateTime  time.Time
	UpdateTime  time.Time
	DisplayName *string
}

func (v *Vehicle) Name() names.VehicleName {
	return names.VehicleName{AccountID: v.AccountID, VehicleID: v.ID}
}
