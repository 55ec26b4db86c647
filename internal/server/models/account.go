// Package models defines server-side rows persisted in the database.
package models

import (
	"time"

	"github.com/dmitrijs2005/fuelcost/internal/server/names"
)

// Account is a row of the account table.
type Account struct {
	ID         int64
	Version    int64
	CreateTime time.Time
	UpdateTime time.Time
}

func (a *Account) Name() names.AccountName {
	return names.AccountName{AccountID: a.ID}
}
