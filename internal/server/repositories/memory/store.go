// Package memory keeps accounts and vehicles in process memory. It backs
// the "memory" database mode and the service tests. Each call is atomic on
// its own; there are no multi-call transactions.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/fuelcost/internal/common"
	"github.com/dmitrijs2005/fuelcost/internal/server/models"
	"github.com/dmitrijs2005/fuelcost/internal/server/repositories/outcome"
)

type vehicleKey struct {
	accountID int64
	vehicleID int64
}

// Store holds both tables.
type Store struct {
	mu            sync.Mutex
	now           func() time.Time
	last          time.Time
	nextAccountID int64
	nextVehicleID int64
	accounts      map[int64]models.Account
	vehicles      map[vehicleKey]models.Vehicle
}

func NewStore() *Store {
	return &Store{
		now:      time.Now,
		accounts: map[int64]models.Account{},
		vehicles: map[vehicleKey]models.Vehicle{},
	}
}

// tick returns a timestamp strictly after every earlier one. Callers hold mu.
func (s *Store) tick() time.Time {
	t := s.now().UTC().Truncate(time.Microsecond)
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

func matches(version int64, expected *int64) bool {
	return expected == nil || *expected == version
}

// Accounts returns the account table of s.
func (s *Store) Accounts() *AccountRepository {
	return &AccountRepository{s: s}
}

// Vehicles returns the vehicle table of s.
func (s *Store) Vehicles() *VehicleRepository {
	return &VehicleRepository{s: s}
}

type AccountRepository struct {
	s *Store
}

func (r *AccountRepository) Insert(ctx context.Context) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextAccountID++
	now := r.s.tick()
	a := models.Account{ID: r.s.nextAccountID, Version: 1, CreateTime: now, UpdateTime: now}
	r.s.accounts[a.ID] = a
	return &a, nil
}

func (r *AccountRepository) Get(ctx context.Context, id int64) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.accounts[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &a, nil
}

// LockForKeyShare only checks existence; Insert on the vehicle table
// re-checks under the store lock.
func (r *AccountRepository) LockForKeyShare(ctx context.Context, id int64) error {
	_, err := r.Get(ctx, id)
	return err
}

func (r *AccountRepository) Update(ctx context.Context, id int64, expected *int64) (outcome.Result[*models.Account], error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.accounts[id]
	if !ok || !matches(a.Version, expected) {
		return outcome.Missed[*models.Account](expected), nil
	}
	a.Version++
	a.UpdateTime = r.s.tick()
	r.s.accounts[id] = a
	return outcome.Ok(&a), nil
}

func (r *AccountRepository) Delete(ctx context.Context, id int64, expected *int64) (outcome.Result[struct{}], error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.accounts[id]
	if !ok || !matches(a.Version, expected) {
		return outcome.Missed[struct{}](expected), nil
	}
	delete(r.s.accounts, id)
	for k := range r.s.vehicles {
		if k.accountID == id {
			delete(r.s.vehicles, k)
		}
	}
	return outcome.Ok(struct{}{}), nil
}

func (r *AccountRepository) List(ctx context.Context, afterID int64, limit int) ([]*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*models.Account, 0, limit)
	for _, a := range r.s.accounts {
		if a.ID > afterID {
			result = append(result, &a)
		}
	}
	slices.SortFunc(result, func(a, b *models.Account) int { return cmp.Compare(a.ID, b.ID) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

type VehicleRepository struct {
	s *Store
}

func (r *VehicleRepository) Insert(ctx context.Context, accountID int64, displayName *string) (*models.Vehicle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.accounts[accountID]; !ok {
		return nil, common.ErrNotFound
	}
	r.s.nextVehicleID++
	now := r.s.tick()
	v := models.Vehicle{
		AccountID:   accountID,
		ID:          r.s.nextVehicleID,
		Version:     1,
		CreateTime:  now,
		UpdateTime:  now,
		DisplayName: clone(displayName),
	}
	r.s.vehicles[vehicleKey{accountID, v.ID}] = v
	return copyVehicle(v), nil
}

func (r *VehicleRepository) Get(ctx context.Context, accountID, vehicleID int64) (*models.Vehicle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.vehicles[vehicleKey{accountID, vehicleID}]
	if !ok {
		return nil, common.ErrNotFound
	}
	return copyVehicle(v), nil
}

func (r *VehicleRepository) Update(ctx context.Context, in *models.Vehicle, expected *int64) (outcome.Result[*models.Vehicle], error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k := vehicleKey{in.AccountID, in.ID}
	v, ok := r.s.vehicles[k]
	if !ok || !matches(v.Version, expected) {
		return outcome.Missed[*models.Vehicle](expected), nil
	}
	v.Version++
	v.UpdateTime = r.s.tick()
	v.DisplayName = clone(in.DisplayName)
	r.s.vehicles[k] = v
	return outcome.Ok(copyVehicle(v)), nil
}

func (r *VehicleRepository) Delete(ctx context.Context, accountID, vehicleID int64, expected *int64) (outcome.Result[struct{}], error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k := vehicleKey{accountID, vehicleID}
	v, ok := r.s.vehicles[k]
	if !ok || !matches(v.Version, expected) {
		return outcome.Missed[struct{}](expected), nil
	}
	delete(r.s.vehicles, k)
	return outcome.Ok(struct{}{}), nil
}

func (r *VehicleRepository) List(ctx context.Context, accountID, afterID int64, limit int) ([]*models.Vehicle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*models.Vehicle, 0, limit)
	for k, v := range r.s.vehicles {
		if k.accountID == accountID && k.vehicleID > afterID {
			result = append(result, copyVehicle(v))
		}
	}
	slices.SortFunc(result, func(a, b *models.Vehicle) int { return cmp.Compare(a.ID, b.ID) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func clone(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func copyVehicle(v models.Vehicle) *models.Vehicle {
	v.DisplayName = clone(v.DisplayName)
	return &v
}
