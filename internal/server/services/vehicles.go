package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fuelcost/internal/common"
	"github.com/dmitrijs2005/fuelcost/internal/dbx"
	"github.com/dmitrijs2005/fuelcost/internal/etag"
	"github.com/dmitrijs2005/fuelcost/internal/pagetoken"
	"github.com/dmitrijs2005/fuelcost/internal/server/models"
	"github.com/dmitrijs2005/fuelcost/internal/server/names"
	"github.com/dmitrijs2005/fuelcost/internal/server/repositories/repomanager"
	"github.com/go-playground/validator/v10"
)

const (
	vehicleCursorKind = "vehicle"

	DisplayNameMaxLength = 30
)

// vehicleCursor is the continuation record of ListVehicles: the name of the
// last vehicle returned.
type vehicleCursor struct {
	_         struct{} `cbor:",toarray"`
	Kind      string
	AccountID int64
	VehicleID int64
}

func (c *vehicleCursor) Valid() bool {
	return c.Kind == vehicleCursorKind && c.AccountID > 0 && c.VehicleID > 0
}

type vehicleAttributes struct {
	DisplayName string `validate:"max=30"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// displayName maps the wire value to the column value: empty is NULL.
func displayName(s string) (*string, error) {
	if s == "" {
		return nil, nil
	}
	if err := validate.Struct(vehicleAttributes{DisplayName: s}); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return nil, common.InvalidArgument("display_name", fmt.Sprintf("must be at most %d characters", DisplayNameMaxLength))
		}
		return nil, err
	}
	return &s, nil
}

// VehiclePage is one page of ListVehicles.
type VehiclePage struct {
	Vehicles      []*models.Vehicle
	NextPageToken string
}

type VehicleService struct {
	tx          dbx.Transactor
	repomanager repomanager.RepositoryManager
	tokens      *pagetoken.Codec
	pages       pagetoken.Policy
}

func NewVehicleService(tx dbx.Transactor, m repomanager.RepositoryManager, tokens *pagetoken.Codec, pages pagetoken.Policy) *VehicleService {
	return &VehicleService{
		tx:          tx,
		repomanager: m,
		tokens:      tokens,
		pages:       pages,
	}
}

// Create adds a vehicle to the parent account. The parent is locked against
// deletion for the rest of the transaction before the insert.
func (s *VehicleService) Create(ctx context.Context, parent, name string) (*models.Vehicle, error) {
	key, err := names.ParseAccountName("parent", parent)
	if err != nil {
		return nil, err
	}
	dn, err := displayName(name)
	if err != nil {
		return nil, err
	}

	var vehicle *models.Vehicle
	err = s.tx.InTx(ctx, false, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Accounts(tx).LockForKeyShare(ctx, key.AccountID); err != nil {
			return err
		}
		var err error
		vehicle, err = s.repomanager.Vehicles(tx).Insert(ctx, key.AccountID, dn)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFound(parent)
		}
		return nil, fmt.Errorf("error creating vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *VehicleService) Get(ctx context.Context, name string) (*models.Vehicle, error) {
	key, err := names.ParseVehicleName("name", name)
	if err != nil {
		return nil, err
	}

	var vehicle *models.Vehicle
	err = s.tx.InTx(ctx, true, func(ctx context.Context, tx dbx.DBTX) error {
		vehicle, err = s.repomanager.Vehicles(tx).Get(ctx, key.AccountID, key.VehicleID)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFound(name)
		}
		return nil, fmt.Errorf("error getting vehicle: %w", err)
	}
	return vehicle, nil
}

// Update replaces the display name of the vehicle. An empty display name
// clears it. A malformed etag never matches.
func (s *VehicleService) Update(ctx context.Context, name, tag, newDisplayName string) (*models.Vehicle, error) {
	key, err := names.ParseVehicleName("name", name)
	if err != nil {
		return nil, err
	}
	expected := etag.TryParseVersion(tag)
	dn, err := displayName(newDisplayName)
	if err != nil {
		return nil, err
	}

	in := &models.Vehicle{AccountID: key.AccountID, ID: key.VehicleID, DisplayName: dn}
	var vehicle *models.Vehicle
	err = s.tx.InTx(ctx, false, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := s.repomanager.Vehicles(tx).Update(ctx, in, expected)
		if err != nil {
			return fmt.Errorf("error updating vehicle: %w", err)
		}
		vehicle, err = res.Unwrap(name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) Delete(ctx context.Context, name, tag string) error {
	key, err := names.ParseVehicleName("name", name)
	if err != nil {
		return err
	}
	expected, err := etag.ParseOptionalVersion(tag)
	if err != nil {
		return err
	}

	return s.tx.InTx(ctx, false, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := s.repomanager.Vehicles(tx).Delete(ctx, key.AccountID, key.VehicleID, expected)
		if err != nil {
			return fmt.Errorf("error deleting vehicle: %w", err)
		}
		_, err = res.Unwrap(name)
		return err
	})
}

// List pages through the vehicles of parent. A page token from another
// parent is rejected.
func (s *VehicleService) List(ctx context.Context, parent string, pageSize int32, pageToken string) (*VehiclePage, error) {
	key, err := names.ParseAccountName("parent", parent)
	if err != nil {
		return nil, err
	}
	cursor := vehicleCursor{AccountID: key.AccountID}
	ok, err := s.tokens.Decode(pageToken, &cursor)
	if err != nil {
		return nil, err
	}
	if ok && cursor.AccountID != key.AccountID {
		return nil, fmt.Errorf("%w: invalid page token", common.ErrInvalidArgument)
	}
	limit := s.pages.Clamp(pageSize)

	var rows []*models.Vehicle
	err = s.tx.InTx(ctx, true, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Accounts(tx).Get(ctx, key.AccountID); err != nil {
			return err
		}
		var err error
		rows, err = s.repomanager.Vehicles(tx).List(ctx, key.AccountID, cursor.VehicleID, limit)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFound(parent)
		}
		return nil, fmt.Errorf("error listing vehicles: %w", err)
	}

	next, err := pagetoken.Next(s.tokens, rows, limit, func(last *models.Vehicle) pagetoken.Record {
		return &vehicleCursor{Kind: vehicleCursorKind, AccountID: last.AccountID, VehicleID: last.ID}
	})
	if err != nil {
		return nil, err
	}
	return &VehiclePage{Vehicles: rows, NextPageToken: next}, nil
}
