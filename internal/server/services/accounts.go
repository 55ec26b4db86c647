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
)

const accountCursorKind = "account"

// accountCursor is the continuation record of ListAccounts.
type accountCursor struct {
	_         struct{} `cbor:",toarray"`
	Kind      string
	AccountID int64
}

func (c *accountCursor) Valid() bool {
	return c.Kind == accountCursorKind && c.AccountID > 0
}

// AccountPage is one page of ListAccounts.
type AccountPage struct {
	Accounts      []*models.Account
	NextPageToken string
}

type AccountService struct {
	tx          dbx.Transactor
	repomanager repomanager.RepositoryManager
	tokens      *pagetoken.Codec
	pages       pagetoken.Policy
}

func NewAccountService(tx dbx.Transactor, m repomanager.RepositoryManager, tokens *pagetoken.Codec, pages pagetoken.Policy) *AccountService {
	return &AccountService{
		tx:          tx,
		repomanager: m,
		tokens:      tokens,
		pages:       pages,
	}
}

func (s *AccountService) Create(ctx context.Context) (*models.Account, error) {
	var account *models.Account
	err := s.tx.InTx(ctx, false, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		account, err = s.repomanager.Accounts(tx).Insert(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error creating account: %w", err)
	}
	return account, nil
}

func (s *AccountService) Get(ctx context.Context, name string) (*models.Account, error) {
	key, err := names.ParseAccountName("name", name)
	if err != nil {
		return nil, err
	}

	var account *models.Account
	err = s.tx.InTx(ctx, true, func(ctx context.Context, tx dbx.DBTX) error {
		account, err = s.repomanager.Accounts(tx).Get(ctx, key.AccountID)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFound(name)
		}
		return nil, fmt.Errorf("error getting account: %w", err)
	}
	return account, nil
}

// Update bumps the version of the account. A malformed etag never matches.
func (s *AccountService) Update(ctx context.Context, name, tag string) (*models.Account, error) {
	key, err := names.ParseAccountName("name", name)
	if err != nil {
		return nil, err
	}
	expected := etag.TryParseVersion(tag)

	var account *models.Account
	err = s.tx.InTx(ctx, false, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := s.repomanager.Accounts(tx).Update(ctx, key.AccountID, expected)
		if err != nil {
			return fmt.Errorf("error updating account: %w", err)
		}
		account, err = res.Unwrap(name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Delete removes the account and its vehicles. A malformed etag is rejected.
func (s *AccountService) Delete(ctx context.Context, name, tag string) error {
	key, err := names.ParseAccountName("name", name)
	if err != nil {
		return err
	}
	expected, err := etag.ParseOptionalVersion(tag)
	if err != nil {
		return err
	}

	return s.tx.InTx(ctx, false, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := s.repomanager.Accounts(tx).Delete(ctx, key.AccountID, expected)
		if err != nil {
			return fmt.Errorf("error deleting account: %w", err)
		}
		_, err = res.Unwrap(name)
		return err
	})
}

func (s *AccountService) List(ctx context.Context, pageSize int32, pageToken string) (*AccountPage, error) {
	var cursor accountCursor
	if _, err := s.tokens.Decode(pageToken, &cursor); err != nil {
		return nil, err
	}
	limit := s.pages.Clamp(pageSize)

	var rows []*models.Account
	err := s.tx.InTx(ctx, true, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		rows, err = s.repomanager.Accounts(tx).List(ctx, cursor.AccountID, limit)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}

	next, err := pagetoken.Next(s.tokens, rows, limit, func(last *models.Account) pagetoken.Record {
		return &accountCursor{Kind: accountCursorKind, AccountID: last.ID}
	})
	if err != nil {
		return nil, err
	}
	return &AccountPage{Accounts: rows, NextPageToken: next}, nil
}
