package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/fuelcost/internal/common"
	"github.com/dmitrijs2005/fuelcost/internal/dbx"
	"github.com/dmitrijs2005/fuelcost/internal/server/models"
	"github.com/dmitrijs2005/fuelcost/internal/server/repositories/outcome"
)

const (
	table   = "account"
	columns = "account_id, version, create_time, update_time"

	// update_time moves forward on every write even if the clock does not.
	nextUpdateTime = "GREATEST(statement_timestamp(), update_time + interval '1 microsecond')"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
	sb sq.StatementBuilderType
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*models.Account, error) {
	a := &models.Account{}
	if err := s.Scan(&a.ID, &a.Version, &a.CreateTime, &a.UpdateTime); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *PostgresRepository) Insert(ctx context.Context) (*models.Account, error) {
	query, args, err := r.sb.
		Insert(table).
		Columns("version", "create_time", "update_time").
		Values(int64(1), sq.Expr("statement_timestamp()"), sq.Expr("statement_timestamp()")).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	a, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Account, error) {
	query, args, err := r.sb.
		Select(columns).
		From(table).
		Where(sq.Eq{"account_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	a, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) LockForKeyShare(ctx context.Context, id int64) error {
	query, args, err := r.sb.
		Select("account_id").
		From(table).
		Where(sq.Eq{"account_id": id}).
		Suffix("FOR KEY SHARE").
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	var got int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&got); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, expected *int64) (outcome.Result[*models.Account], error) {
	q := r.sb.
		Update(table).
		Set("version", sq.Expr("version + 1")).
		Set("update_time", sq.Expr(nextUpdateTime)).
		Where(sq.Eq{"account_id": id})
	if expected != nil {
		q = q.Where(sq.Eq{"version": *expected})
	}
	query, args, err := q.Suffix("RETURNING " + columns).ToSql()
	if err != nil {
		return outcome.Result[*models.Account]{}, fmt.Errorf("building query: %w", err)
	}

	a, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return outcome.Missed[*models.Account](expected), nil
		}
		return outcome.Result[*models.Account]{}, fmt.Errorf("db error: %w", err)
	}
	return outcome.Ok(a), nil
}

// Delete removes the account. Its vehicles go with it.
func (r *PostgresRepository) Delete(ctx context.Context, id int64, expected *int64) (outcome.Result[struct{}], error) {
	q := r.sb.
		Delete(table).
		Where(sq.Eq{"account_id": id})
	if expected != nil {
		q = q.Where(sq.Eq{"version": *expected})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return outcome.Result[struct{}]{}, fmt.Errorf("building query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return outcome.Result[struct{}]{}, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return outcome.Result[struct{}]{}, fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return outcome.Ok(struct{}{}), nil
	case 0:
		return outcome.Missed[struct{}](expected), nil
	default:
		return outcome.Result[struct{}]{}, fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func (r *PostgresRepository) List(ctx context.Context, afterID int64, limit int) ([]*models.Account, error) {
	query, args, err := r.sb.
		Select(columns).
		From(table).
		Where(sq.Gt{"account_id": afterID}).
		OrderBy("account_id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select accounts: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Account, 0, limit)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
