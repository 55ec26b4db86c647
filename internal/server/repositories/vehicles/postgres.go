package vehicles

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
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	table   = "vehicle"
	columns = "account_id, vehicle_id, version, create_time, update_time, display_name"

	nextUpdateTime = "GREATEST(statement_timestamp(), update_time + interval '1 microsecond')"

	pgForeignKeyViolation = "23503"
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

func scanVehicle(s scanner) (*models.Vehicle, error) {
	v := &models.Vehicle{}
	var displayName sql.NullString
	if err := s.Scan(&v.AccountID, &v.ID, &v.Version, &v.CreateTime, &v.UpdateTime, &displayName); err != nil {
		return nil, err
	}
	if displayName.Valid {
		v.DisplayName = &displayName.String
	}
	return v, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, accountID int64, displayName *string) (*models.Vehicle, error) {
	query, args, err := r.sb.
		Insert(table).
		Columns("account_id", "version", "create_time", "update_time", "display_name").
		Values(accountID, int64(1), sq.Expr("statement_timestamp()"), sq.Expr("statement_timestamp()"), displayName).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) Get(ctx context.Context, accountID, vehicleID int64) (*models.Vehicle, error) {
	query, args, err := r.sb.
		Select(columns).
		From(table).
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.Eq{"vehicle_id": vehicleID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) Update(ctx context.Context, v *models.Vehicle, expected *int64) (outcome.Result[*models.Vehicle], error) {
	q := r.sb.
		Update(table).
		Set("version", sq.Expr("version + 1")).
		Set("update_time", sq.Expr(nextUpdateTime)).
		Set("display_name", v.DisplayName).
		Where(sq.Eq{"account_id": v.AccountID}).
		Where(sq.Eq{"vehicle_id": v.ID})
	if expected != nil {
		q = q.Where(sq.Eq{"version": *expected})
	}
	query, args, err := q.Suffix("RETURNING " + columns).ToSql()
	if err != nil {
		return outcome.Result[*models.Vehicle]{}, fmt.Errorf("building query: %w", err)
	}

	got, err := scanVehicle(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return outcome.Missed[*models.Vehicle](expected), nil
		}
		return outcome.Result[*models.Vehicle]{}, fmt.Errorf("db error: %w", err)
	}
	return outcome.Ok(got), nil
}

func (r *PostgresRepository) Delete(ctx context.Context, accountID, vehicleID int64, expected *int64) (outcome.Result[struct{}], error) {
	q := r.sb.
		Delete(table).
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.Eq{"vehicle_id": vehicleID})
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

func (r *PostgresRepository) List(ctx context.Context, accountID, afterID int64, limit int) ([]*models.Vehicle, error) {
	query, args, err := r.sb.
		Select(columns).
		From(table).
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.Gt{"vehicle_id": afterID}).
		OrderBy("vehicle_id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select vehicles: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Vehicle, 0, limit)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
