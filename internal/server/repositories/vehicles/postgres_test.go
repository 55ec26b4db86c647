package vehicles

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/fuelcost/internal/common"
	"github.com/dmitrijs2005/fuelcost/internal/server/models"
	"github.com/dmitrijs2005/fuelcost/internal/server/repositories/outcome"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0   = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	t1   = t0.Add(time.Second)
	cols = []string{"account_id", "vehicle_id", "version", "create_time", "update_time", "display_name"}
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func ptr(s string) *string { return &s }

func TestInsert(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO vehicle \(account_id,version,create_time,update_time,display_name\) VALUES \(\$1,\$2,statement_timestamp\(\),statement_timestamp\(\),\$3\) RETURNING account_id, vehicle_id`).
		WithArgs(int64(4), int64(1), "Volvo").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(4), int64(11), int64(1), t0, t0, "Volvo"))

	v, err := repo.Insert(context.Background(), 4, ptr("Volvo"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), v.AccountID)
	assert.Equal(t, int64(11), v.ID)
	require.NotNil(t, v.DisplayName)
	assert.Equal(t, "Volvo", *v.DisplayName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_NullDisplayName(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO vehicle`).
		WithArgs(int64(4), int64(1), nil).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(4), int64(11), int64(1), t0, t0, nil))

	v, err := repo.Insert(context.Background(), 4, nil)
	require.NoError(t, err)
	assert.Nil(t, v.DisplayName)
}

func TestInsert_MissingAccount(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`INSERT INTO vehicle`).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})

	_, err := repo.Insert(context.Background(), 4, nil)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestInsert_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`INSERT INTO vehicle`).WillReturnError(errors.New("db is down"))

	_, err := repo.Insert(context.Background(), 4, nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrNotFound)
	assert.Regexp(t, `db error: .*db is down`, err.Error())
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`SELECT account_id, vehicle_id, version, create_time, update_time, display_name FROM vehicle WHERE account_id = \$1 AND vehicle_id = \$2`).
		WithArgs(int64(4), int64(11)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(4), int64(11), int64(2), t0, t1, nil))

	v, err := repo.Get(context.Background(), 4, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Version)
	assert.Nil(t, v.DisplayName)

	mock.ExpectQuery(`FROM vehicle`).WithArgs(int64(4), int64(12)).WillReturnError(sql.ErrNoRows)
	_, err = repo.Get(context.Background(), 4, 12)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	expected := int64(1)

	mock.ExpectQuery(`UPDATE vehicle SET version = version \+ 1, update_time = GREATEST\(.*\), display_name = \$1 WHERE account_id = \$2 AND vehicle_id = \$3 AND version = \$4 RETURNING`).
		WithArgs("Saab", int64(4), int64(11), int64(1)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(4), int64(11), int64(2), t0, t1, "Saab"))

	res, err := repo.Update(context.Background(), &models.Vehicle{AccountID: 4, ID: 11, DisplayName: ptr("Saab")}, &expected)
	require.NoError(t, err)
	require.Equal(t, outcome.OK, res.Kind)
	assert.Equal(t, int64(2), res.Value.Version)
	assert.Equal(t, "Saab", *res.Value.DisplayName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_ZeroRows(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	expected := int64(-1)

	mock.ExpectQuery(`UPDATE vehicle`).WithArgs(nil, int64(4), int64(11)).WillReturnRows(sqlmock.NewRows(cols))
	res, err := repo.Update(context.Background(), &models.Vehicle{AccountID: 4, ID: 11}, nil)
	require.NoError(t, err)
	assert.Equal(t, outcome.NotFound, res.Kind)

	mock.ExpectQuery(`UPDATE vehicle`).WithArgs(nil, int64(4), int64(11), int64(-1)).WillReturnRows(sqlmock.NewRows(cols))
	res, err = repo.Update(context.Background(), &models.Vehicle{AccountID: 4, ID: 11}, &expected)
	require.NoError(t, err)
	assert.Equal(t, outcome.Conflict, res.Kind)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	expected := int64(5)

	mock.ExpectExec(`DELETE FROM vehicle WHERE account_id = \$1 AND vehicle_id = \$2 AND version = \$3`).
		WithArgs(int64(4), int64(11), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	res, err := repo.Delete(context.Background(), 4, 11, &expected)
	require.NoError(t, err)
	assert.Equal(t, outcome.OK, res.Kind)

	mock.ExpectExec(`DELETE FROM vehicle`).
		WithArgs(int64(4), int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	res, err = repo.Delete(context.Background(), 4, 11, nil)
	require.NoError(t, err)
	assert.Equal(t, outcome.NotFound, res.Kind)

	mock.ExpectExec(`DELETE FROM vehicle`).
		WithArgs(int64(4), int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	_, err = repo.Delete(context.Background(), 4, 11, nil)
	assert.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`SELECT .* FROM vehicle WHERE account_id = \$1 AND vehicle_id > \$2 ORDER BY vehicle_id LIMIT 5`).
		WithArgs(int64(4), int64(0)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(4), int64(1), int64(1), t0, t0, "a").
			AddRow(int64(4), int64(3), int64(1), t0, t0, nil))

	got, err := repo.List(context.Background(), 4, 0, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
	assert.Nil(t, got[1].DisplayName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_QueryError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM vehicle`).WillReturnError(errors.New("boom"))

	_, err := repo.List(context.Background(), 4, 0, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select vehicles")
}
