package accounts

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/fuelcost/internal/common"
	"github.com/dmitrijs2005/fuelcost/internal/server/repositories/outcome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0   = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	t1   = t0.Add(time.Second)
	cols = []string{"account_id", "version", "create_time", "update_time"}
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestInsert(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO account \(version,create_time,update_time\) VALUES \(\$1,statement_timestamp\(\),statement_timestamp\(\)\) RETURNING account_id, version, create_time, update_time`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(7), int64(1), t0, t0))

	a, err := repo.Insert(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), a.ID)
	assert.Equal(t, int64(1), a.Version)
	assert.Equal(t, t0, a.CreateTime)
	assert.Equal(t, t0, a.UpdateTime)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`INSERT INTO account`).WillReturnError(errors.New("db is down"))

	_, err := repo.Insert(context.Background())
	require.Error(t, err)
	assert.Regexp(t, `db error: .*db is down`, err.Error())
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`SELECT account_id, version, create_time, update_time FROM account WHERE account_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(7), int64(3), t0, t1))

	a, err := repo.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), a.Version)
	assert.Equal(t, t1, a.UpdateTime)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`SELECT .* FROM account`).WithArgs(int64(7)).WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 7)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestLockForKeyShare(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`SELECT account_id FROM account WHERE account_id = \$1 FOR KEY SHARE`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"account_id"}).AddRow(int64(7)))
	require.NoError(t, repo.LockForKeyShare(context.Background(), 7))

	mock.ExpectQuery(`FOR KEY SHARE`).WithArgs(int64(8)).WillReturnRows(sqlmock.NewRows([]string{"account_id"}))
	assert.ErrorIs(t, repo.LockForKeyShare(context.Background(), 8), common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_Conditional(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	expected := int64(3)

	mock.ExpectQuery(`UPDATE account SET version = version \+ 1, update_time = GREATEST\(statement_timestamp\(\), update_time \+ interval '1 microsecond'\) WHERE account_id = \$1 AND version = \$2 RETURNING account_id`).
		WithArgs(int64(7), int64(3)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(7), int64(4), t0, t1))

	res, err := repo.Update(context.Background(), 7, &expected)
	require.NoError(t, err)
	require.Equal(t, outcome.OK, res.Kind)
	assert.Equal(t, int64(4), res.Value.Version)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_Unconditional(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`UPDATE account SET .* WHERE account_id = \$1 RETURNING`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(7), int64(2), t0, t1))

	res, err := repo.Update(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.Equal(t, outcome.OK, res.Kind)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_ZeroRows(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	expected := int64(99)

	mock.ExpectQuery(`UPDATE account`).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows(cols))
	res, err := repo.Update(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.Equal(t, outcome.NotFound, res.Kind)

	mock.ExpectQuery(`UPDATE account`).WithArgs(int64(7), int64(99)).WillReturnRows(sqlmock.NewRows(cols))
	res, err = repo.Update(context.Background(), 7, &expected)
	require.NoError(t, err)
	assert.Equal(t, outcome.Conflict, res.Kind)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	expected := int64(2)

	mock.ExpectExec(`DELETE FROM account WHERE account_id = \$1 AND version = \$2`).
		WithArgs(int64(7), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	res, err := repo.Delete(context.Background(), 7, &expected)
	require.NoError(t, err)
	assert.Equal(t, outcome.OK, res.Kind)

	mock.ExpectExec(`DELETE FROM account WHERE account_id = \$1 AND version = \$2`).
		WithArgs(int64(7), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	res, err = repo.Delete(context.Background(), 7, &expected)
	require.NoError(t, err)
	assert.Equal(t, outcome.Conflict, res.Kind)

	mock.ExpectExec(`DELETE FROM account WHERE account_id = \$1$`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	res, err = repo.Delete(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.Equal(t, outcome.NotFound, res.Kind)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_RowsAffectedError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(`DELETE FROM account`).WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewErrorResult(errors.New("rows-err")))

	_, err := repo.Delete(context.Background(), 7, nil)
	require.Error(t, err)
	assert.Regexp(t, `rows affected error: .*rows-err`, err.Error())
}

func TestList(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`SELECT account_id, version, create_time, update_time FROM account WHERE account_id > \$1 ORDER BY account_id LIMIT 2`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(6), int64(1), t0, t0).
			AddRow(int64(9), int64(2), t0, t1))

	got, err := repo.List(context.Background(), 5, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(6), got[0].ID)
	assert.Equal(t, int64(9), got[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_ScanError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM account`).
		WillReturnRows(sqlmock.NewRows(cols).AddRow("x", int64(1), t0, t0))

	_, err := repo.List(context.Background(), 0, 10)
	assert.Error(t, err)
}
