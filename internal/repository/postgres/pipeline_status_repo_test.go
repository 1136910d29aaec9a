package postgres_test

import (
	"context"
	"testing"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/repository/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lockSQL = "LOCK TABLE candidate_vacancy_statuses IN EXCLUSIVE MODE"

func newStatusMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func expectRankedTx(mock pgxmock.PgxPoolIface) {
	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
	mock.ExpectExec(lockSQL).WillReturnResult(pgxmock.NewResult("LOCK", 0))
}

func TestPipelineStatusCreate(t *testing.T) {
	mock := newStatusMock(t)
	repo := postgres.NewPipelineStatusRepository(mock)

	expectRankedTx(mock)
	mock.ExpectExec(`UPDATE candidate_vacancy_statuses SET sort = sort \+ \$1 WHERE sort >= \$2`).
		WithArgs(1, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	mock.ExpectQuery(`INSERT INTO candidate_vacancy_statuses`).
		WithArgs("Screening", 1, false).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(4)))
	mock.ExpectCommit()
	mock.ExpectRollback()

	status, err := repo.Create(context.Background(), "Screening", 1, false)
	require.NoError(t, err)
	assert.Equal(t, int64(4), status.ID)
	assert.Equal(t, 1, status.Sort)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPipelineStatusCreateInitialDemotesPrevious(t *testing.T) {
	mock := newStatusMock(t)
	repo := postgres.NewPipelineStatusRepository(mock)

	expectRankedTx(mock)
	mock.ExpectExec(`UPDATE candidate_vacancy_statuses SET sort = sort \+ \$1 WHERE sort >= \$2`).
		WithArgs(1, 0).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))
	mock.ExpectExec(`UPDATE candidate_vacancy_statuses SET is_initial = false WHERE is_initial = true`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(`INSERT INTO candidate_vacancy_statuses`).
		WithArgs("Applied", 0, true).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectCommit()
	mock.ExpectRollback()

	status, err := repo.Create(context.Background(), "Applied", 0, true)
	require.NoError(t, err)
	assert.True(t, status.IsInitial)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPipelineStatusUpdateMoveDown(t *testing.T) {
	mock := newStatusMock(t)
	repo := postgres.NewPipelineStatusRepository(mock)

	expectRankedTx(mock)
	mock.ExpectQuery(`SELECT id, name, sort, is_initial FROM candidate_vacancy_statuses WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "sort", "is_initial"}).
			AddRow(int64(1), "Applied", 0, true))
	// moving from 0 to 2 pulls (0, 2] back by one
	mock.ExpectExec(`UPDATE candidate_vacancy_statuses SET sort = sort \+ \$1 WHERE sort > \$2 AND sort <= \$3`).
		WithArgs(-1, 0, 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	mock.ExpectExec(`UPDATE candidate_vacancy_statuses SET name = \$2, sort = \$3, is_initial = \$4 WHERE id = \$1`).
		WithArgs(int64(1), "Applied", 2, true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	target := 2
	status, err := repo.Update(context.Background(), 1, domain.PipelineStatusUpdate{Sort: &target})
	require.NoError(t, err)
	assert.Equal(t, 2, status.Sort)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPipelineStatusUpdateSameSortSkipsShift(t *testing.T) {
	mock := newStatusMock(t)
	repo := postgres.NewPipelineStatusRepository(mock)

	expectRankedTx(mock)
	mock.ExpectQuery(`SELECT id, name, sort, is_initial FROM candidate_vacancy_statuses WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "sort", "is_initial"}).
			AddRow(int64(2), "Interview", 1, false))
	mock.ExpectExec(`UPDATE candidate_vacancy_statuses SET name = \$2, sort = \$3, is_initial = \$4 WHERE id = \$1`).
		WithArgs(int64(2), "Tech Interview", 1, false).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	name := "Tech Interview"
	sameSort := 1
	status, err := repo.Update(context.Background(), 2, domain.PipelineStatusUpdate{Name: &name, Sort: &sameSort})
	require.NoError(t, err)
	assert.Equal(t, "Tech Interview", status.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPipelineStatusUpdateNotFound(t *testing.T) {
	mock := newStatusMock(t)
	repo := postgres.NewPipelineStatusRepository(mock)

	expectRankedTx(mock)
	mock.ExpectQuery(`SELECT id, name, sort, is_initial FROM candidate_vacancy_statuses WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	name := "Ghost"
	_, err := repo.Update(context.Background(), 99, domain.PipelineStatusUpdate{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPipelineStatusDelete(t *testing.T) {
	mock := newStatusMock(t)
	repo := postgres.NewPipelineStatusRepository(mock)

	expectRankedTx(mock)
	mock.ExpectQuery(`DELETE FROM candidate_vacancy_statuses WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "sort", "is_initial"}).
			AddRow(int64(2), "Interview", 1, false))
	// rows above the vacated rank close the gap
	mock.ExpectExec(`UPDATE candidate_vacancy_statuses SET sort = sort \+ \$1 WHERE sort > \$2`).
		WithArgs(-1, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	mock.ExpectCommit()
	mock.ExpectRollback()

	status, err := repo.Delete(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Interview", status.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
