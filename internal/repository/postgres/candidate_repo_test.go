package postgres_test

import (
	"context"
	"testing"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/repository/postgres"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var candidateRowColumns = []string{
	"id", "name", "image", "date_of_birth", "gender", "short_description",
	"email", "linkedin", "address", "document_number", "phone", "deleted",
	"source_id", "stars", "countries", "provinces", "languages", "hired_internally",
	"s.id", "s.name",
}

func TestCandidateFetchDefaultFilter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := postgres.NewCandidateRepository(mock)

	// an empty filter still excludes soft-deleted and blacklisted rows
	mock.ExpectQuery(`SELECT COUNT\(c\.id\) FROM candidates c WHERE c\.id NOT IN \(SELECT candidate_id FROM blacklists\) AND c\.deleted = \$1`).
		WithArgs(false).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(`LEFT JOIN candidate_sources s ON c\.source_id = s\.id WHERE c\.id NOT IN \(SELECT candidate_id FROM blacklists\) AND c\.deleted = \$1 ORDER BY c\.id ASC LIMIT \$2 OFFSET \$3`).
		WithArgs(false, 100, 0).
		WillReturnRows(pgxmock.NewRows(candidateRowColumns))

	items, total, err := repo.Fetch(context.Background(), domain.CandidateFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(3), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateFetchExplicitOverrides(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := postgres.NewCandidateRepository(mock)

	// opting in to deleted and blacklisted rows drops both default clauses
	mock.ExpectQuery(`SELECT COUNT\(c\.id\) FROM candidates c WHERE c\.deleted = \$1`).
		WithArgs(true).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(`LEFT JOIN candidate_sources s ON c\.source_id = s\.id WHERE c\.deleted = \$1 ORDER BY c\.id ASC LIMIT \$2 OFFSET \$3`).
		WithArgs(true, 100, 0).
		WillReturnRows(pgxmock.NewRows(candidateRowColumns))

	yes := true
	filter := domain.CandidateFilter{Deleted: &yes, Blacklisted: &yes}
	_, total, err := repo.Fetch(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
