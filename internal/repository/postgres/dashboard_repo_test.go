package postgres_test

import (
	"context"
	"testing"

	"go-ats-backend/internal/repository/postgres"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardCountsOnlyOpenVacancies(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := postgres.NewDashboardRepository(mock)

	mock.ExpectQuery(`SELECT COUNT\(v\.id\) FROM vacancies v\s+JOIN vacancy_statuses st ON v\.status_id = st\.id\s+WHERE st\.name = ANY\(\$1\)`).
		WithArgs([]string{"Abierta", "Abierto", "Open"}).
		WillReturnRows(pgxmock.NewRows([]string{"candidates", "vacancies"}).
			AddRow(int64(12), int64(1)))

	d, err := repo.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), d.ActiveCandidates)
	assert.Equal(t, int64(1), d.ActiveVacancies)
	assert.NoError(t, mock.ExpectationsWereMet())
}
