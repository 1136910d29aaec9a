package postgres

import (
	"context"
	"fmt"

	"go-ats-backend/internal/domain"
)

// openStatusNames are the vacancy status names counted as open on the
// dashboard. Both Spanish grammatical genders appear in production data.
var openStatusNames = []string{"Abierta", "Abierto", "Open"}

type dashboardRepo struct {
	db DB
}

func NewDashboardRepository(db DB) domain.DashboardRepository {
	return &dashboardRepo{db: db}
}

func (r *dashboardRepo) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	var d domain.Dashboard
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(c.id) FROM candidates c WHERE c.deleted = false),
			(SELECT COUNT(v.id) FROM vacancies v
				JOIN vacancy_statuses st ON v.status_id = st.id
				WHERE st.name = ANY($1))`,
		openStatusNames,
	).Scan(&d.ActiveCandidates, &d.ActiveVacancies)
	if err != nil {
		return nil, fmt.Errorf("dashboard query failed: %w", err)
	}
	return &d, nil
}
