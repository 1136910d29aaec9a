package domain

import "context"

type Dashboard struct {
	ActiveCandidates int64 `json:"activeCandidates"`
	ActiveVacancies  int64 `json:"activeVacancies"`
}

type DashboardRepository interface {
	GetDashboard(ctx context.Context) (*Dashboard, error)
}

type DashboardUsecase interface {
	GetDashboard(ctx context.Context) (*Dashboard, error)
}
