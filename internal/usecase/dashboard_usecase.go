package usecase

import (
	"context"

	"go-ats-backend/internal/domain"
)

type dashboardUsecase struct {
	repo domain.DashboardRepository
}

func NewDashboardUsecase(repo domain.DashboardRepository) domain.DashboardUsecase {
	return &dashboardUsecase{repo: repo}
}

func (u *dashboardUsecase) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	return u.repo.GetDashboard(ctx)
}
