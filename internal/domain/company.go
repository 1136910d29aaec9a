package domain

import (
	"context"

	"go-ats-backend/internal/query"
)

type Company struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CompanyFilter struct {
	query.Params
	ID   *int64
	Name string
}

type CompanyRepository interface {
	Fetch(ctx context.Context, filter CompanyFilter) ([]Company, int64, error)
	GetByID(ctx context.Context, id int64) (*Company, error)
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id int64) (*Company, error)
}

type CompanyUsecase interface {
	List(ctx context.Context, filter CompanyFilter) (*query.Page[Company], error)
	Get(ctx context.Context, id int64) (*Company, error)
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id int64) (*Company, error)
}
