package usecase

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"
	"go-ats-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type companyUsecase struct {
	repo     domain.CompanyRepository
	validate *validator.Validate
}

func NewCompanyUsecase(repo domain.CompanyRepository, validate *validator.Validate) domain.CompanyUsecase {
	return &companyUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *companyUsecase) List(ctx context.Context, filter domain.CompanyFilter) (*query.Page[domain.Company], error) {
	items, total, err := u.repo.Fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := query.NewPage(items, total, filter.Window())
	return &page, nil
}

func (u *companyUsecase) Get(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}
	return company, nil
}

func (u *companyUsecase) Create(ctx context.Context, company *domain.Company) error {
	if err := u.validate.Struct(company); err != nil {
		return apperror.BadRequest(err.Error())
	}
	return u.repo.Create(ctx, company)
}

func (u *companyUsecase) Update(ctx context.Context, company *domain.Company) error {
	if err := u.validate.Struct(company); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if err := u.repo.Update(ctx, company); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return err
	}
	return nil
}

func (u *companyUsecase) Delete(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := u.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}
	return company, nil
}
