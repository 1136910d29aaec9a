package usecase

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"
	"go-ats-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type vacancyUsecase struct {
	repo     domain.VacancyRepository
	validate *validator.Validate
}

func NewVacancyUsecase(repo domain.VacancyRepository, validate *validator.Validate) domain.VacancyUsecase {
	return &vacancyUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *vacancyUsecase) List(ctx context.Context, filter domain.VacancyFilter) (*query.Page[domain.VacancyDetail], error) {
	items, total, err := u.repo.Fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := query.NewPage(items, total, filter.Window())
	return &page, nil
}

func (u *vacancyUsecase) Get(ctx context.Context, id int64) (*domain.VacancyDetail, error) {
	detail, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, err
	}
	return detail, nil
}

func (u *vacancyUsecase) Create(ctx context.Context, vacancy *domain.Vacancy, criteria *domain.VacancyCriteria) (*domain.VacancyDetail, error) {
	if err := u.validate.Struct(vacancy); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	userID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	vacancy.CreatedBy = userID
	if vacancy.AssignedTo == 0 {
		vacancy.AssignedTo = userID
	}
	if err := u.repo.Create(ctx, vacancy, criteria); err != nil {
		return nil, err
	}
	return u.repo.GetByID(ctx, vacancy.ID)
}

func (u *vacancyUsecase) Update(ctx context.Context, vacancy *domain.Vacancy, criteria *domain.VacancyCriteria) (*domain.VacancyDetail, error) {
	if err := u.validate.Struct(vacancy); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if err := u.repo.Update(ctx, vacancy, criteria); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, err
	}
	return u.repo.GetByID(ctx, vacancy.ID)
}

func (u *vacancyUsecase) Delete(ctx context.Context, id int64) (*domain.Vacancy, error) {
	vacancy, err := u.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, err
	}
	return vacancy, nil
}
