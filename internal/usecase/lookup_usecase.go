package usecase

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"
	"go-ats-backend/pkg/apperror"
)

type lookupUsecase struct {
	repo domain.LookupRepository
}

func NewLookupUsecase(repo domain.LookupRepository) domain.LookupUsecase {
	return &lookupUsecase{repo: repo}
}

func (u *lookupUsecase) List(ctx context.Context, params query.Params) (*query.Page[domain.Lookup], error) {
	items, total, err := u.repo.Fetch(ctx, params)
	if err != nil {
		return nil, err
	}
	page := query.NewPage(items, total, params.Window())
	return &page, nil
}

func (u *lookupUsecase) Get(ctx context.Context, id int64) (*domain.Lookup, error) {
	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Record not found")
		}
		return nil, err
	}
	return l, nil
}

func (u *lookupUsecase) Create(ctx context.Context, name string) (*domain.Lookup, error) {
	if name == "" {
		return nil, apperror.BadRequest("Name is required")
	}
	return u.repo.Create(ctx, name)
}

func (u *lookupUsecase) Update(ctx context.Context, id int64, name string) (*domain.Lookup, error) {
	if name == "" {
		return nil, apperror.BadRequest("Name is required")
	}
	l, err := u.repo.Update(ctx, id, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Record not found")
		}
		return nil, err
	}
	return l, nil
}

func (u *lookupUsecase) Delete(ctx context.Context, id int64) (*domain.Lookup, error) {
	l, err := u.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Record not found")
		}
		return nil, err
	}
	return l, nil
}
