package usecase

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"
	"go-ats-backend/pkg/apperror"
)

type pipelineStatusUsecase struct {
	repo domain.PipelineStatusRepository
}

func NewPipelineStatusUsecase(repo domain.PipelineStatusRepository) domain.PipelineStatusUsecase {
	return &pipelineStatusUsecase{repo: repo}
}

func (u *pipelineStatusUsecase) List(ctx context.Context, params query.Params) (*query.Page[domain.PipelineStatus], error) {
	items, total, err := u.repo.Fetch(ctx, params)
	if err != nil {
		return nil, err
	}
	page := query.NewPage(items, total, params.Window())
	return &page, nil
}

func (u *pipelineStatusUsecase) Get(ctx context.Context, id int64) (*domain.PipelineStatus, error) {
	status, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Pipeline status not found")
		}
		return nil, err
	}
	return status, nil
}

// Create inserts a stage at the requested rank, or at the front when the
// caller leaves the rank out.
func (u *pipelineStatusUsecase) Create(ctx context.Context, name string, sort *int, isInitial bool) (*domain.PipelineStatus, error) {
	if name == "" {
		return nil, apperror.BadRequest("Name is required")
	}
	rank := 0
	if sort != nil {
		if *sort < 0 {
			return nil, apperror.BadRequest("Sort must not be negative")
		}
		rank = *sort
	}
	return u.repo.Create(ctx, name, rank, isInitial)
}

func (u *pipelineStatusUsecase) Update(ctx context.Context, id int64, upd domain.PipelineStatusUpdate) (*domain.PipelineStatus, error) {
	if upd.Name != nil && *upd.Name == "" {
		return nil, apperror.BadRequest("Name must not be empty")
	}
	if upd.Sort != nil && *upd.Sort < 0 {
		return nil, apperror.BadRequest("Sort must not be negative")
	}
	status, err := u.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Pipeline status not found")
		}
		return nil, err
	}
	return status, nil
}

func (u *pipelineStatusUsecase) Delete(ctx context.Context, id int64) (*domain.PipelineStatus, error) {
	status, err := u.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Pipeline status not found")
		}
		return nil, err
	}
	return status, nil
}
