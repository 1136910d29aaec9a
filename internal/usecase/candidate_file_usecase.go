package usecase

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"
	"go-ats-backend/pkg/apperror"
)

type candidateFileUsecase struct {
	repo domain.CandidateFileRepository
}

func NewCandidateFileUsecase(repo domain.CandidateFileRepository) domain.CandidateFileUsecase {
	return &candidateFileUsecase{repo: repo}
}

func (u *candidateFileUsecase) List(ctx context.Context, params query.Params) (*query.Page[domain.CandidateFile], error) {
	items, total, err := u.repo.Fetch(ctx, params)
	if err != nil {
		return nil, err
	}
	page := query.NewPage(items, total, params.Window())
	return &page, nil
}

func (u *candidateFileUsecase) Get(ctx context.Context, id int64) (*domain.CandidateFile, error) {
	file, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("File not found")
		}
		return nil, err
	}
	return file, nil
}

func (u *candidateFileUsecase) Create(ctx context.Context, file *domain.CandidateFile) error {
	if file.Name == "" || file.URL == "" {
		return apperror.BadRequest("Name and url are required")
	}
	return u.repo.Create(ctx, file)
}

func (u *candidateFileUsecase) Update(ctx context.Context, file *domain.CandidateFile) error {
	if file.Name == "" || file.URL == "" {
		return apperror.BadRequest("Name and url are required")
	}
	if err := u.repo.Update(ctx, file); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("File not found")
		}
		return err
	}
	return nil
}

func (u *candidateFileUsecase) Delete(ctx context.Context, id int64) (*domain.CandidateFile, error) {
	file, err := u.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("File not found")
		}
		return nil, err
	}
	return file, nil
}
