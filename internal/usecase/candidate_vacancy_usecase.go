package usecase

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"
	"go-ats-backend/pkg/apperror"
)

type candidateVacancyUsecase struct {
	repo domain.CandidateVacancyRepository
}

func NewCandidateVacancyUsecase(repo domain.CandidateVacancyRepository) domain.CandidateVacancyUsecase {
	return &candidateVacancyUsecase{repo: repo}
}

func (u *candidateVacancyUsecase) List(ctx context.Context, filter domain.CandidateVacancyFilter) (*query.Page[domain.CandidateVacancyDetail], error) {
	items, total, err := u.repo.Fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := query.NewPage(items, total, filter.Window())
	return &page, nil
}

func (u *candidateVacancyUsecase) Get(ctx context.Context, id int64) (*domain.CandidateVacancyDetail, error) {
	link, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate vacancy not found")
		}
		return nil, err
	}
	return link, nil
}

func (u *candidateVacancyUsecase) Create(ctx context.Context, link *domain.CandidateVacancy) error {
	if link.CandidateID == 0 || link.VacancyID == 0 || link.StatusID == 0 {
		return apperror.BadRequest("candidateId, vacancyId and candidateVacancyStatusId are required")
	}
	return u.repo.Create(ctx, link)
}

func (u *candidateVacancyUsecase) Update(ctx context.Context, link *domain.CandidateVacancy) error {
	if link.StatusID == 0 {
		return apperror.BadRequest("candidateVacancyStatusId is required")
	}
	if err := u.repo.Update(ctx, link); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Candidate vacancy not found")
		}
		return err
	}
	return nil
}

func (u *candidateVacancyUsecase) Delete(ctx context.Context, id int64) (*domain.CandidateVacancy, error) {
	link, err := u.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate vacancy not found")
		}
		return nil, err
	}
	return link, nil
}
