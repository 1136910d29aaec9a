package usecase

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"
	"go-ats-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo          domain.CandidateRepository
	blacklistRepo domain.BlacklistRepository
	validate      *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, blacklistRepo domain.BlacklistRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:          repo,
		blacklistRepo: blacklistRepo,
		validate:      validate,
	}
}

func (u *candidateUsecase) List(ctx context.Context, filter domain.CandidateFilter) (*query.Page[domain.CandidateDetail], error) {
	items, total, err := u.repo.Fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := query.NewPage(items, total, filter.Window())
	return &page, nil
}

func (u *candidateUsecase) Get(ctx context.Context, id int64) (*domain.CandidateDetail, error) {
	detail, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, err
	}
	return detail, nil
}

func (u *candidateUsecase) ExistsByName(ctx context.Context, name string) (bool, *domain.CandidateDetail, error) {
	detail, err := u.repo.FindByName(ctx, name)
	if err != nil {
		return false, nil, err
	}
	return detail != nil, detail, nil
}

func (u *candidateUsecase) Create(ctx context.Context, candidate *domain.Candidate, links domain.CandidateLinks) (*domain.CandidateDetail, error) {
	if err := u.validate.Struct(candidate); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	existing, err := u.repo.FindByName(ctx, candidate.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.BadRequest("A candidate with that name already exists")
	}
	if err := u.repo.Create(ctx, candidate, links); err != nil {
		return nil, err
	}
	return u.repo.GetByID(ctx, candidate.ID)
}

func (u *candidateUsecase) Update(ctx context.Context, candidate *domain.Candidate, links domain.CandidateLinks) (*domain.CandidateDetail, error) {
	if err := u.validate.Struct(candidate); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if err := u.repo.Update(ctx, candidate, links); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, err
	}
	return u.repo.GetByID(ctx, candidate.ID)
}

func (u *candidateUsecase) Delete(ctx context.Context, id int64) (*domain.Candidate, error) {
	candidate, err := u.repo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, err
	}
	return candidate, nil
}

func (u *candidateUsecase) Blacklist(ctx context.Context, id int64, reason string, userID int64) (*domain.CandidateDetail, error) {
	detail, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, err
	}
	if detail.Blacklist != nil {
		return nil, apperror.BadRequest("Candidate is already blacklisted")
	}
	entry := &domain.BlacklistEntry{CandidateID: id, Reason: reason, UserID: userID}
	if err := u.blacklistRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return u.repo.GetByID(ctx, id)
}
