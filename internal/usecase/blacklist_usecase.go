package usecase

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"
	"go-ats-backend/pkg/apperror"
)

type blacklistUsecase struct {
	repo          domain.BlacklistRepository
	candidateRepo domain.CandidateRepository
}

func NewBlacklistUsecase(repo domain.BlacklistRepository, candidateRepo domain.CandidateRepository) domain.BlacklistUsecase {
	return &blacklistUsecase{
		repo:          repo,
		candidateRepo: candidateRepo,
	}
}

func (u *blacklistUsecase) List(ctx context.Context, filter domain.BlacklistFilter) (*query.Page[domain.BlacklistDetail], error) {
	items, total, err := u.repo.Fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := query.NewPage(items, total, filter.Window())
	return &page, nil
}

func (u *blacklistUsecase) Get(ctx context.Context, id int64) (*domain.BlacklistDetail, error) {
	entry, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Blacklist entry not found")
		}
		return nil, err
	}
	return entry, nil
}

func (u *blacklistUsecase) Create(ctx context.Context, entry *domain.BlacklistEntry) error {
	userID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok {
		return apperror.Unauthorized("User not authenticated")
	}
	entry.UserID = userID
	if entry.Reason == "" {
		return apperror.BadRequest("Reason is required")
	}
	candidate, err := u.candidateRepo.GetByID(ctx, entry.CandidateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Candidate not found")
		}
		return err
	}
	if candidate.Blacklist != nil {
		return apperror.BadRequest("Candidate is already blacklisted")
	}
	return u.repo.Create(ctx, entry)
}

func (u *blacklistUsecase) Update(ctx context.Context, entry *domain.BlacklistEntry) error {
	if entry.Reason == "" {
		return apperror.BadRequest("Reason is required")
	}
	if err := u.repo.Update(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Blacklist entry not found")
		}
		return err
	}
	return nil
}

func (u *blacklistUsecase) Delete(ctx context.Context, id int64) (*domain.BlacklistEntry, error) {
	entry, err := u.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Blacklist entry not found")
		}
		return nil, err
	}
	return entry, nil
}
