package usecase

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"
	"go-ats-backend/pkg/apperror"
)

type commentUsecase struct {
	repo domain.CommentRepository
}

func NewCommentUsecase(repo domain.CommentRepository) domain.CommentUsecase {
	return &commentUsecase{repo: repo}
}

func (u *commentUsecase) List(ctx context.Context, filter domain.CommentFilter) (*query.Page[domain.Comment], error) {
	items, total, err := u.repo.Fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := query.NewPage(items, total, filter.Window())
	return &page, nil
}

func (u *commentUsecase) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Comment not found")
		}
		return nil, err
	}
	return comment, nil
}

func (u *commentUsecase) Create(ctx context.Context, comment *domain.Comment) error {
	userID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok {
		return apperror.Unauthorized("User not authenticated")
	}
	comment.UserID = userID
	if comment.Comment == "" {
		return apperror.BadRequest("Comment text is required")
	}
	return u.repo.Create(ctx, comment)
}

func (u *commentUsecase) Update(ctx context.Context, comment *domain.Comment) error {
	if comment.Comment == "" {
		return apperror.BadRequest("Comment text is required")
	}
	if err := u.repo.Update(ctx, comment); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Comment not found")
		}
		return err
	}
	return nil
}

func (u *commentUsecase) Delete(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, err := u.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Comment not found")
		}
		return nil, err
	}
	return comment, nil
}
