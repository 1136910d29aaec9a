package domain

import (
	"context"
	"time"

	"go-ats-backend/internal/query"
)

type Comment struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidateId"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
	UserID      int64     `json:"userId"`
}

type CommentFilter struct {
	query.Params
	ID          *int64
	CandidateID *int64
	Comment     string
	UserID      *int64
}

type CommentRepository interface {
	Fetch(ctx context.Context, filter CommentFilter) ([]Comment, int64, error)
	GetByID(ctx context.Context, id int64) (*Comment, error)
	Create(ctx context.Context, comment *Comment) error
	Update(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, id int64) (*Comment, error)
}

type CommentUsecase interface {
	List(ctx context.Context, filter CommentFilter) (*query.Page[Comment], error)
	Get(ctx context.Context, id int64) (*Comment, error)
	Create(ctx context.Context, comment *Comment) error
	Update(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, id int64) (*Comment, error)
}
