package domain

import (
	"context"

	"go-ats-backend/internal/query"
)

// PipelineStatus is a ranked pipeline stage for candidate-vacancy tracking.
// Sort values of live rows form a dense zero-based sequence; at most one row
// carries IsInitial. All writes go through PipelineStatusRepository, which
// owns those invariants.
type PipelineStatus struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Sort      int    `json:"sort"`
	IsInitial bool   `json:"isInitial"`
}

// PipelineStatusUpdate is a partial update; nil fields stay untouched.
type PipelineStatusUpdate struct {
	Name      *string
	Sort      *int
	IsInitial *bool
}

type PipelineStatusRepository interface {
	Fetch(ctx context.Context, params query.Params) ([]PipelineStatus, int64, error)
	GetByID(ctx context.Context, id int64) (*PipelineStatus, error)
	Create(ctx context.Context, name string, sort int, isInitial bool) (*PipelineStatus, error)
	Update(ctx context.Context, id int64, upd PipelineStatusUpdate) (*PipelineStatus, error)
	Delete(ctx context.Context, id int64) (*PipelineStatus, error)
}

type PipelineStatusUsecase interface {
	List(ctx context.Context, params query.Params) (*query.Page[PipelineStatus], error)
	Get(ctx context.Context, id int64) (*PipelineStatus, error)
	Create(ctx context.Context, name string, sort *int, isInitial bool) (*PipelineStatus, error)
	Update(ctx context.Context, id int64, upd PipelineStatusUpdate) (*PipelineStatus, error)
	Delete(ctx context.Context, id int64) (*PipelineStatus, error)
}
