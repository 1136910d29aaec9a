package domain

import (
	"context"

	"go-ats-backend/internal/query"
)

// CandidateFile is file metadata only; the bytes live in external storage
// referenced by URL.
type CandidateFile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type CandidateFileRepository interface {
	Fetch(ctx context.Context, params query.Params) ([]CandidateFile, int64, error)
	GetByID(ctx context.Context, id int64) (*CandidateFile, error)
	Create(ctx context.Context, file *CandidateFile) error
	Update(ctx context.Context, file *CandidateFile) error
	Delete(ctx context.Context, id int64) (*CandidateFile, error)
}

type CandidateFileUsecase interface {
	List(ctx context.Context, params query.Params) (*query.Page[CandidateFile], error)
	Get(ctx context.Context, id int64) (*CandidateFile, error)
	Create(ctx context.Context, file *CandidateFile) error
	Update(ctx context.Context, file *CandidateFile) error
	Delete(ctx context.Context, id int64) (*CandidateFile, error)
}
