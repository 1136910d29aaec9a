package domain

import (
	"context"
	"time"

	"go-ats-backend/internal/query"
)

type BlacklistEntry struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidateId"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"createdAt"`
	UserID      int64     `json:"userId"`
}

// BlacklistDetail joins the reporting user onto the entry. The user's
// password never leaves the domain type (json:"-").
type BlacklistDetail struct {
	BlacklistEntry
	User *User `json:"user"`
}

type BlacklistFilter struct {
	query.Params
	ID          *int64
	CandidateID *int64
	Reason      string
	UserID      *int64
}

type BlacklistRepository interface {
	Fetch(ctx context.Context, filter BlacklistFilter) ([]BlacklistDetail, int64, error)
	GetByID(ctx context.Context, id int64) (*BlacklistDetail, error)
	Create(ctx context.Context, entry *BlacklistEntry) error
	Update(ctx context.Context, entry *BlacklistEntry) error
	Delete(ctx context.Context, id int64) (*BlacklistEntry, error)
}

type BlacklistUsecase interface {
	List(ctx context.Context, filter BlacklistFilter) (*query.Page[BlacklistDetail], error)
	Get(ctx context.Context, id int64) (*BlacklistDetail, error)
	Create(ctx context.Context, entry *BlacklistEntry) error
	Update(ctx context.Context, entry *BlacklistEntry) error
	Delete(ctx context.Context, id int64) (*BlacklistEntry, error)
}
