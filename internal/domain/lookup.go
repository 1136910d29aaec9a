package domain

import (
	"context"

	"go-ats-backend/internal/query"
)

// Lookup is a name-only taxonomy row. Areas, industries, seniorities,
// candidate sources, and vacancy statuses all share this shape and differ
// only by table.
type Lookup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LookupKind selects which taxonomy table a lookup repository operates on.
type LookupKind string

const (
	LookupArea            LookupKind = "areas"
	LookupIndustry        LookupKind = "industries"
	LookupSeniority       LookupKind = "seniorities"
	LookupCandidateSource LookupKind = "candidate_sources"
	LookupVacancyStatus   LookupKind = "vacancy_statuses"
)

type LookupRepository interface {
	Fetch(ctx context.Context, params query.Params) ([]Lookup, int64, error)
	GetByID(ctx context.Context, id int64) (*Lookup, error)
	Create(ctx context.Context, name string) (*Lookup, error)
	Update(ctx context.Context, id int64, name string) (*Lookup, error)
	Delete(ctx context.Context, id int64) (*Lookup, error)
}

type LookupUsecase interface {
	List(ctx context.Context, params query.Params) (*query.Page[Lookup], error)
	Get(ctx context.Context, id int64) (*Lookup, error)
	Create(ctx context.Context, name string) (*Lookup, error)
	Update(ctx context.Context, id int64, name string) (*Lookup, error)
	Delete(ctx context.Context, id int64) (*Lookup, error)
}
