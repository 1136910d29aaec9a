package domain

import (
	"context"
	"time"

	"go-ats-backend/internal/query"
)

// CandidateVacancy links a candidate into a vacancy's pipeline at a given
// pipeline status.
type CandidateVacancy struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidateId"`
	VacancyID   int64     `json:"vacancyId"`
	StatusID    int64     `json:"candidateVacancyStatusId"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CandidateVacancyDetail struct {
	CandidateVacancy
	Candidate *Candidate      `json:"candidate"`
	Vacancy   *Vacancy        `json:"vacancy"`
	Status    *PipelineStatus `json:"status"`
}

type CandidateVacancyFilter struct {
	query.Params
	ID          *int64
	CandidateID *int64
	VacancyID   *int64
	StatusID    *int64
	Notes       string
}

type CandidateVacancyRepository interface {
	Fetch(ctx context.Context, filter CandidateVacancyFilter) ([]CandidateVacancyDetail, int64, error)
	GetByID(ctx context.Context, id int64) (*CandidateVacancyDetail, error)
	Create(ctx context.Context, link *CandidateVacancy) error
	Update(ctx context.Context, link *CandidateVacancy) error
	Delete(ctx context.Context, id int64) (*CandidateVacancy, error)
}

type CandidateVacancyUsecase interface {
	List(ctx context.Context, filter CandidateVacancyFilter) (*query.Page[CandidateVacancyDetail], error)
	Get(ctx context.Context, id int64) (*CandidateVacancyDetail, error)
	Create(ctx context.Context, link *CandidateVacancy) error
	Update(ctx context.Context, link *CandidateVacancy) error
	Delete(ctx context.Context, id int64) (*CandidateVacancy, error)
}
