package domain

import (
	"context"
	"time"

	"go-ats-backend/internal/query"
)

type Vacancy struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StatusID    *int64    `json:"statusId"`
	FiltersID   *int64    `json:"-"`
	CompanyID   *int64    `json:"companyId"`
	CreatedBy   int64     `json:"-"`
	AssignedTo  int64     `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// VacancyCriteria is the candidate-matching criteria row attached to a
// vacancy, plus its taxonomy id sets.
type VacancyCriteria struct {
	ID           int64    `json:"id"`
	MinStars     *float64 `json:"minStars"`
	Gender       *string  `json:"gender"`
	MinAge       *int     `json:"minAge"`
	MaxAge       *int     `json:"maxAge"`
	Countries    []string `json:"countries"`
	Provinces    []string `json:"provinces"`
	Languages    []string `json:"languages"`
	AreaIDs      []int64  `json:"-"`
	IndustryIDs  []int64  `json:"-"`
	SeniorityIDs []int64  `json:"-"`
}

// VacancyCriteriaDetail resolves the taxonomy ids to rows.
type VacancyCriteriaDetail struct {
	VacancyCriteria
	Areas       []Lookup `json:"areas"`
	Industries  []Lookup `json:"industries"`
	Seniorities []Lookup `json:"seniorities"`
}

// VacancyPipelineEntry is one candidate inside a vacancy's pipeline.
type VacancyPipelineEntry struct {
	CandidateVacancy
	Candidate Candidate       `json:"candidate"`
	Status    *PipelineStatus `json:"status"`
}

type VacancyDetail struct {
	Vacancy
	Status     *Lookup                `json:"status"`
	Criteria   *VacancyCriteriaDetail `json:"filters"`
	Company    *Company               `json:"company"`
	Candidates []VacancyPipelineEntry `json:"candidates"`
	CreatedByUser  *User              `json:"createdBy"`
	AssignedToUser *User              `json:"assignedTo"`
}

type VacancyFilter struct {
	query.Params
	ID              *int64
	Title           string
	Description     string
	StatusID        *int64
	CompanyID       *int64
	CreatedByID     *int64
	AssignedToID    *int64
	CriteriaGender  string
	CriteriaMinAge  *int
	CriteriaMaxAge  *int
	CriteriaMinStars *float64
	AreaIDs         []int64
	IndustryIDs     []int64
	SeniorityIDs    []int64
}

type VacancyRepository interface {
	Fetch(ctx context.Context, filter VacancyFilter) ([]VacancyDetail, int64, error)
	GetByID(ctx context.Context, id int64) (*VacancyDetail, error)
	// Create inserts the criteria row, its taxonomy links, and the vacancy in
	// one transaction, filling vacancy.FiltersID and vacancy.ID.
	Create(ctx context.Context, vacancy *Vacancy, criteria *VacancyCriteria) error
	Update(ctx context.Context, vacancy *Vacancy, criteria *VacancyCriteria) error
	Delete(ctx context.Context, id int64) (*Vacancy, error)
}

type VacancyUsecase interface {
	List(ctx context.Context, filter VacancyFilter) (*query.Page[VacancyDetail], error)
	Get(ctx context.Context, id int64) (*VacancyDetail, error)
	Create(ctx context.Context, vacancy *Vacancy, criteria *VacancyCriteria) (*VacancyDetail, error)
	Update(ctx context.Context, vacancy *Vacancy, criteria *VacancyCriteria) (*VacancyDetail, error)
	Delete(ctx context.Context, id int64) (*Vacancy, error)
}
