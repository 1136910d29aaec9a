package domain

import (
	"context"
	"errors"
	"time"

	"go-ats-backend/internal/query"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type Candidate struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Image            *string    `json:"image"`
	DateOfBirth      *time.Time `json:"dateOfBirth"`
	Gender           *string    `json:"gender"`
	ShortDescription *string    `json:"shortDescription"`
	Email            string     `json:"email"`
	Linkedin         *string    `json:"linkedin"`
	Address          *string    `json:"address"`
	DocumentNumber   *string    `json:"documentNumber"`
	Phone            *string    `json:"phone"`
	Deleted          bool       `json:"-"`
	SourceID         *int64     `json:"sourceId"`
	Stars            *float64   `json:"stars"`
	Countries        []string   `json:"countries"`
	Provinces        []string   `json:"provinces"`
	Languages        []string   `json:"languages"`
	HiredInternally  bool       `json:"hiredInternally"`
}

// CandidateDetail is a candidate with its related rows resolved.
type CandidateDetail struct {
	Candidate
	Source      *Lookup          `json:"source"`
	Areas       []Lookup         `json:"areas"`
	Industries  []Lookup         `json:"industries"`
	Seniorities []Lookup         `json:"seniorities"`
	Files       []CandidateFile  `json:"files"`
	Blacklist   *BlacklistEntry  `json:"blacklist"`
	Comments    []Comment        `json:"comments"`
}

// CandidateLinks holds the many-to-many id sets written alongside a
// candidate row. A nil slice on update means "leave that set alone"; an
// empty non-nil slice clears it.
type CandidateLinks struct {
	AreaIDs      []int64
	IndustryIDs  []int64
	SeniorityIDs []int64
	FileIDs      []int64
}

// CandidateFilter mirrors the candidate list endpoint's query parameters.
// Zero-valued fields impose no constraint.
type CandidateFilter struct {
	query.Params
	ID               *int64
	Name             string
	MinimumAge       *int
	MaximumAge       *int
	Gender           string
	ShortDescription string
	Email            string
	Linkedin         string
	Address          string
	Phone            string
	SourceID         *int64
	Countries        []string
	Provinces        []string
	Languages        []string
	AreaIDs          []int64
	IndustryIDs      []int64
	SeniorityIDs     []int64
	MinimumStars     *float64
	MaximumStars     *float64
	Blacklisted      *bool
	Deleted          *bool
	HiredInternally  *bool
}

type CandidateRepository interface {
	Fetch(ctx context.Context, filter CandidateFilter) ([]CandidateDetail, int64, error)
	GetByID(ctx context.Context, id int64) (*CandidateDetail, error)
	// FindByName probes for a live candidate by exact name, case-insensitive.
	// Returns nil without error when absent.
	FindByName(ctx context.Context, name string) (*CandidateDetail, error)
	Create(ctx context.Context, candidate *Candidate, links CandidateLinks) error
	Update(ctx context.Context, candidate *Candidate, links CandidateLinks) error
	SoftDelete(ctx context.Context, id int64) (*Candidate, error)
}

type CandidateUsecase interface {
	List(ctx context.Context, filter CandidateFilter) (*query.Page[CandidateDetail], error)
	Get(ctx context.Context, id int64) (*CandidateDetail, error)
	ExistsByName(ctx context.Context, name string) (bool, *CandidateDetail, error)
	Create(ctx context.Context, candidate *Candidate, links CandidateLinks) (*CandidateDetail, error)
	Update(ctx context.Context, candidate *Candidate, links CandidateLinks) (*CandidateDetail, error)
	Delete(ctx context.Context, id int64) (*Candidate, error)
	Blacklist(ctx context.Context, id int64, reason string, userID int64) (*CandidateDetail, error)
}
