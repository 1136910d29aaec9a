package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"

	"github.com/jackc/pgx/v5"
)

var candidateVacancyColumns = query.Columns{
	"id":          "cv.id",
	"candidateId": "cv.candidate_id",
	"vacancyId":   "cv.vacancy_id",
	"statusId":    "cv.candidate_vacancy_status_id",
	"createdAt":   "cv.created_at",
	"updatedAt":   "cv.updated_at",
}

const candidateVacancySelect = `
	SELECT cv.id, cv.candidate_id, cv.vacancy_id, cv.candidate_vacancy_status_id,
	       cv.notes, cv.created_at, cv.updated_at,
	       s.id, s.name, s.sort, s.is_initial
	FROM candidate_vacancies cv
	LEFT JOIN candidate_vacancy_statuses s ON cv.candidate_vacancy_status_id = s.id`

type candidateVacancyRepo struct {
	db DB
}

func NewCandidateVacancyRepository(db DB) domain.CandidateVacancyRepository {
	return &candidateVacancyRepo{db: db}
}

func (r *candidateVacancyRepo) Fetch(ctx context.Context, filter domain.CandidateVacancyFilter) ([]domain.CandidateVacancyDetail, int64, error) {
	order, err := query.ParseOrder(filter.Order, candidateVacancyColumns)
	if err != nil {
		return nil, 0, err
	}
	window := filter.Window()

	b := &query.Builder{}
	if filter.ID != nil {
		b.Equal("cv.id", *filter.ID)
	}
	if filter.CandidateID != nil {
		b.Equal("cv.candidate_id", *filter.CandidateID)
	}
	if filter.VacancyID != nil {
		b.Equal("cv.vacancy_id", *filter.VacancyID)
	}
	if filter.StatusID != nil {
		b.Equal("cv.candidate_vacancy_status_id", *filter.StatusID)
	}
	if filter.Notes != "" {
		b.ILike("cv.notes", filter.Notes)
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(cv.id) FROM candidate_vacancies cv"+b.Where(), b.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("candidate vacancy count query failed: %w", err)
	}

	itemsSQL := fmt.Sprintf("%s%s ORDER BY %s LIMIT %s OFFSET %s",
		candidateVacancySelect, b.Where(), order.Clause(), b.Bind(window.Limit), b.Bind(window.Offset))
	rows, err := r.db.Query(ctx, itemsSQL, b.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("candidate vacancy list query failed: %w", err)
	}
	defer rows.Close()

	var items []domain.CandidateVacancyDetail
	for rows.Next() {
		d, err := scanCandidateVacancy(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *d)
	}
	return items, total, rows.Err()
}

func (r *candidateVacancyRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateVacancyDetail, error) {
	d, err := scanCandidateVacancy(r.db.QueryRow(ctx, candidateVacancySelect+" WHERE cv.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *candidateVacancyRepo) Create(ctx context.Context, link *domain.CandidateVacancy) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO candidate_vacancies (candidate_id, vacancy_id, candidate_vacancy_status_id, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		link.CandidateID, link.VacancyID, link.StatusID, link.Notes,
	).Scan(&link.ID, &link.CreatedAt, &link.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert candidate vacancy: %w", err)
	}
	return nil
}

func (r *candidateVacancyRepo) Update(ctx context.Context, link *domain.CandidateVacancy) error {
	err := r.db.QueryRow(ctx, `
		UPDATE candidate_vacancies
		SET candidate_vacancy_status_id = $2, notes = $3, updated_at = now()
		WHERE id = $1
		RETURNING candidate_id, vacancy_id, created_at, updated_at`,
		link.ID, link.StatusID, link.Notes,
	).Scan(&link.CandidateID, &link.VacancyID, &link.CreatedAt, &link.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update candidate vacancy: %w", err)
	}
	return nil
}

func (r *candidateVacancyRepo) Delete(ctx context.Context, id int64) (*domain.CandidateVacancy, error) {
	var cv domain.CandidateVacancy
	err := r.db.QueryRow(ctx, `
		DELETE FROM candidate_vacancies WHERE id = $1
		RETURNING id, candidate_id, vacancy_id, candidate_vacancy_status_id, notes, created_at, updated_at`, id,
	).Scan(&cv.ID, &cv.CandidateID, &cv.VacancyID, &cv.StatusID, &cv.Notes, &cv.CreatedAt, &cv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &cv, nil
}

func scanCandidateVacancy(row pgx.Row) (*domain.CandidateVacancyDetail, error) {
	var d domain.CandidateVacancyDetail
	var statusID *int64
	var statusName *string
	var statusSort *int
	var statusInitial *bool
	err := row.Scan(
		&d.ID, &d.CandidateID, &d.VacancyID, &d.StatusID,
		&d.Notes, &d.CreatedAt, &d.UpdatedAt,
		&statusID, &statusName, &statusSort, &statusInitial,
	)
	if err != nil {
		return nil, err
	}
	if statusID != nil {
		d.Status = &domain.PipelineStatus{
			ID: *statusID, Name: *statusName, Sort: *statusSort, IsInitial: *statusInitial,
		}
	}
	return &d, nil
}
