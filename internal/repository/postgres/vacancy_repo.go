package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"

	"github.com/jackc/pgx/v5"
)

var vacancyColumns = query.Columns{
	"id":        "v.id",
	"title":     "v.title",
	"statusId":  "v.status_id",
	"companyId": "v.company_id",
	"createdAt": "v.created_at",
	"updatedAt": "v.updated_at",
}

const vacancySelect = `
	SELECT v.id, v.title, v.description, v.status_id, v.filters_id, v.company_id,
	       v.created_by, v.assigned_to, v.created_at, v.updated_at,
	       st.id, st.name,
	       f.id, f.min_stars, f.gender, f.min_age, f.max_age, f.countries, f.provinces, f.languages,
	       co.id, co.name, co.description,
	       cu.id, cu.email, cu.name, cu.active, cu.role, cu.last_login, cu.created_at,
	       au.id, au.email, au.name, au.active, au.role, au.last_login, au.created_at
	FROM vacancies v
	LEFT JOIN vacancy_statuses st ON v.status_id = st.id
	LEFT JOIN vacancy_filters f ON v.filters_id = f.id
	LEFT JOIN companies co ON v.company_id = co.id
	LEFT JOIN users cu ON v.created_by = cu.id
	LEFT JOIN users au ON v.assigned_to = au.id`

type vacancyRepo struct {
	db DB
}

func NewVacancyRepository(db DB) domain.VacancyRepository {
	return &vacancyRepo{db: db}
}

func buildVacancyFilter(f domain.VacancyFilter) *query.Builder {
	b := &query.Builder{}
	if f.ID != nil {
		b.Equal("v.id", *f.ID)
	}
	if f.Title != "" {
		b.ILike("v.title", f.Title)
	}
	if f.Description != "" {
		b.ILike("v.description", f.Description)
	}
	if f.StatusID != nil {
		b.Equal("v.status_id", *f.StatusID)
	}
	if f.CompanyID != nil {
		b.Equal("v.company_id", *f.CompanyID)
	}
	if f.CreatedByID != nil {
		b.Equal("v.created_by", *f.CreatedByID)
	}
	if f.AssignedToID != nil {
		b.Equal("v.assigned_to", *f.AssignedToID)
	}
	if f.CriteriaGender != "" {
		b.ILike("f.gender", f.CriteriaGender)
	}
	if f.CriteriaMinAge != nil {
		b.Min("f.min_age", *f.CriteriaMinAge)
	}
	if f.CriteriaMaxAge != nil {
		b.Max("f.max_age", *f.CriteriaMaxAge)
	}
	if f.CriteriaMinStars != nil {
		b.Min("f.min_stars", *f.CriteriaMinStars)
	}
	if len(f.AreaIDs) > 0 {
		b.MemberOf("v.filters_id", "vacancy_filter_areas", "filter_id", "area_id", f.AreaIDs)
	}
	if len(f.IndustryIDs) > 0 {
		b.MemberOf("v.filters_id", "vacancy_filter_industries", "filter_id", "industry_id", f.IndustryIDs)
	}
	if len(f.SeniorityIDs) > 0 {
		b.MemberOf("v.filters_id", "vacancy_filter_seniorities", "filter_id", "seniority_id", f.SeniorityIDs)
	}
	return b
}

func (r *vacancyRepo) Fetch(ctx context.Context, filter domain.VacancyFilter) ([]domain.VacancyDetail, int64, error) {
	order, err := query.ParseOrder(filter.Order, vacancyColumns)
	if err != nil {
		return nil, 0, err
	}
	window := filter.Window()
	b := buildVacancyFilter(filter)

	var total int64
	countSQL := "SELECT COUNT(v.id) FROM vacancies v LEFT JOIN vacancy_filters f ON v.filters_id = f.id" + b.Where()
	if err := r.db.QueryRow(ctx, countSQL, b.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("vacancy count query failed: %w", err)
	}

	itemsSQL := fmt.Sprintf("%s%s ORDER BY %s LIMIT %s OFFSET %s",
		vacancySelect, b.Where(), order.Clause(), b.Bind(window.Limit), b.Bind(window.Offset))
	rows, err := r.db.Query(ctx, itemsSQL, b.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("vacancy list query failed: %w", err)
	}
	defer rows.Close()

	var items []domain.VacancyDetail
	var filterIDs []int64
	for rows.Next() {
		d, err := scanVacancy(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *d)
		if d.Criteria != nil {
			filterIDs = append(filterIDs, d.Criteria.ID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	byFilterID := map[int64]*domain.VacancyCriteriaDetail{}
	byVacancyID := map[int64]*domain.VacancyDetail{}
	for i := range items {
		byVacancyID[items[i].ID] = &items[i]
		if items[i].Criteria != nil {
			byFilterID[items[i].Criteria.ID] = items[i].Criteria
		}
	}
	if err := r.loadCriteriaLinks(ctx, filterIDs, byFilterID); err != nil {
		return nil, 0, err
	}
	vacancyIDs := make([]int64, 0, len(items))
	for i := range items {
		vacancyIDs = append(vacancyIDs, items[i].ID)
	}
	if err := r.loadPipelines(ctx, vacancyIDs, byVacancyID); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *vacancyRepo) GetByID(ctx context.Context, id int64) (*domain.VacancyDetail, error) {
	d, err := scanVacancy(r.db.QueryRow(ctx, vacancySelect+" WHERE v.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if d.Criteria != nil {
		byFilterID := map[int64]*domain.VacancyCriteriaDetail{d.Criteria.ID: d.Criteria}
		if err := r.loadCriteriaLinks(ctx, []int64{d.Criteria.ID}, byFilterID); err != nil {
			return nil, err
		}
	}
	byVacancyID := map[int64]*domain.VacancyDetail{d.ID: d}
	if err := r.loadPipelines(ctx, []int64{d.ID}, byVacancyID); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *vacancyRepo) Create(ctx context.Context, vacancy *domain.Vacancy, criteria *domain.VacancyCriteria) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if criteria != nil {
		if err := insertCriteria(ctx, tx, criteria); err != nil {
			return err
		}
		vacancy.FiltersID = &criteria.ID
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO vacancies (title, description, status_id, filters_id, company_id, created_by, assigned_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		vacancy.Title, vacancy.Description, vacancy.StatusID, vacancy.FiltersID,
		vacancy.CompanyID, vacancy.CreatedBy, vacancy.AssignedTo,
	).Scan(&vacancy.ID, &vacancy.CreatedAt, &vacancy.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert vacancy: %w", err)
	}
	return tx.Commit(ctx)
}

func (r *vacancyRepo) Update(ctx context.Context, vacancy *domain.Vacancy, criteria *domain.VacancyCriteria) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var filtersID *int64
	err = tx.QueryRow(ctx, "SELECT filters_id FROM vacancies WHERE id = $1", vacancy.ID).Scan(&filtersID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	if criteria != nil {
		if filtersID != nil {
			criteria.ID = *filtersID
			if err := updateCriteria(ctx, tx, criteria); err != nil {
				return err
			}
		} else {
			if err := insertCriteria(ctx, tx, criteria); err != nil {
				return err
			}
			filtersID = &criteria.ID
		}
	}
	vacancy.FiltersID = filtersID

	err = tx.QueryRow(ctx, `
		UPDATE vacancies
		SET title = $2, description = $3, status_id = $4, filters_id = $5,
		    company_id = $6, assigned_to = $7, updated_at = now()
		WHERE id = $1
		RETURNING created_by, created_at, updated_at`,
		vacancy.ID, vacancy.Title, vacancy.Description, vacancy.StatusID, vacancy.FiltersID,
		vacancy.CompanyID, vacancy.AssignedTo,
	).Scan(&vacancy.CreatedBy, &vacancy.CreatedAt, &vacancy.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update vacancy: %w", err)
	}
	return tx.Commit(ctx)
}

func (r *vacancyRepo) Delete(ctx context.Context, id int64) (*domain.Vacancy, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var v domain.Vacancy
	err = tx.QueryRow(ctx, `
		DELETE FROM vacancies WHERE id = $1
		RETURNING id, title, description, status_id, filters_id, company_id,
		          created_by, assigned_to, created_at, updated_at`, id,
	).Scan(&v.ID, &v.Title, &v.Description, &v.StatusID, &v.FiltersID, &v.CompanyID,
		&v.CreatedBy, &v.AssignedTo, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	// the criteria row belongs to exactly one vacancy
	if v.FiltersID != nil {
		if _, err := tx.Exec(ctx, "DELETE FROM vacancy_filters WHERE id = $1", *v.FiltersID); err != nil {
			return nil, fmt.Errorf("failed to delete vacancy criteria: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &v, nil
}

func insertCriteria(ctx context.Context, tx pgx.Tx, c *domain.VacancyCriteria) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO vacancy_filters (min_stars, gender, min_age, max_age, countries, provinces, languages)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		c.MinStars, c.Gender, c.MinAge, c.MaxAge, c.Countries, c.Provinces, c.Languages,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to insert vacancy criteria: %w", err)
	}
	return insertCriteriaLinks(ctx, tx, c)
}

func updateCriteria(ctx context.Context, tx pgx.Tx, c *domain.VacancyCriteria) error {
	_, err := tx.Exec(ctx, `
		UPDATE vacancy_filters
		SET min_stars = $2, gender = $3, min_age = $4, max_age = $5,
		    countries = $6, provinces = $7, languages = $8
		WHERE id = $1`,
		c.ID, c.MinStars, c.Gender, c.MinAge, c.MaxAge, c.Countries, c.Provinces, c.Languages)
	if err != nil {
		return fmt.Errorf("failed to update vacancy criteria: %w", err)
	}
	for _, table := range []string{"vacancy_filter_areas", "vacancy_filter_industries", "vacancy_filter_seniorities"} {
		if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE filter_id = $1", table), c.ID); err != nil {
			return fmt.Errorf("failed to clear %s links: %w", table, err)
		}
	}
	return insertCriteriaLinks(ctx, tx, c)
}

func insertCriteriaLinks(ctx context.Context, tx pgx.Tx, c *domain.VacancyCriteria) error {
	sets := []struct {
		table, column string
		ids           []int64
	}{
		{"vacancy_filter_areas", "area_id", c.AreaIDs},
		{"vacancy_filter_industries", "industry_id", c.IndustryIDs},
		{"vacancy_filter_seniorities", "seniority_id", c.SeniorityIDs},
	}
	for _, set := range sets {
		for _, id := range set.ids {
			_, err := tx.Exec(ctx,
				fmt.Sprintf("INSERT INTO %s (filter_id, %s) VALUES ($1, $2)", set.table, set.column),
				c.ID, id)
			if err != nil {
				return fmt.Errorf("failed to insert %s link: %w", set.table, err)
			}
		}
	}
	return nil
}

func scanVacancy(row pgx.Row) (*domain.VacancyDetail, error) {
	var d domain.VacancyDetail
	var statusID *int64
	var statusName *string
	var crit domain.VacancyCriteriaDetail
	var critID *int64
	var companyID *int64
	var companyName, companyDesc *string
	createdBy := userScan{}
	assignedTo := userScan{}

	err := row.Scan(
		&d.ID, &d.Title, &d.Description, &d.StatusID, &d.FiltersID, &d.CompanyID,
		&d.CreatedBy, &d.AssignedTo, &d.CreatedAt, &d.UpdatedAt,
		&statusID, &statusName,
		&critID, &crit.MinStars, &crit.Gender, &crit.MinAge, &crit.MaxAge,
		&crit.Countries, &crit.Provinces, &crit.Languages,
		&companyID, &companyName, &companyDesc,
		&createdBy.id, &createdBy.email, &createdBy.name, &createdBy.active,
		&createdBy.role, &createdBy.lastLogin, &createdBy.createdAt,
		&assignedTo.id, &assignedTo.email, &assignedTo.name, &assignedTo.active,
		&assignedTo.role, &assignedTo.lastLogin, &assignedTo.createdAt,
	)
	if err != nil {
		return nil, err
	}
	if statusID != nil {
		d.Status = &domain.Lookup{ID: *statusID, Name: *statusName}
	}
	if critID != nil {
		crit.ID = *critID
		crit.Areas = []domain.Lookup{}
		crit.Industries = []domain.Lookup{}
		crit.Seniorities = []domain.Lookup{}
		d.Criteria = &crit
	}
	if companyID != nil {
		d.Company = &domain.Company{ID: *companyID, Name: *companyName, Description: *companyDesc}
	}
	d.CreatedByUser = createdBy.user()
	d.AssignedToUser = assignedTo.user()
	d.Candidates = []domain.VacancyPipelineEntry{}
	return &d, nil
}

// userScan holds the nullable columns of a left-joined user row.
type userScan struct {
	id        *int64
	email     *string
	name      *string
	active    *bool
	role      *string
	lastLogin *time.Time
	createdAt *time.Time
}

func (s userScan) user() *domain.User {
	if s.id == nil {
		return nil
	}
	u := &domain.User{
		ID: *s.id, Email: *s.email, Name: *s.name,
		Active: *s.active, Role: *s.role, LastLogin: s.lastLogin,
	}
	if s.createdAt != nil {
		u.CreatedAt = *s.createdAt
	}
	return u
}

func (r *vacancyRepo) loadCriteriaLinks(ctx context.Context, filterIDs []int64, byFilterID map[int64]*domain.VacancyCriteriaDetail) error {
	if len(filterIDs) == 0 {
		return nil
	}
	type dest func(c *domain.VacancyCriteriaDetail, l domain.Lookup)
	queries := []struct {
		sql  string
		dest dest
	}{
		{
			`SELECT fa.filter_id, a.id, a.name FROM vacancy_filter_areas fa
			 JOIN areas a ON a.id = fa.area_id WHERE fa.filter_id = ANY($1)`,
			func(c *domain.VacancyCriteriaDetail, l domain.Lookup) { c.Areas = append(c.Areas, l) },
		},
		{
			`SELECT fi.filter_id, i.id, i.name FROM vacancy_filter_industries fi
			 JOIN industries i ON i.id = fi.industry_id WHERE fi.filter_id = ANY($1)`,
			func(c *domain.VacancyCriteriaDetail, l domain.Lookup) { c.Industries = append(c.Industries, l) },
		},
		{
			`SELECT fs.filter_id, s.id, s.name FROM vacancy_filter_seniorities fs
			 JOIN seniorities s ON s.id = fs.seniority_id WHERE fs.filter_id = ANY($1)`,
			func(c *domain.VacancyCriteriaDetail, l domain.Lookup) { c.Seniorities = append(c.Seniorities, l) },
		},
	}
	for _, q := range queries {
		rows, err := r.db.Query(ctx, q.sql, filterIDs)
		if err != nil {
			return err
		}
		for rows.Next() {
			var filterID int64
			var l domain.Lookup
			if err := rows.Scan(&filterID, &l.ID, &l.Name); err != nil {
				rows.Close()
				return err
			}
			if c, ok := byFilterID[filterID]; ok {
				q.dest(c, l)
			}
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
	}
	return nil
}

// loadPipelines attaches each vacancy's candidate pipeline, ordered by the
// pipeline stage rank.
func (r *vacancyRepo) loadPipelines(ctx context.Context, vacancyIDs []int64, byVacancyID map[int64]*domain.VacancyDetail) error {
	if len(vacancyIDs) == 0 {
		return nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT cv.id, cv.candidate_id, cv.vacancy_id, cv.candidate_vacancy_status_id,
		       cv.notes, cv.created_at, cv.updated_at,
		       c.id, c.name, c.image, c.date_of_birth, c.gender, c.short_description,
		       c.email, c.linkedin, c.address, c.document_number, c.phone, c.deleted,
		       c.source_id, c.stars, c.countries, c.provinces, c.languages, c.hired_internally,
		       s.id, s.name, s.sort, s.is_initial
		FROM candidate_vacancies cv
		JOIN candidates c ON c.id = cv.candidate_id
		LEFT JOIN candidate_vacancy_statuses s ON s.id = cv.candidate_vacancy_status_id
		WHERE cv.vacancy_id = ANY($1)
		ORDER BY s.sort`, vacancyIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var e domain.VacancyPipelineEntry
		var statusID *int64
		var statusName *string
		var statusSort *int
		var statusInitial *bool
		err := rows.Scan(
			&e.ID, &e.CandidateID, &e.VacancyID, &e.StatusID,
			&e.Notes, &e.CreatedAt, &e.UpdatedAt,
			&e.Candidate.ID, &e.Candidate.Name, &e.Candidate.Image, &e.Candidate.DateOfBirth,
			&e.Candidate.Gender, &e.Candidate.ShortDescription, &e.Candidate.Email,
			&e.Candidate.Linkedin, &e.Candidate.Address, &e.Candidate.DocumentNumber,
			&e.Candidate.Phone, &e.Candidate.Deleted, &e.Candidate.SourceID, &e.Candidate.Stars,
			&e.Candidate.Countries, &e.Candidate.Provinces, &e.Candidate.Languages,
			&e.Candidate.HiredInternally,
			&statusID, &statusName, &statusSort, &statusInitial,
		)
		if err != nil {
			return err
		}
		if statusID != nil {
			e.Status = &domain.PipelineStatus{
				ID: *statusID, Name: *statusName, Sort: *statusSort, IsInitial: *statusInitial,
			}
		}
		if d, ok := byVacancyID[e.VacancyID]; ok {
			d.Candidates = append(d.Candidates, e)
		}
	}
	return rows.Err()
}
