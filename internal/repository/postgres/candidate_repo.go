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

var candidateColumns = query.Columns{
	"id":          "c.id",
	"name":        "c.name",
	"dateOfBirth": "c.date_of_birth",
	"gender":      "c.gender",
	"email":       "c.email",
	"stars":       "c.stars",
	"sourceId":    "c.source_id",
}

const candidateSelect = `
	SELECT c.id, c.name, c.image, c.date_of_birth, c.gender, c.short_description,
	       c.email, c.linkedin, c.address, c.document_number, c.phone, c.deleted,
	       c.source_id, c.stars, c.countries, c.provinces, c.languages, c.hired_internally,
	       s.id, s.name
	FROM candidates c
	LEFT JOIN candidate_sources s ON c.source_id = s.id`

type candidateRepo struct {
	db DB
}

func NewCandidateRepository(db DB) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

// buildFilter translates the list parameters into a predicate. The deleted
// flag is merged in as an explicit default (absent means "false", not
// "anything"), and non-blacklisted is the default unless the caller opts in.
func buildCandidateFilter(f domain.CandidateFilter) *query.Builder {
	b := &query.Builder{}

	if f.ID != nil {
		b.Equal("c.id", *f.ID)
	}
	if f.Name != "" {
		b.ILike("c.name", f.Name)
	}
	if f.MinimumAge != nil {
		// born on or before today minus the minimum age
		b.Max("c.date_of_birth", time.Now().AddDate(-*f.MinimumAge, 0, 0))
	}
	if f.MaximumAge != nil {
		b.GreaterThan("c.date_of_birth", time.Now().AddDate(-*f.MaximumAge-1, 0, 0))
	}
	if f.Gender != "" {
		b.ILike("c.gender", f.Gender)
	}
	if f.ShortDescription != "" {
		b.ILike("c.short_description", f.ShortDescription)
	}
	if f.Email != "" {
		b.ILike("c.email", f.Email)
	}
	if f.Linkedin != "" {
		b.ILike("c.linkedin", f.Linkedin)
	}
	if f.Address != "" {
		b.ILike("c.address", f.Address)
	}
	if f.Phone != "" {
		b.ILike("c.phone", f.Phone)
	}
	if f.SourceID != nil {
		b.Equal("c.source_id", *f.SourceID)
	}
	if len(f.Countries) > 0 {
		b.Overlaps("c.countries", f.Countries)
	}
	if len(f.Provinces) > 0 {
		b.Overlaps("c.provinces", f.Provinces)
	}
	if len(f.Languages) > 0 {
		b.Overlaps("c.languages", f.Languages)
	}
	if len(f.AreaIDs) > 0 {
		b.MemberOf("c.id", "candidate_areas", "candidate_id", "area_id", f.AreaIDs)
	}
	if len(f.IndustryIDs) > 0 {
		b.MemberOf("c.id", "candidate_industries", "candidate_id", "industry_id", f.IndustryIDs)
	}
	if len(f.SeniorityIDs) > 0 {
		b.MemberOf("c.id", "candidate_seniorities", "candidate_id", "seniority_id", f.SeniorityIDs)
	}
	if f.MinimumStars != nil {
		b.Min("c.stars", *f.MinimumStars)
	}
	if f.MaximumStars != nil {
		b.Max("c.stars", *f.MaximumStars)
	}
	if f.Blacklisted == nil || !*f.Blacklisted {
		b.NotMemberOf("c.id", "blacklists", "candidate_id")
	}
	deleted := false
	if f.Deleted != nil {
		deleted = *f.Deleted
	}
	b.Equal("c.deleted", deleted)
	if f.HiredInternally != nil && *f.HiredInternally {
		b.Equal("c.hired_internally", true)
	}

	return b
}

func (r *candidateRepo) Fetch(ctx context.Context, filter domain.CandidateFilter) ([]domain.CandidateDetail, int64, error) {
	order, err := query.ParseOrder(filter.Order, candidateColumns)
	if err != nil {
		return nil, 0, err
	}
	window := filter.Window()
	b := buildCandidateFilter(filter)

	var total int64
	countSQL := "SELECT COUNT(c.id) FROM candidates c" + b.Where()
	if err := r.db.QueryRow(ctx, countSQL, b.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("candidate count query failed: %w", err)
	}

	itemsSQL := fmt.Sprintf("%s%s ORDER BY %s LIMIT %s OFFSET %s",
		candidateSelect, b.Where(), order.Clause(), b.Bind(window.Limit), b.Bind(window.Offset))

	rows, err := r.db.Query(ctx, itemsSQL, b.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("candidate list query failed: %w", err)
	}
	defer rows.Close()

	var items []domain.CandidateDetail
	var ids []int64
	byID := map[int64]*domain.CandidateDetail{}
	for rows.Next() {
		detail, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *detail)
		ids = append(ids, detail.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for i := range items {
		byID[items[i].ID] = &items[i]
	}

	if err := r.loadRelations(ctx, ids, byID); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateDetail, error) {
	row := r.db.QueryRow(ctx, candidateSelect+" WHERE c.id = $1", id)
	detail, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	byID := map[int64]*domain.CandidateDetail{detail.ID: detail}
	if err := r.loadRelations(ctx, []int64{detail.ID}, byID); err != nil {
		return nil, err
	}
	return detail, nil
}

func (r *candidateRepo) FindByName(ctx context.Context, name string) (*domain.CandidateDetail, error) {
	row := r.db.QueryRow(ctx, candidateSelect+" WHERE c.name ILIKE $1 AND c.deleted = false", name)
	detail, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	byID := map[int64]*domain.CandidateDetail{detail.ID: detail}
	if err := r.loadRelations(ctx, []int64{detail.ID}, byID); err != nil {
		return nil, err
	}
	return detail, nil
}

func (r *candidateRepo) Create(ctx context.Context, c *domain.Candidate, links domain.CandidateLinks) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO candidates (name, image, date_of_birth, gender, short_description,
		                        email, linkedin, address, document_number, phone,
		                        source_id, stars, countries, provinces, languages, hired_internally)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`,
		c.Name, c.Image, c.DateOfBirth, c.Gender, c.ShortDescription,
		c.Email, c.Linkedin, c.Address, c.DocumentNumber, c.Phone,
		c.SourceID, c.Stars, c.Countries, c.Provinces, c.Languages, c.HiredInternally,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to insert candidate: %w", err)
	}

	if err := insertCandidateLinks(ctx, tx, c.ID, links); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *candidateRepo) Update(ctx context.Context, c *domain.Candidate, links domain.CandidateLinks) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `
		UPDATE candidates SET
			name = $2, image = $3, date_of_birth = $4, gender = $5,
			short_description = $6, email = $7, linkedin = $8, address = $9,
			document_number = $10, phone = $11, source_id = $12, stars = $13,
			countries = $14, provinces = $15, languages = $16, hired_internally = $17
		WHERE id = $1`,
		c.ID, c.Name, c.Image, c.DateOfBirth, c.Gender,
		c.ShortDescription, c.Email, c.Linkedin, c.Address,
		c.DocumentNumber, c.Phone, c.SourceID, c.Stars,
		c.Countries, c.Provinces, c.Languages, c.HiredInternally,
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	// nil slice = keep existing set, non-nil = replace
	if links.AreaIDs != nil {
		if err := replaceLinks(ctx, tx, "candidate_areas", "candidate_id", "area_id", c.ID, links.AreaIDs); err != nil {
			return err
		}
	}
	if links.IndustryIDs != nil {
		if err := replaceLinks(ctx, tx, "candidate_industries", "candidate_id", "industry_id", c.ID, links.IndustryIDs); err != nil {
			return err
		}
	}
	if links.SeniorityIDs != nil {
		if err := replaceLinks(ctx, tx, "candidate_seniorities", "candidate_id", "seniority_id", c.ID, links.SeniorityIDs); err != nil {
			return err
		}
	}
	if links.FileIDs != nil {
		if err := replaceLinks(ctx, tx, "candidate_candidate_files", "candidate_id", "file_id", c.ID, links.FileIDs); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// SoftDelete marks the row deleted and renames it so the original name can
// be reused by a fresh candidate.
func (r *candidateRepo) SoftDelete(ctx context.Context, id int64) (*domain.Candidate, error) {
	var c domain.Candidate
	err := r.db.QueryRow(ctx, `
		UPDATE candidates
		SET deleted = true, name = name || ' (deleted)'
		WHERE id = $1
		RETURNING id, name, image, date_of_birth, gender, short_description,
		          email, linkedin, address, document_number, phone, deleted,
		          source_id, stars, countries, provinces, languages, hired_internally`, id,
	).Scan(
		&c.ID, &c.Name, &c.Image, &c.DateOfBirth, &c.Gender, &c.ShortDescription,
		&c.Email, &c.Linkedin, &c.Address, &c.DocumentNumber, &c.Phone, &c.Deleted,
		&c.SourceID, &c.Stars, &c.Countries, &c.Provinces, &c.Languages, &c.HiredInternally,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func scanCandidate(row pgx.Row) (*domain.CandidateDetail, error) {
	var d domain.CandidateDetail
	var sourceID *int64
	var sourceName *string
	err := row.Scan(
		&d.ID, &d.Name, &d.Image, &d.DateOfBirth, &d.Gender, &d.ShortDescription,
		&d.Email, &d.Linkedin, &d.Address, &d.DocumentNumber, &d.Phone, &d.Deleted,
		&d.SourceID, &d.Stars, &d.Countries, &d.Provinces, &d.Languages, &d.HiredInternally,
		&sourceID, &sourceName,
	)
	if err != nil {
		return nil, err
	}
	if sourceID != nil {
		d.Source = &domain.Lookup{ID: *sourceID, Name: *sourceName}
	}
	d.Areas = []domain.Lookup{}
	d.Industries = []domain.Lookup{}
	d.Seniorities = []domain.Lookup{}
	d.Files = []domain.CandidateFile{}
	d.Comments = []domain.Comment{}
	return &d, nil
}

// loadRelations batch-loads the m2m taxonomies, files, blacklist entries and
// comments for a page of candidates.
func (r *candidateRepo) loadRelations(ctx context.Context, ids []int64, byID map[int64]*domain.CandidateDetail) error {
	if len(ids) == 0 {
		return nil
	}

	type lookupDest func(d *domain.CandidateDetail, l domain.Lookup)
	lookupQueries := []struct {
		sql  string
		dest lookupDest
	}{
		{
			`SELECT ca.candidate_id, a.id, a.name FROM candidate_areas ca
			 JOIN areas a ON a.id = ca.area_id WHERE ca.candidate_id = ANY($1)`,
			func(d *domain.CandidateDetail, l domain.Lookup) { d.Areas = append(d.Areas, l) },
		},
		{
			`SELECT ci.candidate_id, i.id, i.name FROM candidate_industries ci
			 JOIN industries i ON i.id = ci.industry_id WHERE ci.candidate_id = ANY($1)`,
			func(d *domain.CandidateDetail, l domain.Lookup) { d.Industries = append(d.Industries, l) },
		},
		{
			`SELECT cs.candidate_id, s.id, s.name FROM candidate_seniorities cs
			 JOIN seniorities s ON s.id = cs.seniority_id WHERE cs.candidate_id = ANY($1)`,
			func(d *domain.CandidateDetail, l domain.Lookup) { d.Seniorities = append(d.Seniorities, l) },
		},
	}

	for _, q := range lookupQueries {
		rows, err := r.db.Query(ctx, q.sql, ids)
		if err != nil {
			return err
		}
		for rows.Next() {
			var candidateID int64
			var l domain.Lookup
			if err := rows.Scan(&candidateID, &l.ID, &l.Name); err != nil {
				rows.Close()
				return err
			}
			if d, ok := byID[candidateID]; ok {
				q.dest(d, l)
			}
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
	}

	rows, err := r.db.Query(ctx, `
		SELECT cf.candidate_id, f.id, f.name, f.url FROM candidate_candidate_files cf
		JOIN candidate_files f ON f.id = cf.file_id WHERE cf.candidate_id = ANY($1)`, ids)
	if err != nil {
		return err
	}
	for rows.Next() {
		var candidateID int64
		var f domain.CandidateFile
		if err := rows.Scan(&candidateID, &f.ID, &f.Name, &f.URL); err != nil {
			rows.Close()
			return err
		}
		if d, ok := byID[candidateID]; ok {
			d.Files = append(d.Files, f)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.db.Query(ctx, `
		SELECT id, candidate_id, reason, created_at, user_id
		FROM blacklists WHERE candidate_id = ANY($1)`, ids)
	if err != nil {
		return err
	}
	for rows.Next() {
		var e domain.BlacklistEntry
		if err := rows.Scan(&e.ID, &e.CandidateID, &e.Reason, &e.CreatedAt, &e.UserID); err != nil {
			rows.Close()
			return err
		}
		if d, ok := byID[e.CandidateID]; ok {
			entry := e
			d.Blacklist = &entry
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.db.Query(ctx, `
		SELECT id, candidate_id, comment, created_at, user_id
		FROM comments WHERE candidate_id = ANY($1) ORDER BY created_at`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var cm domain.Comment
		if err := rows.Scan(&cm.ID, &cm.CandidateID, &cm.Comment, &cm.CreatedAt, &cm.UserID); err != nil {
			return err
		}
		if d, ok := byID[cm.CandidateID]; ok {
			d.Comments = append(d.Comments, cm)
		}
	}
	return rows.Err()
}

func insertCandidateLinks(ctx context.Context, tx pgx.Tx, candidateID int64, links domain.CandidateLinks) error {
	sets := []struct {
		table, column string
		ids           []int64
	}{
		{"candidate_areas", "area_id", links.AreaIDs},
		{"candidate_industries", "industry_id", links.IndustryIDs},
		{"candidate_seniorities", "seniority_id", links.SeniorityIDs},
		{"candidate_candidate_files", "file_id", links.FileIDs},
	}
	for _, set := range sets {
		for _, id := range set.ids {
			_, err := tx.Exec(ctx,
				fmt.Sprintf("INSERT INTO %s (candidate_id, %s) VALUES ($1, $2)", set.table, set.column),
				candidateID, id)
			if err != nil {
				return fmt.Errorf("failed to insert %s link: %w", set.table, err)
			}
		}
	}
	return nil
}

func replaceLinks(ctx context.Context, tx pgx.Tx, table, ownerCol, refCol string, ownerID int64, ids []int64) error {
	_, err := tx.Exec(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, ownerCol), ownerID)
	if err != nil {
		return fmt.Errorf("failed to clear %s links: %w", table, err)
	}
	for _, id := range ids {
		_, err := tx.Exec(ctx,
			fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)", table, ownerCol, refCol),
			ownerID, id)
		if err != nil {
			return fmt.Errorf("failed to insert %s link: %w", table, err)
		}
	}
	return nil
}
