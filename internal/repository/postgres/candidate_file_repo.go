package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"

	"github.com/jackc/pgx/v5"
)

var candidateFileColumns = query.Columns{
	"id":   "id",
	"name": "name",
}

type candidateFileRepo struct {
	db DB
}

func NewCandidateFileRepository(db DB) domain.CandidateFileRepository {
	return &candidateFileRepo{db: db}
}

func (r *candidateFileRepo) Fetch(ctx context.Context, params query.Params) ([]domain.CandidateFile, int64, error) {
	order, err := query.ParseOrder(params.Order, candidateFileColumns)
	if err != nil {
		return nil, 0, err
	}
	window := params.Window()

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(id) FROM candidate_files").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("candidate file count query failed: %w", err)
	}

	rows, err := r.db.Query(ctx,
		fmt.Sprintf("SELECT id, name, url FROM candidate_files ORDER BY %s LIMIT $1 OFFSET $2", order.Clause()),
		window.Limit, window.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("candidate file list query failed: %w", err)
	}
	defer rows.Close()

	var items []domain.CandidateFile
	for rows.Next() {
		var f domain.CandidateFile
		if err := rows.Scan(&f.ID, &f.Name, &f.URL); err != nil {
			return nil, 0, err
		}
		items = append(items, f)
	}
	return items, total, rows.Err()
}

func (r *candidateFileRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateFile, error) {
	var f domain.CandidateFile
	err := r.db.QueryRow(ctx,
		"SELECT id, name, url FROM candidate_files WHERE id = $1", id,
	).Scan(&f.ID, &f.Name, &f.URL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *candidateFileRepo) Create(ctx context.Context, file *domain.CandidateFile) error {
	err := r.db.QueryRow(ctx,
		"INSERT INTO candidate_files (name, url) VALUES ($1, $2) RETURNING id",
		file.Name, file.URL,
	).Scan(&file.ID)
	if err != nil {
		return fmt.Errorf("failed to insert candidate file: %w", err)
	}
	return nil
}

func (r *candidateFileRepo) Update(ctx context.Context, file *domain.CandidateFile) error {
	result, err := r.db.Exec(ctx,
		"UPDATE candidate_files SET name = $2, url = $3 WHERE id = $1",
		file.ID, file.Name, file.URL)
	if err != nil {
		return fmt.Errorf("failed to update candidate file: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateFileRepo) Delete(ctx context.Context, id int64) (*domain.CandidateFile, error) {
	var f domain.CandidateFile
	err := r.db.QueryRow(ctx,
		"DELETE FROM candidate_files WHERE id = $1 RETURNING id, name, url", id,
	).Scan(&f.ID, &f.Name, &f.URL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}
