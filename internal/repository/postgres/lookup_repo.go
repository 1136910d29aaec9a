package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"

	"github.com/jackc/pgx/v5"
)

var lookupColumns = query.Columns{
	"id":   "id",
	"name": "name",
}

// lookupRepo serves the name-only taxonomy tables. One implementation,
// parameterized by table name, covers areas, industries, seniorities,
// candidate sources, and vacancy statuses.
type lookupRepo struct {
	db    DB
	table string
}

func NewLookupRepository(db DB, kind domain.LookupKind) domain.LookupRepository {
	return &lookupRepo{db: db, table: string(kind)}
}

func (r *lookupRepo) Fetch(ctx context.Context, params query.Params) ([]domain.Lookup, int64, error) {
	order, err := query.ParseOrder(params.Order, lookupColumns)
	if err != nil {
		return nil, 0, err
	}
	window := params.Window()

	var total int64
	if err := r.db.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(id) FROM %s", r.table)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s count query failed: %w", r.table, err)
	}

	rows, err := r.db.Query(ctx,
		fmt.Sprintf("SELECT id, name FROM %s ORDER BY %s LIMIT $1 OFFSET $2", r.table, order.Clause()),
		window.Limit, window.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s list query failed: %w", r.table, err)
	}
	defer rows.Close()

	var items []domain.Lookup
	for rows.Next() {
		var l domain.Lookup
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, 0, err
		}
		items = append(items, l)
	}
	return items, total, rows.Err()
}

func (r *lookupRepo) GetByID(ctx context.Context, id int64) (*domain.Lookup, error) {
	var l domain.Lookup
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT id, name FROM %s WHERE id = $1", r.table), id,
	).Scan(&l.ID, &l.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *lookupRepo) Create(ctx context.Context, name string) (*domain.Lookup, error) {
	l := domain.Lookup{Name: name}
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("INSERT INTO %s (name) VALUES ($1) RETURNING id", r.table), name,
	).Scan(&l.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", r.table, err)
	}
	return &l, nil
}

func (r *lookupRepo) Update(ctx context.Context, id int64, name string) (*domain.Lookup, error) {
	var l domain.Lookup
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("UPDATE %s SET name = $2 WHERE id = $1 RETURNING id, name", r.table), id, name,
	).Scan(&l.ID, &l.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *lookupRepo) Delete(ctx context.Context, id int64) (*domain.Lookup, error) {
	var l domain.Lookup
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING id, name", r.table), id,
	).Scan(&l.ID, &l.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}
