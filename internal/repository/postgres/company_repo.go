package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"

	"github.com/jackc/pgx/v5"
)

var companyColumns = query.Columns{
	"id":   "id",
	"name": "name",
}

type companyRepo struct {
	db DB
}

func NewCompanyRepository(db DB) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Fetch(ctx context.Context, filter domain.CompanyFilter) ([]domain.Company, int64, error) {
	order, err := query.ParseOrder(filter.Order, companyColumns)
	if err != nil {
		return nil, 0, err
	}
	window := filter.Window()

	b := &query.Builder{}
	if filter.ID != nil {
		b.Equal("id", *filter.ID)
	}
	if filter.Name != "" {
		b.ILike("name", filter.Name)
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(id) FROM companies"+b.Where(), b.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("company count query failed: %w", err)
	}

	itemsSQL := fmt.Sprintf("SELECT id, name, description FROM companies%s ORDER BY %s LIMIT %s OFFSET %s",
		b.Where(), order.Clause(), b.Bind(window.Limit), b.Bind(window.Offset))
	rows, err := r.db.Query(ctx, itemsSQL, b.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("company list query failed: %w", err)
	}
	defer rows.Close()

	var items []domain.Company
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, 0, err
		}
		items = append(items, c)
	}
	return items, total, rows.Err()
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	var c domain.Company
	err := r.db.QueryRow(ctx,
		"SELECT id, name, description FROM companies WHERE id = $1", id,
	).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	err := r.db.QueryRow(ctx,
		"INSERT INTO companies (name, description) VALUES ($1, $2) RETURNING id",
		company.Name, company.Description,
	).Scan(&company.ID)
	if err != nil {
		return fmt.Errorf("failed to insert company: %w", err)
	}
	return nil
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	result, err := r.db.Exec(ctx,
		"UPDATE companies SET name = $2, description = $3 WHERE id = $1",
		company.ID, company.Name, company.Description)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) Delete(ctx context.Context, id int64) (*domain.Company, error) {
	var c domain.Company
	err := r.db.QueryRow(ctx,
		"DELETE FROM companies WHERE id = $1 RETURNING id, name, description", id,
	).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
