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

var userColumns = query.Columns{
	"id":        "id",
	"email":     "email",
	"name":      "name",
	"role":      "role",
	"lastLogin": "last_login",
	"createdAt": "created_at",
}

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Fetch(ctx context.Context, filter domain.UserFilter) ([]domain.User, int64, error) {
	order, err := query.ParseOrder(filter.Order, userColumns)
	if err != nil {
		return nil, 0, err
	}
	window := filter.Window()

	b := &query.Builder{}
	if filter.Email != "" {
		b.ILike("email", filter.Email)
	}
	if filter.Name != "" {
		b.ILike("name", filter.Name)
	}
	if filter.Active != nil {
		b.Equal("active", *filter.Active)
	}
	if filter.Role != "" {
		b.Equal("role", filter.Role)
	}
	if filter.ExcludeRole != "" {
		b.Cond(fmt.Sprintf("role <> %s", b.Bind(filter.ExcludeRole)))
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(id) FROM users"+b.Where(), b.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("user count query failed: %w", err)
	}

	itemsSQL := fmt.Sprintf(
		"SELECT id, email, password, name, active, role, last_login, created_at FROM users%s ORDER BY %s LIMIT %s OFFSET %s",
		b.Where(), order.Clause(), b.Bind(window.Limit), b.Bind(window.Offset))
	rows, err := r.db.Query(ctx, itemsSQL, b.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("user list query failed: %w", err)
	}
	defer rows.Close()

	var items []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Active, &u.Role, &u.LastLogin, &u.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, u)
	}
	return items, total, rows.Err()
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "id = $1", id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "email = $1", email)
}

func (r *userRepo) getOne(ctx context.Context, cond string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx,
		"SELECT id, email, password, name, active, role, last_login, created_at FROM users WHERE "+cond, arg,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Active, &u.Role, &u.LastLogin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password, name, active, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		user.Email, user.Password, user.Name, user.Active, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	result, err := r.db.Exec(ctx, `
		UPDATE users SET email = $2, password = $3, name = $4, active = $5, role = $6
		WHERE id = $1`,
		user.ID, user.Email, user.Password, user.Name, user.Active, user.Role)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	result, err := r.db.Exec(ctx, "UPDATE users SET last_login = $2 WHERE id = $1", id, at)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, `
		DELETE FROM users WHERE id = $1
		RETURNING id, email, password, name, active, role, last_login, created_at`, id,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Active, &u.Role, &u.LastLogin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
