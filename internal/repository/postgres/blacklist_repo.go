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

var blacklistColumns = query.Columns{
	"id":          "b.id",
	"candidateId": "b.candidate_id",
	"createdAt":   "b.created_at",
	"userId":      "b.user_id",
}

const blacklistSelect = `
	SELECT b.id, b.candidate_id, b.reason, b.created_at, b.user_id,
	       u.id, u.email, u.name, u.active, u.role, u.last_login, u.created_at
	FROM blacklists b
	LEFT JOIN users u ON b.user_id = u.id`

type blacklistRepo struct {
	db DB
}

func NewBlacklistRepository(db DB) domain.BlacklistRepository {
	return &blacklistRepo{db: db}
}

func (r *blacklistRepo) Fetch(ctx context.Context, filter domain.BlacklistFilter) ([]domain.BlacklistDetail, int64, error) {
	order, err := query.ParseOrder(filter.Order, blacklistColumns)
	if err != nil {
		return nil, 0, err
	}
	window := filter.Window()

	b := &query.Builder{}
	if filter.ID != nil {
		b.Equal("b.id", *filter.ID)
	}
	if filter.CandidateID != nil {
		b.Equal("b.candidate_id", *filter.CandidateID)
	}
	if filter.Reason != "" {
		b.ILike("b.reason", filter.Reason)
	}
	if filter.UserID != nil {
		b.Equal("b.user_id", *filter.UserID)
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(b.id) FROM blacklists b"+b.Where(), b.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("blacklist count query failed: %w", err)
	}

	itemsSQL := fmt.Sprintf("%s%s ORDER BY %s LIMIT %s OFFSET %s",
		blacklistSelect, b.Where(), order.Clause(), b.Bind(window.Limit), b.Bind(window.Offset))
	rows, err := r.db.Query(ctx, itemsSQL, b.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("blacklist list query failed: %w", err)
	}
	defer rows.Close()

	var items []domain.BlacklistDetail
	for rows.Next() {
		d, err := scanBlacklist(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *d)
	}
	return items, total, rows.Err()
}

func (r *blacklistRepo) GetByID(ctx context.Context, id int64) (*domain.BlacklistDetail, error) {
	d, err := scanBlacklist(r.db.QueryRow(ctx, blacklistSelect+" WHERE b.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *blacklistRepo) Create(ctx context.Context, entry *domain.BlacklistEntry) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO blacklists (candidate_id, reason, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		entry.CandidateID, entry.Reason, entry.UserID,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert blacklist entry: %w", err)
	}
	return nil
}

func (r *blacklistRepo) Update(ctx context.Context, entry *domain.BlacklistEntry) error {
	err := r.db.QueryRow(ctx,
		"UPDATE blacklists SET reason = $2 WHERE id = $1 RETURNING candidate_id, created_at, user_id",
		entry.ID, entry.Reason,
	).Scan(&entry.CandidateID, &entry.CreatedAt, &entry.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update blacklist entry: %w", err)
	}
	return nil
}

func (r *blacklistRepo) Delete(ctx context.Context, id int64) (*domain.BlacklistEntry, error) {
	var e domain.BlacklistEntry
	err := r.db.QueryRow(ctx,
		"DELETE FROM blacklists WHERE id = $1 RETURNING id, candidate_id, reason, created_at, user_id", id,
	).Scan(&e.ID, &e.CandidateID, &e.Reason, &e.CreatedAt, &e.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func scanBlacklist(row pgx.Row) (*domain.BlacklistDetail, error) {
	var d domain.BlacklistDetail
	var u domain.User
	var userID *int64
	var email, name, role *string
	var active *bool
	var createdAt *time.Time
	err := row.Scan(
		&d.ID, &d.CandidateID, &d.Reason, &d.CreatedAt, &d.UserID,
		&userID, &email, &name, &active, &role, &u.LastLogin, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	if userID != nil {
		u.ID = *userID
		u.Email = *email
		u.Name = *name
		u.Active = *active
		u.Role = *role
		u.CreatedAt = *createdAt
		d.User = &u
	}
	return &d, nil
}
