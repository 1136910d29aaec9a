package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"

	"github.com/jackc/pgx/v5"
)

var commentColumns = query.Columns{
	"id":          "id",
	"candidateId": "candidate_id",
	"createdAt":   "created_at",
	"userId":      "user_id",
}

type commentRepo struct {
	db DB
}

func NewCommentRepository(db DB) domain.CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) Fetch(ctx context.Context, filter domain.CommentFilter) ([]domain.Comment, int64, error) {
	order, err := query.ParseOrder(filter.Order, commentColumns)
	if err != nil {
		return nil, 0, err
	}
	window := filter.Window()

	b := &query.Builder{}
	if filter.ID != nil {
		b.Equal("id", *filter.ID)
	}
	if filter.CandidateID != nil {
		b.Equal("candidate_id", *filter.CandidateID)
	}
	if filter.Comment != "" {
		b.ILike("comment", filter.Comment)
	}
	if filter.UserID != nil {
		b.Equal("user_id", *filter.UserID)
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(id) FROM comments"+b.Where(), b.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("comment count query failed: %w", err)
	}

	itemsSQL := fmt.Sprintf(
		"SELECT id, candidate_id, comment, created_at, user_id FROM comments%s ORDER BY %s LIMIT %s OFFSET %s",
		b.Where(), order.Clause(), b.Bind(window.Limit), b.Bind(window.Offset))
	rows, err := r.db.Query(ctx, itemsSQL, b.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("comment list query failed: %w", err)
	}
	defer rows.Close()

	var items []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.CandidateID, &c.Comment, &c.CreatedAt, &c.UserID); err != nil {
			return nil, 0, err
		}
		items = append(items, c)
	}
	return items, total, rows.Err()
}

func (r *commentRepo) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var c domain.Comment
	err := r.db.QueryRow(ctx,
		"SELECT id, candidate_id, comment, created_at, user_id FROM comments WHERE id = $1", id,
	).Scan(&c.ID, &c.CandidateID, &c.Comment, &c.CreatedAt, &c.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *commentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO comments (candidate_id, comment, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		comment.CandidateID, comment.Comment, comment.UserID,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

func (r *commentRepo) Update(ctx context.Context, comment *domain.Comment) error {
	err := r.db.QueryRow(ctx,
		"UPDATE comments SET comment = $2 WHERE id = $1 RETURNING candidate_id, created_at, user_id",
		comment.ID, comment.Comment,
	).Scan(&comment.CandidateID, &comment.CreatedAt, &comment.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update comment: %w", err)
	}
	return nil
}

func (r *commentRepo) Delete(ctx context.Context, id int64) (*domain.Comment, error) {
	var c domain.Comment
	err := r.db.QueryRow(ctx,
		"DELETE FROM comments WHERE id = $1 RETURNING id, candidate_id, comment, created_at, user_id", id,
	).Scan(&c.ID, &c.CandidateID, &c.Comment, &c.CreatedAt, &c.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
