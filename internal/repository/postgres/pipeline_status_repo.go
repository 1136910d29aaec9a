package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/query"
	"go-ats-backend/internal/ranking"

	"github.com/jackc/pgx/v5"
)

var pipelineStatusColumns = query.Columns{
	"id":   "id",
	"name": "name",
	"sort": "sort",
}

// pipelineStatusRepo owns the ranked pipeline status list. Every write runs
// in a serializable transaction holding an exclusive table lock, so the dense
// sort sequence and the single-initial rule survive concurrent writers. A
// serialization failure surfaces to the caller; there is no retry here.
type pipelineStatusRepo struct {
	db DB
}

func NewPipelineStatusRepository(db DB) domain.PipelineStatusRepository {
	return &pipelineStatusRepo{db: db}
}

func (r *pipelineStatusRepo) Fetch(ctx context.Context, params query.Params) ([]domain.PipelineStatus, int64, error) {
	order, err := query.ParseOrder(params.Order, pipelineStatusColumns)
	if err != nil {
		return nil, 0, err
	}
	window := params.Window()

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(id) FROM candidate_vacancy_statuses").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("pipeline status count query failed: %w", err)
	}

	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT id, name, sort, is_initial FROM candidate_vacancy_statuses ORDER BY %s LIMIT $1 OFFSET $2`,
			order.Clause()),
		window.Limit, window.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("pipeline status list query failed: %w", err)
	}
	defer rows.Close()

	var items []domain.PipelineStatus
	for rows.Next() {
		var s domain.PipelineStatus
		if err := rows.Scan(&s.ID, &s.Name, &s.Sort, &s.IsInitial); err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	return items, total, rows.Err()
}

func (r *pipelineStatusRepo) GetByID(ctx context.Context, id int64) (*domain.PipelineStatus, error) {
	var s domain.PipelineStatus
	err := r.db.QueryRow(ctx,
		"SELECT id, name, sort, is_initial FROM candidate_vacancy_statuses WHERE id = $1", id,
	).Scan(&s.ID, &s.Name, &s.Sort, &s.IsInitial)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *pipelineStatusRepo) Create(ctx context.Context, name string, sort int, isInitial bool) (*domain.PipelineStatus, error) {
	tx, err := r.beginRanked(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := applyShift(ctx, tx, ranking.PlanInsert(sort)); err != nil {
		return nil, err
	}
	if isInitial {
		if err := clearInitial(ctx, tx); err != nil {
			return nil, err
		}
	}

	s := domain.PipelineStatus{Name: name, Sort: sort, IsInitial: isInitial}
	err = tx.QueryRow(ctx, `
		INSERT INTO candidate_vacancy_statuses (name, sort, is_initial)
		VALUES ($1, $2, $3)
		RETURNING id`,
		name, sort, isInitial,
	).Scan(&s.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert pipeline status: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *pipelineStatusRepo) Update(ctx context.Context, id int64, upd domain.PipelineStatusUpdate) (*domain.PipelineStatus, error) {
	tx, err := r.beginRanked(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var current domain.PipelineStatus
	err = tx.QueryRow(ctx,
		"SELECT id, name, sort, is_initial FROM candidate_vacancy_statuses WHERE id = $1", id,
	).Scan(&current.ID, &current.Name, &current.Sort, &current.IsInitial)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	next := current
	if upd.Name != nil {
		next.Name = *upd.Name
	}
	if upd.IsInitial != nil {
		next.IsInitial = *upd.IsInitial
	}
	if upd.Sort != nil && *upd.Sort != current.Sort {
		next.Sort = *upd.Sort
		if err := applyShift(ctx, tx, ranking.PlanMove(current.Sort, next.Sort)); err != nil {
			return nil, err
		}
	}
	if next.IsInitial && !current.IsInitial {
		if err := clearInitial(ctx, tx); err != nil {
			return nil, err
		}
	}

	_, err = tx.Exec(ctx,
		"UPDATE candidate_vacancy_statuses SET name = $2, sort = $3, is_initial = $4 WHERE id = $1",
		id, next.Name, next.Sort, next.IsInitial)
	if err != nil {
		return nil, fmt.Errorf("failed to update pipeline status: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &next, nil
}

func (r *pipelineStatusRepo) Delete(ctx context.Context, id int64) (*domain.PipelineStatus, error) {
	tx, err := r.beginRanked(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var s domain.PipelineStatus
	err = tx.QueryRow(ctx,
		"DELETE FROM candidate_vacancy_statuses WHERE id = $1 RETURNING id, name, sort, is_initial", id,
	).Scan(&s.ID, &s.Name, &s.Sort, &s.IsInitial)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := applyShift(ctx, tx, ranking.PlanRemove(s.Sort)); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &s, nil
}

// beginRanked opens the transaction every ranked write runs in. The explicit
// lock serializes writers up front instead of letting them race to a
// serialization failure at commit.
func (r *pipelineStatusRepo) beginRanked(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	if _, err := tx.Exec(ctx, "LOCK TABLE candidate_vacancy_statuses IN EXCLUSIVE MODE"); err != nil {
		tx.Rollback(ctx)
		return nil, fmt.Errorf("failed to lock pipeline statuses: %w", err)
	}
	return tx, nil
}

func applyShift(ctx context.Context, tx pgx.Tx, shift ranking.Shift) error {
	if shift.Zero() {
		return nil
	}
	cond, args := shift.Predicate("sort", 2)
	sql := fmt.Sprintf("UPDATE candidate_vacancy_statuses SET sort = sort + $1 WHERE %s", cond)
	if _, err := tx.Exec(ctx, sql, append([]any{shift.Delta}, args...)...); err != nil {
		return fmt.Errorf("failed to shift pipeline statuses: %w", err)
	}
	return nil
}

func clearInitial(ctx context.Context, tx pgx.Tx) error {
	if _, err := tx.Exec(ctx, "UPDATE candidate_vacancy_statuses SET is_initial = false WHERE is_initial = true"); err != nil {
		return fmt.Errorf("failed to clear initial pipeline status: %w", err)
	}
	return nil
}
