package ranking_test

import (
	"sort"
	"testing"

	"go-ats-backend/internal/ranking"

	"github.com/stretchr/testify/assert"
)

func ranksByID(rows []ranking.Row) map[int64]int {
	out := make(map[int64]int, len(rows))
	for _, r := range rows {
		out[r.ID] = r.Sort
	}
	return out
}

// assertDense checks that the sort values form a gapless 0..n-1 sequence.
func assertDense(t *testing.T, rows []ranking.Row) {
	t.Helper()
	sorts := make([]int, len(rows))
	for i, r := range rows {
		sorts[i] = r.Sort
	}
	sort.Ints(sorts)
	for i, s := range sorts {
		assert.Equal(t, i, s, "sort values must stay dense")
	}
}

func TestPlanInsert(t *testing.T) {
	rows := []ranking.Row{
		{ID: 1, Sort: 0}, // A
		{ID: 2, Sort: 1}, // B
		{ID: 3, Sort: 2}, // C
	}

	t.Run("insert in the middle shifts everything at or above", func(t *testing.T) {
		shifted := ranking.Apply(rows, ranking.PlanInsert(1))
		shifted = append(shifted, ranking.Row{ID: 4, Sort: 1})

		got := ranksByID(shifted)
		assert.Equal(t, 0, got[1])
		assert.Equal(t, 1, got[4])
		assert.Equal(t, 2, got[2])
		assert.Equal(t, 3, got[3])
		assertDense(t, shifted)
	})

	t.Run("insert at the end shifts nothing", func(t *testing.T) {
		shifted := ranking.Apply(rows, ranking.PlanInsert(3))
		shifted = append(shifted, ranking.Row{ID: 4, Sort: 3})

		got := ranksByID(shifted)
		assert.Equal(t, 0, got[1])
		assert.Equal(t, 1, got[2])
		assert.Equal(t, 2, got[3])
		assert.Equal(t, 3, got[4])
		assertDense(t, shifted)
	})

	t.Run("insert at the front shifts everything", func(t *testing.T) {
		shifted := ranking.Apply(rows, ranking.PlanInsert(0))
		shifted = append(shifted, ranking.Row{ID: 4, Sort: 0})

		got := ranksByID(shifted)
		assert.Equal(t, 0, got[4])
		assert.Equal(t, 1, got[1])
		assert.Equal(t, 2, got[2])
		assert.Equal(t, 3, got[3])
		assertDense(t, shifted)
	})
}

func TestPlanMove(t *testing.T) {
	rows := []ranking.Row{
		{ID: 1, Sort: 0}, // A
		{ID: 2, Sort: 1}, // B
		{ID: 3, Sort: 2}, // C
		{ID: 4, Sort: 3}, // D
	}

	moveRow := func(rows []ranking.Row, id int64, target int) []ranking.Row {
		var current int
		for _, r := range rows {
			if r.ID == id {
				current = r.Sort
			}
		}
		out := ranking.Apply(rows, ranking.PlanMove(current, target))
		for i := range out {
			if out[i].ID == id {
				out[i].Sort = target
			}
		}
		return out
	}

	t.Run("move down pulls the passed rows back", func(t *testing.T) {
		out := moveRow(rows, 1, 2) // A from 0 to 2

		got := ranksByID(out)
		assert.Equal(t, 0, got[2])
		assert.Equal(t, 1, got[3])
		assert.Equal(t, 2, got[1])
		assert.Equal(t, 3, got[4])
		assertDense(t, out)
	})

	t.Run("move up pushes the displaced rows forward", func(t *testing.T) {
		out := moveRow(rows, 4, 1) // D from 3 to 1

		got := ranksByID(out)
		assert.Equal(t, 0, got[1])
		assert.Equal(t, 1, got[4])
		assert.Equal(t, 2, got[2])
		assert.Equal(t, 3, got[3])
		assertDense(t, out)
	})

	t.Run("move to the same rank changes nothing", func(t *testing.T) {
		shift := ranking.PlanMove(2, 2)
		assert.True(t, shift.Zero())

		out := ranking.Apply(rows, shift)
		assert.Equal(t, ranksByID(rows), ranksByID(out))
	})

	t.Run("the row outside the interval is untouched either direction", func(t *testing.T) {
		down := ranking.PlanMove(0, 2)
		assert.False(t, down.Contains(0), "origin rank leaves the interval")
		assert.True(t, down.Contains(1))
		assert.True(t, down.Contains(2))
		assert.False(t, down.Contains(3))

		up := ranking.PlanMove(3, 1)
		assert.False(t, up.Contains(0))
		assert.True(t, up.Contains(1))
		assert.True(t, up.Contains(2))
		assert.False(t, up.Contains(3), "origin rank leaves the interval")
	})
}

func TestPlanRemove(t *testing.T) {
	rows := []ranking.Row{
		{ID: 1, Sort: 0},
		{ID: 2, Sort: 1},
		{ID: 3, Sort: 2},
		{ID: 4, Sort: 3},
	}

	t.Run("removing a middle row closes the gap", func(t *testing.T) {
		remaining := []ranking.Row{rows[0], rows[2], rows[3]} // drop sort 1
		out := ranking.Apply(remaining, ranking.PlanRemove(1))

		got := ranksByID(out)
		assert.Equal(t, 0, got[1])
		assert.Equal(t, 1, got[3])
		assert.Equal(t, 2, got[4])
		assertDense(t, out)
	})

	t.Run("removing the last row shifts nothing", func(t *testing.T) {
		remaining := rows[:3]
		out := ranking.Apply(remaining, ranking.PlanRemove(3))
		assert.Equal(t, ranksByID(remaining), ranksByID(out))
	})
}

func TestShiftPredicate(t *testing.T) {
	t.Run("insert renders a single inclusive lower bound", func(t *testing.T) {
		cond, args := ranking.PlanInsert(2).Predicate("sort", 2)
		assert.Equal(t, "sort >= $2", cond)
		assert.Equal(t, []any{2}, args)
	})

	t.Run("remove renders an exclusive lower bound", func(t *testing.T) {
		cond, args := ranking.PlanRemove(2).Predicate("sort", 2)
		assert.Equal(t, "sort > $2", cond)
		assert.Equal(t, []any{2}, args)
	})

	t.Run("move down renders a half-open interval", func(t *testing.T) {
		cond, args := ranking.PlanMove(0, 2).Predicate("sort", 2)
		assert.Equal(t, "sort > $2 AND sort <= $3", cond)
		assert.Equal(t, []any{0, 2}, args)
	})

	t.Run("move up renders the mirrored interval", func(t *testing.T) {
		cond, args := ranking.PlanMove(3, 1).Predicate("sort", 2)
		assert.Equal(t, "sort >= $2 AND sort < $3", cond)
		assert.Equal(t, []any{1, 3}, args)
	})
}
