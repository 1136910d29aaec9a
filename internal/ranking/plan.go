// Package ranking plans the rank shifts that keep an ordered collection's
// sort values dense (consecutive integers, no duplicates, no gaps) across
// inserts, moves, and removals. Plans are pure values; binding them to a
// store happens elsewhere.
package ranking

import "fmt"

// Shift is a rank adjustment of Delta applied to every row whose sort value
// falls inside the interval described by the bounds. Unset bounds are open.
type Shift struct {
	Delta     int
	HasLower  bool
	Lower     int
	LowerIncl bool
	HasUpper  bool
	Upper     int
	UpperIncl bool
}

// Zero reports whether the shift moves nothing.
func (s Shift) Zero() bool {
	return s.Delta == 0
}

// Contains reports whether a sort value falls inside the shift interval.
func (s Shift) Contains(sort int) bool {
	if s.Delta == 0 {
		return false
	}
	if s.HasLower {
		if s.LowerIncl {
			if sort < s.Lower {
				return false
			}
		} else if sort <= s.Lower {
			return false
		}
	}
	if s.HasUpper {
		if s.UpperIncl {
			if sort > s.Upper {
				return false
			}
		} else if sort >= s.Upper {
			return false
		}
	}
	return true
}

// PlanInsert opens a gap at sort: every row at or above it moves up by one.
func PlanInsert(sort int) Shift {
	return Shift{Delta: 1, HasLower: true, Lower: sort, LowerIncl: true}
}

// PlanMove computes the shift for relocating a row from current to target.
// Moving down pulls the rows in (current, target] back by one; moving up
// pushes the rows in [target, current) forward by one. The boundary
// inclusivity differs by direction; both are covered by tests since an
// off-by-one here corrupts ranks silently instead of failing.
func PlanMove(current, target int) Shift {
	switch {
	case target > current:
		return Shift{
			Delta:    -1,
			HasLower: true, Lower: current, LowerIncl: false,
			HasUpper: true, Upper: target, UpperIncl: true,
		}
	case target < current:
		return Shift{
			Delta:    1,
			HasLower: true, Lower: target, LowerIncl: true,
			HasUpper: true, Upper: current, UpperIncl: false,
		}
	default:
		return Shift{}
	}
}

// PlanRemove closes the gap left at sort: every row strictly above it moves
// down by one.
func PlanRemove(sort int) Shift {
	return Shift{Delta: -1, HasLower: true, Lower: sort, LowerIncl: false}
}

// Predicate renders the shift interval as a SQL condition over column, with
// positional arguments starting at index start.
func (s Shift) Predicate(column string, start int) (string, []any) {
	cond := ""
	args := []any{}
	if s.HasLower {
		op := ">"
		if s.LowerIncl {
			op = ">="
		}
		cond = fmt.Sprintf("%s %s $%d", column, op, start+len(args))
		args = append(args, s.Lower)
	}
	if s.HasUpper {
		op := "<"
		if s.UpperIncl {
			op = "<="
		}
		if cond != "" {
			cond += " AND "
		}
		cond += fmt.Sprintf("%s %s $%d", column, op, start+len(args))
		args = append(args, s.Upper)
	}
	return cond, args
}

// Row is the in-memory projection of a ranked record, used to apply plans
// outside a store.
type Row struct {
	ID   int64
	Sort int
}

// Apply returns a copy of rows with the shift applied.
func Apply(rows []Row, s Shift) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	if s.Zero() {
		return out
	}
	for i := range out {
		if s.Contains(out[i].Sort) {
			out[i].Sort += s.Delta
		}
	}
	return out
}
