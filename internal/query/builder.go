package query

import (
	"fmt"
	"strings"
)

// Builder accumulates AND-composed predicate clauses with pgx positional
// arguments. Absent filters add no clause; an empty builder matches
// everything.
type Builder struct {
	conds []string
	args  []any
}

// Bind registers an argument and returns its positional placeholder.
// Useful together with Cond for subquery predicates.
func (b *Builder) Bind(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// Cond appends a fully rendered condition. Placeholders inside it must come
// from Bind on this builder.
func (b *Builder) Cond(cond string) {
	b.conds = append(b.conds, cond)
}

func (b *Builder) Equal(col string, v any) {
	b.Cond(fmt.Sprintf("%s = %s", col, b.Bind(v)))
}

// ILike appends a case-insensitive substring match.
func (b *Builder) ILike(col, v string) {
	b.Cond(fmt.Sprintf("%s ILIKE %s", col, b.Bind("%"+v+"%")))
}

func (b *Builder) Min(col string, v any) {
	b.Cond(fmt.Sprintf("%s >= %s", col, b.Bind(v)))
}

func (b *Builder) Max(col string, v any) {
	b.Cond(fmt.Sprintf("%s <= %s", col, b.Bind(v)))
}

func (b *Builder) GreaterThan(col string, v any) {
	b.Cond(fmt.Sprintf("%s > %s", col, b.Bind(v)))
}

func (b *Builder) LessThan(col string, v any) {
	b.Cond(fmt.Sprintf("%s < %s", col, b.Bind(v)))
}

// AnyOf appends set membership against an array argument (col = ANY($n)).
func (b *Builder) AnyOf(col string, arr any) {
	b.Cond(fmt.Sprintf("%s = ANY(%s)", col, b.Bind(arr)))
}

// Overlaps appends a text-array overlap test (col && $n).
func (b *Builder) Overlaps(col string, values []string) {
	b.Cond(fmt.Sprintf("%s && %s", col, b.Bind(values)))
}

// MemberOf appends membership in a related table: col IN (SELECT refCol FROM
// table WHERE matchCol = ANY($n)).
func (b *Builder) MemberOf(col, table, refCol, matchCol string, arr any) {
	b.Cond(fmt.Sprintf("%s IN (SELECT %s FROM %s WHERE %s = ANY(%s))",
		col, refCol, table, matchCol, b.Bind(arr)))
}

// NotMemberOf appends the negated form of MemberOf without a match argument:
// col NOT IN (SELECT refCol FROM table).
func (b *Builder) NotMemberOf(col, table, refCol string) {
	b.Cond(fmt.Sprintf("%s NOT IN (SELECT %s FROM %s)", col, refCol, table))
}

// Where renders the accumulated predicate with a leading " WHERE ", or an
// empty string when no filters are active.
func (b *Builder) Where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

func (b *Builder) Args() []any {
	return b.args
}
