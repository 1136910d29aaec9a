package query_test

import (
	"testing"

	"go-ats-backend/internal/query"
	"go-ats-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColumns = query.Columns{
	"id":        "c.id",
	"name":      "c.name",
	"createdAt": "c.created_at",
}

func TestParseOrder(t *testing.T) {
	t.Run("empty string falls back to id ascending", func(t *testing.T) {
		order, err := query.ParseOrder("", testColumns)
		require.NoError(t, err)
		assert.Equal(t, "c.id ASC", order.Clause())
	})

	t.Run("maps the key through the allow-list", func(t *testing.T) {
		order, err := query.ParseOrder("createdAt:desc", testColumns)
		require.NoError(t, err)
		assert.Equal(t, "c.created_at DESC", order.Clause())
	})

	t.Run("direction is case-insensitive", func(t *testing.T) {
		order, err := query.ParseOrder("name:DESC", testColumns)
		require.NoError(t, err)
		assert.Equal(t, "c.name DESC", order.Clause())
	})

	t.Run("anything but desc means ascending", func(t *testing.T) {
		order, err := query.ParseOrder("name:upwards", testColumns)
		require.NoError(t, err)
		assert.Equal(t, "c.name ASC", order.Clause())
	})

	t.Run("missing separator is rejected", func(t *testing.T) {
		_, err := query.ParseOrder("name", testColumns)
		require.Error(t, err)
		assert.Equal(t, "Bad order string", err.Error())
	})

	t.Run("too many separators are rejected", func(t *testing.T) {
		_, err := query.ParseOrder("name:asc:extra", testColumns)
		require.Error(t, err)
		assert.Equal(t, "Bad order string", err.Error())
	})

	t.Run("unknown sort key is rejected", func(t *testing.T) {
		_, err := query.ParseOrder("password:asc", testColumns)
		require.Error(t, err)
		assert.Equal(t, "Invalid sortBy parameter", err.Error())

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})
}

func TestWindow(t *testing.T) {
	t.Run("defaults apply when nothing is set", func(t *testing.T) {
		w := query.Params{}.Window()
		assert.Equal(t, 1, w.Page)
		assert.Equal(t, 100, w.Limit)
		assert.Equal(t, 0, w.Offset)
	})

	t.Run("offset follows page and limit", func(t *testing.T) {
		w := query.Params{Page: 3, Limit: 20}.Window()
		assert.Equal(t, 40, w.Offset)
	})

	t.Run("non-positive values fall back to defaults", func(t *testing.T) {
		w := query.Params{Page: -1, Limit: 0}.Window()
		assert.Equal(t, 1, w.Page)
		assert.Equal(t, 100, w.Limit)
	})
}

func TestBuilder(t *testing.T) {
	t.Run("empty builder matches everything", func(t *testing.T) {
		b := &query.Builder{}
		assert.Equal(t, "", b.Where())
		assert.Empty(t, b.Args())
	})

	t.Run("conditions are AND-composed with positional args", func(t *testing.T) {
		b := &query.Builder{}
		b.Equal("c.deleted", false)
		b.ILike("c.name", "smith")
		b.Min("c.stars", 3.0)

		assert.Equal(t, " WHERE c.deleted = $1 AND c.name ILIKE $2 AND c.stars >= $3", b.Where())
		assert.Equal(t, []any{false, "%smith%", 3.0}, b.Args())
	})

	t.Run("array predicates render membership and overlap", func(t *testing.T) {
		b := &query.Builder{}
		b.AnyOf("c.id", []int64{1, 2})
		b.Overlaps("c.countries", []string{"Argentina"})
		b.MemberOf("c.id", "candidate_areas", "candidate_id", "area_id", []int64{7})
		b.NotMemberOf("c.id", "blacklists", "candidate_id")

		assert.Equal(t,
			" WHERE c.id = ANY($1) AND c.countries && $2"+
				" AND c.id IN (SELECT candidate_id FROM candidate_areas WHERE area_id = ANY($3))"+
				" AND c.id NOT IN (SELECT candidate_id FROM blacklists)",
			b.Where())
		assert.Len(t, b.Args(), 3)
	})

	t.Run("bind continues the numbering for trailing clauses", func(t *testing.T) {
		b := &query.Builder{}
		b.Equal("c.deleted", false)
		assert.Equal(t, "$2", b.Bind(10))
		assert.Equal(t, "$3", b.Bind(0))
	})
}

func TestNewPage(t *testing.T) {
	w := query.Params{Page: 2, Limit: 10}.Window()

	t.Run("computes page math with a partial final page", func(t *testing.T) {
		page := query.NewPage([]string{"a", "b"}, 25, w)
		assert.Equal(t, int64(25), page.Meta.TotalItems)
		assert.Equal(t, 3, page.Meta.TotalPages)
		assert.Equal(t, 2, page.Meta.CurrentPage)
		assert.Equal(t, 10, page.Meta.PageSize)
	})

	t.Run("exact multiple has no extra page", func(t *testing.T) {
		page := query.NewPage([]string{"a"}, 30, w)
		assert.Equal(t, 3, page.Meta.TotalPages)
	})

	t.Run("nil items serialize as an empty slice", func(t *testing.T) {
		page := query.NewPage[string](nil, 0, w)
		assert.NotNil(t, page.Items)
		assert.Len(t, page.Items, 0)
		assert.Equal(t, 0, page.Meta.TotalPages)
	})
}
