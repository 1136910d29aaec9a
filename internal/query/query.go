// Package query implements the shared list-endpoint machinery: order-string
// parsing against a per-entity column allow-list, pagination window math,
// a positional-argument predicate builder, and the pagination envelope.
package query

import (
	"strings"

	"go-ats-backend/pkg/apperror"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
	defaultOrder = "id:asc"
)

// Params carries the universal list parameters accepted by every list
// endpoint. Zero values mean "not provided".
type Params struct {
	Page  int
	Limit int
	Order string
}

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Columns maps the sort keys an entity exposes to their SQL column
// expressions. Keys not present here are rejected before reaching the store.
type Columns map[string]string

type Order struct {
	Column    string
	Direction Direction
}

// Clause renders the ORDER BY fragment (without the keyword).
func (o Order) Clause() string {
	return o.Column + " " + string(o.Direction)
}

// ParseOrder validates a "key:direction" order string against the allow-list.
// An empty string falls back to id ascending, which every entity exposes and
// which guarantees a stable total order.
func ParseOrder(raw string, cols Columns) (Order, error) {
	if raw == "" {
		raw = defaultOrder
	}
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return Order{}, apperror.BadRequest("Bad order string")
	}
	column, ok := cols[parts[0]]
	if !ok {
		return Order{}, apperror.BadRequest("Invalid sortBy parameter")
	}
	direction := Asc
	if strings.EqualFold(parts[1], "desc") {
		direction = Desc
	}
	return Order{Column: column, Direction: direction}, nil
}

type Window struct {
	Page   int
	Limit  int
	Offset int
}

// Window computes the offset/limit pair, applying the defaults.
func (p Params) Window() Window {
	page := p.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := p.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	return Window{Page: page, Limit: limit, Offset: (page - 1) * limit}
}
