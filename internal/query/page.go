package query

// Meta describes the pagination state of a list response. TotalItems comes
// from a count query run independently of the windowed fetch, so the two are
// not snapshot-consistent under concurrent writes.
type Meta struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}

// Page is the envelope every list endpoint returns.
type Page[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"meta"`
}

// NewPage assembles the envelope. A nil item slice serializes as [] rather
// than null; an empty result is a success, not a NotFound.
func NewPage[T any](items []T, totalItems int64, w Window) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := int(totalItems) / w.Limit
	if int(totalItems)%w.Limit > 0 {
		totalPages++
	}
	return Page[T]{
		Items: items,
		Meta: Meta{
			TotalItems:  totalItems,
			TotalPages:  totalPages,
			CurrentPage: w.Page,
			PageSize:    w.Limit,
		},
	}
}
