package kernel

// PaginationOptions carries the requested page window.
// Validation of the bounds belongs to the workflow services.
type PaginationOptions struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Offset converts the page number into a row offset
func (p PaginationOptions) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta is the pagination envelope returned alongside a result page
type PageMeta struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Paginated wraps one page of items with its envelope
type Paginated[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// NewPaginated builds a page from the retrieved items and the total row
// count matching the same filter. With total=0 the page count is 0 and
// there is no next page.
func NewPaginated[T any](items []T, page, limit, total int) Paginated[T] {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	if items == nil {
		items = []T{}
	}

	return Paginated[T]{
		Data: items,
		Meta: PageMeta{
			Page:            page,
			Limit:           limit,
			Total:           total,
			TotalPages:      totalPages,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1,
		},
	}
}

// MapPaginated reshapes a page of one item type into another, keeping
// the envelope intact
func MapPaginated[T, U any](p Paginated[T], f func(T) U) Paginated[U] {
	items := make([]U, 0, len(p.Data))
	for _, item := range p.Data {
		items = append(items, f(item))
	}
	return Paginated[U]{Data: items, Meta: p.Meta}
}
