package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginated(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		total       int
		totalPages  int
		hasNext     bool
		hasPrev     bool
	}{
		{"single partial page", 1, 10, 2, 1, false, false},
		{"exact page boundary", 1, 10, 10, 1, false, false},
		{"middle page", 2, 10, 35, 4, true, true},
		{"last page", 4, 10, 35, 4, false, true},
		{"empty result", 1, 10, 0, 0, false, false},
		{"empty result past first page", 3, 10, 0, 0, false, true},
		{"limit one", 5, 1, 7, 7, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaginated([]string{}, tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, p.Meta.Page)
			assert.Equal(t, tt.limit, p.Meta.Limit)
			assert.Equal(t, tt.total, p.Meta.Total)
			assert.Equal(t, tt.totalPages, p.Meta.TotalPages)
			assert.Equal(t, tt.hasNext, p.Meta.HasNextPage)
			assert.Equal(t, tt.hasPrev, p.Meta.HasPreviousPage)
		})
	}
}

func TestNewPaginatedNilItems(t *testing.T) {
	p := NewPaginated[int](nil, 1, 10, 0)
	assert.NotNil(t, p.Data)
	assert.Empty(t, p.Data)
}

func TestMapPaginated(t *testing.T) {
	p := NewPaginated([]int{1, 2, 3}, 1, 10, 3)
	mapped := MapPaginated(p, func(n int) int { return n * 2 })

	assert.Equal(t, []int{2, 4, 6}, mapped.Data)
	assert.Equal(t, p.Meta, mapped.Meta)
}

func TestPaginationOptionsOffset(t *testing.T) {
	assert.Equal(t, 0, PaginationOptions{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, PaginationOptions{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 40, PaginationOptions{Page: 5, Limit: 10}.Offset())
}
