package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParams_Validate(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"valid values pass through", 2, 25, 2, 25},
		{"zero page becomes 1", 0, 15, 1, 15},
		{"negative page becomes 1", -3, 15, 1, 15},
		{"zero per page becomes default", 1, 0, 1, 15},
		{"per page capped at 100", 1, 500, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PaginationParams{Page: tt.page, PerPage: tt.perPage}
			p.Validate()
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPerPage, p.PerPage)
		})
	}
}

func TestPaginationParams_Offset(t *testing.T) {
	assert.Equal(t, 0, (&PaginationParams{Page: 1, PerPage: 15}).Offset())
	assert.Equal(t, 15, (&PaginationParams{Page: 2, PerPage: 15}).Offset())
	assert.Equal(t, 40, (&PaginationParams{Page: 5, PerPage: 10}).Offset())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 15, 31)

	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 15, p.PerPage)
	assert.Equal(t, int64(31), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	first := NewPagination(1, 15, 10)
	assert.Equal(t, 1, first.TotalPages)
	assert.False(t, first.HasNext)
	assert.False(t, first.HasPrev)

	empty := NewPagination(1, 15, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
}
