package dto_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
)

func TestPageQuery_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		in         dto.PageQuery
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"valores por defecto", dto.PageQuery{}, 1, 12, 0},
		{"página negativa", dto.PageQuery{Page: -3, Limit: 5}, 1, 5, 0},
		{"límite recortado", dto.PageQuery{Page: 3, Limit: 1000}, 3, 100, 200},
		{"página enorme acotada", dto.PageQuery{Page: 1 << 62, Limit: 12}, math.MaxInt32 / 12, 12, (math.MaxInt32/12 - 1) * 12},
		{"página enorme con límite máximo", dto.PageQuery{Page: math.MaxInt, Limit: 100}, math.MaxInt32 / 100, 100, (math.MaxInt32/100 - 1) * 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.in.Normalize(12, 100)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantLimit, p.Limit)
			assert.Equal(t, tc.wantOffset, p.Offset())
			assert.GreaterOrEqual(t, p.Offset(), 0)
		})
	}
}

func TestNewPagination_HasNextPage(t *testing.T) {
	tests := []struct {
		name     string
		page     dto.PageQuery
		total    int64
		wantNext bool
		wantPrev bool
		wantPgs  int
	}{
		{"primera de varias", dto.PageQuery{Page: 1, Limit: 10}, 25, true, false, 3},
		{"última exacta", dto.PageQuery{Page: 3, Limit: 10}, 30, false, true, 3},
		{"sin filas", dto.PageQuery{Page: 1, Limit: 10}, 0, false, false, 0},
		{"fuera de rango", dto.PageQuery{Page: 1 << 62, Limit: 12}.Normalize(12, 100), 5, false, true, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := dto.NewPagination(tc.page, tc.total)
			assert.Equal(t, tc.wantNext, p.HasNextPage)
			assert.Equal(t, tc.wantPrev, p.HasPrevPage)
			assert.Equal(t, tc.wantPgs, p.TotalPages)
		})
	}
}
