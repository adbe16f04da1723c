package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		wantOffset int
		wantPage   int
		wantPages  int
	}{
		{"第一页", 25, 1, 0, 1, 3},
		{"中间页", 25, 2, 10, 2, 3},
		{"最后一页", 25, 3, 20, 3, 3},
		{"页码越界收敛到最后一页", 25, 99, 20, 3, 3},
		{"页码为零收敛到第一页", 25, 0, 0, 1, 3},
		{"负数页码收敛到第一页", 25, -5, 0, 1, 3},
		{"空数据集", 0, 1, 0, 1, 1},
		{"空数据集越界页码", 0, 7, 0, 1, 1},
		{"刚好整页", 20, 2, 10, 2, 2},
		{"单条记录", 1, 1, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, meta := Paginate(tt.total, tt.page)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantPage, meta.Page)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.total, meta.TotalItems)
			assert.Equal(t, 10, meta.PageSize)
		})
	}
}
