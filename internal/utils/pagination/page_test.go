package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 7, 4},
		{5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestSlice_Metadata(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, info := Slice(items, 1, 3)
	assert.Equal(t, []int{1, 2, 3}, page)
	assert.Equal(t, 7, info.Total)
	assert.Equal(t, 3, info.TotalPages)
	assert.True(t, info.HasNextPage)
	assert.False(t, info.HasPrevPage)

	page, info = Slice(items, 3, 3)
	assert.Equal(t, []int{7}, page)
	assert.False(t, info.HasNextPage)
	assert.True(t, info.HasPrevPage)
}

func TestSlice_PastTheEnd(t *testing.T) {
	page, info := Slice([]string{"a", "b"}, 5, 10)
	assert.NotNil(t, page)
	assert.Empty(t, page)
	assert.Equal(t, 5, info.Page)
	assert.Equal(t, 1, info.TotalPages)
	assert.False(t, info.HasNextPage)
	assert.True(t, info.HasPrevPage)
}

func TestSlice_EmptyInput(t *testing.T) {
	page, info := Slice([]int{}, 1, 10)
	assert.Empty(t, page)
	assert.Equal(t, 0, info.TotalPages)
	assert.False(t, info.HasNextPage)
	assert.False(t, info.HasPrevPage)
}

func TestSlice_NormalizesBadInput(t *testing.T) {
	_, info := Slice([]int{1, 2, 3}, 0, 0)
	assert.Equal(t, DefaultPage, info.Page)
	assert.Equal(t, DefaultLimit, info.Limit)

	_, info = Slice([]int{1}, 1, 1000)
	assert.Equal(t, MaxLimit, info.Limit)
}

func TestSlice_ConcatenationReproducesInput(t *testing.T) {
	for total := 0; total <= 23; total++ {
		items := make([]int, total)
		for i := range items {
			items[i] = i
		}
		for limit := 1; limit <= 6; limit++ {
			_, first := Slice(items, 1, limit)
			var all []int
			for p := 1; p <= first.TotalPages; p++ {
				chunk, _ := Slice(items, p, limit)
				all = append(all, chunk...)
			}
			if total == 0 {
				assert.Empty(t, all)
				continue
			}
			assert.Equal(t, items, all, "total=%d limit=%d", total, limit)
		}
	}
}

func TestSlice_DoesNotAliasInput(t *testing.T) {
	items := []int{1, 2, 3}
	page, _ := Slice(items, 1, 2)
	page[0] = 99
	assert.Equal(t, 1, items[0])
}
