package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate(t *testing.T) {
	t.Run("PagesReconstructInput", func(t *testing.T) {
		for _, n := range []int{0, 1, 9, 10, 11, 25, 100} {
			for _, size := range []int{1, 3, 10, 7} {
				items := seq(n)
				first := Paginate(items, 1, size)
				var joined []int
				for p := 1; p <= first.TotalPages; p++ {
					joined = append(joined, Paginate(items, p, size).Items...)
				}
				if n == 0 {
					assert.Empty(t, joined)
					continue
				}
				assert.Equal(t, items, joined, "n=%d size=%d", n, size)
			}
		}
	})

	t.Run("TotalPagesIsCeiling", func(t *testing.T) {
		assert.Equal(t, 0, Paginate(seq(0), 1, 10).TotalPages)
		assert.Equal(t, 1, Paginate(seq(10), 1, 10).TotalPages)
		assert.Equal(t, 2, Paginate(seq(11), 1, 10).TotalPages)
	})

	t.Run("OutOfRangeClamped", func(t *testing.T) {
		p := Paginate(seq(25), 9, 10)
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, []int{20, 21, 22, 23, 24}, p.Items)

		p = Paginate(seq(25), -4, 10)
		assert.Equal(t, 1, p.Page)
		require.Len(t, p.Items, 10)
	})

	t.Run("DefaultSize", func(t *testing.T) {
		p := Paginate(seq(15), 1, 0)
		assert.Equal(t, DefaultPageSize, p.PageSize)
		assert.Len(t, p.Items, 10)
	})
}

func TestPaginator(t *testing.T) {
	p := NewPaginator(seq(23), 10)
	assert.Equal(t, 1, p.CurrentPage())
	assert.Equal(t, 3, p.TotalPages())

	assert.Equal(t, 3, p.GoToPage(7))
	assert.Equal(t, []int{20, 21, 22}, p.CurrentItems())

	assert.Equal(t, 1, p.GoToPage(0))
	assert.Equal(t, 2, p.GoToPage(2))
	assert.Equal(t, 10, p.CurrentItems()[0])

	empty := NewPaginator([]int{}, 10)
	assert.Equal(t, 1, empty.GoToPage(5))
	assert.Empty(t, empty.CurrentItems())
}
